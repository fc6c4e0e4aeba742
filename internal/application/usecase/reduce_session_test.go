package usecase

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/domain/repository/mocks"
)

// staticApps is a minimal in-memory catalog for reducer tests.
type staticApps map[entity.AppID]entity.ApplicationDescriptor

func (s staticApps) Lookup(id entity.AppID) (entity.ApplicationDescriptor, error) {
	d, ok := s[id]
	if !ok {
		return entity.ApplicationDescriptor{}, fmt.Errorf("%w: %s", entity.ErrUnknownApplication, id)
	}
	return d, nil
}

func (s staticApps) List() []entity.ApplicationDescriptor {
	out := make([]entity.ApplicationDescriptor, 0, len(s))
	for _, d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func app(id string, resizable bool) entity.ApplicationDescriptor {
	return entity.ApplicationDescriptor{
		ID:          entity.AppID(id),
		Title:       id,
		DefaultSize: entity.Size{Width: 30, Height: 10},
		MinSize:     &entity.Size{Width: 20, Height: 6},
		Resizable:   resizable,
		Category:    entity.CategoryUtilities,
	}
}

func testApps() staticApps {
	return staticApps{
		"calc":  app("calc", false),
		"notes": app("notes", true),
		"a":     app("a", true),
		"b":     app("b", true),
		"c":     app("c", true),
	}
}

func newTestReducer() *SessionReducer {
	return NewSessionReducer(testApps(), DefaultCascadePolicy())
}

func emptyState() entity.SessionState {
	return entity.NewSessionState(entity.ThemeDark, "default")
}

func mustFind(t *testing.T, s entity.SessionState, id entity.WindowID) entity.Window {
	t.Helper()
	w, ok := s.Find(id)
	require.True(t, ok, "window %s not found", id)
	return w
}

func reduceChecked(t *testing.T, r *SessionReducer, s entity.SessionState, in entity.Intent) (entity.SessionState, Outcome) {
	t.Helper()
	next, out := r.Reduce(s, in)
	require.NoError(t, CheckInvariants(next), "after %s", in.Kind())
	return next, out
}

func TestReduce_OpenCreatesFocusedWindowFromDescriptor(t *testing.T) {
	r := newTestReducer()

	s, out := reduceChecked(t, r, emptyState(), entity.Open{AppID: "notes", Seed: "todo.txt"})

	assert.True(t, out.Applied)
	require.Len(t, s.Windows, 1)
	w := s.Windows[0]
	assert.Equal(t, entity.WindowID("notes"), w.ID)
	assert.Equal(t, entity.Size{Width: 30, Height: 10}, w.Size)
	assert.Equal(t, DefaultCascadePolicy().Origin, w.Position)
	assert.Equal(t, "todo.txt", w.Seed)
	assert.Equal(t, 1, w.ZOrder)
	assert.Equal(t, 1, s.ZCounter)
	assert.True(t, s.IsFocused("notes"))
}

func TestReduce_OpenDoesNotMutateInput(t *testing.T) {
	r := newTestReducer()
	s1, _ := r.Reduce(emptyState(), entity.Open{AppID: "a"})
	before := s1.Clone()

	_, _ = r.Reduce(s1, entity.Open{AppID: "b"})
	_, _ = r.Reduce(s1, entity.Reposition{WindowID: "a", Position: entity.Point{X: 50, Y: 50}})

	assert.Equal(t, before, s1)
}

func TestReduce_OpenUnknownApplicationLeavesStateUnchanged(t *testing.T) {
	apps := mocks.NewMockApplicationRepository(t)
	apps.EXPECT().
		Lookup(entity.AppID("ghost")).
		Return(entity.ApplicationDescriptor{}, fmt.Errorf("%w: ghost", entity.ErrUnknownApplication))

	r := NewSessionReducer(apps, DefaultCascadePolicy())
	s := emptyState()

	next, out := r.Reduce(s, entity.Open{AppID: "ghost"})

	assert.Equal(t, s, next)
	assert.False(t, out.Applied)
	assert.Equal(t, ReasonUnknownApplication, out.Reason)
	assert.True(t, errors.Is(out.Err, entity.ErrUnknownApplication))
}

func TestReduce_ReopenFocusesInsteadOfDuplicating(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(),
		entity.Open{AppID: "calc"},
		entity.Open{AppID: "notes"},
		entity.Minimize{WindowID: "calc"},
	)

	s, out := reduceChecked(t, r, s, entity.Open{AppID: "calc"})

	assert.True(t, out.Applied)
	assert.Equal(t, entity.IntentOpen, out.Intent)
	assert.Len(t, s.Windows, 2)
	calc := mustFind(t, s, "calc")
	assert.False(t, calc.Minimized)
	assert.True(t, s.IsFocused("calc"))
	assert.Equal(t, s.MaxZOrder(), calc.ZOrder)
}

func TestReduce_OpenCascadesFromLastWindow(t *testing.T) {
	policy := CascadePolicy{
		Origin: entity.Point{X: 2, Y: 1},
		Step:   entity.Point{X: 3, Y: 2},
		Bounds: entity.Size{Width: 40, Height: 14},
	}
	r := NewSessionReducer(testApps(), policy)

	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"}, entity.Open{AppID: "b"})
	assert.Equal(t, entity.Point{X: 2, Y: 1}, mustFind(t, s, "a").Position)
	assert.Equal(t, entity.Point{X: 5, Y: 3}, mustFind(t, s, "b").Position)

	// (8,5) would put the bottom edge at 15, past the 14-row bound.
	s = r.ReduceAll(s, entity.Open{AppID: "c"})
	assert.Equal(t, entity.Point{X: 2, Y: 1}, mustFind(t, s, "c").Position)
}

func TestReduce_CloseRemovesWindowAndPassesFocus(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(),
		entity.Open{AppID: "a"},
		entity.Open{AppID: "b"},
		entity.Open{AppID: "c"},
		entity.Focus{WindowID: "a"},
	)
	counter := s.ZCounter

	s, out := reduceChecked(t, r, s, entity.Close{WindowID: "a"})

	assert.True(t, out.Applied)
	assert.False(t, s.Has("a"))
	assert.True(t, s.IsFocused("c"), "highest remaining z-order gets focus")
	assert.Equal(t, counter, s.ZCounter, "counter is never reclaimed")

	s, _ = reduceChecked(t, r, s, entity.Close{WindowID: "c"})
	s, _ = reduceChecked(t, r, s, entity.Close{WindowID: "b"})
	assert.Empty(t, s.Windows)
	assert.Equal(t, entity.WindowID(""), s.FocusedID)
}

func TestReduce_CloseUnfocusedKeepsFocus(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"}, entity.Open{AppID: "b"})

	s, _ = reduceChecked(t, r, s, entity.Close{WindowID: "a"})

	assert.True(t, s.IsFocused("b"))
}

func TestReduce_CloseSkipsMinimizedWhenPassingFocus(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(),
		entity.Open{AppID: "a"},
		entity.Open{AppID: "b"},
		entity.Open{AppID: "c"},
		entity.Minimize{WindowID: "b"},
	)
	require.True(t, s.IsFocused("c"))

	s, _ = reduceChecked(t, r, s, entity.Close{WindowID: "c"})

	assert.True(t, s.IsFocused("a"))
}

func TestReduce_FocusAlreadyFocusedIsNoOp(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"})

	next, out := r.Reduce(s, entity.Focus{WindowID: "a"})

	assert.False(t, out.Applied)
	assert.Equal(t, ReasonNoOp, out.Reason)
	assert.Equal(t, s, next)
}

func TestReduce_FocusRestoresMinimizedWindow(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"}, entity.Minimize{WindowID: "a"})
	require.Equal(t, entity.WindowID(""), s.FocusedID)

	s, out := reduceChecked(t, r, s, entity.Focus{WindowID: "a"})

	assert.True(t, out.Applied)
	assert.False(t, mustFind(t, s, "a").Minimized)
	assert.True(t, s.IsFocused("a"))
}

func TestReduce_MinimizePassesFocusToNextVisible(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(),
		entity.Open{AppID: "a"},
		entity.Open{AppID: "b"},
		entity.Open{AppID: "c"},
	)

	s, _ = reduceChecked(t, r, s, entity.Minimize{WindowID: "c"})
	assert.True(t, s.IsFocused("b"))

	s, _ = reduceChecked(t, r, s, entity.Minimize{WindowID: "b"})
	assert.True(t, s.IsFocused("a"))
}

func TestReduce_MinimizeToggleRestoresWithFocus(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(),
		entity.Open{AppID: "a"},
		entity.Open{AppID: "b"},
		entity.Minimize{WindowID: "a"},
	)

	s, out := reduceChecked(t, r, s, entity.Minimize{WindowID: "a"})

	assert.True(t, out.Applied)
	assert.False(t, mustFind(t, s, "a").Minimized)
	assert.True(t, s.IsFocused("a"))
	assert.Greater(t, mustFind(t, s, "a").ZOrder, mustFind(t, s, "b").ZOrder)
}

func TestReduce_MaximizeTogglesWithoutTouchingGeometry(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "notes"})
	before := mustFind(t, s, "notes")

	s, _ = reduceChecked(t, r, s, entity.Maximize{WindowID: "notes"})
	maxed := mustFind(t, s, "notes")
	assert.True(t, maxed.Maximized)
	assert.Equal(t, before.Position, maxed.Position)
	assert.Equal(t, before.Size, maxed.Size)

	s, _ = reduceChecked(t, r, s, entity.Maximize{WindowID: "notes"})
	assert.False(t, mustFind(t, s, "notes").Maximized)
}

func TestReduce_RepositionMaximizedIsNoOp(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"})
	maxed, _ := r.Reduce(s, entity.Maximize{WindowID: "a"})

	moved, out := r.Reduce(maxed, entity.Reposition{WindowID: "a", Position: entity.Point{X: 77, Y: 3}})

	assert.Equal(t, ReasonRejected, out.Reason)
	assert.Equal(t, mustFind(t, maxed, "a").Position, mustFind(t, moved, "a").Position)
}

func TestReduce_RepositionAllowsOffscreen(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"})

	s, out := reduceChecked(t, r, s, entity.Reposition{WindowID: "a", Position: entity.Point{X: -40, Y: -5}})

	assert.True(t, out.Applied)
	assert.Equal(t, entity.Point{X: -40, Y: -5}, mustFind(t, s, "a").Position)
}

func TestReduce_Resize(t *testing.T) {
	tests := []struct {
		name     string
		appID    entity.AppID
		size     entity.Size
		want     entity.Size
		wantOut  IgnoreReason
		wantDone bool
	}{
		{
			name:     "resizable grows",
			appID:    "notes",
			size:     entity.Size{Width: 50, Height: 20},
			want:     entity.Size{Width: 50, Height: 20},
			wantDone: true,
		},
		{
			name:     "clamped to minimum",
			appID:    "notes",
			size:     entity.Size{Width: 5, Height: 2},
			want:     entity.Size{Width: 20, Height: 6},
			wantDone: true,
		},
		{
			name:    "non-resizable keeps default",
			appID:   "calc",
			size:    entity.Size{Width: 80, Height: 40},
			want:    entity.Size{Width: 30, Height: 10},
			wantOut: ReasonRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReducer()
			s := r.ReduceAll(emptyState(), entity.Open{AppID: tt.appID})

			s, out := reduceChecked(t, r, s, entity.Resize{WindowID: entity.WindowIDFor(tt.appID), Size: tt.size})

			assert.Equal(t, tt.wantDone, out.Applied)
			assert.Equal(t, tt.wantOut, out.Reason)
			assert.Equal(t, tt.want, mustFind(t, s, entity.WindowIDFor(tt.appID)).Size)
		})
	}
}

func TestReduce_StaleTargetsAreSilentNoOps(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"})

	intents := []entity.Intent{
		entity.Close{WindowID: "gone"},
		entity.Focus{WindowID: "gone"},
		entity.Minimize{WindowID: "gone"},
		entity.Maximize{WindowID: "gone"},
		entity.Reposition{WindowID: "gone", Position: entity.Point{X: 1, Y: 1}},
		entity.Resize{WindowID: "gone", Size: entity.Size{Width: 40, Height: 40}},
	}

	for _, in := range intents {
		t.Run(string(in.Kind()), func(t *testing.T) {
			next, out := r.Reduce(s, in)
			assert.Equal(t, s, next)
			assert.Equal(t, ReasonStaleTarget, out.Reason)
			assert.True(t, errors.Is(out.Err, entity.ErrStaleTarget))
		})
	}
}

func TestReduce_DragAfterCloseIsIgnored(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"}, entity.Close{WindowID: "a"})

	next, out := r.Reduce(s, entity.Reposition{WindowID: "a", Position: entity.Point{X: 10, Y: 10}})

	assert.Equal(t, s, next)
	assert.Equal(t, ReasonStaleTarget, out.Reason)
}

func TestReduce_OverlaysAreMutuallyExclusive(t *testing.T) {
	r := newTestReducer()
	menu := entity.NewContextMenu(entity.Point{X: 10, Y: 10}, []entity.MenuItem{{Label: "Theme", Action: entity.MenuToggleTheme}})

	s, _ := reduceChecked(t, r, emptyState(), entity.OpenOverlay{Overlay: menu})
	assert.Equal(t, entity.OverlayContextMenu, s.ActiveOverlay.Kind)

	s, _ = reduceChecked(t, r, s, entity.OpenOverlay{Overlay: entity.NewStartPanel()})
	assert.Equal(t, entity.NewStartPanel(), s.ActiveOverlay)

	s, _ = reduceChecked(t, r, s, entity.OpenOverlay{Overlay: menu})
	assert.Equal(t, entity.OverlayContextMenu, s.ActiveOverlay.Kind)
	assert.Equal(t, entity.Point{X: 10, Y: 10}, s.ActiveOverlay.Position)

	s, out := reduceChecked(t, r, s, entity.CloseOverlay{})
	assert.True(t, out.Applied)
	assert.False(t, s.ActiveOverlay.IsOpen())

	_, out = r.Reduce(s, entity.CloseOverlay{})
	assert.Equal(t, ReasonNoOp, out.Reason)
}

func TestReduce_PanelOverlayDropsMenuFields(t *testing.T) {
	r := newTestReducer()
	odd := entity.Overlay{Kind: entity.OverlayStartPanel, Items: []entity.MenuItem{{Label: "x"}}}

	s, _ := reduceChecked(t, r, emptyState(), entity.OpenOverlay{Overlay: odd})

	assert.Empty(t, s.ActiveOverlay.Items)
}

func TestReduce_ThemeAndWallpaperDoNotTouchWindows(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"})
	windows := append([]entity.Window(nil), s.Windows...)

	s, out := reduceChecked(t, r, s, entity.SetTheme{Theme: entity.ThemeLight})
	assert.True(t, out.Applied)
	assert.Equal(t, entity.ThemeLight, s.Theme)

	s, out = reduceChecked(t, r, s, entity.SetWallpaper{Ref: "aurora"})
	assert.True(t, out.Applied)
	assert.Equal(t, "aurora", s.Wallpaper)

	_, out = r.Reduce(s, entity.SetTheme{Theme: "neon"})
	assert.Equal(t, ReasonRejected, out.Reason)

	assert.Equal(t, windows, s.Windows)
	assert.True(t, s.IsFocused("a"))
}

func TestReduce_NilIntentRejected(t *testing.T) {
	r := newTestReducer()
	s := emptyState()

	next, out := r.Reduce(s, nil)

	assert.Equal(t, s, next)
	assert.Equal(t, ReasonRejected, out.Reason)
}

// Scenarios

func TestScenario_FocusBackgroundWindow(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(),
		entity.Open{AppID: "calc"},
		entity.Open{AppID: "notes"},
		entity.Focus{WindowID: "calc"},
	)

	require.Len(t, s.Windows, 2)
	assert.Equal(t, entity.WindowID("calc"), s.Windows[0].ID, "insertion order unchanged")
	assert.Equal(t, entity.WindowID("notes"), s.Windows[1].ID)
	assert.True(t, s.IsFocused("calc"))
	assert.False(t, s.IsFocused("notes"))
	assert.Greater(t, mustFind(t, s, "calc").ZOrder, mustFind(t, s, "notes").ZOrder)
}

func TestScenario_MinimizeOnlyWindow(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "calc"}, entity.Minimize{WindowID: "calc"})

	calc := mustFind(t, s, "calc")
	assert.True(t, calc.Minimized)
	assert.False(t, s.IsFocused("calc"))
	assert.Equal(t, entity.WindowID(""), s.FocusedID)
}

func TestScenario_ReopenAfterCloseAllocatesFreshZOrder(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "a"})
	original := mustFind(t, s, "a").ZOrder

	s = r.ReduceAll(s,
		entity.Open{AppID: "b"},
		entity.Close{WindowID: "a"},
		entity.Open{AppID: "a"},
	)

	count := 0
	for _, w := range s.Windows {
		if w.ID == "a" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	a := mustFind(t, s, "a")
	assert.Equal(t, s.MaxZOrder(), a.ZOrder)
	assert.NotEqual(t, original, a.ZOrder)
	assert.Greater(t, a.ZOrder, mustFind(t, s, "b").ZOrder)
}

func TestScenario_StartPanelReplacesContextMenu(t *testing.T) {
	r := newTestReducer()
	s := r.ReduceAll(emptyState(),
		entity.OpenOverlay{Overlay: entity.NewContextMenu(entity.Point{X: 10, Y: 10}, nil)},
		entity.OpenOverlay{Overlay: entity.NewStartPanel()},
	)

	assert.Equal(t, entity.NewStartPanel(), s.ActiveOverlay)
}

// Properties

func randomIntent(rng *rand.Rand, ids []entity.AppID) entity.Intent {
	id := ids[rng.Intn(len(ids))]
	wid := entity.WindowIDFor(id)
	switch rng.Intn(11) {
	case 0, 1:
		return entity.Open{AppID: id}
	case 2:
		return entity.Close{WindowID: wid}
	case 3:
		return entity.Focus{WindowID: wid}
	case 4:
		return entity.Minimize{WindowID: wid}
	case 5:
		return entity.Maximize{WindowID: wid}
	case 6:
		return entity.Reposition{WindowID: wid, Position: entity.Point{X: rng.Intn(200) - 50, Y: rng.Intn(80) - 20}}
	case 7:
		return entity.Resize{WindowID: wid, Size: entity.Size{Width: rng.Intn(90), Height: rng.Intn(40)}}
	case 8:
		return entity.OpenOverlay{Overlay: entity.NewContextMenu(entity.Point{X: rng.Intn(50), Y: rng.Intn(20)}, nil)}
	case 9:
		return entity.OpenOverlay{Overlay: entity.NewStartPanel()}
	default:
		return entity.CloseOverlay{}
	}
}

func TestProperty_RandomSequencesKeepInvariants(t *testing.T) {
	ids := []entity.AppID{"calc", "notes", "a", "b", "c", "ghost"}
	r := newTestReducer()

	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := emptyState()
		opened := make(map[entity.AppID]struct{})
		lastCounter := 0

		for step := 0; step < 200; step++ {
			in := randomIntent(rng, ids)
			if open, ok := in.(entity.Open); ok && open.AppID != "ghost" {
				opened[open.AppID] = struct{}{}
			}

			prev := s
			var out Outcome
			s, out = r.Reduce(s, in)

			require.NoError(t, CheckInvariants(s), "seed %d step %d intent %s", seed, step, in.Kind())
			assert.LessOrEqual(t, len(s.Windows), len(opened), "seed %d step %d", seed, step)
			assert.GreaterOrEqual(t, s.ZCounter, lastCounter, "counter went backwards")

			// Every allocation yields a value above anything seen before.
			if s.ZCounter > lastCounter {
				assert.Equal(t, lastCounter+1, s.ZCounter)
				assert.Greater(t, s.ZCounter, prev.MaxZOrder())
			}
			lastCounter = s.ZCounter

			if c, ok := in.(entity.Close); ok && out.Applied {
				assert.False(t, s.Has(c.WindowID))
				if prev.FocusedID == c.WindowID {
					want := nextFocus(s, c.WindowID)
					assert.Equal(t, want, s.FocusedID)
				}
			}
		}
	}
}

func TestProperty_NonResizableNeverChangesSize(t *testing.T) {
	r := newTestReducer()
	rng := rand.New(rand.NewSource(7))
	s := r.ReduceAll(emptyState(), entity.Open{AppID: "calc"})

	for i := 0; i < 100; i++ {
		s, _ = r.Reduce(s, entity.Resize{
			WindowID: "calc",
			Size:     entity.Size{Width: rng.Intn(300) - 100, Height: rng.Intn(300) - 100},
		})
		assert.Equal(t, testApps()["calc"].DefaultSize, mustFind(t, s, "calc").Size)
	}
}
