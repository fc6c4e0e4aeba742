package session

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbdesk/internal/application/usecase"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/logging"
)

type fakeApps map[entity.AppID]entity.ApplicationDescriptor

func (f fakeApps) Lookup(id entity.AppID) (entity.ApplicationDescriptor, error) {
	d, ok := f[id]
	if !ok {
		return entity.ApplicationDescriptor{}, fmt.Errorf("%w: %s", entity.ErrUnknownApplication, id)
	}
	return d, nil
}

func (f fakeApps) List() []entity.ApplicationDescriptor {
	out := make([]entity.ApplicationDescriptor, 0, len(f))
	for _, d := range f {
		out = append(out, d)
	}
	return out
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	apps := fakeApps{}
	for _, id := range []entity.AppID{"calc", "notes", "browser", "terminal"} {
		apps[id] = entity.ApplicationDescriptor{
			ID:          id,
			Title:       string(id),
			DefaultSize: entity.Size{Width: 30, Height: 10},
			Resizable:   true,
		}
	}
	reducer := usecase.NewSessionReducer(apps, usecase.DefaultCascadePolicy())
	return New(reducer, entity.NewSessionState(entity.ThemeDark, "default"), Options{AssertInvariants: true})
}

func TestSession_DispatchNotifiesSubscribers(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	var seen []entity.SessionState
	unsubscribe := s.Subscribe(func(state entity.SessionState) {
		seen = append(seen, state)
	})
	defer unsubscribe()

	s.OpenApplication(ctx, "calc", "")
	s.OpenApplication(ctx, "notes", "")
	s.FocusWindow(ctx, "calc")

	require.Len(t, seen, 3)
	assert.True(t, seen[2].IsFocused("calc"))
	assert.Equal(t, s.State(), seen[2])
}

func TestSession_IgnoredIntentsDoNotNotify(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	s.OpenApplication(ctx, "calc", "")

	calls := 0
	defer s.Subscribe(func(entity.SessionState) { calls++ })()

	s.FocusWindow(ctx, "calc")
	s.CloseWindow(ctx, "ghost")
	s.OpenApplication(ctx, "solitaire", "")
	s.RepositionWindow(ctx, "gone", entity.Point{})

	assert.Equal(t, 0, calls)
}

func TestSession_StateIsACopy(t *testing.T) {
	s := newTestSession(t)
	s.OpenApplication(context.Background(), "calc", "")

	st := s.State()
	st.Windows[0].Position = entity.Point{X: 999, Y: 999}
	st.FocusedID = ""

	fresh := s.State()
	assert.NotEqual(t, entity.Point{X: 999, Y: 999}, fresh.Windows[0].Position)
	assert.True(t, fresh.IsFocused("calc"))
}

func TestSession_ReentrantDispatchIsQueued(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	var order []entity.WindowID
	s.Subscribe(func(state entity.SessionState) {
		order = append(order, state.FocusedID)
		if len(state.Windows) == 1 && state.FocusedID == "calc" {
			// Runs after calc has been fully published.
			s.OpenApplication(ctx, "notes", "")
		}
	})

	s.OpenApplication(ctx, "calc", "")

	assert.Equal(t, []entity.WindowID{"calc", "notes"}, order)
	assert.Len(t, s.State().Windows, 2)
}

func TestSession_Unsubscribe(t *testing.T) {
	s := newTestSession(t)
	calls := 0
	unsubscribe := s.Subscribe(func(entity.SessionState) { calls++ })
	require.Equal(t, 1, s.SubscriberCount())

	s.OpenApplication(context.Background(), "calc", "")
	unsubscribe()
	unsubscribe()
	s.OpenApplication(context.Background(), "notes", "")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.SubscriberCount())
}

func TestSession_ConcurrentDispatchIsSerialized(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	apps := []entity.AppID{"calc", "notes", "browser", "terminal"}

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := apps[i%len(apps)]
			s.OpenApplication(ctx, id, "")
			s.FocusWindow(ctx, entity.WindowIDFor(id))
		}(i)
	}
	wg.Wait()

	st := s.State()
	assert.Len(t, st.Windows, len(apps))
	require.NoError(t, usecase.CheckInvariants(st))
}

func TestSession_OutcomeHook(t *testing.T) {
	s := newTestSession(t)
	var outcomes []usecase.Outcome
	s.OnOutcome(func(o usecase.Outcome) { outcomes = append(outcomes, o) })

	s.OpenApplication(context.Background(), "calc", "")
	s.OpenApplication(context.Background(), "nope", "")

	require.Len(t, outcomes, 2)
	assert.True(t, outcomes[0].Applied)
	assert.Equal(t, usecase.ReasonUnknownApplication, outcomes[1].Reason)
}

func TestSession_LogsUnknownApplicationAsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(logging.Config{Level: zerolog.TraceLevel, Format: logging.FormatJSON}, &buf)
	ctx := logging.WithContext(context.Background(), logger)

	s := newTestSession(t)
	s.OpenApplication(ctx, "solitaire", "")

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"app_id":"solitaire"`)
	assert.Contains(t, out, `"reason":"unknown_application"`)
}

func TestSession_StaleTargetIsNotLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(logging.Config{Level: zerolog.InfoLevel, Format: logging.FormatJSON}, &buf)
	ctx := logging.WithContext(context.Background(), logger)

	s := newTestSession(t)
	s.CloseWindow(ctx, "ghost")

	assert.Empty(t, buf.String())
}

func TestSession_AssertionPanicsOnBrokenState(t *testing.T) {
	apps := fakeApps{}
	reducer := usecase.NewSessionReducer(apps, usecase.DefaultCascadePolicy())
	broken := entity.NewSessionState(entity.ThemeDark, "")
	broken.Windows = append(broken.Windows, entity.Window{ID: "calc", AppID: "calc", ZOrder: 1})
	broken.ZCounter = 1 // visible window with no focus

	s := New(reducer, broken, Options{AssertInvariants: true})

	assert.Panics(t, func() {
		s.SetWallpaper(context.Background(), "aurora")
	})
}

func TestSession_ListenersNotifiedInSubscriptionOrder(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	var got []int
	for i := 0; i < 8; i++ {
		i := i
		s.Subscribe(func(entity.SessionState) { got = append(got, i) })
	}
	unsubscribe := s.Subscribe(func(entity.SessionState) { got = append(got, 99) })
	s.Subscribe(func(entity.SessionState) { got = append(got, 8) })
	unsubscribe()

	s.OpenApplication(ctx, "calc", "")
	s.OpenApplication(ctx, "notes", "")

	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, append(append([]int(nil), want...), want...), got)
}

func TestSession_RecoversAfterListenerPanic(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	boom := true
	s.Subscribe(func(state entity.SessionState) {
		if boom {
			// Queued behind the panic; discarded with it.
			s.OpenApplication(ctx, "notes", "")
			panic("listener failed")
		}
	})

	require.Panics(t, func() { s.OpenApplication(ctx, "calc", "") })
	assert.True(t, s.State().Has("calc"), "intent was applied before listeners ran")
	assert.False(t, s.State().Has("notes"))

	boom = false
	s.OpenApplication(ctx, "browser", "")
	state := s.State()
	assert.True(t, state.Has("browser"), "session keeps applying intents after a listener panic")
	assert.Equal(t, entity.WindowID("browser"), state.FocusedID)
}

func TestSession_RecoversAfterAssertionPanic(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()
	s.OpenApplication(ctx, "calc", "")

	s.opts.AssertInvariants = true
	s.mu.Lock()
	s.state.FocusedID = "ghost"
	s.mu.Unlock()

	require.Panics(t, func() { s.SetTheme(ctx, entity.ThemeLight) })
	assert.Equal(t, entity.ThemeDark, s.State().Theme, "state is not committed on violation")

	s.mu.Lock()
	s.state.FocusedID = "calc"
	s.mu.Unlock()

	s.SetTheme(ctx, entity.ThemeLight)
	assert.Equal(t, entity.ThemeLight, s.State().Theme)
}
