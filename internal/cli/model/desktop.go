// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dumbdesk/internal/cli/styles"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/logging"
	"github.com/bnema/dumbdesk/internal/session"
	"github.com/bnema/dumbdesk/internal/ui/input"
	"github.com/bnema/dumbdesk/internal/ui/window"
)

const clockFormat = "15:04"

// DesktopModel is the Bubble Tea model hosting the desktop session.
type DesktopModel struct {
	// UI components
	help help.Model
	keys styles.DesktopKeyMap

	// State
	width    int
	height   int
	showHelp bool
	clock    time.Time

	// Dependencies
	ctx         context.Context
	session     *session.Session
	presenter   *window.Presenter
	controller  *input.Controller
	themes      map[entity.Theme]*styles.Theme
	changes     chan struct{}
	unsubscribe func()
}

// DesktopModelConfig holds the collaborators of the desktop model.
type DesktopModelConfig struct {
	Session    *session.Session
	Presenter  *window.Presenter
	Controller *input.Controller
	ShowHelp   bool
	Now        func() time.Time // Defaults to time.Now
}

// stateChangedMsg is sent after the session applied an intent.
type stateChangedMsg struct{}

// clockTickMsg refreshes the taskbar clock.
type clockTickMsg time.Time

// NewDesktopModel creates the desktop model and subscribes it to the session.
// Content is mounted synchronously on every applied change; the model is
// then woken to redraw.
func NewDesktopModel(ctx context.Context, cfg DesktopModelConfig) DesktopModel {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	changes := make(chan struct{}, 1)
	presenter := cfg.Presenter
	unsubscribe := cfg.Session.Subscribe(func(state entity.SessionState) {
		presenter.Sync(ctx, state)
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	presenter.Sync(ctx, cfg.Session.State())

	return DesktopModel{
		help:       help.New(),
		keys:       styles.DefaultDesktopKeyMap(),
		showHelp:   cfg.ShowHelp,
		clock:      now(),
		ctx:        logging.WithComponent(ctx, "desktop-model"),
		session:    cfg.Session,
		presenter:  presenter,
		controller: cfg.Controller,
		themes: map[entity.Theme]*styles.Theme{
			entity.ThemeDark:  styles.NewTheme(entity.ThemeDark),
			entity.ThemeLight: styles.NewTheme(entity.ThemeLight),
		},
		changes:     changes,
		unsubscribe: unsubscribe,
	}
}

// Close detaches the model from the session.
func (m DesktopModel) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m DesktopModel) Init() tea.Cmd {
	return tea.Batch(m.waitForChange(), m.tick())
}

func (m DesktopModel) waitForChange() tea.Cmd {
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func (DesktopModel) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Update implements tea.Model.
func (m DesktopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m.handleMouseMsg(msg)
		return m, nil

	case stateChangedMsg:
		return m, m.waitForChange()

	case clockTickMsg:
		m.clock = time.Time(msg)
		return m, m.tick()
	}

	return m, nil
}

// resize propagates the terminal size to the presenter and controller.
func (m DesktopModel) resize() {
	screen := entity.Size{Width: m.width, Height: m.height}
	if m.showHelp && screen.Height > 1 {
		screen.Height--
	}
	m.presenter.SetScreen(screen)
	m.controller.ViewportChanged()
}

func (m DesktopModel) handleMouseMsg(msg tea.MouseMsg) {
	p := entity.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		button, ok := pointerButton(msg.Button)
		if !ok {
			return
		}
		m.controller.PointerDown(m.ctx, p, button)
	case tea.MouseActionMotion:
		m.controller.PointerMove(m.ctx, p)
	case tea.MouseActionRelease:
		m.controller.PointerUp(m.ctx, p)
	}
}

func pointerButton(b tea.MouseButton) (input.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.ButtonPrimary, true
	case tea.MouseButtonRight:
		return input.ButtonSecondary, true
	case tea.MouseButtonMiddle:
		return input.ButtonMiddle, true
	default:
		return 0, false
	}
}

func (m DesktopModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Open overlays get the first look at every key.
	if m.controller.KeyPress(m.ctx, msg.String()) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Start):
		m.controller.Perform(m.ctx, input.ActionToggleStart)
	case key.Matches(msg, m.keys.Cycle):
		m.controller.Perform(m.ctx, input.ActionCycleFocus)
	case key.Matches(msg, m.keys.Close):
		m.controller.Perform(m.ctx, input.ActionCloseFocused)
	case key.Matches(msg, m.keys.Minimize):
		m.controller.Perform(m.ctx, input.ActionMinimizeFocused)
	case key.Matches(msg, m.keys.Maximize):
		m.controller.Perform(m.ctx, input.ActionMaximizeFocused)
	case key.Matches(msg, m.keys.Theme):
		m.controller.Perform(m.ctx, input.ActionToggleTheme)
	case key.Matches(msg, m.keys.Dismiss):
		m.controller.Perform(m.ctx, input.ActionDismissOverlay)
	}

	return m, nil
}

// View implements tea.Model.
func (m DesktopModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	state := m.session.State()
	theme, ok := m.themes[state.Theme]
	if !ok {
		theme = m.themes[entity.ThemeDark]
	}

	var b strings.Builder
	b.WriteString(m.presenter.Draw(state, m.clock.Format(clockFormat)).Render(theme))

	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

// ShowingHelp reports whether the help line is visible.
func (m DesktopModel) ShowingHelp() bool {
	return m.showHelp
}
