package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbdesk/internal/application/usecase"
	"github.com/bnema/dumbdesk/internal/cli"
	"github.com/bnema/dumbdesk/internal/cli/styles"
	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/infrastructure/script"
	"github.com/bnema/dumbdesk/internal/logging"
	"github.com/bnema/dumbdesk/internal/ui/input"
)

var (
	replayJSON    bool
	replayVerbose bool
	replayRender  bool
	replayScreen  string
)

var replayCmd = &cobra.Command{
	Use:   "replay [script]",
	Short: "Replay an intent script against a fresh session",
	Long: `Replay reads one intent per line and applies them in order to a new
session, then prints the resulting windows. Without a file, or with "-",
the script is read from stdin.

Script commands:
  open <app> [seed]        close|focus|minimize|maximize <window>
  move <window> <x> <y>    resize <window> <w> <h>
  menu <x> <y>             start | notifications | dismiss
  theme <light|dark>       wallpaper <name>

Examples:
  dumbdesk replay session.txt
  echo "open calc" | dumbdesk replay --json
  dumbdesk replay session.txt --render --screen 100x30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "output final state and outcomes as JSON")
	replayCmd.Flags().BoolVarP(&replayVerbose, "verbose", "v", false, "print the outcome of every intent")
	replayCmd.Flags().BoolVar(&replayRender, "render", false, "print the final frame as text")
	replayCmd.Flags().StringVar(&replayScreen, "screen", "", "screen size for --render, e.g. 120x36")
}

// outcomeView is the JSON form of a reduction outcome.
type outcomeView struct {
	Line    int                  `json:"line"`
	Intent  entity.IntentKind    `json:"intent"`
	Applied bool                 `json:"applied"`
	Reason  usecase.IgnoreReason `json:"reason,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// replayResult is what a replay produced.
type replayResult struct {
	State    entity.SessionState `json:"state"`
	Outcomes []outcomeView       `json:"outcomes"`
	Frame    []string            `json:"frame,omitempty"`
}

func runReplay(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	var r io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var screen entity.Size
	if replayRender {
		var err error
		screen, err = parseScreen(replayScreen, app)
		if err != nil {
			return err
		}
	}

	result, err := replayScript(app.Ctx(), app, r, screen)
	if err != nil {
		return err
	}

	if replayJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Print(renderReplay(app.Theme, result, replayVerbose))
	return nil
}

// parseScreen reads "WxH", defaulting to the configured screen.
func parseScreen(s string, app *cli.App) (entity.Size, error) {
	if s == "" {
		size := app.Config.Desktop.CascadeBounds()
		if size.Width <= 0 || size.Height <= 0 {
			return entity.Size{Width: 120, Height: 36}, nil
		}
		return size, nil
	}

	var size entity.Size
	if _, err := fmt.Sscanf(s, "%dx%d", &size.Width, &size.Height); err != nil || size.Width <= 0 || size.Height <= 0 {
		return entity.Size{}, fmt.Errorf("invalid screen size %q (want WxH)", s)
	}
	return size, nil
}

// replayScript applies the script in r to a fresh desktop. A non-empty
// screen also draws the final frame.
func replayScript(ctx context.Context, app *cli.App, r io.Reader, screen entity.Size) (replayResult, error) {
	intents, err := script.NewParser(input.DefaultDesktopMenu()).Parse(r)
	if err != nil {
		return replayResult{}, err
	}

	desk := app.NewDesktop(ctx)
	defer desk.Close()

	var outcomes []outcomeView
	desk.Session.OnOutcome(func(out usecase.Outcome) {
		v := outcomeView{
			Line:    len(outcomes) + 1,
			Intent:  out.Intent,
			Applied: out.Applied,
			Reason:  out.Reason,
		}
		if out.Err != nil {
			v.Error = out.Err.Error()
		}
		outcomes = append(outcomes, v)
	})

	for _, in := range intents {
		desk.Session.Dispatch(ctx, in)
	}

	state := desk.Session.State()
	logging.FromContext(ctx).Debug().
		Int("intents", len(intents)).
		Int("windows", len(state.Windows)).
		Msg("replay finished")

	result := replayResult{State: state, Outcomes: outcomes}
	if screen.Width > 0 && screen.Height > 0 {
		desk.Presenter.SetScreen(screen)
		desk.Presenter.Sync(ctx, state)
		result.Frame = desk.Presenter.Draw(state, "--:--").Lines()
	}
	return result, nil
}

func renderReplay(theme *styles.Theme, result replayResult, verbose bool) string {
	var b strings.Builder

	if verbose {
		appliedStyle := lipgloss.NewStyle().Foreground(theme.Success)
		ignoredStyle := theme.Subtle
		for _, o := range result.Outcomes {
			if o.Applied {
				b.WriteString(fmt.Sprintf("  %3d %s %s\n", o.Line, appliedStyle.Render("applied"), o.Intent))
				continue
			}
			line := fmt.Sprintf("  %3d %s %s (%s)", o.Line, ignoredStyle.Render("ignored"), o.Intent, o.Reason)
			if o.Error != "" {
				line += ": " + o.Error
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	state := result.State
	// Topmost first.
	paint := state.PaintOrder()
	rows := make([]table.Row, 0, len(paint))
	for i := len(paint) - 1; i >= 0; i-- {
		w := paint[i]
		rows = append(rows, styles.WindowRow(w, state.IsFocused(w.ID)))
	}

	if len(rows) == 0 {
		b.WriteString(theme.Subtle.Render("  No open windows."))
		b.WriteString("\n")
	} else {
		t := styles.NewStyledTable(theme, styles.WindowsTableColumns(), rows, tableWidth, len(rows)+1)
		b.WriteString(t.View())
		b.WriteString("\n")
	}

	overlay := "none"
	if state.ActiveOverlay.IsOpen() {
		overlay = state.ActiveOverlay.Kind.String()
	}
	b.WriteString(theme.Subtle.Render(fmt.Sprintf("  theme %s · wallpaper %s · overlay %s",
		state.Theme, state.Wallpaper, overlay)))
	b.WriteString("\n")

	if len(result.Frame) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(result.Frame, "\n"))
		b.WriteString("\n")
	}

	return b.String()
}
