// Package script reads intent scripts: one intent per line, replayed in
// order against a fresh session.
//
//	# comments and blank lines are ignored
//	open browser https://example.org
//	move browser 10 4
//	resize browser 60 20
//	focus | close | minimize | maximize <window>
//	menu 12 8
//	start
//	notifications
//	dismiss
//	theme light
//	wallpaper waves
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Parser turns script lines into intents.
type Parser struct {
	// MenuItems are attached to context menus opened with "menu".
	MenuItems []entity.MenuItem
}

// NewParser creates a parser whose context menus carry items.
func NewParser(items []entity.MenuItem) *Parser {
	return &Parser{MenuItems: items}
}

// Parse reads every intent from r. Parsing stops at the first bad line.
func (p *Parser) Parse(r io.Reader) ([]entity.Intent, error) {
	var intents []entity.Intent

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		intent, err := p.ParseLine(text)
		if err != nil {
			return nil, &ParseError{Line: n, Text: text, Msg: err.Error()}
		}
		intents = append(intents, intent)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return intents, nil
}

// ParseLine parses a single non-empty line.
func (p *Parser) ParseLine(line string) (entity.Intent, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "open":
		if len(args) == 0 {
			return nil, fmt.Errorf("open needs an application id")
		}
		return entity.Open{AppID: entity.AppID(args[0]), Seed: strings.Join(args[1:], " ")}, nil

	case "close", "focus", "minimize", "maximize":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s needs exactly one window id", cmd)
		}
		return windowIntent(cmd, entity.WindowID(args[0])), nil

	case "move":
		id, x, y, err := idAndPair(cmd, args)
		if err != nil {
			return nil, err
		}
		return entity.Reposition{WindowID: id, Position: entity.Point{X: x, Y: y}}, nil

	case "resize":
		id, w, h, err := idAndPair(cmd, args)
		if err != nil {
			return nil, err
		}
		return entity.Resize{WindowID: id, Size: entity.Size{Width: w, Height: h}}, nil

	case "menu":
		if len(args) != 2 {
			return nil, fmt.Errorf("menu needs x and y")
		}
		x, y, err := pair(args[0], args[1])
		if err != nil {
			return nil, err
		}
		items := append([]entity.MenuItem(nil), p.MenuItems...)
		return entity.OpenOverlay{Overlay: entity.NewContextMenu(entity.Point{X: x, Y: y}, items)}, nil

	case "start":
		return entity.OpenOverlay{Overlay: entity.NewStartPanel()}, nil

	case "notifications":
		return entity.OpenOverlay{Overlay: entity.NewNotificationPanel()}, nil

	case "dismiss":
		return entity.CloseOverlay{}, nil

	case "theme":
		if len(args) != 1 {
			return nil, fmt.Errorf("theme needs light or dark")
		}
		// Unknown themes are passed through; the reducer rejects them.
		return entity.SetTheme{Theme: entity.Theme(strings.ToLower(args[0]))}, nil

	case "wallpaper":
		if len(args) != 1 {
			return nil, fmt.Errorf("wallpaper needs a name")
		}
		return entity.SetWallpaper{Ref: args[0]}, nil
	}

	return nil, fmt.Errorf("unknown command %q", cmd)
}

func windowIntent(cmd string, id entity.WindowID) entity.Intent {
	switch cmd {
	case "close":
		return entity.Close{WindowID: id}
	case "focus":
		return entity.Focus{WindowID: id}
	case "minimize":
		return entity.Minimize{WindowID: id}
	default:
		return entity.Maximize{WindowID: id}
	}
}

func idAndPair(cmd string, args []string) (entity.WindowID, int, int, error) {
	if len(args) != 3 {
		return "", 0, 0, fmt.Errorf("%s needs a window id and two numbers", cmd)
	}
	a, b, err := pair(args[1], args[2])
	if err != nil {
		return "", 0, 0, err
	}
	return entity.WindowID(args[0]), a, b, nil
}

func pair(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", a)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", b)
	}
	return x, y, nil
}
