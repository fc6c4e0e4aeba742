package window

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// Role tags a cell with what it belongs to so a theme can style it.
type Role int

const (
	RoleDesktop Role = iota
	RoleFrame
	RoleFrameFocused
	RoleTitle
	RoleTitleFocused
	RoleButton
	RoleContent
	RoleTaskbar
	RoleStartButton
	RoleStartButtonActive
	RoleTaskbarEntry
	RoleTaskbarEntryFocused
	RoleTaskbarEntryMinimized
	RoleClock
	RoleOverlay
	RoleOverlayItem
)

// Styler maps roles to lipgloss styles.
type Styler interface {
	Style(role Role) lipgloss.Style
}

// Cell is one terminal cell.
type Cell struct {
	Rune rune
	Role Role
}

// Canvas is a fixed-size grid of cells. Later draws cover earlier ones,
// which is how paint order becomes stacking order.
type Canvas struct {
	w, h  int
	cells []Cell
}

// NewCanvas creates a blank canvas.
func NewCanvas(size entity.Size) *Canvas {
	w, h := max(size.Width, 0), max(size.Height, 0)
	c := &Canvas{w: w, h: h, cells: make([]Cell, w*h)}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', Role: RoleDesktop}
	}
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() entity.Size {
	return entity.Size{Width: c.w, Height: c.h}
}

// At returns the cell at (x, y). Out-of-range reads yield a blank cell.
func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return Cell{Rune: ' '}
	}
	return c.cells[y*c.w+x]
}

// Set writes one cell, clipping to the canvas.
func (c *Canvas) Set(x, y int, r rune, role Role) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = Cell{Rune: r, Role: role}
}

// Fill paints every cell of rect.
func (c *Canvas) Fill(rect entity.Rect, r rune, role Role) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			c.Set(x, y, r, role)
		}
	}
}

// Text writes s starting at (x, y), using at most maxWidth columns.
// Runes that are not a single column wide are shown as '?'.
// Returns the number of columns written.
func (c *Canvas) Text(x, y int, s string, role Role, maxWidth int) int {
	col := 0
	for _, r := range s {
		if col >= maxWidth {
			break
		}
		switch runewidth.RuneWidth(r) {
		case 0:
			continue
		case 1:
		default:
			r = '?'
		}
		c.Set(x+col, y, r, role)
		col++
	}
	return col
}

// BoxBorder is the set of runes used to frame a rectangle.
type BoxBorder struct {
	Horizontal, Vertical                       rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
}

var (
	thinBorder   = BoxBorder{'─', '│', '┌', '┐', '└', '┘'}
	doubleBorder = BoxBorder{'═', '║', '╔', '╗', '╚', '╝'}
	roundBorder  = BoxBorder{'─', '│', '╭', '╮', '╰', '╯'}
)

// Box draws a border around rect and fills its inside with blanks.
func (c *Canvas) Box(rect entity.Rect, b BoxBorder, border, inside Role) {
	if rect.W < 2 || rect.H < 2 {
		c.Fill(rect, ' ', inside)
		return
	}
	c.Fill(entity.Rect{X: rect.X + 1, Y: rect.Y + 1, W: rect.W - 2, H: rect.H - 2}, ' ', inside)

	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1
	for x := rect.X + 1; x < right; x++ {
		c.Set(x, rect.Y, b.Horizontal, border)
		c.Set(x, bottom, b.Horizontal, border)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		c.Set(rect.X, y, b.Vertical, border)
		c.Set(right, y, b.Vertical, border)
	}
	c.Set(rect.X, rect.Y, b.TopLeft, border)
	c.Set(right, rect.Y, b.TopRight, border)
	c.Set(rect.X, bottom, b.BottomLeft, border)
	c.Set(right, bottom, b.BottomRight, border)
}

// Lines returns the canvas as plain text rows.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.h)
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		sb.Reset()
		for x := 0; x < c.w; x++ {
			sb.WriteRune(c.cells[y*c.w+x].Rune)
		}
		lines[y] = sb.String()
	}
	return lines
}

// Render styles runs of same-role cells and joins rows with newlines.
func (c *Canvas) Render(st Styler) string {
	var out strings.Builder
	var run strings.Builder

	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		x := 0
		for x < c.w {
			role := c.cells[y*c.w+x].Role
			run.Reset()
			for x < c.w && c.cells[y*c.w+x].Role == role {
				run.WriteRune(c.cells[y*c.w+x].Rune)
				x++
			}
			out.WriteString(st.Style(role).Render(run.String()))
		}
	}
	return out.String()
}
