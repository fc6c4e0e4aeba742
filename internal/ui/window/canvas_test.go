package window

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

type plainStyler struct{}

func (plainStyler) Style(Role) lipgloss.Style { return lipgloss.NewStyle() }

func TestCanvas_ClipsWrites(t *testing.T) {
	c := NewCanvas(entity.Size{Width: 4, Height: 2})

	c.Set(-1, 0, 'x', RoleFrame)
	c.Set(4, 1, 'x', RoleFrame)
	c.Fill(entity.Rect{X: 2, Y: 1, W: 10, H: 10}, '#', RoleFrame)

	assert.Equal(t, []string{"    ", "  ##"}, c.Lines())
	assert.Equal(t, Cell{Rune: ' '}, c.At(9, 9))
}

func TestCanvas_Text(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		want     string
		cols     int
	}{
		{name: "fits", text: "abc", maxWidth: 5, want: "abc   ", cols: 3},
		{name: "truncated", text: "abcdefgh", maxWidth: 4, want: "abcd  ", cols: 4},
		{name: "wide runes replaced", text: "a界b", maxWidth: 6, want: "a?b   ", cols: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(entity.Size{Width: 6, Height: 1})
			cols := c.Text(0, 0, tt.text, RoleContent, tt.maxWidth)
			assert.Equal(t, tt.cols, cols)
			assert.Equal(t, tt.want, c.Lines()[0])
		})
	}
}

func TestCanvas_Box(t *testing.T) {
	c := NewCanvas(entity.Size{Width: 5, Height: 3})
	c.Fill(entity.Rect{W: 5, H: 3}, '.', RoleDesktop)

	c.Box(entity.Rect{W: 4, H: 3}, thinBorder, RoleFrame, RoleContent)

	assert.Equal(t, []string{"┌──┐.", "│  │.", "└──┘."}, c.Lines())
	assert.Equal(t, RoleContent, c.At(1, 1).Role)
	assert.Equal(t, RoleFrame, c.At(0, 0).Role)
}

func TestCanvas_LaterDrawsCoverEarlier(t *testing.T) {
	c := NewCanvas(entity.Size{Width: 6, Height: 3})
	c.Box(entity.Rect{W: 4, H: 3}, thinBorder, RoleFrame, RoleContent)
	c.Box(entity.Rect{X: 2, W: 4, H: 3}, doubleBorder, RoleFrameFocused, RoleContent)

	assert.Equal(t, "┌─╔══╗", c.Lines()[0])
}

func TestCanvas_RenderKeepsText(t *testing.T) {
	c := NewCanvas(entity.Size{Width: 3, Height: 2})
	c.Text(0, 0, "ab", RoleTitle, 3)

	assert.Equal(t, "ab \n   ", c.Render(plainStyler{}))
}
