package styles

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dumbdesk/internal/domain/entity"
	"github.com/bnema/dumbdesk/internal/ui/window"
)

func TestNewTheme_PicksPalette(t *testing.T) {
	dark := NewTheme(entity.ThemeDark)
	light := NewTheme(entity.ThemeLight)

	assert.NotEqual(t, dark.Background, light.Background)
	assert.Equal(t, dark.Desktop, NewTheme("unknown").Desktop)
}

func TestTheme_StyleCoversEveryRole(t *testing.T) {
	theme := NewTheme(entity.ThemeDark)

	for role := window.RoleDesktop; role <= window.RoleOverlayItem; role++ {
		_, ok := theme.roles[role]
		assert.True(t, ok, "role %d has no style", role)
	}
	assert.Equal(t, theme.Accent, theme.Style(window.RoleFrameFocused).GetForeground())
}

func TestAppRow(t *testing.T) {
	minSize := entity.Size{Width: 10, Height: 4}
	row := AppRow(entity.ApplicationDescriptor{
		ID: "notes", Title: "Notes", Category: entity.CategoryProductivity,
		DefaultSize: entity.Size{Width: 36, Height: 12}, MinSize: &minSize, Resizable: true,
	})

	assert.Equal(t, table.Row{"notes", "Notes", "productivity", "36x12", "10x4", "yes"}, row)
	assert.Len(t, row, len(AppsTableColumns()))
}

func TestWindowRow(t *testing.T) {
	tests := []struct {
		name    string
		w       entity.Window
		focused bool
		want    string
	}{
		{name: "plain", w: entity.Window{ID: "a"}, want: "-"},
		{name: "focused maximized", w: entity.Window{ID: "a", Maximized: true}, focused: true, want: "focused,maximized"},
		{name: "minimized", w: entity.Window{ID: "a", Minimized: true}, want: "minimized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := WindowRow(tt.w, tt.focused)
			assert.Equal(t, tt.want, row[4])
		})
	}
}
