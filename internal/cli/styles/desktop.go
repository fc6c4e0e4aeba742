package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbdesk/internal/ui/window"
)

var _ window.Styler = (*Theme)(nil)

// Style returns the style for a desktop cell role.
func (t *Theme) Style(role window.Role) lipgloss.Style {
	if s, ok := t.roles[role]; ok {
		return s
	}
	return t.Normal
}

func (t *Theme) buildRoleStyles() {
	base := lipgloss.NewStyle()
	content := base.Foreground(t.Text).Background(t.Background)

	t.roles = map[window.Role]lipgloss.Style{
		window.RoleDesktop:               base.Foreground(t.Muted).Background(t.Desktop),
		window.RoleFrame:                 base.Foreground(t.Border).Background(t.Background),
		window.RoleFrameFocused:          base.Foreground(t.Accent).Background(t.Background),
		window.RoleTitle:                 base.Foreground(t.Muted).Background(t.Background),
		window.RoleTitleFocused:          base.Foreground(t.Text).Background(t.Background).Bold(true),
		window.RoleButton:                base.Foreground(t.Text).Background(t.SurfaceVariant),
		window.RoleContent:               content,
		window.RoleTaskbar:               base.Foreground(t.Text).Background(t.Surface),
		window.RoleStartButton:           base.Foreground(t.Accent).Background(t.Surface).Bold(true),
		window.RoleStartButtonActive:     base.Foreground(t.Background).Background(t.Accent).Bold(true),
		window.RoleTaskbarEntry:          base.Foreground(t.Text).Background(t.SurfaceVariant),
		window.RoleTaskbarEntryFocused:   base.Foreground(t.Background).Background(t.Accent),
		window.RoleTaskbarEntryMinimized: base.Foreground(t.Muted).Background(t.Surface).Italic(true),
		window.RoleClock:                 base.Foreground(t.Muted).Background(t.Surface),
		window.RoleOverlay:               base.Foreground(t.Accent).Background(t.Surface),
		window.RoleOverlayItem:           base.Foreground(t.Text).Background(t.Surface),
	}
}
