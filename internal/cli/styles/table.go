package styles

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbdesk/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// AppsTableColumns returns columns for the application catalog.
func AppsTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 14},
		{Title: "Title", Width: 16},
		{Title: "Category", Width: 13},
		{Title: "Size", Width: 9},
		{Title: "Min", Width: 9},
		{Title: "Resizable", Width: 9},
	}
}

// AppRow converts a descriptor to a table row.
func AppRow(d entity.ApplicationDescriptor) table.Row {
	minSize := "-"
	if d.MinSize != nil {
		minSize = formatSize(*d.MinSize)
	}
	resizable := "no"
	if d.Resizable {
		resizable = "yes"
	}
	return table.Row{string(d.ID), d.Title, string(d.Category), formatSize(d.DefaultSize), minSize, resizable}
}

// WindowsTableColumns returns columns for a session's windows.
func WindowsTableColumns() []table.Column {
	return []table.Column{
		{Title: "Z", Width: 4},
		{Title: "Window", Width: 14},
		{Title: "Position", Width: 10},
		{Title: "Size", Width: 9},
		{Title: "State", Width: 20},
	}
}

// WindowRow converts a window to a table row.
func WindowRow(w entity.Window, focused bool) table.Row {
	var flags string
	add := func(s string) {
		if flags != "" {
			flags += ","
		}
		flags += s
	}
	if focused {
		add("focused")
	}
	if w.Minimized {
		add("minimized")
	}
	if w.Maximized {
		add("maximized")
	}
	if flags == "" {
		flags = "-"
	}
	return table.Row{
		strconv.Itoa(w.ZOrder),
		string(w.ID),
		fmt.Sprintf("%d,%d", w.Position.X, w.Position.Y),
		formatSize(w.Size),
		flags,
	}
}

func formatSize(s entity.Size) string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
