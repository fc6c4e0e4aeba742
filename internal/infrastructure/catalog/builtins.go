package catalog

import (
	"github.com/bnema/dumbdesk/internal/application/port"
	"github.com/bnema/dumbdesk/internal/domain/entity"
)

type builtin struct {
	desc    entity.ApplicationDescriptor
	factory port.ContentFactory
}

func size(w, h int) entity.Size { return entity.Size{Width: w, Height: h} }

func minSize(w, h int) *entity.Size {
	s := size(w, h)
	return &s
}

func builtins() []builtin {
	return []builtin{
		{
			desc: entity.ApplicationDescriptor{
				ID: "calc", Title: "Calculator", IconRef: "icons/calc",
				DefaultSize: size(24, 11), Category: entity.CategoryUtilities,
			},
			factory: func() port.ContentUnit { return &calculator{} },
		},
		{
			desc: entity.ApplicationDescriptor{
				ID: "notes", Title: "Notes", IconRef: "icons/notes",
				DefaultSize: size(36, 12), MinSize: minSize(16, 5), Resizable: true,
				Category: entity.CategoryProductivity,
			},
			factory: func() port.ContentUnit { return &notes{} },
		},
		{
			desc: entity.ApplicationDescriptor{
				ID: "browser", Title: "Browser", IconRef: "icons/browser",
				DefaultSize: size(50, 16), MinSize: minSize(24, 6), Resizable: true,
				Category: entity.CategoryInternet,
			},
			factory: func() port.ContentUnit { return &browser{} },
		},
		{
			desc: entity.ApplicationDescriptor{
				ID: "explorer", Title: "Files", IconRef: "icons/folder",
				DefaultSize: size(40, 14), MinSize: minSize(20, 6), Resizable: true,
				Category: entity.CategorySystem,
			},
			factory: func() port.ContentUnit { return newExplorer() },
		},
		{
			desc: entity.ApplicationDescriptor{
				ID: "terminal", Title: "Terminal", IconRef: "icons/terminal",
				DefaultSize: size(48, 14), MinSize: minSize(20, 4), Resizable: true,
				Category: entity.CategorySystem,
			},
			factory: func() port.ContentUnit { return &terminal{} },
		},
		{
			desc: entity.ApplicationDescriptor{
				ID: "minesweeper", Title: "Minesweeper", IconRef: "icons/mine",
				DefaultSize: size(20, 10), Category: entity.CategoryGames,
			},
			factory: func() port.ContentUnit { return &minesweeper{} },
		},
		{
			desc: entity.ApplicationDescriptor{
				ID: "about", Title: "About", IconRef: "icons/info",
				DefaultSize: size(34, 8), Category: entity.CategorySystem,
			},
			factory: func() port.ContentUnit { return newPlaceholder("dumbdesk, a desktop in your terminal") },
		},
	}
}
