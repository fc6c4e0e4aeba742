package entity

// AppID uniquely identifies an installable application.
type AppID string

// Category groups applications in the start panel.
type Category string

const (
	CategorySystem       Category = "system"
	CategoryProductivity Category = "productivity"
	CategoryInternet     Category = "internet"
	CategoryGames        Category = "games"
	CategoryUtilities    Category = "utilities"
)

// ApplicationDescriptor is the immutable catalog entry for an application.
// Descriptors are built once at startup and never mutated.
type ApplicationDescriptor struct {
	ID          AppID    `json:"id"`
	Title       string   `json:"title"`
	IconRef     string   `json:"icon_ref"`
	DefaultSize Size     `json:"default_size"`
	MinSize     *Size    `json:"min_size,omitempty"` // nil when the app has no minimum
	Resizable   bool     `json:"resizable"`
	Category    Category `json:"category"`
}

// ClampSize bounds s below by the descriptor's minimum size.
// Without a minimum, each dimension is kept at least 1.
func (d ApplicationDescriptor) ClampSize(s Size) Size {
	minW, minH := 1, 1
	if d.MinSize != nil {
		minW = max(d.MinSize.Width, 1)
		minH = max(d.MinSize.Height, 1)
	}
	return Size{
		Width:  max(s.Width, minW),
		Height: max(s.Height, minH),
	}
}
