package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher
	IconInfo      = "\uf05a" // info
	IconConfig    = "\ue615" // config
	IconDesktop   = "\uf108" // desktop
	IconWarning   = "\uf071" // warning
)
