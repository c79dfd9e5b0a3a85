package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconWarning  = "\uf071" // warning
	IconInfo     = "\uf05a" // info
	IconArrow    = "\uf061" // arrow right
	IconCursor   = "\uf054" // chevron-right
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconTrash    = "\uf1f8" // trash
	IconClock    = "\uf017" // clock
	IconVersion  = "\uf02b" // tag

	// Scene tree
	IconDashboard = "\uf0e4" // dashboard
	IconRow       = "\uf0c9" // bars
	IconPanel     = "\uf080" // bar chart
	IconRepeat    = "\uf01e" // repeat
	IconLibrary   = "\uf02d" // book
	IconVariable  = "\uf1ec" // calculator
	IconCollapse  = "\uf066" // compress
	IconCamera    = "\uf030" // snapshot
	IconEye       = "\uf06e" // watch
)
