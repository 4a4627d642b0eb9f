package tui

// Key binding constants used in handleKey.
const (
	KeyCtrlC   = "ctrl+c"
	KeyQuit    = "q"
	KeyTab     = "tab"
	KeyUp      = "up"
	KeyDown    = "down"
	KeyJ       = "j"
	KeyK       = "k"
	KeyEnter   = "enter"
	KeyEsc     = "esc"
	KeyUpload  = "u"
	KeyDelete  = "d"
	KeySummary = "s"
	KeyYes     = "y"
	KeyNo      = "n"
)
