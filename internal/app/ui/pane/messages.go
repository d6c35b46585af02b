package pane

// ID identifies a pane within the host
type ID int

// ContentChangedMsg tells the UI goroutine that the log changed since the pane last looked
type ContentChangedMsg struct {
	ID ID
}

// RedrawTimerMsg delivers a deferred redraw of a pane to the UI goroutine
type RedrawTimerMsg struct {
	ID ID
}
