//go:generate mockgen -source=viewer.go -destination=viewer_mock.go -package=console
package console

// Viewer is notified whenever the log content changes.
// Notify is called from producer goroutines after the log lock is released,
// so implementations must not block and must not touch UI state directly.
type Viewer interface {
	Notify()
}

// ViewerFunc adapts a plain function to the Viewer interface
type ViewerFunc func()

// Notify calls f
func (f ViewerFunc) Notify() {
	f()
}

// ViewerID identifies a registration in the log
type ViewerID int
