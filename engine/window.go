package engine

import "fmt"

// Platform creates the window and owns the windowing library lifetime.
type Platform interface {
	CreateWindow(width, height int, title string, fullscreen bool) (Window, error)
	Terminate()
}

// Window is a surface with a current graphics context.
type Window interface {
	// Poll dispatches pending events and returns what happened since the
	// previous poll. It never blocks.
	Poll() PollResult
	SwapBuffers()
	FramebufferSize() (width, height int)
	Destroy()
}

// PollResult is a snapshot of window input consumed by one fixed update.
type PollResult struct {
	CloseRequested bool
	Keys           []KeyEvent
}

// KeyAction is what happened to a key.
type KeyAction uint8

const (
	Release KeyAction = iota
	Press
	Repeat
)

func (action KeyAction) String() string {
	switch action {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return fmt.Sprintf("KeyAction(%d)", uint8(action))
}

// KeyEvent is a single key transition.
type KeyEvent struct {
	Key      int
	Scancode int
	Action   KeyAction
}

// SurfaceError is returned when the window or its context cannot be created.
type SurfaceError struct {
	Err error
}

func (err *SurfaceError) Error() string { return fmt.Sprintf("failed to create window: %v", err.Err) }
func (err *SurfaceError) Unwrap() error { return err.Err }
