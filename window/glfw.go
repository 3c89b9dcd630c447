// Package window implements the engine platform on GLFW.
package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/adinfit/gene/engine"
)

// Platform owns the GLFW library. Create it on the main thread.
type Platform struct{}

var _ engine.Platform = (*Platform)(nil)

// Init initializes GLFW.
func Init() (*Platform, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}
	return &Platform{}, nil
}

// CreateWindow opens a window with a current OpenGL 4.1 core context.
// Windowed mode centers it on the primary monitor.
func (platform *Platform) CreateWindow(width, height int, title string, fullscreen bool) (engine.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	w, err := glfw.CreateWindow(width, height, title, monitor, nil)
	if err != nil {
		return nil, &engine.SurfaceError{Err: err}
	}

	if !fullscreen {
		if primary := glfw.GetPrimaryMonitor(); primary != nil {
			if mode := primary.GetVideoMode(); mode != nil {
				w.SetPos((mode.Width-width)/2, (mode.Height-height)/2)
			}
		}
	}

	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	window := &Window{window: w}
	w.SetKeyCallback(window.onKey)
	w.Show()

	return window, nil
}

// Terminate releases GLFW; every window must be destroyed first.
func (platform *Platform) Terminate() { glfw.Terminate() }

// Window is a GLFW window whose key events are buffered between polls.
type Window struct {
	window  *glfw.Window
	pending []engine.KeyEvent
}

var _ engine.Window = (*Window)(nil)

func (window *Window) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Release {
		w.SetShouldClose(true)
	}

	event := engine.KeyEvent{Key: int(key), Scancode: scancode}
	switch action {
	case glfw.Press:
		event.Action = engine.Press
	case glfw.Repeat:
		event.Action = engine.Repeat
	default:
		event.Action = engine.Release
	}
	window.pending = append(window.pending, event)
}

// Poll dispatches pending events and returns them with the close flag.
func (window *Window) Poll() engine.PollResult {
	glfw.PollEvents()

	result := engine.PollResult{
		CloseRequested: window.window.ShouldClose(),
		Keys:           window.pending,
	}
	window.pending = nil
	return result
}

func (window *Window) SwapBuffers() { window.window.SwapBuffers() }

func (window *Window) FramebufferSize() (int, int) { return window.window.GetFramebufferSize() }

func (window *Window) SetTitle(title string) { window.window.SetTitle(title) }

func (window *Window) Destroy() { window.window.Destroy() }
