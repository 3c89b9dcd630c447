package engine

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/loov/hrtime"

	"github.com/adinfit/gene/render"
)

// State is the run state of a Loop.
type State uint8

const (
	Running State = iota
	Stopped
)

func (state State) String() string {
	switch state {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", uint8(state))
}

// Loader owns the GPU objects of the loaded model.
type Loader interface {
	Cleanup()
}

// Program is the shader program the model is drawn with.
type Program interface {
	Start()
	Stop()
	CleanUp()
}

// Renderer clears the frame and draws a model.
type Renderer interface {
	Prepare()
	Render(model render.Model) error
}

// Resources is everything a render pass needs.
type Resources struct {
	Loader   Loader
	Program  Program
	Renderer Renderer
	Model    render.Model
}

// cleanup releases the program before the loader; either may be nil when
// setup failed part way.
func (res *Resources) cleanup() {
	if res.Program != nil {
		res.Program.CleanUp()
	}
	if res.Loader != nil {
		res.Loader.Cleanup()
	}
}

// Setup loads the model and builds the program once the window, and with
// it the graphics context, exists. On failure it may return the part of
// the resources it already acquired so they get released.
type Setup func(window Window) (*Resources, error)

// Options configures a Loop.
type Options struct {
	Width, Height int
	Title         string
	Fullscreen    bool

	// TickInterval is the fixed simulation step; defaults to 1/60s.
	TickInterval time.Duration
	// ReportInterval is how often ups/fps are logged; defaults to 1s.
	ReportInterval time.Duration

	// Now returns monotonic time; defaults to hrtime.Now.
	Now func() time.Duration
	// OnUpdate is called once per fixed update with the polled input.
	OnUpdate func(PollResult)

	Logger *log.Logger
}

// DefaultTickInterval is 60 updates per second.
const DefaultTickInterval = time.Second / 60

// Loop runs fixed-rate updates and one render pass per iteration until
// the window asks to close.
type Loop struct {
	platform Platform
	setup    Setup
	options  Options

	state State
	ran   bool
	clock *FrameClock
	last  Stats
}

// New returns a loop in the Running state.
func New(platform Platform, setup Setup, options Options) *Loop {
	if options.TickInterval <= 0 {
		options.TickInterval = DefaultTickInterval
	}
	if options.ReportInterval <= 0 {
		options.ReportInterval = time.Second
	}
	if options.Now == nil {
		options.Now = hrtime.Now
	}
	if options.Logger == nil {
		options.Logger = log.Default()
	}
	return &Loop{
		platform: platform,
		setup:    setup,
		options:  options,
	}
}

// ErrAlreadyRun is returned when Run is called a second time.
var ErrAlreadyRun = errors.New("loop already ran")

// State returns the current run state.
func (loop *Loop) State() State { return loop.state }

// LastStats returns the most recent diagnostics report.
func (loop *Loop) LastStats() Stats { return loop.last }

// Stop requests the loop to finish. Calling it again has no effect.
func (loop *Loop) Stop() {
	if loop.state == Stopped {
		return
	}
	loop.state = Stopped
}

// Run creates the window, sets up resources, loops until stopped and then
// releases the program, the loader and the window in that order.
//
// A loop stopped before Run returns immediately.
func (loop *Loop) Run() (err error) {
	if loop.ran {
		return ErrAlreadyRun
	}
	loop.ran = true
	if loop.state == Stopped {
		return nil
	}

	opts := &loop.options
	window, err := loop.platform.CreateWindow(opts.Width, opts.Height, opts.Title, opts.Fullscreen)
	if err != nil {
		loop.Stop()
		loop.platform.Terminate()
		var surfaceErr *SurfaceError
		if errors.As(err, &surfaceErr) {
			return err
		}
		return &SurfaceError{Err: err}
	}
	defer func() {
		window.Destroy()
		loop.platform.Terminate()
	}()

	res, err := loop.setup(window)
	if err != nil {
		loop.Stop()
		if res != nil {
			res.cleanup()
		}
		return fmt.Errorf("setup failed: %w", err)
	}
	defer res.cleanup()

	loop.clock = NewFrameClock(opts.Now(), opts.TickInterval, opts.ReportInterval)
	for loop.state == Running {
		if err := loop.iterate(window, res); err != nil {
			loop.Stop()
			return err
		}
	}
	return nil
}

func (loop *Loop) iterate(window Window, res *Resources) error {
	now := loop.options.Now()

	for loop.clock.Due(now) {
		start := hrtime.Now()
		loop.update(window)
		loop.clock.Advance(hrtime.Since(start))

		if loop.state == Stopped {
			return nil
		}
	}

	start := hrtime.Now()
	if err := loop.render(window, res); err != nil {
		return err
	}
	loop.clock.Frame(hrtime.Since(start))

	if stats, ok := loop.clock.Report(now); ok {
		loop.last = stats
		loop.options.Logger.Printf("ups: %d, fps: %d (update %v, render %v)",
			stats.Updates, stats.Frames, stats.MeanUpdate(), stats.MeanRender())
	}
	return nil
}

func (loop *Loop) update(window Window) {
	poll := window.Poll()
	if poll.CloseRequested {
		loop.Stop()
	}
	if loop.options.OnUpdate != nil {
		loop.options.OnUpdate(poll)
	}
}

func (loop *Loop) render(window Window, res *Resources) error {
	res.Renderer.Prepare()
	res.Program.Start()
	err := res.Renderer.Render(res.Model)
	res.Program.Stop()
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	window.SwapBuffers()
	return nil
}
