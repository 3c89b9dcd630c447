package engine

import "time"

// FrameClock splits wall-clock time into fixed update ticks and counts
// updates and frames between diagnostic reports.
type FrameClock struct {
	previous time.Duration
	tick     time.Duration

	updates int
	frames  int

	lastReport time.Duration
	interval   time.Duration

	updateTime time.Duration
	renderTime time.Duration
}

// Stats is one diagnostics report.
type Stats struct {
	Updates int
	Frames  int

	UpdateTime time.Duration
	RenderTime time.Duration
}

// MeanUpdate returns the average duration of one fixed update.
func (stats Stats) MeanUpdate() time.Duration {
	if stats.Updates == 0 {
		return 0
	}
	return stats.UpdateTime / time.Duration(stats.Updates)
}

// MeanRender returns the average duration of one render pass.
func (stats Stats) MeanRender() time.Duration {
	if stats.Frames == 0 {
		return 0
	}
	return stats.RenderTime / time.Duration(stats.Frames)
}

// NewFrameClock returns a clock whose reference time is now.
func NewFrameClock(now, tick, reportInterval time.Duration) *FrameClock {
	if tick <= 0 {
		panic("engine: tick interval must be positive")
	}
	return &FrameClock{
		previous:   now,
		tick:       tick,
		lastReport: now,
		interval:   reportInterval,
	}
}

// Tick returns the fixed update interval.
func (clock *FrameClock) Tick() time.Duration { return clock.tick }

// Due reports whether at least one whole tick has elapsed by now.
func (clock *FrameClock) Due(now time.Duration) bool {
	return now-clock.previous >= clock.tick
}

// Advance moves the reference time forward by one tick after an update
// that took the given duration.
func (clock *FrameClock) Advance(took time.Duration) {
	clock.previous += clock.tick
	clock.updates++
	clock.updateTime += took
}

// Frame counts one render pass that took the given duration.
func (clock *FrameClock) Frame(took time.Duration) {
	clock.frames++
	clock.renderTime += took
}

// Report returns the counters and resets them once a report interval has
// passed since the previous report.
func (clock *FrameClock) Report(now time.Duration) (Stats, bool) {
	if clock.interval <= 0 || now-clock.lastReport < clock.interval {
		return Stats{}, false
	}

	stats := Stats{
		Updates:    clock.updates,
		Frames:     clock.frames,
		UpdateTime: clock.updateTime,
		RenderTime: clock.renderTime,
	}
	clock.updates, clock.frames = 0, 0
	clock.updateTime, clock.renderTime = 0, 0
	clock.lastReport += clock.interval
	return stats, true
}
