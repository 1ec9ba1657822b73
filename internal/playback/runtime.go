package playback

import (
	"math"

	"github.com/nhamil/slideshow/internal/timeline"
)

// Runtime owns the playback clock for one run of a timeline. It starts in a
// not-started state; an external trigger moves it to running and there is no
// stop transition after that. The caller's loop drives it by polling Tick
// once per frame with a monotonic clock value in seconds.
type Runtime struct {
	timeline *timeline.Timeline

	started       bool
	frameStart    float64
	frameTime     float64
	prevFrameTime float64
}

// Frame is the result of one scheduler tick.
type Frame struct {
	// Time is the current position within the loop.
	Time float64
	// Wrapped is set when playback just crossed the loop boundary. It also
	// fires on the first tick after Start so a consumer can kick off a
	// synchronized cue (originally a song) at the top of the first loop.
	Wrapped bool
}

// ItemState pairs an item with its opacity for one frame.
type ItemState struct {
	Item  *timeline.Item
	Alpha float64
}

// NewRuntime creates a runtime for the given timeline.
func NewRuntime(tl *timeline.Timeline) *Runtime {
	return &Runtime{
		timeline:      tl,
		prevFrameTime: math.MaxFloat64,
	}
}

// Timeline returns the timeline this runtime schedules.
func (r *Runtime) Timeline() *timeline.Timeline {
	return r.timeline
}

// Started reports whether playback has been triggered.
func (r *Runtime) Started() bool {
	return r.started
}

// Start records the clock value of the start trigger. Triggering again
// restarts the loop from the current moment.
func (r *Runtime) Start(now float64) {
	r.started = true
	r.frameStart = now
}

// FrameTime returns the loop position computed by the last Tick.
func (r *Runtime) FrameTime() float64 {
	return r.frameTime
}

// Tick advances the clock to now and returns the current frame. Before
// Start it does nothing and never reports a wrap. The wrap reduction is a
// repeated subtraction guarded against a zero-length loop, so an empty
// timeline just keeps counting up.
func (r *Runtime) Tick(now float64) Frame {
	if !r.started {
		return Frame{}
	}

	frameTime := now - r.frameStart
	if total := r.timeline.TotalDuration(); total > 0 {
		for frameTime > total {
			frameTime -= total
		}
	}

	wrapped := frameTime < r.prevFrameTime
	r.prevFrameTime = frameTime
	r.frameTime = frameTime

	return Frame{Time: frameTime, Wrapped: wrapped}
}

// Visible returns the items with nonzero opacity at the given loop time, in
// draw order. Items that report zero are dropped so the consumer never
// issues a draw for them.
func (r *Runtime) Visible(frameTime float64) []ItemState {
	var states []ItemState
	for _, it := range r.timeline.Items() {
		if a := it.AlphaAt(frameTime); a > 0 {
			states = append(states, ItemState{Item: it, Alpha: a})
		}
	}
	return states
}
