package core

// DefaultThrottle is the number of rendered frames per generation.
const DefaultThrottle = 10

// Throttle decides, once per rendered frame, whether the simulation should
// advance. It counts frames rather than wall time, so the generation rate is a
// fixed fraction of the host's frame rate.
type Throttle struct {
	n       int
	counter int
}

// NewThrottle constructs a Throttle that fires once every n frames.
func NewThrottle(n int) *Throttle {
	t := &Throttle{}
	t.SetRatio(n)
	return t
}

// SetRatio changes the frames-per-generation ratio and restarts the count.
func (t *Throttle) SetRatio(n int) {
	if n <= 0 {
		n = 1
	}
	t.n = n
	t.counter = 0
}

// Ratio returns the frames-per-generation ratio.
func (t *Throttle) Ratio() int { return t.n }

// Counter returns the current frame counter in [0, Ratio()).
func (t *Throttle) Counter() int { return t.counter }

// Tick reports whether a generation should run this frame. The counter only
// moves while running, so pausing holds the cadence where it was.
func (t *Throttle) Tick(mode Mode) bool {
	if mode != ModeRun {
		return false
	}
	fire := t.counter == 0
	t.counter = (t.counter + 1) % t.n
	return fire
}
