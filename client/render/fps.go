package render

import "time"

// FPSCounter counts frames and reports the count once per elapsed second.
type FPSCounter struct {
	now    func() time.Time
	start  time.Time
	frames int
}

// NewFPSCounter starts counting at now(). A nil now uses time.Now.
func NewFPSCounter(now func() time.Time) *FPSCounter {
	if now == nil {
		now = time.Now
	}
	return &FPSCounter{
		now:   now,
		start: now(),
	}
}

// Frame records one drawn frame. Once a second has passed since the last
// report it returns the frames drawn in that interval and restarts the count.
func (c *FPSCounter) Frame() (int, bool) {
	c.frames++
	now := c.now()
	if now.Sub(c.start) < time.Second {
		return 0, false
	}
	fps := c.frames
	c.frames = 0
	c.start = now
	return fps, true
}
