package app

// FPSCounter averages frame rate over one-second windows.
type FPSCounter struct {
	frames  int
	elapsed float32
	fps     float32
}

// Tick records a frame of dt seconds. It reports true when a window
// completed and FPS changed.
func (c *FPSCounter) Tick(dt float32) bool {
	if dt <= 0 {
		return false
	}
	c.frames++
	c.elapsed += dt
	if c.elapsed < 1 {
		return false
	}
	c.fps = float32(c.frames) / c.elapsed
	c.frames = 0
	c.elapsed = 0
	return true
}

// FPS returns the rate of the last completed window, or 0 before the first.
func (c *FPSCounter) FPS() float32 {
	return c.fps
}
