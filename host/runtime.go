package host

import (
	"errors"
	"fmt"
	"time"

	"wirecube/hal"
)

// ErrNoFramebuffer is returned when the HAL has no usable display.
var ErrNoFramebuffer = errors.New("host: no framebuffer")

// Runtime implements API on top of a HAL.
type Runtime struct {
	log   hal.Logger
	clock hal.Clock
	fb    hal.Framebuffer
	c     canvas

	handler EventHandler
	update  UpdateFunc
	booted  bool

	refreshHz float32
	interval  time.Duration
	lastFrame time.Duration
	framed    bool

	frames      uint64
	fps         fpsMeter
	logFPSEvery uint64
}

var _ API = (*Runtime)(nil)

// NewRuntime binds a runtime to the HAL's framebuffer and clock.
func NewRuntime(h hal.HAL) (*Runtime, error) {
	if h == nil || h.Display() == nil || h.Clock() == nil {
		return nil, ErrNoFramebuffer
	}
	fb := h.Display().Framebuffer()
	if fb == nil || fb.Width() <= 0 || fb.Height() <= 0 {
		return nil, ErrNoFramebuffer
	}
	switch fb.Format() {
	case hal.PixelFormatMono1, hal.PixelFormatRGB565:
	default:
		return nil, fmt.Errorf("host: unsupported pixel format %v", fb.Format())
	}
	return &Runtime{
		log:   h.Logger(),
		clock: h.Clock(),
		fb:    fb,
		c:     canvas{fb: fb},
	}, nil
}

// LogFPSEvery makes the runtime log the frame rate every n frames (0 disables).
func (r *Runtime) LogFPSEvery(n uint64) { r.logFPSEvery = n }

// Boot delivers EventInit to handler. It may be called once.
func (r *Runtime) Boot(handler EventHandler) error {
	if r.booted {
		return errors.New("host: already booted")
	}
	if handler == nil {
		return errors.New("host: nil event handler")
	}
	r.handler = handler
	r.booted = true
	logf(r.log, "init %dx%d %v", r.fb.Width(), r.fb.Height(), r.fb.Format())
	if err := handler(r, EventInit, 0); err != nil {
		return fmt.Errorf("host: init: %w", err)
	}
	return nil
}

// Shutdown delivers EventTerminate and drops the update callback.
func (r *Runtime) Shutdown() error {
	if !r.booted {
		return nil
	}
	r.booted = false
	r.update = nil
	logf(r.log, "terminate after %d frames", r.frames)
	if err := r.handler(r, EventTerminate, 0); err != nil {
		return fmt.Errorf("host: terminate: %w", err)
	}
	return nil
}

// Step runs the update callback if a frame is due and presents the result.
func (r *Runtime) Step() error {
	if r.update == nil {
		return nil
	}
	now := r.clock.Elapsed()
	if !r.due(now) {
		return nil
	}

	r.fps.mark(now)
	r.frames++
	redraw := r.update(r)
	if r.logFPSEvery > 0 && r.frames%r.logFPSEvery == 0 {
		logf(r.log, "frame %d fps %.1f", r.frames, r.fps.fps())
	}
	if !redraw {
		return nil
	}
	return r.Present()
}

// due advances the frame schedule. Frames fire on a fixed cadence; if the
// caller fell more than one interval behind, the cadence restarts at now.
func (r *Runtime) due(now time.Duration) bool {
	if r.interval <= 0 || !r.framed {
		r.lastFrame = now
		r.framed = true
		return true
	}
	if now-r.lastFrame < r.interval {
		return false
	}
	r.lastFrame += r.interval
	if now-r.lastFrame >= r.interval {
		r.lastFrame = now
	}
	return true
}

// Frames returns how many update callbacks have run.
func (r *Runtime) Frames() uint64 { return r.frames }

// FPS returns the measured frame rate.
func (r *Runtime) FPS() float32 { return r.fps.fps() }

// RefreshRate returns the cap set by the game.
func (r *Runtime) RefreshRate() float32 { return r.refreshHz }

func (r *Runtime) DisplayWidth() int  { return r.fb.Width() }
func (r *Runtime) DisplayHeight() int { return r.fb.Height() }

func (r *Runtime) ElapsedTime() float32 {
	return float32(r.clock.Elapsed().Seconds())
}

func (r *Runtime) SetRefreshRate(hz float32) {
	if hz < 0 {
		hz = 0
	}
	r.refreshHz = hz
	r.interval = 0
	if hz > 0 {
		r.interval = time.Duration(float64(time.Second) / float64(hz))
	}
	r.framed = false
	r.fps.reset()
	logf(r.log, "refresh rate %gHz", hz)
}

func (r *Runtime) SetUpdateCallback(fn UpdateFunc) { r.update = fn }

func (r *Runtime) Clear(c Color) { r.c.clear(c) }

func (r *Runtime) DrawLine(x1, y1, x2, y2, width int, c Color) {
	r.c.drawLine(x1, y1, x2, y2, width, c)
}

func (r *Runtime) DrawFPS(x, y int) { r.c.drawFPS(x, y, r.fps.fps()) }

// DrawText draws a line of text at (x, y) and returns its height in pixels.
func (r *Runtime) DrawText(x, y int, s string) int { return r.c.drawText(x, y, s) }

// Present pushes the current frame to the display.
func (r *Runtime) Present() error {
	if err := r.fb.Present(); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
		return fmt.Errorf("host: present: %w", err)
	}
	return nil
}
