//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostConfig describes the simulated handheld on a desktop host.
type HostConfig struct {
	Width  int
	Height int
	Format PixelFormat
	// Scale is the window zoom factor. Ignored in headless mode.
	Scale int
	// Clock overrides the wall clock (e.g. a ManualClock for reproducible runs).
	Clock Clock
}

const (
	defaultWidth  = 400
	defaultHeight = 240
)

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.Format == 0 {
		c.Format = PixelFormatMono1
	}
	if c.Scale <= 0 {
		c.Scale = 2
	}
	return c
}

type hostHAL struct {
	cfg    HostConfig
	logger *hostLogger
	fb     *hostFramebuffer
	clock  Clock
}

// New returns a host HAL with the default 400x240 mono display.
func New() HAL {
	return newHost(HostConfig{})
}

// NewHost returns a host HAL for cfg.
func NewHost(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	cfg = cfg.withDefaults()
	clock := cfg.Clock
	if clock == nil {
		clock = newHostClock()
	}
	return &hostHAL{
		cfg:    cfg,
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(cfg.Width, cfg.Height, cfg.Format),
		clock:  clock,
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Clock() Clock     { return h.clock }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
