package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMono1 is 1bpp, rows packed MSB first. A set bit is black.
	PixelFormatMono1 PixelFormat = iota + 1
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatMono1:
		return "mono1"
	case PixelFormatRGB565:
		return "rgb565"
	default:
		return "unknown"
	}
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Clock reports monotonic time since the platform started.
type Clock interface {
	Elapsed() time.Duration
}

// HAL provides the only contact point between the demo and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Clock() Clock
}
