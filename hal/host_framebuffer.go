//go:build !tinygo

package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	format PixelFormat
	stride int
	buf    []byte

	// front holds the last presented frame; the window draws from it.
	front    []byte
	presents uint64
}

func newHostFramebuffer(width, height int, format PixelFormat) *hostFramebuffer {
	stride := width * 2
	if format == PixelFormatMono1 {
		stride = MonoStride(width)
	}
	return &hostFramebuffer{
		width:  width,
		height: height,
		format: format,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return f.format }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.front, f.buf)
	f.presents++
	return nil
}

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.format == PixelFormatMono1 {
		fillMono(f.buf, r, g, b)
		return
	}
	fillRGB565(f.buf, r, g, b)
}

// snapshot converts the last presented frame into dst.
func (f *hostFramebuffer) snapshot(dst *image.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ToRGBA(f.format, f.front, f.stride, dst)
}

// Snapshot returns the last presented frame of a host HAL's display.
func Snapshot(h HAL) (*image.RGBA, bool) {
	hh, ok := h.(*hostHAL)
	if !ok {
		return nil, false
	}
	img := image.NewRGBA(image.Rect(0, 0, hh.fb.width, hh.fb.height))
	hh.fb.snapshot(img)
	return img, true
}
