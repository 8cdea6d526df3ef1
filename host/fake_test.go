package host

import (
	"strings"
	"testing"

	"wirecube/hal"
)

type memFramebuffer struct {
	w, h     int
	format   hal.PixelFormat
	stride   int
	buf      []byte
	presents int
}

func newMemFramebuffer(w, h int, format hal.PixelFormat) *memFramebuffer {
	stride := hal.MonoStride(w)
	if format == hal.PixelFormatRGB565 {
		stride = w * 2
	}
	return &memFramebuffer{w: w, h: h, format: format, stride: stride, buf: make([]byte, stride*h)}
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return f.format }
func (f *memFramebuffer) StrideBytes() int        { return f.stride }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) Present() error {
	f.presents++
	return nil
}

func (f *memFramebuffer) ClearRGB(r, g, b uint8) {
	v := byte(0)
	if r < 0x80 {
		v = 0xFF
	}
	if f.format == hal.PixelFormatRGB565 {
		v = ^v
	}
	for i := range f.buf {
		f.buf[i] = v
	}
}

type memLogger struct {
	lines []string
}

func (l *memLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *memLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *memLogger) contains(sub string) bool {
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type memDisplay struct{ fb hal.Framebuffer }

func (d memDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeHAL struct {
	fb    *memFramebuffer
	clock *hal.ManualClock
	log   *memLogger
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:    newMemFramebuffer(w, h, hal.PixelFormatMono1),
		clock: &hal.ManualClock{},
		log:   &memLogger{},
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return memDisplay{fb: h.fb} }
func (h *fakeHAL) Clock() hal.Clock     { return h.clock }

func isBlack(c canvas, x, y int) bool {
	buf := c.fb.Buffer()
	stride := c.fb.StrideBytes()
	switch c.fb.Format() {
	case hal.PixelFormatMono1:
		return buf[y*stride+x/8]&(0x80>>(x%8)) != 0
	default:
		off := y*stride + x*2
		return buf[off] == 0 && buf[off+1] == 0
	}
}

func countBlack(t *testing.T, c canvas) int {
	t.Helper()
	w, h := c.size()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isBlack(c, x, y) {
				n++
			}
		}
	}
	return n
}
