//go:build tinygo && !baremetal

package hal

import "time"

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *tinyGoHostFramebuffer
	clock  *tinyGoHostClock
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no
// panel. Frames are kept in memory and the frame count is logged.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger: l,
		fb:     newTinyGoHostFramebuffer(400, 240, l),
		clock:  &tinyGoHostClock{start: time.Now()},
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Clock() Clock     { return h.clock }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostClock struct {
	start time.Time
}

func (c *tinyGoHostClock) Elapsed() time.Duration { return time.Since(c.start) }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	log      Logger
	presents uint64
}

func newTinyGoHostFramebuffer(w, h int, log Logger) *tinyGoHostFramebuffer {
	stride := MonoStride(w)
	return &tinyGoHostFramebuffer{
		w:      w,
		h:      h,
		stride: stride,
		buf:    make([]byte, stride*h),
		log:    log,
	}
}

func (f *tinyGoHostFramebuffer) Width() int          { return f.w }
func (f *tinyGoHostFramebuffer) Height() int         { return f.h }
func (f *tinyGoHostFramebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *tinyGoHostFramebuffer) StrideBytes() int    { return f.stride }
func (f *tinyGoHostFramebuffer) Buffer() []byte      { return f.buf }

func (f *tinyGoHostFramebuffer) ClearRGB(r, g, b uint8) {
	fillMono(f.buf, r, g, b)
}

func (f *tinyGoHostFramebuffer) Present() error {
	f.presents++
	if f.presents%500 == 0 {
		f.log.WriteLineString("hal: presented 500 frames")
	}
	return nil
}
