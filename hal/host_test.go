//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"
)

func TestHostDefaults(t *testing.T) {
	h := New()
	fb := h.Display().Framebuffer()
	if fb.Width() != 400 || fb.Height() != 240 {
		t.Fatalf("size = %dx%d want 400x240", fb.Width(), fb.Height())
	}
	if fb.Format() != PixelFormatMono1 {
		t.Fatalf("format = %v want mono1", fb.Format())
	}
	if fb.StrideBytes() != 50 {
		t.Fatalf("stride = %d want 50", fb.StrideBytes())
	}
	if len(fb.Buffer()) != 50*240 {
		t.Fatalf("buffer len = %d", len(fb.Buffer()))
	}
}

func TestHostRGB565Stride(t *testing.T) {
	h := NewHost(HostConfig{Width: 320, Height: 320, Format: PixelFormatRGB565})
	fb := h.Display().Framebuffer()
	if fb.StrideBytes() != 640 || len(fb.Buffer()) != 640*320 {
		t.Fatalf("stride = %d len = %d", fb.StrideBytes(), len(fb.Buffer()))
	}
}

func TestMonoClear(t *testing.T) {
	h := NewHost(HostConfig{Width: 16, Height: 2})
	fb := h.Display().Framebuffer()

	fb.ClearRGB(0, 0, 0)
	for i, b := range fb.Buffer() {
		if b != 0xFF {
			t.Fatalf("black clear: byte %d = %#x", i, b)
		}
	}
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	for i, b := range fb.Buffer() {
		if b != 0x00 {
			t.Fatalf("white clear: byte %d = %#x", i, b)
		}
	}
}

func TestSnapshotShowsPresentedFrame(t *testing.T) {
	h := NewHost(HostConfig{Width: 8, Height: 1})
	fb := h.Display().Framebuffer()
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	fb.Buffer()[0] = 0x80 // leftmost pixel black

	img, ok := Snapshot(h)
	if !ok {
		t.Fatal("expected host snapshot")
	}
	if img.RGBAAt(0, 0).R != 0xFF {
		t.Fatal("snapshot shows a frame that was never presented")
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	img, _ = Snapshot(h)
	if c := img.RGBAAt(0, 0); c.R != 0 || c.A != 0xFF {
		t.Fatalf("pixel 0 = %v want black", c)
	}
	if c := img.RGBAAt(1, 0); c.R != 0xFF {
		t.Fatalf("pixel 1 = %v want white", c)
	}
}

func TestToRGBA565(t *testing.T) {
	src := []byte{0x00, 0xF8, 0xE0, 0x07} // red, green
	dst := image.NewRGBA(image.Rect(0, 0, 2, 1))
	ToRGBA(PixelFormatRGB565, src, 4, dst)
	if c := dst.RGBAAt(0, 0); c.R != 0xFF || c.G != 0 || c.B != 0 {
		t.Fatalf("pixel 0 = %v want red", c)
	}
	if c := dst.RGBAAt(1, 0); c.R != 0 || c.G != 0xFF || c.B != 0 {
		t.Fatalf("pixel 1 = %v want green", c)
	}
}

func TestManualClockMonotonic(t *testing.T) {
	var c ManualClock
	c.Advance(2 * time.Second)
	c.Set(time.Second)
	if c.Elapsed() != 2*time.Second {
		t.Fatalf("elapsed = %v want 2s", c.Elapsed())
	}
	c.Advance(-time.Second)
	c.Set(3 * time.Second)
	if c.Elapsed() != 3*time.Second {
		t.Fatalf("elapsed = %v want 3s", c.Elapsed())
	}
}

func TestRunHeadlessFixedStep(t *testing.T) {
	var (
		h     HAL
		steps int
	)
	err := RunHeadless(context.Background(), HostConfig{}, func(hh HAL) (func() error, error) {
		h = hh
		return func() error {
			steps++
			return nil
		}, nil
	}, HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 5, FixedStep: true})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d want 5", steps)
	}
	if got := h.Clock().Elapsed(); got != 5*time.Millisecond {
		t.Fatalf("elapsed = %v want 5ms", got)
	}
}

func TestRunHeadlessInitError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), HostConfig{}, func(HAL) (func() error, error) {
		return nil, boom
	}, HeadlessConfig{Hz: 1000, Ticks: 1})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v want boom", err)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, HostConfig{}, func(HAL) (func() error, error) {
		return func() error { return nil }, nil
	}, HeadlessConfig{Hz: 10})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v want context.Canceled", err)
	}
}
