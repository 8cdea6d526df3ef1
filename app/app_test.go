package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"wirecube/hal"
)

func newTestApp(t *testing.T) (*App, hal.HAL, *hal.ManualClock) {
	t.Helper()
	clock := &hal.ManualClock{}
	h := hal.NewHost(hal.HostConfig{Width: 400, Height: 240, Clock: clock})
	a, err := New(h, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, h, clock
}

func TestAppRendersAtRefreshRate(t *testing.T) {
	a, _, clock := newTestApp(t)
	for i := 0; i < 60; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("Step: %v", err)
		}
		clock.Advance(time.Second / 60)
	}
	if f := a.Runtime().Frames(); f < 49 || f > 51 {
		t.Fatalf("frames in 1s = %d want ~50", f)
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestAppPanicHalts(t *testing.T) {
	a, h, _ := newTestApp(t)

	err := func() (err error) {
		defer a.recoverFrame(&err)
		panic("matrix exploded")
	}()
	if err == nil || !strings.Contains(err.Error(), "matrix exploded") {
		t.Fatalf("err = %v", err)
	}
	if err := a.Step(); !errors.Is(err, errHalted) {
		t.Fatalf("Step after panic = %v want errHalted", err)
	}

	img, _ := hal.Snapshot(h)
	black := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 200; x++ {
			if img.RGBAAt(x, y).R == 0 {
				black++
			}
		}
	}
	if black == 0 {
		t.Fatal("panic screen shows no text")
	}
}

func TestWrap(t *testing.T) {
	got := wrap("abcdefgh", 3)
	if len(got) != 3 || got[0] != "abc" || got[2] != "gh" {
		t.Fatalf("wrap = %q", got)
	}
	if got := wrap("", 3); len(got) != 1 || got[0] != "" {
		t.Fatalf("wrap empty = %q", got)
	}
}
