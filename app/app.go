package app

import (
	"fmt"
	"time"

	"wirecube/cube"
	"wirecube/hal"
	"wirecube/host"
	"wirecube/internal/buildinfo"
)

// Config holds runtime knobs that are not part of the demo itself.
type Config struct {
	// LogFPSEvery logs the frame rate every N frames (0 disables).
	LogFPSEvery uint64
}

// App is the cube demo booted on a HAL.
type App struct {
	h    hal.HAL
	rt   *host.Runtime
	demo cube.Demo

	halted bool
}

// New boots the demo on h. Call Step on every platform tick.
func New(h hal.HAL, cfg Config) (*App, error) {
	rt, err := host.NewRuntime(h)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	rt.LogFPSEvery(cfg.LogFPSEvery)

	a := &App{h: h, rt: rt}
	logf(h.Logger(), "wirecube %s (%s)", buildinfo.Short(), buildinfo.String())
	if err := rt.Boot(a.demo.HandleEvent); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	return a, nil
}

// Step advances the host runtime by one tick. A panic inside the frame is
// reported on the display and the log and returned as an error; the app
// stops rendering afterwards.
func (a *App) Step() (err error) {
	if a.halted {
		return errHalted
	}
	defer a.recoverFrame(&err)
	return a.rt.Step()
}

// Close delivers the terminate event.
func (a *App) Close() error {
	a.halted = true
	if err := a.rt.Shutdown(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

// Runtime exposes the host runtime, mainly for tools and tests.
func (a *App) Runtime() *host.Runtime { return a.rt }

// Run boots the demo and steps it forever (TinyGo/device entrypoint).
func Run(h hal.HAL) {
	a, err := New(h, Config{LogFPSEvery: 250})
	if err != nil {
		logf(h.Logger(), "%v", err)
		select {}
	}
	for {
		if err := a.Step(); err != nil {
			select {}
		}
		time.Sleep(time.Millisecond)
	}
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString("app: " + fmt.Sprintf(format, args...))
}
