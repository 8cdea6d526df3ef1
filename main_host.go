//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"wirecube/app"
	"wirecube/hal"
	"wirecube/internal/config"
)

func main() {
	var (
		configFile string
		flags      config.Flags
	)
	flag.StringVar(&configFile, "config", "", "Path to a JSON config file.")
	flag.BoolVar(&flags.Headless, "headless", false, "Run without a window.")
	flag.IntVar(&flags.Hz, "hz", 0, "Tick rate in headless mode (default 60).")
	flag.Uint64Var(&flags.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&flags.FixedStep, "fixed-step", false, "Advance time by exactly 1/hz per headless tick.")
	flag.IntVar(&flags.Scale, "scale", 0, "Window zoom factor (default 2).")
	flag.IntVar(&flags.Width, "width", 0, "Display width in pixels (default 400).")
	flag.IntVar(&flags.Height, "height", 0, "Display height in pixels (default 240).")
	flag.StringVar(&flags.Format, "format", "", "Framebuffer format: mono|rgb565.")
	flag.Uint64Var(&flags.LogFPSEvery, "log-fps", 0, "Log the frame rate every N frames.")
	flag.Parse()

	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	cfg.Resolve(flags)

	hostCfg, err := cfg.Host()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var a *app.App
	newApp := func(h hal.HAL) (func() error, error) {
		var err error
		a, err = app.New(h, app.Config{LogFPSEvery: cfg.LogFPSEvery})
		if err != nil {
			return nil, err
		}
		return a.Step, nil
	}

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, hostCfg, newApp, cfg.HeadlessRunner())
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(hostCfg, newApp)
	}

	if a != nil {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
