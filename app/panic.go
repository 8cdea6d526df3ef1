package app

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"wirecube/host"
)

var errHalted = errors.New("app: halted after panic")

func (a *App) recoverFrame(err *error) {
	v := recover()
	if v == nil {
		return
	}
	a.halted = true
	*err = fmt.Errorf("app: panic in frame: %v", v)

	if l := a.h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("wirecube panic: %v", v))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}
	a.showPanic(v)
}

// showPanic replaces the frame with a short text report.
func (a *App) showPanic(v any) {
	lines := []string{"wirecube panic:"}
	for _, s := range strings.Split(fmt.Sprint(v), "\n") {
		lines = append(lines, wrap(s, 48)...)
	}

	a.rt.Clear(host.ColorWhite)
	y := 2
	for _, s := range lines {
		if y >= a.rt.DisplayHeight() {
			break
		}
		y += a.rt.DrawText(2, y, s)
	}
	_ = a.rt.Present()
}

func wrap(s string, width int) []string {
	var out []string
	for len(s) > width {
		out = append(out, s[:width])
		s = s[width:]
	}
	return append(out, s)
}
