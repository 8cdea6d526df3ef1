package host

import (
	"image/color"
	"strconv"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const fpsWindow = 16

// fpsMeter averages the frame rate over the last fpsWindow frames.
type fpsMeter struct {
	stamps [fpsWindow]time.Duration
	n      int
	next   int
}

func (m *fpsMeter) mark(now time.Duration) {
	m.stamps[m.next] = now
	m.next = (m.next + 1) % fpsWindow
	if m.n < fpsWindow {
		m.n++
	}
}

func (m *fpsMeter) reset() { *m = fpsMeter{} }

func (m *fpsMeter) fps() float32 {
	if m.n < 2 {
		return 0
	}
	newest := m.stamps[(m.next+fpsWindow-1)%fpsWindow]
	oldest := m.stamps[(m.next+fpsWindow-m.n)%fpsWindow]
	span := newest - oldest
	if span <= 0 {
		return 0
	}
	return float32(m.n-1) / float32(span.Seconds())
}

var textFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// drawFPS draws the rate as black digits in a white box at (x, y).
func (c canvas) drawFPS(x, y int, fps float32) {
	c.drawText(x, y, strconv.Itoa(int(fps+0.5)))
}

// drawText draws one line of black text in a white box whose top-left corner
// is (x, y). It returns the box height.
func (c canvas) drawText(x, y int, text string) int {
	ascent, descent := 0, 0
	for _, r := range text {
		info := textFont.GetGlyph(r).Info()
		if a := -int(info.YOffset); a > ascent {
			ascent = a
		}
		if d := int(info.Height) + int(info.YOffset); d > descent {
			descent = d
		}
	}
	_, outbox := tinyfont.LineWidth(textFont, text)

	const pad = 1
	h := ascent + descent + 2*pad
	c.fillRect(x, y, int(outbox)+2*pad, h, ColorWhite)
	tinyfont.WriteLine(&fbDisplayer{c: c}, textFont, int16(x+pad), int16(y+pad+ascent), text, color.RGBA{A: 0xFF})
	return h
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

// fbDisplayer lets tinyfont draw into the canvas.
type fbDisplayer struct {
	c canvas
}

func (d *fbDisplayer) Size() (x, y int16) {
	w, h := d.c.size()
	return int16(w), int16(h)
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	col := ColorWhite
	if int(c.R)*299+int(c.G)*587+int(c.B)*114 < 128*1000 {
		col = ColorBlack
	}
	d.c.setPixel(int(x), int(y), col)
}

func (d *fbDisplayer) Display() error { return nil }
