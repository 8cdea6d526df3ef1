package host

import "wirecube/hal"

// canvas draws solid colors into a Mono1 or RGB565 framebuffer.
//
// Out-of-bounds pixels are clipped.
type canvas struct {
	fb hal.Framebuffer
}

func (c canvas) size() (w, h int) { return c.fb.Width(), c.fb.Height() }

func (c canvas) clear(col Color) {
	switch col {
	case ColorBlack:
		c.fb.ClearRGB(0, 0, 0)
	case ColorWhite:
		c.fb.ClearRGB(0xFF, 0xFF, 0xFF)
	case ColorXOR:
		buf := c.fb.Buffer()
		for i := range buf {
			buf[i] = ^buf[i]
		}
	}
}

func (c canvas) setPixel(x, y int, col Color) {
	w, h := c.size()
	if x < 0 || y < 0 || x >= w || y >= h || col == ColorClear {
		return
	}
	buf := c.fb.Buffer()
	stride := c.fb.StrideBytes()

	switch c.fb.Format() {
	case hal.PixelFormatMono1:
		off := y*stride + x/8
		if off >= len(buf) {
			return
		}
		bit := byte(0x80) >> (x % 8)
		switch col {
		case ColorBlack:
			buf[off] |= bit
		case ColorWhite:
			buf[off] &^= bit
		case ColorXOR:
			buf[off] ^= bit
		}

	case hal.PixelFormatRGB565:
		off := y*stride + x*2
		if off+1 >= len(buf) {
			return
		}
		switch col {
		case ColorBlack:
			buf[off], buf[off+1] = 0x00, 0x00
		case ColorWhite:
			buf[off], buf[off+1] = 0xFF, 0xFF
		case ColorXOR:
			buf[off] ^= 0xFF
			buf[off+1] ^= 0xFF
		}
	}
}

func (c canvas) fillRect(x, y, w, h int, col Color) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.setPixel(xx, yy, col)
		}
	}
}

// drawLine rasterizes a line with Bresenham's algorithm, endpoints included.
// Widths above one stamp a width x width square centered on each point.
func (c canvas) drawLine(x0, y0, x1, y1, width int, col Color) {
	if width < 1 {
		width = 1
	}
	half := (width - 1) / 2

	w, h := c.size()
	var ok bool
	x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1, -width, -width, w+width, h+width)
	if !ok {
		return
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if width == 1 {
			c.setPixel(x0, y0, col)
		} else {
			c.fillRect(x0-half, y0-half, width, width, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLine trims the segment to the rectangle [minX,maxX]x[minY,maxY]
// (Liang-Barsky). It reports false when nothing of the segment is inside.
func clipLine(x0, y0, x1, y1, minX, minY, maxX, maxY int) (int, int, int, int, bool) {
	if x0 >= minX && x0 <= maxX && x1 >= minX && x1 <= maxX &&
		y0 >= minY && y0 <= maxY && y1 >= minY && y1 <= maxY {
		return x0, y0, x1, y1, true
	}

	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx0, float64(y1)-fy0
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, fx0 - float64(minX)},
		{dx, float64(maxX) - fx0},
		{-dy, fy0 - float64(minY)},
		{dy, float64(maxY) - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return int(fx0 + t0*dx), int(fy0 + t0*dy), int(fx0 + t1*dx), int(fy0 + t1*dy), true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
