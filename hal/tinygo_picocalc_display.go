//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

type ili9488 struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	txBuf []byte
}

func initILI9488() (*ili9488, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("SPI1 unavailable")
	}

	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	lcd := &ili9488{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		txBuf: make([]byte, panelWidth*2),
	}

	lcd.cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
	lcd.cs.High()
	lcd.dc.High()
	lcd.rst.High()

	lcd.reset()
	lcd.init()

	return lcd, nil
}

func (d *ili9488) reset() {
	d.rst.Low()
	time.Sleep(64 * time.Millisecond)
	d.rst.High()
	time.Sleep(140 * time.Millisecond)
}

func (d *ili9488) init() {
	d.cmd(0xC0, 0x17, 0x15)             // PWCTRL1
	d.cmd(0xC1, 0x41)                   // PWCTRL2
	d.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL
	d.cmd(0x3A, 0x55)                   // COLMOD 16bpp
	d.cmd(0xB1, 0xA0, 0x11)             // FRMCTRL1
	d.cmd(0xB6, 0x02, 0x22, 0x27)       // DISCTRL (320 lines)
	d.cmd(0x21)                         // INVON
	d.cmd(0x36, 0x40|0x04|0x08)         // MADCTL: MX|MH|BGR

	d.cmd(0x11) // SLPOUT
	time.Sleep(120 * time.Millisecond)
	d.cmd(0x29) // DISPON
}

func (d *ili9488) cmd(cmd byte, data ...byte) {
	d.cs.Low()
	d.dc.Low()
	d.spi.Tx([]byte{cmd}, nil)
	d.dc.High()
	if len(data) > 0 {
		d.spi.Tx(data, nil)
	}
	d.cs.High()
}

func (d *ili9488) setWindow(x0, y0, x1, y1 uint16) {
	d.cmd(
		0x2A,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	)
	d.cmd(
		0x2B,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
	d.cmd(0x2C)
}

// fill paints the whole panel with one big-endian RGB565 value.
func (d *ili9488) fill(pixel uint16) {
	d.setWindow(0, 0, panelWidth-1, panelHeight-1)

	row := d.txBuf[:panelWidth*2]
	for i := 0; i < len(row); i += 2 {
		row[i] = byte(pixel >> 8)
		row[i+1] = byte(pixel)
	}

	d.cs.Low()
	d.dc.High()
	for y := 0; y < panelHeight; y++ {
		d.spi.Tx(row, nil)
	}
	d.cs.High()
}

// blitMono expands a Mono1 buffer to RGB565 one row at a time and streams it
// to the panel starting at row y0. Set bits are black.
func (d *ili9488) blitMono(buf []byte, stride, w, h, y0 int) error {
	if w <= 0 || h <= 0 || w > panelWidth || y0+h > panelHeight || len(buf) < stride*h {
		return errors.New("invalid framebuffer")
	}
	row := d.txBuf[:w*2]

	d.setWindow(0, uint16(y0), uint16(w-1), uint16(y0+h-1))

	d.cs.Low()
	d.dc.High()
	for y := 0; y < h; y++ {
		src := buf[y*stride:]
		for x := 0; x < w; x++ {
			v := byte(0xFF)
			if src[x/8]&(0x80>>(x%8)) != 0 {
				v = 0x00
			}
			row[x*2] = v
			row[x*2+1] = v
		}
		d.spi.Tx(row, nil)
	}
	d.cs.High()
	return nil
}
