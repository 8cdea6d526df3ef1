//go:build tinygo && baremetal

package hal

import "machine"

type picoCalcHAL struct {
	logger *uartLogger
	fb     Framebuffer
	clock  *tinyGoClock
}

// PicoCalc panel geometry. The demo uses a 320x240 mono area centered on the
// 320x320 ILI9488.
const (
	panelWidth  = 320
	panelHeight = 320
	monoWidth   = 320
	monoHeight  = 240
)

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	logger := &uartLogger{uart: uart}
	fb := newPicoCalcFramebuffer()
	lcd, err := initILI9488()
	if err != nil {
		logger.WriteLineString("hal: display: " + err.Error())
	} else {
		fb.lcd = lcd
		lcd.fill(0xFFFF)
	}

	return &picoCalcHAL{
		logger: logger,
		fb:     fb,
		clock:  newTinyGoClock(),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *picoCalcHAL) Clock() Clock     { return h.clock }

type picoCalcFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *ili9488
}

func newPicoCalcFramebuffer() *picoCalcFramebuffer {
	stride := MonoStride(monoWidth)
	return &picoCalcFramebuffer{
		w:      monoWidth,
		h:      monoHeight,
		stride: stride,
		buf:    make([]byte, stride*monoHeight),
	}
}

func (f *picoCalcFramebuffer) Width() int          { return f.w }
func (f *picoCalcFramebuffer) Height() int         { return f.h }
func (f *picoCalcFramebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *picoCalcFramebuffer) StrideBytes() int    { return f.stride }
func (f *picoCalcFramebuffer) Buffer() []byte      { return f.buf }

func (f *picoCalcFramebuffer) ClearRGB(r, g, b uint8) {
	fillMono(f.buf, r, g, b)
}

func (f *picoCalcFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	y0 := (panelHeight - f.h) / 2
	return f.lcd.blitMono(f.buf, f.stride, f.w, f.h, y0)
}
