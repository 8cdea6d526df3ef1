package hal

import "image"

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// MonoStride returns the bytes per row of a Mono1 buffer of width w.
func MonoStride(w int) int { return (w + 7) / 8 }

// isDark decides which mono level an RGB clear color maps to.
func isDark(r, g, b uint8) bool {
	// Integer luma (BT.601 weights, scaled by 1000).
	return int(r)*299+int(g)*587+int(b)*114 < 128*1000
}

// fillMono sets every byte of a Mono1 buffer to the level of (r, g, b).
func fillMono(buf []byte, r, g, b uint8) {
	v := byte(0x00)
	if isDark(r, g, b) {
		v = 0xFF
	}
	for i := range buf {
		buf[i] = v
	}
}

func fillRGB565(buf []byte, r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i] = lo
		buf[i+1] = hi
	}
}

// ToRGBA converts the raw framebuffer bytes in src into dst.
//
// dst must match the framebuffer size. Mono1 renders set bits black on a
// white background.
func ToRGBA(format PixelFormat, src []byte, stride int, dst *image.RGBA) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			var r, g, b uint8
			switch format {
			case PixelFormatMono1:
				off := row + x/8
				if off >= len(src) {
					continue
				}
				if src[off]&(0x80>>(x%8)) == 0 {
					r, g, b = 0xFF, 0xFF, 0xFF
				}
			case PixelFormatRGB565:
				off := row + x*2
				if off+1 >= len(src) {
					continue
				}
				r, g, b = rgb888From565(uint16(src[off]) | uint16(src[off+1])<<8)
			default:
				continue
			}
			j := dst.PixOffset(x, y)
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
}
