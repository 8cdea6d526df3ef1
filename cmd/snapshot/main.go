//go:build !tinygo

// Command snapshot renders cube frames at chosen times to image files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wirecube/app"
	"wirecube/hal"
	"wirecube/internal/config"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to a JSON config file.")
		times      = flag.String("times", "0,0.5,1", "Comma-separated elapsed times in seconds.")
		outDir     = flag.String("out", ".", "Output directory.")
		encoding   = flag.String("encoding", "webp", "webp|png|tga.")
		scale      = flag.Int("scale", 0, "Integer upscale factor (default from config, 2).")
		width      = flag.Int("width", 0, "Display width in pixels (default 400).")
		height     = flag.Int("height", 0, "Display height in pixels (default 240).")
	)
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fatalf("%v", err)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height, Scale: *scale})

	hc, err := cfg.Host()
	if err != nil {
		fatalf("%v", err)
	}
	ts, err := parseTimes(*times)
	if err != nil {
		fatalf("%v", err)
	}
	enc, ext, err := encoderFor(*encoding)
	if err != nil {
		fatalf("%v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fatalf("mkdir %s: %v", *outDir, err)
	}

	for _, t := range ts {
		img, err := renderAt(hc, t)
		if err != nil {
			fatalf("render t=%v: %v", t, err)
		}
		img = upscale(img, hc.Scale)

		path := filepath.Join(*outDir, fmt.Sprintf("cube_%06dms.%s", t.Milliseconds(), ext))
		if err := writeImage(path, img, enc); err != nil {
			fatalf("%v", err)
		}
		fmt.Println(path)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func parseTimes(s string) ([]time.Duration, error) {
	var out []time.Duration
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		sec, err := strconv.ParseFloat(f, 64)
		if err != nil || sec < 0 {
			return nil, fmt.Errorf("invalid time %q", f)
		}
		out = append(out, time.Duration(sec*float64(time.Second)))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no times given")
	}
	return out, nil
}

// renderAt boots a fresh demo on a manual clock and renders its first frame
// at elapsed time t.
func renderAt(hc hal.HostConfig, t time.Duration) (*image.RGBA, error) {
	clock := &hal.ManualClock{}
	clock.Set(t)
	hc.Clock = clock

	h := hal.NewHost(hc)
	a, err := app.New(h, app.Config{})
	if err != nil {
		return nil, err
	}
	defer a.Close()

	if err := a.Step(); err != nil {
		return nil, err
	}
	img, ok := hal.Snapshot(h)
	if !ok {
		return nil, fmt.Errorf("display has no snapshot")
	}
	return img, nil
}

func upscale(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

type encodeFunc func(w io.Writer, img image.Image) error

func encoderFor(name string) (encodeFunc, string, error) {
	switch strings.ToLower(name) {
	case "webp":
		return func(w io.Writer, img image.Image) error {
			return nativewebp.Encode(w, img, nil)
		}, "webp", nil
	case "png":
		return png.Encode, "png", nil
	case "tga":
		return tga.Encode, "tga", nil
	default:
		return nil, "", fmt.Errorf("unknown encoding %q", name)
	}
}

func writeImage(path string, img image.Image, enc encodeFunc) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
