package host

// Color is a solid drawing color for a monochrome display.
type Color uint8

const (
	ColorBlack Color = iota
	ColorWhite
	// ColorClear draws nothing.
	ColorClear
	// ColorXOR inverts the pixels it touches.
	ColorXOR
)

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorClear:
		return "clear"
	case ColorXOR:
		return "xor"
	default:
		return "unknown"
	}
}

// Event is a lifecycle signal delivered to the game's event handler.
type Event uint8

const (
	// EventInit is delivered once before the first update.
	EventInit Event = iota + 1
	// EventTerminate is delivered once when the runtime shuts down.
	EventTerminate
)

func (e Event) String() string {
	switch e {
	case EventInit:
		return "init"
	case EventTerminate:
		return "terminate"
	default:
		return "unknown"
	}
}

// UpdateFunc renders one frame. It returns true when the display should be
// refreshed with the new frame.
type UpdateFunc func(api API) bool

// EventHandler is the game's single entry point.
type EventHandler func(api API, ev Event, arg uint32) error

// API is the host capability set available to a game.
type API interface {
	DisplayWidth() int
	DisplayHeight() int

	// ElapsedTime returns seconds since the runtime started (monotonic).
	ElapsedTime() float32
	// SetRefreshRate caps update callbacks at hz. Zero means every step.
	SetRefreshRate(hz float32)
	SetUpdateCallback(fn UpdateFunc)

	Clear(c Color)
	DrawLine(x1, y1, x2, y2, width int, c Color)
	// DrawFPS draws the measured frame rate with its top-left corner at (x, y).
	DrawFPS(x, y int)
}
