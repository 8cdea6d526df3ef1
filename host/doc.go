// Package host implements the small capability set a handheld runtime offers
// a game: display size, elapsed time, refresh rate, an update callback, and
// line/clear/FPS drawing into a monochrome framebuffer.
//
// A Runtime owns the framebuffer of a hal.HAL. Platform runners call Step on
// their own schedule; Step invokes the registered update callback at most at
// the requested refresh rate and presents the frame when the callback asks
// for a redraw. Everything runs on the caller's goroutine.
package host
