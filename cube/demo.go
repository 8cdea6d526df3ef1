package cube

import (
	"errors"
	"fmt"

	"wirecube/host"
)

// Demo is the event-handler side of the cube: it creates the renderer on
// init and releases it on terminate.
type Demo struct {
	r *Renderer
}

// Renderer returns the live renderer, or nil before init and after terminate.
func (d *Demo) Renderer() *Renderer { return d.r }

// HandleEvent is the host entry point.
func (d *Demo) HandleEvent(api host.API, ev host.Event, arg uint32) error {
	switch ev {
	case host.EventInit:
		if d.r != nil {
			return errors.New("cube: already initialized")
		}
		r, err := NewRenderer(api.DisplayWidth(), api.DisplayHeight())
		if err != nil {
			return fmt.Errorf("cube: init: %w", err)
		}
		d.r = r
		api.SetRefreshRate(RefreshRate)
		api.SetUpdateCallback(r.Update)
	case host.EventTerminate:
		api.SetUpdateCallback(nil)
		d.r = nil
	}
	return nil
}
