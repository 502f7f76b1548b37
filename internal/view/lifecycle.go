package view

// Startup notices.
const (
	MsgSatelliteLoaded = "Satellite view loaded successfully"
	MsgInitialized     = "Satellite viewer initialized successfully"
)

// Initialize runs the startup sequence: paint the terrain, stage the drone
// intro, announce readiness. A failed render is reported and does not stop
// the rest of the sequence.
func (c *Controller) Initialize(render func() error, intro *Intro) {
	c.LoadSatelliteView(render)
	c.guard("Failed to initialize drone animation", func() error {
		if intro == nil {
			return &MissingElementError{Name: "drone"}
		}
		intro.Start()
		return nil
	})
	c.Success(MsgInitialized)
}

// LoadSatelliteView paints the terrain under the failure policy and reports
// the outcome. It returns whether the render succeeded.
func (c *Controller) LoadSatelliteView(render func() error) bool {
	ok := false
	c.guard("Failed to load satellite view", func() error {
		if err := render(); err != nil {
			return err
		}
		ok = true
		c.Success(MsgSatelliteLoaded)
		return nil
	})
	return ok
}

// Redraw repaints the terrain after a resize. Success is silent.
func (c *Controller) Redraw(render func() error) bool {
	ok := false
	c.guard("Failed to redraw satellite view", func() error {
		if err := render(); err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok
}
