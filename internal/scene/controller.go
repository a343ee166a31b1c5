package scene

import (
	"strconv"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/core"
)

// Control keys understood by SetFloatParameter.
const (
	KeyPrecipitation = "precipitation"
	KeyTimeScale     = "time_scale"
	KeyRenderRate    = "render_rate"
)

// Controller owns the host-side animation state: the clock, the
// precipitation amount and the sun. It is safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	cfg           Config
	time          float64
	timeScale     float64
	precipitation float64
	paused        bool
	renderRate    int
}

// NewController starts a controller from cfg. renderRate is the number of
// CPU frames per second the host aims for.
func NewController(cfg Config, renderRate int) *Controller {
	if renderRate <= 0 {
		renderRate = 10
	}
	return &Controller{
		cfg:           cfg,
		time:          cfg.Time,
		timeScale:     cfg.TimeScale,
		precipitation: mgl64.Clamp(cfg.Precipitation, 0, 1),
		renderRate:    renderRate,
	}
}

// Advance moves the clock forward by dt seconds of wall time.
func (c *Controller) Advance(dt float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused || dt <= 0 {
		return
	}
	c.time += dt * c.timeScale
}

// NudgePrecipitation moves precipitation one step up (dir > 0) or down
// (dir < 0), clamped to [0, 1].
func (c *Controller) NudgePrecipitation(dir int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	step := c.cfg.PrecipitationStep
	if step <= 0 {
		step = 0.01
	}
	switch {
	case dir > 0:
		c.precipitation = min(c.precipitation+step, 1)
	case dir < 0:
		c.precipitation = max(c.precipitation-step, 0)
	}
}

// SetPrecipitation sets precipitation, clamped to [0, 1].
func (c *Controller) SetPrecipitation(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.precipitation = mgl64.Clamp(v, 0, 1)
}

// Precipitation returns the current precipitation amount.
func (c *Controller) Precipitation() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.precipitation
}

// Time returns the scene clock in seconds.
func (c *Controller) Time() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}

// ResetTime rewinds the clock to the configured start.
func (c *Controller) ResetTime() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time = c.cfg.Time
}

// SetPaused freezes or resumes the clock.
func (c *Controller) SetPaused(paused bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = paused
}

// TogglePaused flips the paused state.
func (c *Controller) TogglePaused() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
}

// Paused reports whether the clock is frozen.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// RenderRate is the target number of CPU frames per second.
func (c *Controller) RenderRate() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.renderRate
}

// FOV returns the configured field of view.
func (c *Controller) FOV() float64 {
	return c.cfg.FOV
}

// Params snapshots the current state for a frame of the given size.
func (c *Controller) Params(size core.Size) Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	sun := OrbitSun(c.time)
	if c.cfg.FixedSun {
		sun = c.cfg.SunDir
	}
	return Params{
		Time:          c.time,
		Precipitation: c.precipitation,
		SunDir:        sun,
		Size:          size,
	}.Sanitize()
}

// Parameters reports the live state for display.
func (c *Controller) Parameters() core.ParameterSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	sun := "orbit"
	if c.cfg.FixedSun {
		sun = "fixed"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Weather",
			Params: []core.Parameter{
				floatParam(KeyPrecipitation, "Precipitation", c.precipitation),
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				floatParam("time", "Time (s)", c.time),
				floatParam(KeyTimeScale, "Time scale", c.timeScale),
				{Key: "sun", Label: "Sun", Type: core.ParamTypeText, Value: sun},
			},
		},
		{
			Name: "Render",
			Params: []core.Parameter{
				intParam(KeyRenderRate, "CPU frames/s", c.renderRate),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyPrecipitation, Label: "Precipitation", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: KeyTimeScale, Label: "Time scale", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, Max: 8},
		{Key: KeyRenderRate, Label: "CPU frames/s", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 60},
	}
}

// SetFloatParameter applies a HUD adjustment. It reports false for unknown
// keys.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch key {
	case KeyPrecipitation:
		c.precipitation = mgl64.Clamp(value, 0, 1)
	case KeyTimeScale:
		c.timeScale = mgl64.Clamp(value, 0, 8)
	case KeyRenderRate:
		c.renderRate = int(mgl64.Clamp(value, 1, 60))
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 2, 64),
	}
}
