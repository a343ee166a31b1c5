package app

import (
	"flag"
	"fmt"
	"strings"

	"vista/internal/scene"
)

// Overrides collects repeatable key=value flags.
type Overrides []string

func (l *Overrides) String() string {
	return strings.Join(*l, ",")
}

// Set appends one override.
func (l *Overrides) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the GUI.
type Config struct {
	Preset     string
	Scale      int
	TPS        int
	RenderRate int
	Workers    int
	GPU        bool
	HUDWidth   int
	Set        Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Preset:     scene.DefaultPreset,
		Scale:      3,
		TPS:        60,
		RenderRate: 10,
		HUDWidth:   240,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "scene preset to start from")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.RenderRate, "fps", c.RenderRate, "CPU frames rendered per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "render workers (0 = one per CPU)")
	fs.BoolVar(&c.GPU, "gpu", c.GPU, "start on the GPU shader path")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 disables)")
	fs.Var(&c.Set, "set", "scene override in key=value form (repeatable)")
}

// Scene resolves the preset and applies the -set overrides.
func (c *Config) Scene() (scene.Config, error) {
	cfg, err := scene.ForPreset(c.Preset)
	if err != nil {
		return scene.Config{}, err
	}
	values, err := scene.ParseOverrides(c.Set)
	if err != nil {
		return scene.Config{}, err
	}
	if err := cfg.Apply(values); err != nil {
		return scene.Config{}, fmt.Errorf("preset %q: %w", c.Preset, err)
	}
	return cfg, nil
}

// Validate checks the host settings.
func (c *Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	case c.RenderRate <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.RenderRate)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	case c.HUDWidth < 0:
		return fmt.Errorf("hud width must not be negative, got %d", c.HUDWidth)
	}
	return nil
}
