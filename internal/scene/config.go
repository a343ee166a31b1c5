package scene

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"vista/internal/core"
)

// Config holds the tunable starting state of a scene.
type Config struct {
	Width  int
	Height int
	FOV    float64

	Time              float64
	TimeScale         float64
	Precipitation     float64
	PrecipitationStep float64

	// FixedSun pins the sun to SunDir instead of orbiting with time.
	FixedSun bool
	SunDir   mgl64.Vec3
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:             384,
		Height:            216,
		FOV:               DefaultFOV,
		TimeScale:         1,
		Precipitation:     0.8,
		PrecipitationStep: 0.01,
		SunDir:            DefaultSunDir,
	}
}

// FromMap returns the default configuration with values applied.
func FromMap(values map[string]string) (Config, error) {
	c := DefaultConfig()
	if err := c.Apply(values); err != nil {
		return c, err
	}
	return c, nil
}

// ForPreset returns the default configuration with the named preset
// applied.
func ForPreset(name string) (Config, error) {
	p, ok := core.Presets()[name]
	if !ok {
		return DefaultConfig(), fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(core.PresetNames(), ", "))
	}
	c, err := FromMap(p.Values)
	if err != nil {
		return c, fmt.Errorf("preset %q: %w", name, err)
	}
	return c, nil
}

// Apply sets configuration values from key/value pairs. Keys are applied in
// sorted order; the first unknown key or malformed value aborts.
func (c *Config) Apply(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := c.set(k, strings.TrimSpace(values[k])); err != nil {
			return fmt.Errorf("%s=%q: %w", k, values[k], err)
		}
	}
	return nil
}

func (c *Config) set(key, v string) error {
	switch key {
	case "w", "width":
		n, err := positiveInt(v)
		if err != nil {
			return err
		}
		c.Width = n
	case "h", "height":
		n, err := positiveInt(v)
		if err != nil {
			return err
		}
		c.Height = n
	case "fov":
		f, err := parseFinite(v)
		if err != nil {
			return err
		}
		if f <= 0 || f >= 180 {
			return fmt.Errorf("field of view must be in (0, 180)")
		}
		c.FOV = f
	case "time":
		f, err := parseFinite(v)
		if err != nil {
			return err
		}
		c.Time = max(f, 0)
	case "time_scale":
		f, err := parseFinite(v)
		if err != nil {
			return err
		}
		c.TimeScale = max(f, 0)
	case "rain", "precipitation":
		f, err := parseFinite(v)
		if err != nil {
			return err
		}
		c.Precipitation = mgl64.Clamp(f, 0, 1)
	case "rain_step":
		f, err := parseFinite(v)
		if err != nil {
			return err
		}
		if f <= 0 {
			return fmt.Errorf("step must be positive")
		}
		c.PrecipitationStep = f
	case "sun":
		if v == "orbit" {
			c.FixedSun = false
			return nil
		}
		dir, err := parseVec3(v)
		if err != nil {
			return err
		}
		c.FixedSun = true
		c.SunDir = safeNormalize(dir, DefaultSunDir)
	default:
		return fmt.Errorf("unknown key")
	}
	return nil
}

func parseFinite(v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("must be a finite number")
	}
	return f, nil
}

func positiveInt(v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive")
	}
	return n, nil
}

func parseVec3(v string) (mgl64.Vec3, error) {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("want x,y,z")
	}
	var out mgl64.Vec3
	for i, part := range parts {
		f, err := parseFinite(strings.TrimSpace(part))
		if err != nil {
			return mgl64.Vec3{}, err
		}
		out[i] = f
	}
	return out, nil
}

// ParseOverrides splits key=value strings into a map.
func ParseOverrides(kvs []string) (map[string]string, error) {
	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}
