package scene

import "vista/internal/core"

// DefaultPreset is the preset used when none is requested.
const DefaultPreset = "shower"

func init() {
	core.Register(core.Preset{
		Name:        "clear",
		Description: "dry air, no rainbow",
		Values:      map[string]string{"rain": "0"},
	})
	core.Register(core.Preset{
		Name:        "drizzle",
		Description: "light rain, thin primary bow",
		Values:      map[string]string{"rain": "0.3"},
	})
	core.Register(core.Preset{
		Name:        DefaultPreset,
		Description: "passing shower with a bright double bow",
		Values:      map[string]string{"rain": "0.8"},
	})
	core.Register(core.Preset{
		Name:        "storm",
		Description: "heavy rain, dense fog, wide bows",
		Values:      map[string]string{"rain": "1", "time_scale": "2"},
	})
	core.Register(core.Preset{
		Name:        "low-sun",
		Description: "sun pinned low behind the viewer, tall bows",
		Values:      map[string]string{"rain": "0.7", "sun": "0.1,0.08,1"},
	})
}
