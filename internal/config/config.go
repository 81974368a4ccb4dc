package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Path is the demo config file, relative to the process working directory.
const Path = "config/demo.json"

// Prefs holds demo preferences persisted across runs: debug overlays, the
// editor grid, the light count, and vsync. Scene content itself is not
// persisted.
type Prefs struct {
	ShowFPS      bool `json:"show_fps"`
	ShowMemAlloc bool `json:"show_memalloc"`
	GridVisible  bool `json:"grid_visible"`
	LightCount   int  `json:"light_count"`
	VSync        bool `json:"vsync"`
	ThirdPerson  bool `json:"third_person"`
}

// Default returns the defaults: overlays off, grid on, 64 lights, vsync on.
func Default() Prefs {
	return Prefs{
		GridVisible: true,
		LightCount:  64,
		VSync:       true,
	}
}

// Load reads preferences from config/demo.json. A missing or invalid file
// yields Default() without creating anything.
func Load() Prefs {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default()
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default()
	}
	if p.LightCount <= 0 {
		p.LightCount = Default().LightCount
	}
	return p
}

// Save writes preferences, creating the config directory if needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(Path), 0755); err != nil {
		return errors.Wrap(err, "creating config dir")
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return errors.Wrap(err, "encoding prefs")
	}
	return errors.Wrap(os.WriteFile(Path, data, 0644), "writing prefs")
}
