package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MaterialID is a handle into the material library.
type MaterialID int

// MaterialDef is one material definition, loaded from a YAML file under
// assets/materials/ (e.g. bronze.yaml). Texture is an optional albedo image
// path relative to the assets dir; tiling defaults to (1,1).
type MaterialDef struct {
	Name             string     `yaml:"name"`
	Color            string     `yaml:"color"` // #RGB or #RRGGBB
	SpecularPower    float32    `yaml:"specular_power,omitempty"`
	SpecularStrength float32    `yaml:"specular_strength,omitempty"`
	Texture          string     `yaml:"texture,omitempty"`
	Tiling           [2]float32 `yaml:"tiling,omitempty"`
}

// normalize fills zero fields with usable defaults.
func (d *MaterialDef) normalize() {
	if d.SpecularPower <= 0 {
		d.SpecularPower = 48
	}
	if d.SpecularStrength <= 0 {
		d.SpecularStrength = 0.35
	}
	if d.Tiling[0] == 0 {
		d.Tiling[0] = 1
	}
	if d.Tiling[1] == 0 {
		d.Tiling[1] = 1
	}
	if d.Color == "" {
		d.Color = "#808080"
	}
}

// ColorVec parses the definition's hex color into linear-ish RGBA (alpha 1).
// Unparseable colors fall back to mid grey.
func (d MaterialDef) ColorVec() mgl32.Vec4 {
	if v, ok := ParseHexColor(d.Color); ok {
		return v
	}
	return mgl32.Vec4{0.5, 0.5, 0.5, 1}
}

// ParseHexColor parses #RGB or #RRGGBB into an RGBA vector with alpha 1.
func ParseHexColor(s string) (mgl32.Vec4, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 4 || s[0] != '#' {
		return mgl32.Vec4{}, false
	}
	hex := s[1:]
	var r, g, b uint8
	switch len(hex) {
	case 3:
		r = hexNibble(hex[0]) * 17
		g = hexNibble(hex[1]) * 17
		b = hexNibble(hex[2]) * 17
	case 6:
		r = hexNibble(hex[0])<<4 + hexNibble(hex[1])
		g = hexNibble(hex[2])<<4 + hexNibble(hex[3])
		b = hexNibble(hex[4])<<4 + hexNibble(hex[5])
	default:
		return mgl32.Vec4{}, false
	}
	return mgl32.Vec4{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}, true
}

// FormatHexColor renders RGB components (0..1, clamped) as #rrggbb, the
// inverse of ParseHexColor up to 8-bit quantization.
func FormatHexColor(r, g, b float32) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v float32) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	const digits = "0123456789abcdef"
	n := uint8(v*255 + 0.5)
	return string([]byte{digits[n>>4], digits[n&0xf]})
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Library holds the ordered material list. Order is stable (sorted by file
// name on load) so MaterialIDs stay meaningful across frames.
type Library struct {
	defs    []MaterialDef
	version uint64 // bumped on every change so GPU materials can refresh
}

// DefaultLibrary returns the built-in set used when no material files exist.
func DefaultLibrary() *Library {
	defs := []MaterialDef{
		{Name: "Cobblestone", Color: "#8a8a8a"},
		{Name: "Bronze", Color: "#b08d57", SpecularPower: 96, SpecularStrength: 0.6},
		{Name: "Paint", Color: "#4f7cff", SpecularPower: 24},
		{Name: "Scratched", Color: "#777d86"},
		{Name: "Wood", Color: "#9a6b3f", SpecularStrength: 0.1},
	}
	for i := range defs {
		defs[i].normalize()
	}
	return &Library{defs: defs, version: 1}
}

// LoadLibrary reads every *.yaml file in dir, sorted by name. A missing dir
// is not an error: the default library is returned so the demo always has
// materials to draw with.
func LoadLibrary(dir string) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultLibrary(), nil
		}
		return nil, errors.Wrapf(err, "reading material dir %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return DefaultLibrary(), nil
	}
	sort.Strings(files)

	lib := &Library{version: 1}
	for _, name := range files {
		def, err := loadDef(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		lib.defs = append(lib.defs, def)
	}
	return lib, nil
}

func loadDef(path string) (MaterialDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MaterialDef{}, errors.Wrapf(err, "reading material %s", path)
	}
	var def MaterialDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return MaterialDef{}, errors.Wrapf(err, "parsing material %s", path)
	}
	if def.Name == "" {
		base := filepath.Base(path)
		def.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	def.normalize()
	return def, nil
}

// Count returns the number of materials.
func (l *Library) Count() int { return len(l.defs) }

// Version increases whenever any definition changes.
func (l *Library) Version() uint64 { return l.version }

// Clamp clamps a handle into the valid range. An empty library clamps
// everything to 0 so lookups stay total.
func (l *Library) Clamp(id MaterialID) MaterialID {
	if id < 0 || len(l.defs) == 0 {
		return 0
	}
	if int(id) >= len(l.defs) {
		return MaterialID(len(l.defs) - 1)
	}
	return id
}

// Def returns the definition for a (clamped) handle. An empty library yields
// the normalized zero definition rather than panicking.
func (l *Library) Def(id MaterialID) MaterialDef {
	if len(l.defs) == 0 {
		var d MaterialDef
		d.normalize()
		return d
	}
	return l.defs[l.Clamp(id)]
}

// Names returns display names in handle order.
func (l *Library) Names() []string {
	out := make([]string, len(l.defs))
	for i, d := range l.defs {
		out[i] = d.Name
	}
	return out
}

// SetDef overwrites the definition for a (clamped) handle and bumps the
// version so GPU-side materials refresh. Used by the debug UI for live
// color/specular edits. No-op on an empty library.
func (l *Library) SetDef(id MaterialID, def MaterialDef) {
	if len(l.defs) == 0 {
		return
	}
	def.normalize()
	l.defs[l.Clamp(id)] = def
	l.version++
}

// ReloadFile re-parses one material file (after a watcher event) and applies
// it to the entry with the matching file-derived or declared name. Files
// that no longer parse are skipped; live editing must never crash the demo.
func (l *Library) ReloadFile(path string) error {
	def, err := loadDef(path)
	if err != nil {
		return err
	}
	for i := range l.defs {
		if l.defs[i].Name == def.Name {
			l.defs[i] = def
			l.version++
			return nil
		}
	}
	l.defs = append(l.defs, def)
	l.version++
	return nil
}
