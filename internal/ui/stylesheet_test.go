package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSSRules(t *testing.T) {
	sheet := ParseCSS(`
/* panel */
.stats { background: #1c1f26; width: 240px; left: 50%; }
#footer { color: #fff; top: 10; }
body { color: #000; } /* non class/id selector is skipped */
`)
	require.Len(t, sheet.Rules, 2)
	assert.Equal(t, ".stats", sheet.Rules[0].Selector)
	assert.Equal(t, "#footer", sheet.Rules[1].Selector)
	assert.Equal(t, "#1c1f26", sheet.Rules[0].Props["background"])
}

func TestResolveStyle(t *testing.T) {
	s := resolve(map[string]string{
		"background": "#102030",
		"color":      "#fff",
		"border":     "#abc",
		"width":      "240px",
		"height":     "20",
		"left":       "50%",
		"top":        "14",
		"padding":    "8",
	})
	assert.Equal(t, rl.NewColor(0x10, 0x20, 0x30, 255), s.Background)
	assert.Equal(t, rl.NewColor(255, 255, 255, 255), s.Color)
	assert.True(t, s.HasBorder)
	assert.Equal(t, rl.NewColor(0xaa, 0xbb, 0xcc, 255), s.Border)
	assert.Equal(t, int32(240), s.Width)
	assert.Equal(t, int32(20), s.Height)
	assert.Equal(t, int32(50), s.LeftPct)
	assert.Equal(t, int32(-1), s.TopPct)
	assert.Equal(t, int32(14), s.Top)
	assert.Equal(t, int32(8), s.Padding)
}

func TestResolveBadValuesKeepDefaults(t *testing.T) {
	s := resolve(map[string]string{
		"background": "notacolor",
		"width":      "wide",
		"left":       "150%",
	})
	d := defaultStyle()
	assert.Equal(t, d.Background, s.Background)
	assert.Equal(t, d.Width, s.Width)
	assert.Equal(t, d.LeftPct, s.LeftPct)
	assert.Equal(t, d.Left, s.Left)
}

func TestParseHexColorForms(t *testing.T) {
	c, ok := parseHexColor("#f0a")
	require.True(t, ok)
	assert.Equal(t, rl.NewColor(255, 0, 170, 255), c)

	_, ok = parseHexColor("#f0a0")
	assert.False(t, ok)
	_, ok = parseHexColor("red")
	assert.False(t, ok)
}
