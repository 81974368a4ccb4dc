package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 20

// defaultCSS styles the stats panel when no stylesheet file is present.
// A file loaded with LoadCSS replaces it entirely.
const defaultCSS = `
.stats { background: #1c1f26; border: #3a3f4b; width: 240; height: 184; left: 50%; top: 10; }
.stats-title { color: #e8e8e8; width: 240; height: 24; left: 50%; top: 14; padding: 8; }
.stats-fps { color: #b8bec9; width: 240; height: 20; left: 50%; top: 42; padding: 8; }
.stats-window { color: #b8bec9; width: 240; height: 20; left: 50%; top: 66; padding: 8; }
.stats-entities { color: #b8bec9; width: 240; height: 20; left: 50%; top: 90; padding: 8; }
.stats-lights { color: #b8bec9; width: 240; height: 20; left: 50%; top: 114; padding: 8; }
.stats-bodies { color: #b8bec9; width: 240; height: 20; left: 50%; top: 138; padding: 8; }
.stats-camera { color: #b8bec9; width: 240; height: 20; left: 50%; top: 162; padding: 8; }
`

// Engine draws styled nodes in order (first node at the back). Styles are
// resolved once and cached until the sheet or node list changes.
type Engine struct {
	sheet      *Stylesheet
	nodes      []*Node
	cached     []ComputedStyle
	cacheValid bool
}

// New returns an engine with the built-in stylesheet.
func New() *Engine {
	return &Engine{sheet: ParseCSS(defaultCSS)}
}

// LoadCSS replaces the stylesheet from a file. A missing file keeps the
// current sheet and returns the error for logging.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.sheet = ParseCSS(string(data))
	e.cacheValid = false
	return nil
}

// SetNodes replaces the node list.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
	e.cacheValid = false
}

// styleFor merges every matching rule for a node, last rule winning.
func (e *Engine) styleFor(n *Node) ComputedStyle {
	merged := make(map[string]string)
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		match := (sel[0] == '.' && n.Class == sel[1:]) ||
			(sel[0] == '#' && n.ID == sel[1:])
		if !match {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return resolve(merged)
}

// Draw renders all nodes: background, border, then text.
func (e *Engine) Draw() {
	if !e.cacheValid {
		e.cached = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			e.cached[i] = e.styleFor(n)
			if e.cached[i].Width > 0 {
				n.Bounds.Width = float32(e.cached[i].Width)
			}
			if e.cached[i].Height > 0 {
				n.Bounds.Height = float32(e.cached[i].Height)
			}
			n.Bounds.X = float32(e.cached[i].Left)
			n.Bounds.Y = float32(e.cached[i].Top)
		}
		e.cacheValid = true
	}

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for i, n := range e.nodes {
		style := e.cached[i]
		w := int32(n.Bounds.Width)
		h := int32(n.Bounds.Height)
		x := int32(n.Bounds.X)
		y := int32(n.Bounds.Y)
		if style.LeftPct >= 0 {
			x = (screenW - w) * style.LeftPct / 100
		}
		if style.TopPct >= 0 {
			y = (screenH - h) * style.TopPct / 100
		}

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			rl.DrawText(n.Text, x+style.Padding, y+style.Padding, fontSize, style.Color)
		}
	}
}
