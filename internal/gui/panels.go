// Package gui draws the immediate-mode debug panels: an entity inspector
// that edits transforms, handles, and material definitions live, a lights
// panel that edits the light list in place, and a camera panel that edits
// the active camera's transform. Draw must run after EndMode3D, in screen
// space.
package gui

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"orbit-demo/internal/assets"
	"orbit-demo/internal/entity"
	"orbit-demo/internal/light"
	"orbit-demo/internal/scene"
)

// Panel layout. Both panels are fixed-width columns pinned to the window
// edges; rows advance by rowH.
const (
	panelW   = 270
	panelPad = 10
	rowH     = 18
	rowGap   = 4
	labelW   = 64
)

// Panels is the debug UI state that survives between frames: which entity
// and light are selected, and whether the panels are shown at all.
type Panels struct {
	Visible bool

	entityIdx int32
	lightIdx  int32
}

// New returns the panel state with panels shown.
func New() *Panels {
	return &Panels{Visible: true}
}

// Toggle flips panel visibility.
func (p *Panels) Toggle() { p.Visible = !p.Visible }

// Draw renders and processes both panels. Widget interaction mutates the
// scene directly; there is no apply step.
func (p *Panels) Draw(s *scene.Scene) {
	if !p.Visible {
		return
	}
	p.drawEntityPanel(s)
	p.drawLightsPanel(s)
	p.drawCameraPanel(s)
}

// row is a cursor that hands out stacked widget rectangles inside a panel.
type row struct {
	x, y, w float32
}

func (r *row) next() rl.Rectangle {
	rect := rl.NewRectangle(r.x, r.y, r.w, rowH)
	r.y += rowH + rowGap
	return rect
}

// split returns a label rectangle and the remaining widget rectangle for
// one row.
func (r *row) split() (rl.Rectangle, rl.Rectangle) {
	full := r.next()
	label := rl.NewRectangle(full.X, full.Y, labelW, rowH)
	widget := rl.NewRectangle(full.X+labelW, full.Y, full.Width-labelW, rowH)
	return label, widget
}

func (p *Panels) drawEntityPanel(s *scene.Scene) {
	h := float32(630)
	bounds := rl.NewRectangle(panelPad, panelPad, panelW, h)
	gui.Panel(bounds, "Entities")

	r := &row{x: bounds.X + panelPad, y: bounds.Y + 24 + rowGap, w: bounds.Width - 2*panelPad}

	if len(s.Entities) == 0 {
		gui.Label(r.next(), "scene has no entities")
		return
	}
	if int(p.entityIdx) >= len(s.Entities) {
		p.entityIdx = 0
	}

	p.entityIdx = gui.ComboBox(r.next(), entityNames(s.Entities), p.entityIdx)
	e := s.Entities[p.entityIdx]
	t := e.Transform()

	lbl, w := r.split()
	gui.Label(lbl, "mesh")
	e.SetMesh(assets.MeshID(gui.ComboBox(w, strings.Join(assets.MeshNames(), ";"), int32(e.Mesh()))))

	lbl, w = r.split()
	gui.Label(lbl, "material")
	e.SetMaterial(assets.MaterialID(gui.ComboBox(w, strings.Join(s.Materials.Names(), ";"), int32(e.Material()))))

	gui.Label(r.next(), "position")
	pos := t.Position()
	px := slider(r, "x", pos.X(), -20, 20)
	py := slider(r, "y", pos.Y(), -20, 20)
	pz := slider(r, "z", pos.Z(), -20, 20)
	if px != pos.X() || py != pos.Y() || pz != pos.Z() {
		t.SetPosition(px, py, pz)
	}

	gui.Label(r.next(), "rotation (rad)")
	rot := t.PitchYawRoll()
	rx := slider(r, "pitch", rot.X(), -3.2, 3.2)
	ry := slider(r, "yaw", rot.Y(), -3.2, 3.2)
	rz := slider(r, "roll", rot.Z(), -3.2, 3.2)
	if rx != rot.X() || ry != rot.Y() || rz != rot.Z() {
		t.SetRotation(rx, ry, rz)
	}

	gui.Label(r.next(), "scale")
	sc := t.Scale()
	sx := slider(r, "x", sc.X(), 0.1, 5)
	sy := slider(r, "y", sc.Y(), 0.1, 5)
	sz := slider(r, "z", sc.Z(), 0.1, 5)
	if sx != sc.X() || sy != sc.Y() || sz != sc.Z() {
		t.SetScale(sx, sy, sz)
	}

	p.drawMaterialEditor(s, e.Material(), r)

	gui.Label(r.next(), "children")
	p.drawChildCheckboxes(s, r)

	s.GridVisible = gui.CheckBox(r.next(), "grid", s.GridVisible)
}

// drawMaterialEditor edits the selected entity's material definition in
// place: base color and specular terms. SetDef bumps the library version, so
// the GPU registry rebuilds the material on the next draw — same path as a
// YAML file edit.
func (p *Panels) drawMaterialEditor(s *scene.Scene, id assets.MaterialID, r *row) {
	def := s.Materials.Def(id)
	col := def.ColorVec()

	gui.Label(r.next(), "material def")
	cr := slider(r, "r", col.X(), 0, 1)
	cg := slider(r, "g", col.Y(), 0, 1)
	cb := slider(r, "b", col.Z(), 0, 1)
	pw := slider(r, "power", def.SpecularPower, 1, 256)
	st := slider(r, "strength", def.SpecularStrength, 0.05, 1)

	if cr != col.X() || cg != col.Y() || cb != col.Z() ||
		pw != def.SpecularPower || st != def.SpecularStrength {
		def.Color = assets.FormatHexColor(cr, cg, cb)
		def.SpecularPower = pw
		def.SpecularStrength = st
		s.Materials.SetDef(id, def)
	}
}

// drawChildCheckboxes shows one checkbox per other entity, checked when that
// entity is currently a child of the selected one. Toggling reparents via
// AddChild/RemoveChild; illegal edges (cycles, self) are silent no-ops in the
// transform layer, so the box simply stays unchecked.
func (p *Panels) drawChildCheckboxes(s *scene.Scene, r *row) {
	t := s.Entities[p.entityIdx].Transform()
	for i, other := range s.Entities {
		if int32(i) == p.entityIdx {
			continue
		}
		ot := other.Transform()
		attached := t.IndexOfChild(ot) >= 0
		now := gui.CheckBox(r.next(), other.Name, attached)
		if now && !attached {
			t.AddChild(ot)
		} else if !now && attached {
			t.RemoveChild(ot)
		}
	}
}

func entityNames(es []*entity.GameEntity) string {
	names := make([]string, len(es))
	for i, e := range es {
		names[i] = e.Name
	}
	return strings.Join(names, ";")
}

// slider draws one labelled float slider row and returns the (possibly
// edited) value.
func slider(r *row, name string, v, min, max float32) float32 {
	label, w := r.split()
	gui.Label(label, name)
	return gui.Slider(w, "", fmt.Sprintf("%.2f", v), v, min, max)
}

func (p *Panels) drawLightsPanel(s *scene.Scene) {
	sw := float32(rl.GetScreenWidth())
	h := float32(430)
	bounds := rl.NewRectangle(sw-panelW-panelPad, panelPad, panelW, h)
	gui.Panel(bounds, "Lights")

	r := &row{x: bounds.X + panelPad, y: bounds.Y + 24 + rowGap, w: bounds.Width - 2*panelPad}

	count := slider(r, "count", float32(s.LightCount()), light.MinLights, light.MaxLights)
	s.SetLightCount(int(count + 0.5))

	if len(s.Lights) == 0 {
		return
	}
	if int(p.lightIdx) >= len(s.Lights) {
		p.lightIdx = 0
	}
	p.lightIdx = int32(slider(r, "light", float32(p.lightIdx), 0, float32(len(s.Lights)-1)) + 0.5)
	l := &s.Lights[p.lightIdx]

	lbl, w := r.split()
	gui.Label(lbl, "type")
	l.Type = gui.ComboBox(w, "directional;point;spot", l.Type)

	gui.Label(r.next(), "direction")
	l.Direction[0] = slider(r, "x", l.Direction.X(), -1, 1)
	l.Direction[1] = slider(r, "y", l.Direction.Y(), -1, 1)
	l.Direction[2] = slider(r, "z", l.Direction.Z(), -1, 1)

	gui.Label(r.next(), "position")
	l.Position[0] = slider(r, "x", l.Position.X(), -15, 15)
	l.Position[1] = slider(r, "y", l.Position.Y(), -15, 15)
	l.Position[2] = slider(r, "z", l.Position.Z(), -15, 15)

	gui.Label(r.next(), "color")
	l.Color[0] = slider(r, "r", l.Color.X(), 0, 1)
	l.Color[1] = slider(r, "g", l.Color.Y(), 0, 1)
	l.Color[2] = slider(r, "b", l.Color.Z(), 0, 1)

	l.Intensity = slider(r, "intensity", l.Intensity, 0, 5)
	l.Range = slider(r, "range", l.Range, 0, 25)
	l.SpotFalloff = slider(r, "falloff", l.SpotFalloff, 0, 32)
}

// drawCameraPanel edits the active camera's transform directly: position and
// local rotation, whichever camera mode is driving the view. In orbit mode
// the position is the camera's local offset from the pivot, so editing it
// changes the orbit distance.
func (p *Panels) drawCameraPanel(s *scene.Scene) {
	sw := float32(rl.GetScreenWidth())
	h := float32(256)
	bounds := rl.NewRectangle(sw-panelW-panelPad, panelPad+440, panelW, h)
	gui.Panel(bounds, "Camera")

	r := &row{x: bounds.X + panelPad, y: bounds.Y + 24 + rowGap, w: bounds.Width - 2*panelPad}

	mode := "free"
	if s.ThirdPerson() {
		mode = "orbit"
	}
	gui.Label(r.next(), "mode: "+mode)

	t := s.ActiveCamera().Transform()

	gui.Label(r.next(), "position")
	pos := t.Position()
	px := slider(r, "x", pos.X(), -30, 30)
	py := slider(r, "y", pos.Y(), -30, 30)
	pz := slider(r, "z", pos.Z(), -30, 30)
	if px != pos.X() || py != pos.Y() || pz != pos.Z() {
		t.SetPosition(px, py, pz)
	}

	gui.Label(r.next(), "rotation (rad)")
	rot := t.PitchYawRoll()
	rx := slider(r, "pitch", rot.X(), -3.2, 3.2)
	ry := slider(r, "yaw", rot.Y(), -3.2, 3.2)
	rz := slider(r, "roll", rot.Z(), -3.2, 3.2)
	if rx != rot.X() || ry != rot.Y() || rz != rot.Z() {
		t.SetRotation(rx, ry, rz)
	}

	if s.ThirdPerson() {
		pr := s.Pivot().PitchYawRoll()
		gui.Label(r.next(), fmt.Sprintf("pivot pitch %.2f yaw %.2f", pr.X(), pr.Y()))
	}
}
