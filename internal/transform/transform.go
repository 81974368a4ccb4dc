package transform

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a node in the scene hierarchy: a local position, rotation
// (pitch/yaw/roll in radians), and scale, plus an optional parent and a list
// of children. The world matrix composes the local matrix with every ancestor
// and is cached behind a dirty flag; any local change marks the whole subtree
// dirty so staleness never leaks to callers.
//
// Hierarchy mutations are silently idempotent: adding an existing child,
// removing an absent one, or attempting to create a cycle are all no-ops.
// The debug UI toggles parent/child links arbitrarily between frames, so
// none of these paths may panic or error.
type Transform struct {
	position mgl32.Vec3
	rotation mgl32.Vec3 // pitch (X), yaw (Y), roll (Z), radians
	scale    mgl32.Vec3

	world mgl32.Mat4
	dirty bool

	parent   *Transform
	children []*Transform
}

// New returns an identity transform: zero position and rotation, scale one.
func New() *Transform {
	return &Transform{
		scale: mgl32.Vec3{1, 1, 1},
		dirty: true,
	}
}

// Position returns the local position.
func (t *Transform) Position() mgl32.Vec3 { return t.position }

// PitchYawRoll returns the local rotation as pitch/yaw/roll radians.
func (t *Transform) PitchYawRoll() mgl32.Vec3 { return t.rotation }

// Scale returns the local scale.
func (t *Transform) Scale() mgl32.Vec3 { return t.scale }

// Parent returns the current parent, or nil for a root transform.
func (t *Transform) Parent() *Transform { return t.parent }

// ChildCount returns the number of direct children.
func (t *Transform) ChildCount() int { return len(t.children) }

// Children returns a copy of the direct child list.
func (t *Transform) Children() []*Transform {
	out := make([]*Transform, len(t.children))
	copy(out, t.children)
	return out
}

// SetPosition overwrites the local position.
func (t *Transform) SetPosition(x, y, z float32) {
	t.position = mgl32.Vec3{x, y, z}
	t.markDirty()
}

// SetRotation overwrites the local rotation (pitch, yaw, roll radians).
// No range constraints; angles wrap naturally through the trig functions.
func (t *Transform) SetRotation(pitch, yaw, roll float32) {
	t.rotation = mgl32.Vec3{pitch, yaw, roll}
	t.markDirty()
}

// SetScale overwrites the local scale.
func (t *Transform) SetScale(x, y, z float32) {
	t.scale = mgl32.Vec3{x, y, z}
	t.markDirty()
}

// MoveAbsolute adds the delta to the local position, ignoring rotation.
func (t *Transform) MoveAbsolute(dx, dy, dz float32) {
	t.position = t.position.Add(mgl32.Vec3{dx, dy, dz})
	t.markDirty()
}

// MoveRelative rotates the delta by the current local rotation before adding
// it, so (0,0,dz) moves along the transform's own forward axis.
func (t *Transform) MoveRelative(dx, dy, dz float32) {
	t.position = t.position.Add(t.RotationQuat().Rotate(mgl32.Vec3{dx, dy, dz}))
	t.markDirty()
}

// Rotate adds the deltas to the existing rotation. Additive: repeated calls
// accumulate, producing continuous spin.
func (t *Transform) Rotate(pitch, yaw, roll float32) {
	t.rotation = t.rotation.Add(mgl32.Vec3{pitch, yaw, roll})
	t.markDirty()
}

// AddChild appends c as a child and sets its parent back-reference.
// No-op when c is nil, the receiver itself, already a child, or an ancestor
// of the receiver (a transform may never become a child of its own
// descendant). A transform has at most one parent: if c is currently a child
// of another transform it is detached from that parent first.
func (t *Transform) AddChild(c *Transform) {
	if c == nil || c == t || t.IndexOfChild(c) >= 0 || t.hasAncestor(c) {
		return
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	t.children = append(t.children, c)
	c.parent = t
	c.markDirty()
}

// RemoveChild removes c from the child list and clears its parent
// back-reference. No-op if c is not a child.
func (t *Transform) RemoveChild(c *Transform) {
	i := t.IndexOfChild(c)
	if i < 0 {
		return
	}
	t.children = append(t.children[:i], t.children[i+1:]...)
	c.parent = nil
	c.markDirty()
}

// IndexOfChild returns the position of c in the child list, or -1 if absent.
func (t *Transform) IndexOfChild(c *Transform) int {
	for i, ch := range t.children {
		if ch == c {
			return i
		}
	}
	return -1
}

// hasAncestor reports whether a appears on the receiver's parent chain.
func (t *Transform) hasAncestor(a *Transform) bool {
	for p := t.parent; p != nil; p = p.parent {
		if p == a {
			return true
		}
	}
	return false
}

// markDirty invalidates the cached world matrix of this transform and every
// descendant, so the next WorldMatrix query recomposes from the root down.
func (t *Transform) markDirty() {
	t.dirty = true
	for _, c := range t.children {
		c.markDirty()
	}
}

// RotationQuat returns the local rotation as a quaternion: yaw about Y,
// then pitch about X, then roll about Z.
func (t *Transform) RotationQuat() mgl32.Quat {
	sp, cp := math32.Sincos(t.rotation.X() * 0.5)
	sy, cy := math32.Sincos(t.rotation.Y() * 0.5)
	sr, cr := math32.Sincos(t.rotation.Z() * 0.5)
	yaw := mgl32.Quat{W: cy, V: mgl32.Vec3{0, sy, 0}}
	pitch := mgl32.Quat{W: cp, V: mgl32.Vec3{sp, 0, 0}}
	roll := mgl32.Quat{W: cr, V: mgl32.Vec3{0, 0, sr}}
	return yaw.Mul(pitch).Mul(roll)
}

// LocalMatrix returns translation * rotation * scale for this transform
// alone, ignoring any parent.
func (t *Transform) LocalMatrix() mgl32.Mat4 {
	tr := mgl32.Translate3D(t.position.X(), t.position.Y(), t.position.Z())
	rot := t.RotationQuat().Mat4()
	sc := mgl32.Scale3D(t.scale.X(), t.scale.Y(), t.scale.Z())
	return tr.Mul4(rot).Mul4(sc)
}

// WorldMatrix returns the matrix mapping local space to scene space:
// the local matrix composed with the parent's world matrix (identity when
// there is no parent). Recomputed lazily only when dirty.
func (t *Transform) WorldMatrix() mgl32.Mat4 {
	if t.dirty {
		local := t.LocalMatrix()
		if t.parent != nil {
			t.world = t.parent.WorldMatrix().Mul4(local)
		} else {
			t.world = local
		}
		t.dirty = false
	}
	return t.world
}

// WorldPosition returns the translation component of the world matrix.
func (t *Transform) WorldPosition() mgl32.Vec3 {
	w := t.WorldMatrix()
	return mgl32.Vec3{w[12], w[13], w[14]}
}
