package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3, msg string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], eps, "%s: component %d", msg, i)
	}
}

func assertMat4(t *testing.T, want, got mgl32.Mat4, msg string) {
	t.Helper()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, want[i], got[i], eps, "%s: element %d", msg, i)
	}
}

func TestWorldMatrixEqualsLocalWithoutParent(t *testing.T) {
	tr := New()
	tr.SetPosition(1, 2, 3)
	tr.SetRotation(0.3, 0.7, 0.1)
	tr.SetScale(2, 2, 2)
	assertMat4(t, tr.LocalMatrix(), tr.WorldMatrix(), "root world must equal local")
}

func TestWorldMatrixComposesWithParent(t *testing.T) {
	parent := New()
	parent.SetPosition(1, 0, 0)
	parent.SetRotation(0, float32(math.Pi/2), 0)

	child := New()
	child.SetPosition(2, 0, 0)
	parent.AddChild(child)

	want := parent.WorldMatrix().Mul4(child.LocalMatrix())
	assertMat4(t, want, child.WorldMatrix(), "child world must be parentWorld * local")

	// Yaw of pi/2 about Y maps +X to -Z: child lands at parent pos + (0,0,-2).
	assertVec3(t, mgl32.Vec3{1, 0, -2}, child.WorldPosition(), "rotated child position")
}

func TestAddRemoveChildRoundTrip(t *testing.T) {
	parent := New()
	a := New()
	b := New()
	parent.AddChild(a)

	parent.AddChild(b)
	require.Equal(t, 1, parent.IndexOfChild(b))
	require.Same(t, parent, b.Parent())

	parent.RemoveChild(b)
	assert.Equal(t, -1, parent.IndexOfChild(b), "removed child must not be listed")
	assert.Nil(t, b.Parent(), "removed child must have no parent back-reference")
	assert.Equal(t, 1, parent.ChildCount(), "pre-add child list must be restored")
	assert.Equal(t, 0, parent.IndexOfChild(a))
}

func TestAddChildNoOps(t *testing.T) {
	parent := New()
	child := New()
	parent.AddChild(child)

	cases := []struct {
		name string
		call func()
	}{
		{"nil child", func() { parent.AddChild(nil) }},
		{"self as child", func() { parent.AddChild(parent) }},
		{"duplicate child", func() { parent.AddChild(child) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.call()
			assert.Equal(t, 1, parent.ChildCount())
			assert.Same(t, parent, child.Parent())
		})
	}
}

func TestCycleRejected(t *testing.T) {
	root := New()
	mid := New()
	leaf := New()
	root.AddChild(mid)
	mid.AddChild(leaf)

	// An ancestor may not become a child of its own descendant.
	leaf.AddChild(root)
	assert.Equal(t, -1, leaf.IndexOfChild(root), "descendant must reject ancestor as child")
	assert.Equal(t, 0, leaf.ChildCount())
	assert.Nil(t, root.Parent(), "rejected add must not set a parent")

	mid.AddChild(root)
	assert.Equal(t, -1, mid.IndexOfChild(root))

	// Direct cycle.
	root.AddChild(root)
	assert.Equal(t, -1, root.IndexOfChild(root))
}

func TestReparentingKeepsSingleParent(t *testing.T) {
	a := New()
	b := New()
	child := New()

	a.AddChild(child)
	b.AddChild(child)

	assert.Equal(t, -1, a.IndexOfChild(child), "child must leave old parent's list")
	assert.Equal(t, 0, b.IndexOfChild(child), "child must appear in new parent's list")
	require.Same(t, b, child.Parent())
	assert.Equal(t, 0, a.ChildCount())
	assert.Equal(t, 1, b.ChildCount())
}

func TestMoveAbsoluteOnlyChangesPosition(t *testing.T) {
	tr := New()
	tr.SetRotation(0.2, 0.4, 0.6)
	tr.SetScale(3, 3, 3)
	rotBefore := tr.PitchYawRoll()
	scaleBefore := tr.Scale()

	tr.MoveAbsolute(1, -2, 5)

	assertVec3(t, mgl32.Vec3{1, -2, 5}, tr.Position(), "position after MoveAbsolute")
	assertVec3(t, rotBefore, tr.PitchYawRoll(), "rotation untouched")
	assertVec3(t, scaleBefore, tr.Scale(), "scale untouched")
}

func TestMoveAbsoluteIgnoresRotation(t *testing.T) {
	tr := New()
	tr.SetRotation(0, float32(math.Pi/2), 0)
	tr.MoveAbsolute(1, 0, 0)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, tr.Position(), "absolute move must not be rotated")
}

func TestMoveRelativeRotatesDelta(t *testing.T) {
	tr := New()
	tr.SetRotation(0, float32(math.Pi/2), 0)
	// Yaw pi/2 maps +Z to +X.
	tr.MoveRelative(0, 0, 1)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, tr.Position(), "relative move follows facing")
}

func TestRotateIsAdditive(t *testing.T) {
	split := New()
	split.Rotate(0.1, 0.2, 0.3)
	split.Rotate(0.4, 0.5, 0.6)

	once := New()
	once.Rotate(0.5, 0.7, 0.9)

	assertVec3(t, once.PitchYawRoll(), split.PitchYawRoll(), "Rotate(a);Rotate(b) == Rotate(a+b)")
	assertMat4(t, once.LocalMatrix(), split.LocalMatrix(), "accumulated orientation matches")
}

func TestParentMovePropagatesToChild(t *testing.T) {
	e := New() // entity at origin
	c := New() // child at local offset (2,0,0)
	c.SetPosition(2, 0, 0)
	e.AddChild(c)

	// Prime caches, then mutate the parent: descendants must see fresh values.
	_ = c.WorldMatrix()
	e.MoveAbsolute(1, 0, 0)

	assertVec3(t, mgl32.Vec3{1, 0, 0}, e.WorldPosition(), "entity world position")
	assertVec3(t, mgl32.Vec3{3, 0, 0}, c.WorldPosition(), "child world position")
}

func TestGrandchildSeesAncestorChange(t *testing.T) {
	root := New()
	mid := New()
	leaf := New()
	root.AddChild(mid)
	mid.AddChild(leaf)
	mid.SetPosition(0, 1, 0)
	leaf.SetPosition(0, 0, 4)

	_ = leaf.WorldMatrix()
	root.SetPosition(5, 0, 0)

	assertVec3(t, mgl32.Vec3{5, 1, 4}, leaf.WorldPosition(), "two-level propagation")
}

func TestDetachRestoresLocalAsWorld(t *testing.T) {
	parent := New()
	parent.SetPosition(10, 0, 0)
	child := New()
	child.SetPosition(1, 0, 0)
	parent.AddChild(child)
	assertVec3(t, mgl32.Vec3{11, 0, 0}, child.WorldPosition(), "attached world")

	parent.RemoveChild(child)
	assertVec3(t, mgl32.Vec3{1, 0, 0}, child.WorldPosition(), "detached world equals local")
}

func TestScaleComposesDownTheTree(t *testing.T) {
	parent := New()
	parent.SetScale(2, 2, 2)
	child := New()
	child.SetPosition(1, 0, 0)
	parent.AddChild(child)
	// Parent scale doubles the child's offset.
	assertVec3(t, mgl32.Vec3{2, 0, 0}, child.WorldPosition(), "scaled child offset")
}
