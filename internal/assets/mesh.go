// Package assets owns the shared mesh/material/texture definitions.
// Entities hold plain integer handles into this package; lookups clamp out
// of range handles instead of failing, so a stale handle from the debug UI
// can never index out of bounds. GPU-side resources built from these
// definitions live in the render package.
package assets

// MeshID is a handle into the built-in mesh set.
type MeshID int

// Built-in meshes, generated procedurally by the renderer on first use.
const (
	MeshSphere MeshID = iota
	MeshCube
	MeshCone
	MeshKnot

	meshCount
)

var meshNames = [meshCount]string{"Sphere", "Cube", "Cone", "Knot"}

// MeshCount returns the number of built-in meshes.
func MeshCount() int { return int(meshCount) }

// ClampMesh clamps a handle into the valid range.
func ClampMesh(id MeshID) MeshID {
	if id < 0 {
		return 0
	}
	if id >= meshCount {
		return meshCount - 1
	}
	return id
}

// Name returns a display name for the mesh.
func (id MeshID) Name() string { return meshNames[ClampMesh(id)] }

// MeshNames returns display names for all built-in meshes, in handle order.
func MeshNames() []string {
	out := make([]string, meshCount)
	copy(out, meshNames[:])
	return out
}
