package entity

import (
	"orbit-demo/internal/assets"
	"orbit-demo/internal/transform"
)

// GameEntity is one drawable object in the scene: a name, an owned
// transform, and non-owning mesh/material handles into the asset registry.
// Meshes and materials are shared freely between entities; the registry owns
// them and frees them only at shutdown.
type GameEntity struct {
	Name string

	transform *transform.Transform
	mesh      assets.MeshID
	material  assets.MaterialID
}

// New returns an entity with a fresh identity transform.
func New(name string, mesh assets.MeshID, material assets.MaterialID) *GameEntity {
	return &GameEntity{
		Name:      name,
		transform: transform.New(),
		mesh:      mesh,
		material:  material,
	}
}

// Transform returns the entity's transform.
func (e *GameEntity) Transform() *transform.Transform { return e.transform }

// Mesh returns the entity's mesh handle.
func (e *GameEntity) Mesh() assets.MeshID { return e.mesh }

// SetMesh stores a new mesh handle. Range checking happens at registry
// lookup, which clamps, so a stale handle can never index out of bounds.
func (e *GameEntity) SetMesh(id assets.MeshID) { e.mesh = id }

// Material returns the entity's material handle.
func (e *GameEntity) Material() assets.MaterialID { return e.material }

// SetMaterial stores a new material handle.
func (e *GameEntity) SetMaterial(id assets.MaterialID) { e.material = id }
