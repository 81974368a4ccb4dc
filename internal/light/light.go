// Package light holds the scene light data consumed by the renderer.
package light

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Light types, matching the renderer's shader encoding.
const (
	TypeDirectional int32 = iota
	TypePoint
	TypeSpot
)

// MaxLights is the scene-wide cap on the light list.
const MaxLights = 64

// MinLights keeps the three fixed directional lights always present.
const MinLights = 3

// Light is one scene light. Which fields matter depends on Type:
// directional uses Direction; point uses Position and Range; spot uses
// Direction, Position, Range, and SpotFalloff.
type Light struct {
	Type        int32
	Direction   mgl32.Vec3
	Position    mgl32.Vec3
	Color       mgl32.Vec3
	Intensity   float32
	Range       float32
	SpotFalloff float32
}

// randomRange returns a uniform float in [min, max).
func randomRange(rng *rand.Rand, min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}

// Generate builds the demo light list: three fixed directional lights plus
// random point lights up to count. count is clamped to [MinLights, MaxLights].
func Generate(rng *rand.Rand, count int) []Light {
	if count < MinLights {
		count = MinLights
	}
	if count > MaxLights {
		count = MaxLights
	}

	lights := []Light{
		{
			Type:      TypeDirectional,
			Direction: mgl32.Vec3{1, -1, 1},
			Color:     mgl32.Vec3{0.8, 0.8, 0.8},
			Intensity: 1,
		},
		{
			Type:      TypeDirectional,
			Direction: mgl32.Vec3{-1, -0.25, 0},
			Color:     mgl32.Vec3{0.2, 0.2, 0.2},
			Intensity: 1,
		},
		{
			Type:      TypeDirectional,
			Direction: mgl32.Vec3{0, -1, 1},
			Color:     mgl32.Vec3{0.2, 0.2, 0.2},
			Intensity: 1,
		},
	}

	for len(lights) < count {
		lights = append(lights, Light{
			Type: TypePoint,
			Position: mgl32.Vec3{
				randomRange(rng, -10, 10),
				randomRange(rng, -5, 5),
				randomRange(rng, -10, 10),
			},
			Color: mgl32.Vec3{
				randomRange(rng, 0, 1),
				randomRange(rng, 0, 1),
				randomRange(rng, 0, 1),
			},
			Range:     randomRange(rng, 5, 10),
			Intensity: randomRange(rng, 0.1, 3),
		})
	}
	return lights
}
