package ui

import "fmt"

// refreshFrames limits how often stats text is rebuilt, to keep per-frame
// allocations down.
const refreshFrames = 30

// Snapshot is the data the stats panel shows, gathered by the game layer so
// ui stays independent of the scene packages.
type Snapshot struct {
	FPS         int32
	Width       int
	Height      int
	Entities    int
	Lights      int
	Bodies      int
	ThirdPerson bool
}

// Stats is the top-center panel with frame and scene counters. It owns its
// nodes and rewrites their text every refreshFrames frames.
type Stats struct {
	panel    *Node
	title    *Node
	fps      *Node
	window   *Node
	entities *Node
	lights   *Node
	bodies   *Node
	camera   *Node

	frame uint32
}

// NewStats returns a stats panel styled by the .stats-* rules.
func NewStats() *Stats {
	return &Stats{
		panel:    NewPanel("stats"),
		title:    NewLabel("stats-title", "Stats"),
		fps:      NewLabel("stats-fps", ""),
		window:   NewLabel("stats-window", ""),
		entities: NewLabel("stats-entities", ""),
		lights:   NewLabel("stats-lights", ""),
		bodies:   NewLabel("stats-bodies", ""),
		camera:   NewLabel("stats-camera", ""),
	}
}

// AppendNodes refreshes the labels from snap and appends the panel's nodes
// to dst. When visible is false, dst is returned unchanged. Call every frame
// so visibility stays in sync.
func (st *Stats) AppendNodes(dst []*Node, visible bool, snap Snapshot) []*Node {
	if !visible {
		return dst
	}

	st.frame++
	if st.frame%refreshFrames == 1 {
		aspect := float32(0)
		if snap.Height > 0 {
			aspect = float32(snap.Width) / float32(snap.Height)
		}
		st.fps.Text = fmt.Sprintf("FPS: %d", snap.FPS)
		st.window.Text = fmt.Sprintf("Window: %dx%d (%.2f)", snap.Width, snap.Height, aspect)
		st.entities.Text = fmt.Sprintf("Entities: %d", snap.Entities)
		st.lights.Text = fmt.Sprintf("Lights: %d", snap.Lights)
		st.bodies.Text = fmt.Sprintf("Bodies: %d", snap.Bodies)
		if snap.ThirdPerson {
			st.camera.Text = "Camera: orbit"
		} else {
			st.camera.Text = "Camera: free"
		}
	}

	return append(dst, st.panel, st.title, st.fps, st.window,
		st.entities, st.lights, st.bodies, st.camera)
}
