package main

import (
	"path/filepath"

	"orbit-demo/internal/assets"
	"orbit-demo/internal/config"
	"orbit-demo/internal/debug"
	"orbit-demo/internal/env"
	"orbit-demo/internal/graphics"
	"orbit-demo/internal/gui"
	"orbit-demo/internal/input"
	"orbit-demo/internal/logger"
	"orbit-demo/internal/render"
	"orbit-demo/internal/scene"
	"orbit-demo/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const initialAspect = 1280.0 / 720.0

func main() {
	_ = env.Load(".env")
	log := logger.New()
	prefs := config.Load()
	assetsDir := env.AssetsDir()

	lib, err := assets.LoadLibrary(filepath.Join(assetsDir, "materials"))
	if err != nil {
		log.Logf("material library: %v (using built-ins)", err)
		lib = assets.DefaultLibrary()
	}

	scn := scene.New(lib, log, initialAspect, prefs.LightCount)
	scn.GridVisible = prefs.GridVisible
	scn.SetThirdPerson(prefs.ThirdPerson)

	if w, err := assets.NewWatcher(filepath.Join(assetsDir, "materials")); err != nil {
		log.Logf("material watch disabled: %v", err)
	} else {
		scn.SetWatcher(w)
		defer w.Close()
	}

	renderer := render.New(render.NewRegistry(lib, assetsDir), assetsDir)
	defer renderer.Unload()

	panels := gui.New()
	stats := ui.NewStats()
	uiEngine := ui.New()
	if err := uiEngine.LoadCSS(filepath.Join(assetsDir, "ui", "style.css")); err != nil {
		log.Logf("using built-in UI style: %v", err)
	}

	overlays := debug.New()
	overlays.ShowFPS = prefs.ShowFPS
	overlays.ShowMemAlloc = prefs.ShowMemAlloc

	update := func(dt float32, in input.State) {
		if in.TogglePanels {
			panels.Toggle()
		}
		scn.Update(dt, in)
	}

	draw := func() {
		renderer.Draw(scn)
		panels.Draw(scn)

		uiEngine.SetNodes(stats.AppendNodes(nil, panels.Visible, ui.Snapshot{
			FPS:         rl.GetFPS(),
			Width:       rl.GetScreenWidth(),
			Height:      rl.GetScreenHeight(),
			Entities:    len(scn.Entities),
			Lights:      len(scn.Lights),
			Bodies:      len(scn.Physics.Bodies),
			ThirdPerson: scn.ThirdPerson(),
		}))
		uiEngine.Draw()
		overlays.Draw()
	}

	graphics.Run(prefs.VSync, update, draw, scn.OnResize)

	prefs.GridVisible = scn.GridVisible
	prefs.LightCount = scn.LightCount()
	prefs.ThirdPerson = scn.ThirdPerson()
	if err := config.Save(prefs); err != nil {
		log.Logf("saving prefs: %v", err)
	}
	log.Log("clean shutdown")
}
