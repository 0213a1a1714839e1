package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mob-hanzawa/commonlib/internal/components"
	"github.com/mob-hanzawa/commonlib/internal/editor"
	"github.com/mob-hanzawa/commonlib/internal/engine"
	"github.com/mob-hanzawa/commonlib/internal/timetool"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fixedDelta = 1.0 / 50

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "commonlib demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	clock := timetool.NewGameClock()
	clock.FixedDelta = fixedDelta

	scene := buildScene()

	ed := editor.New(scene)
	ed.Selected = scene.FindByName("CameraRig")

	// Session stopwatch on unscaled time, respawn countdown on scaled time
	// so it freezes with the pause key below.
	session := timetool.NewStopwatch(clock, timetool.ClockUnscaled)
	respawn := timetool.NewCountdown(clock, timetool.ClockScaled, 3)
	session.Start()
	respawn.Start()

	sprite := engine.FindComponent[*components.FlipbookAnimation](scene.FindByName("Sprite"))
	relay := engine.FindComponent[*components.CollisionRelay](scene.FindByName("Sprite"))
	relay.Entered.AddListener(func(other *engine.GameObject) {
		log.Printf("collision with %s", other.Name)
	})

	scene.Start()
	sprite.Play()

	var fixedAccum float64
	paused := false

	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())

		if rl.IsKeyPressed(rl.KeyTab) {
			ed.Active = !ed.Active
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
			if paused {
				clock.TimeScale = 0
				respawn.Pause()
			} else {
				clock.TimeScale = 1
				respawn.Resume()
			}
		}

		clock.Advance(dt)
		fixedAccum += dt
		steps := 0
		for fixedAccum >= fixedDelta {
			fixedAccum -= fixedDelta
			steps++
		}
		clock.AdvanceFixed(steps)

		session.Tick()
		if respawn.Tick() {
			respawn.Restart()
			sprite.Play()
		}

		if !paused {
			scene.Update(float32(dt))
		}

		draw(scene, ed, session, respawn)
	}
}

func buildScene() *engine.Scene {
	scene := engine.NewScene("Demo")

	rig := engine.NewGameObject("CameraRig")
	cam := components.NewParallaxCamera()
	cam.Camera.Offset = rl.Vector2{X: 640, Y: 360}
	cam.Smoothing = 0.85
	cam.Layers = []components.ParallaxLayer{
		{Name: "Sky", Factor: rl.Vector2{X: 0.1, Y: 0.05}},
		{Name: "Hills", Factor: rl.Vector2{X: 0.4, Y: 0.2}},
		{Name: "Foreground", Factor: rl.Vector2{X: 1, Y: 1}},
	}
	rig.AddComponent(cam)

	sprite := engine.NewGameObject("Sprite")
	sprite.Transform.Position = rl.Vector2{X: 120, Y: 0}
	sheet := rl.LoadTextureFromImage(rl.GenImageChecked(128, 32, 32, 32, rl.Orange, rl.Maroon))
	anim := components.NewFlipbookAnimation(sheet, 32, 32, 4, 8)
	anim.Loop = false
	sprite.AddComponent(anim)
	sprite.AddComponent(components.NewCollisionRelay())
	rig.AddChild(sprite)

	scene.AddGameObject(rig)

	// Follow target is constrained to the rig's own tree, so the ref field
	// in the editor rejects drops from outside it.
	cam.Target.Set(sprite)

	return scene
}

func draw(scene *engine.Scene, ed *editor.Editor, session *timetool.Stopwatch, respawn *timetool.Countdown) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(rl.NewColor(12, 12, 18, 255))

	rig := scene.FindByName("CameraRig")
	cam := engine.FindComponent[*components.ParallaxCamera](rig)

	rl.BeginMode2D(cam.Camera)
	for i := range cam.Layers {
		offset := cam.LayerOffset(i)
		rl.DrawCircle(int32(offset.X), int32(offset.Y+200), 60, rl.NewColor(30+uint8(i)*30, 30, 60, 255))
	}
	if anim := engine.FindComponent[*components.FlipbookAnimation](scene.FindByName("Sprite")); anim != nil {
		anim.Draw()
	}
	rl.EndMode2D()

	rl.DrawText(fmt.Sprintf("session %.1fs  respawn %.1fs", session.Value(), respawn.Remaining()), 240, 10, 18, rl.RayWhite)
	rl.DrawText("TAB editor  SPACE pause", 240, 32, 14, rl.Gray)

	ed.DrawUI()
}
