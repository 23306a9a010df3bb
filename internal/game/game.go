package game

import (
	"fmt"
	"log"
	"time"

	"interact3d/internal/audio"
	"interact3d/internal/components"
	"interact3d/internal/engine"
	"interact3d/internal/hud"
	"interact3d/internal/interact"
	"interact3d/internal/scripts"
	"interact3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	World       *world.World
	ScenePath   string
	Player      *engine.GameObject
	Raycaster   *interact.Raycaster
	HeldDisplay *hud.HeldItemDisplay
	Crosshair   *hud.Crosshair
	DebugMode   bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(scenePath string) *Game {
	return &Game{
		World:     world.New(),
		ScenePath: scenePath,
	}
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 720, "interact3d")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	if err := audio.Init(); err != nil {
		// Clicks stay silent; everything else runs.
		log.Printf("Audio: %v", err)
	}
	defer audio.Close()
	audio.SynthClip("click", 1200, 60*time.Millisecond, audio.WaveTriangle)

	if err := g.World.LoadScene(g.ScenePath); err != nil {
		return err
	}
	g.World.Initialize()
	g.setupPlayer()

	g.HeldDisplay = hud.NewHeldItemDisplay(g.World.Registry)
	g.Crosshair = hud.NewCrosshair(g.Raycaster)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

// setupPlayer uses the scene's raycaster, or spawns a default player when the
// scene has none.
func (g *Game) setupPlayer() {
	for _, obj := range g.World.Scene.All() {
		if r := engine.GetComponent[*interact.Raycaster](obj); r != nil {
			g.Raycaster = r
			g.Player = obj
			return
		}
	}

	g.Player = engine.NewGameObject("Player")
	g.Player.Transform.Position = rl.Vector3{X: 0, Y: 0, Z: 6}

	fps := components.NewFPSController()
	g.Player.AddComponent(fps)

	cam := components.NewCamera()
	cam.IsMain = true
	g.Player.AddComponent(cam)

	g.Raycaster = interact.NewRaycaster()
	g.Raycaster.Input = interact.MouseInput{}
	g.Player.AddComponent(g.Raycaster)

	g.World.SpawnObject(g.Player)
	log.Println("Game: scene has no raycaster, spawned default player")
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
		g.Raycaster.Debug = g.DebugMode
	}

	if cam := g.World.MainCamera(); cam != nil {
		cam.Aspect = float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	}
	g.World.Update(deltaTime)

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	cam := g.World.MainCamera()
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.World.Draw(cam.ViewPose())
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Mouse to look", 10, 10, 20, rl.LightGray)
	rl.DrawText("Click to pick up or use, Right click to drop, F1 debug", 10, 35, 20, rl.LightGray)
	g.HeldDisplay.Draw()
	g.Crosshair.Draw()

	if g.DebugMode {
		rl.DrawFPS(10, 90)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 115, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 135, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Culled: %d", g.World.Culled()), 10, 155, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Audio:  %d playing", audio.Playing()), 10, 175, 16, rl.Green)
		g.drawMachineContents(10, 205)
	}
}

// drawMachineContents lists what each machine in the scene has been fed.
func (g *Game) drawMachineContents(x, y int32) {
	for _, obj := range g.World.Scene.All() {
		h := engine.GetComponent[*scripts.ItemInteraction](obj)
		if h == nil {
			continue
		}
		text := obj.Name + " " + h.Tracker.Contents().String()
		rl.DrawText(text, x, y, 16, rl.SkyBlue)
		y += 16 * 7
	}
}
