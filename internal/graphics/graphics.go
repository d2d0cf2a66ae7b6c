package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Config describes the host window.
type Config struct {
	Title      string
	Width      int32
	Height     int32
	Background rl.Color
}

// Run opens a resizable window and runs the main loop at 60 FPS. Each frame
// it calls update (input, layout), then clears the screen and calls draw
// (the display tree). Returns when the window is closed. This keeps the
// windowing layer separate from widget code, which never touches the loop.
func Run(cfg Config, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(cfg.Background)
		draw()
		rl.EndDrawing()
	}
}
