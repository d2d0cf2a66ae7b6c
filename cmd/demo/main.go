package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ring-widget/internal/anim"
	"ring-widget/internal/debug"
	"ring-widget/internal/display"
	"ring-widget/internal/eventlog"
	"ring-widget/internal/graphics"
	"ring-widget/internal/input"
	"ring-widget/internal/ringnode"
	"ring-widget/internal/theme"
)

const (
	windowWidth  = 900
	windowHeight = 340
	cellPadding  = 20
)

// themePath is an optional YAML theme applied to the last widget.
const themePath = "assets/theme.yaml"

// cellBounds splits the window into one row of equal cells, one per widget.
func cellBounds(i, count int, w, h float32) rl.Rectangle {
	cellW := w / float32(count)
	return rl.NewRectangle(
		float32(i)*cellW+cellPadding,
		cellPadding,
		cellW-2*cellPadding,
		h-2*cellPadding,
	)
}

func main() {
	log := eventlog.New(eventlog.DefaultPath)
	tree := display.New()
	rec := input.NewRecognizer()
	clock := anim.Real{}

	cpu := ringnode.New(tree, clock)
	cpu.Title = "CPU"
	cpu.RingProgress = 62
	cpu.RingColor = rl.Orange
	cpu.NodeColor = rl.DarkGray

	mem := ringnode.New(tree, clock)
	mem.Title = "Memory in use"
	mem.TitleFontSize = 18
	mem.TitleNumberOfLines = 2
	mem.RingProgress = 91
	mem.RingThickness = 16
	mem.RingColor = rl.SkyBlue
	mem.NodeColor = rl.NewColor(30, 40, 60, 255)

	themed := ringnode.New(tree, clock)
	if err := themed.Configure(theme.Load(themePath)); err != nil {
		log.Event("theme: " + err.Error())
	}

	widgets := []*ringnode.RingNode{cpu, mem, themed}
	for _, n := range widgets {
		n.SetTapListener(func(tapped *ringnode.RingNode) {
			log.Event("tap: " + tapped.Title)
		})
	}

	layout := func(w, h float32) {
		for i, n := range widgets {
			n.Render(cellBounds(i, len(widgets), w, h))
		}
	}

	// First paint and tap-region attachment happen before the loop; the
	// first Render per widget is the static one.
	layout(windowWidth, windowHeight)
	for i, n := range widgets {
		n.AttachToHost(rec, cellBounds(i, len(widgets), windowWidth, windowHeight))
	}
	log.Event("attached")

	// FPS overlay pinned above the widgets, so resize re-renders cannot
	// cover it; F1 toggles it.
	fps := debug.NewOverlay()
	tree.Pin(fps)

	lastW, lastH := float32(windowWidth), float32(windowHeight)
	update := func() {
		rec.Poll()
		if rl.IsKeyPressed(rl.KeyF1) {
			fps.Show = !fps.Show
		}
		w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
		if w != lastW || h != lastH {
			lastW, lastH = w, h
			layout(w, h)
		}
	}
	draw := func() {
		tree.Draw(clock.Now())
	}

	graphics.Run(graphics.Config{
		Title:      "ring-widget demo",
		Width:      windowWidth,
		Height:     windowHeight,
		Background: rl.NewColor(16, 18, 24, 255),
	}, update, draw)
}
