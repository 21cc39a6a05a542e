package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/invaders/assets"
	"github.com/milk9111/invaders/component"
)

// spritepreview loops one embedded spritesheet in a small window, so sheet
// edits can be checked without launching the game.

type previewGame struct {
	anim  *component.Animation
	scale float64
}

func (g *previewGame) Update() error {
	g.anim.Update()
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	frame := g.anim.CurrentFrame()
	if frame == nil {
		return
	}
	fw := float64(frame.Bounds().Dx()) * g.scale
	fh := float64(frame.Bounds().Dy()) * g.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((256-fw)/2, (256-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 256, 256
}

func main() {
	sheet := flag.String("sheet", "invader_a-Sheet.png", "embedded sheet to preview")
	frames := flag.Int("frames", 2, "frame count")
	fps := flag.Int("fps", 4, "playback frames per second")
	scale := flag.Float64("scale", 4, "draw scale")
	flag.Parse()

	img, err := assets.LoadImage(*sheet)
	if err != nil {
		log.Fatalf("load %s: %v", *sheet, err)
	}
	if *frames < 1 {
		*frames = 1
	}
	frameW := img.Bounds().Dx() / *frames
	anim := component.NewAnimation(img, frameW, img.Bounds().Dy(), *frames, *fps, true)

	ebiten.SetWindowSize(512, 512)
	ebiten.SetWindowTitle("sprite preview: " + *sheet)
	if err := ebiten.RunGame(&previewGame{anim: anim, scale: *scale}); err != nil {
		log.Fatal(err)
	}
}
