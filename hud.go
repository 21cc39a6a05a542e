package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/invaders/common"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// drawHUD paints the score line across the top and the lives/wave readout
// along the bottom.
func (g *Game) drawHUD(screen *ebiten.Image) {
	drawText(screen, fmt.Sprintf("SCORE %06d", g.score.Current), 10, 8, colornames.White)
	drawText(screen, fmt.Sprintf("HI %06d", g.score.High), common.BaseWidth/2-40, 8, colornames.White)
	drawText(screen, fmt.Sprintf("WAVE %d", g.formation.Wave()), common.BaseWidth-80, 8, colornames.White)
	drawText(screen, fmt.Sprintf("LIVES %d", g.health.Current), 10, common.BaseHeight-20, colornames.Lightgreen)
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, hudFace, op)
}
