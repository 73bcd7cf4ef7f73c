package chart

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var legendFill = color.NRGBA{R: 255, G: 255, B: 255, A: 204}

// legendBox shades the area behind a top-left legend. Plotters draw before
// the legend does, so adding it last puts it above the data and below the
// legend entries.
type legendBox struct {
	color color.Color
	pad   vg.Length
}

func (b legendBox) Plot(c draw.Canvas, p *plot.Plot) {
	size := p.Legend.Rectangle(c).Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	sty := p.Legend.TextStyle
	em := sty.Rectangle(" ").Max.X
	descent := sty.FontExtents().Descent

	top := c.Max.Y + p.Legend.YOffs
	left := c.Min.X + p.Legend.XOffs
	box := vg.Rectangle{
		Min: vg.Point{X: left - b.pad, Y: top - size.Y - descent - b.pad},
		Max: vg.Point{X: left + size.X + em + b.pad, Y: top + b.pad},
	}
	c.SetColor(b.color)
	c.Fill(box.Path())
}
