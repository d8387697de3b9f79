package internal

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only. It draws the original polygon with the
// diagonals found so far, saves it, and prints it to the terminal (iTerm only).

// Padding around the shape so that edges on the bounding box stay visible
const dbgDrawPadding = 40

func (t *Triangulation) dbgDraw(scale float64) {
	vertices := t.Ring.vertices
	if len(vertices) == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range vertices {
		minX = math.Min(minX, float64(v.point.X))
		minY = math.Min(minY, float64(v.point.Y))
		maxX = math.Max(maxX, float64(v.point.X))
		maxY = math.Max(maxY, float64(v.point.Y))
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Everything is drawn in polygon coordinates, flipped so the origin is at
	// the bottom left
	toCanvas := func(p Point) (float64, float64) {
		x := (float64(p.X)-minX)*scale + dbgDrawPadding
		y := float64(height) - ((float64(p.Y)-minY)*scale + dbgDrawPadding)
		return x, y
	}

	// Polygon, using the original input order rather than the current ring
	c.SetLineWidth(2)
	for i, v := range vertices {
		x, y := toCanvas(v.point)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Diagonals
	c.SetRGB(1, 1, 0)
	for _, d := range t.Diagonals {
		x1, y1 := toCanvas(vertices[d.From].point)
		x2, y2 := toCanvas(vertices[d.To].point)
		c.DrawLine(x1, y1, x2, y2)
		c.Stroke()
	}

	// Vertex indices
	c.SetRGB(1, 1, 1)
	for i, v := range vertices {
		x, y := toCanvas(v.point)
		c.DrawStringAnchored(fmt.Sprint(i), x, y, 0.5, 0.5)
	}

	c.SavePNG("/tmp/earclip.png")
	imgcat.CatFile("/tmp/earclip.png", os.Stdout)
}
