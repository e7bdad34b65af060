package grid

import (
	"math"

	"lms-presentation-be/pkg/layout"
)

// Bounds is a region expressed as percentages of the canvas.
type Bounds struct {
	LeftPercent   float64 `json:"leftPercent"`
	TopPercent    float64 `json:"topPercent"`
	WidthPercent  float64 `json:"widthPercent"`
	HeightPercent float64 `json:"heightPercent"`
}

// ResolveBounds maps a grid region of the 12x6 canvas to percentage bounds.
func ResolveBounds(region layout.GridRegion) Bounds {
	cols := float64(layout.GridColumns)
	rows := float64(layout.GridRows)
	return Bounds{
		LeftPercent:   float64(region.ColumnStart-1) / cols * 100,
		TopPercent:    float64(region.RowStart-1) / rows * 100,
		WidthPercent:  float64(region.ColumnEnd-region.ColumnStart) / cols * 100,
		HeightPercent: float64(region.RowEnd-region.RowStart) / rows * 100,
	}
}

// Rect is an absolute rectangle, in the unit of the canvas it was resolved against.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// ToAbsolute converts percentage bounds into the canvas unit.
func (b Bounds) ToAbsolute(c Canvas) Rect {
	return Rect{
		X: b.LeftPercent / 100 * c.Width,
		Y: b.TopPercent / 100 * c.Height,
		W: b.WidthPercent / 100 * c.Width,
		H: b.HeightPercent / 100 * c.Height,
	}
}

// Inset shrinks the rectangle by margin on every side. Margins larger than half the
// size collapse that dimension to zero instead of going negative.
func (r Rect) Inset(margin float64) Rect {
	out := Rect{X: r.X + margin, Y: r.Y + margin, W: r.W - 2*margin, H: r.H - 2*margin}
	if out.W < 0 {
		out.X, out.W = r.X+r.W/2, 0
	}
	if out.H < 0 {
		out.Y, out.H = r.Y+r.H/2, 0
	}
	return out
}

// EMU converts a rectangle measured in canvas.Unit to integer EMU.
func (r Rect) EMU(unit Unit) (x, y, w, h int64) {
	return toEMU(r.X, unit), toEMU(r.Y, unit), toEMU(r.W, unit), toEMU(r.H, unit)
}

func toEMU(v float64, unit Unit) int64 {
	return int64(math.Round(v * unit.EMUPer()))
}
