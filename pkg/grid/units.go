package grid

// Unit of an absolute canvas measurement.
type Unit int

const (
	UnitInch Unit = iota
	UnitPoint
	UnitEMU
)

// Conversion constants. Office documents store geometry in English Metric Units.
const (
	EMUPerInch  = 914400
	EMUPerPoint = 12700
	PointPerIn  = 72
)

// EMUPer returns how many EMU make one unit.
func (u Unit) EMUPer() float64 {
	switch u {
	case UnitInch:
		return EMUPerInch
	case UnitPoint:
		return EMUPerPoint
	default:
		return 1
	}
}

func (u Unit) String() string {
	switch u {
	case UnitInch:
		return "in"
	case UnitPoint:
		return "pt"
	case UnitEMU:
		return "emu"
	default:
		return ""
	}
}

// Canvas is the fixed absolute page size used for export.
type Canvas struct {
	Width  float64
	Height float64
	Unit   Unit
}

// DefaultCanvas is a 16:9 slide, 10in x 5.625in.
var DefaultCanvas = Canvas{Width: 10, Height: 5.625, Unit: UnitInch}

// NewInchCanvas builds a canvas in inches, falling back to DefaultCanvas for
// non-positive dimensions.
func NewInchCanvas(width, height float64) Canvas {
	if width <= 0 || height <= 0 {
		return DefaultCanvas
	}
	return Canvas{Width: width, Height: height, Unit: UnitInch}
}

// InPoints converts the canvas to points
func (c Canvas) InPoints() Canvas {
	factor := c.Unit.EMUPer() / EMUPerPoint
	return Canvas{Width: c.Width * factor, Height: c.Height * factor, Unit: UnitPoint}
}

// EMU returns the canvas size in EMU.
func (c Canvas) EMU() (w, h int64) {
	return toEMU(c.Width, c.Unit), toEMU(c.Height, c.Unit)
}
