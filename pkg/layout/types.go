package layout

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Grid dimensions of the slide canvas
const (
	GridColumns = 12
	GridRows    = 6
)

// Placeholder types understood by the transformation step.
// Any other string is allowed and treated as a free-form slot.
const (
	PlaceholderTitle   = "title"
	PlaceholderContent = "content"
	PlaceholderImage   = "image"
)

// GridRegion is a 1-indexed, end-exclusive cell range on the 12x6 canvas.
type GridRegion struct {
	ColumnStart int `json:"columnStart"`
	ColumnEnd   int `json:"columnEnd"`
	RowStart    int `json:"rowStart"`
	RowEnd      int `json:"rowEnd"`
}

// Validate checks the region stays inside the canvas and is non-empty.
func (g GridRegion) Validate() error {
	if g.ColumnStart < 1 || g.ColumnStart >= g.ColumnEnd || g.ColumnEnd > GridColumns+1 {
		return fmt.Errorf("invalid column range %d..%d", g.ColumnStart, g.ColumnEnd)
	}
	if g.RowStart < 1 || g.RowStart >= g.RowEnd || g.RowEnd > GridRows+1 {
		return fmt.Errorf("invalid row range %d..%d", g.RowStart, g.RowEnd)
	}
	return nil
}

// Measure is a styling length that may arrive as a JSON number or a string ("24pt").
// The original form is kept so it can be re-emitted unchanged.
type Measure struct {
	Number   float64
	Text     string
	IsNumber bool
}

// Num builds a numeric measure
func Num(v float64) *Measure {
	return &Measure{Number: v, IsNumber: true}
}

// Str builds a string measure
func Str(s string) *Measure {
	return &Measure{Text: s}
}

// String renders the raw value without any unit
func (m Measure) String() string {
	if m.IsNumber {
		return strconv.FormatFloat(m.Number, 'f', -1, 64)
	}
	return m.Text
}

func (m Measure) MarshalJSON() ([]byte, error) {
	if m.IsNumber {
		return json.Marshal(m.Number)
	}
	return json.Marshal(m.Text)
}

func (m *Measure) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Measure{Number: n, IsNumber: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("measure must be a number or a string: %w", err)
	}
	*m = Measure{Text: s}
	return nil
}

// TextFormat holds per-element styling. Every field is optional.
type TextFormat struct {
	FontSize        *Measure `json:"fontSize,omitempty"`
	FontFamily      string   `json:"fontFamily,omitempty"`
	Color           string   `json:"color,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	Bold            *bool    `json:"bold,omitempty"`
	Italic          *bool    `json:"italic,omitempty"`
	Underline       *bool    `json:"underline,omitempty"`
	TextAlign       string   `json:"textAlign,omitempty"`
	LineHeight      *Measure `json:"lineHeight,omitempty"`
	LetterSpacing   *Measure `json:"letterSpacing,omitempty"`
	TextTransform   string   `json:"textTransform,omitempty"`
}

// Clone copies the format including the values behind its pointers.
func (f TextFormat) Clone() TextFormat {
	out := f
	out.FontSize = f.FontSize.clone()
	out.LineHeight = f.LineHeight.clone()
	out.LetterSpacing = f.LetterSpacing.clone()
	out.Bold = cloneBool(f.Bold)
	out.Italic = cloneBool(f.Italic)
	out.Underline = cloneBool(f.Underline)
	return out
}

func (m *Measure) clone() *Measure {
	if m == nil {
		return nil
	}
	out := *m
	return &out
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	return Bool(*b)
}

// Bool returns a pointer to v, for building formats inline.
func Bool(v bool) *bool {
	return &v
}

// Placeholder is one content slot of a layout
type Placeholder struct {
	Type        string     `json:"type"`
	Grid        GridRegion `json:"grid"`
	Format      TextFormat `json:"format"`
	Placeholder string     `json:"placeholder"`
	Value       string     `json:"value"`
}

// Layout is a named slide template made of placeholder regions.
type Layout struct {
	Id          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Elements    []Placeholder `json:"elements"`
	IsDefault   bool          `json:"isDefault"`
	IsPublic    bool          `json:"isPublic"`
}

func (l Layout) clone() Layout {
	out := l
	if l.Elements == nil {
		return out
	}
	out.Elements = make([]Placeholder, len(l.Elements))
	for i, p := range l.Elements {
		p.Format = p.Format.Clone()
		out.Elements[i] = p
	}
	return out
}
