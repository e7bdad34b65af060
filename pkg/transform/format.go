package transform

import (
	"lms-presentation-be/pkg/layout"
)

// ResolveFormat normalises numeric measures to their unit-suffixed string form:
// fontSize -> "{n}pt", lineHeight -> "{n}", letterSpacing -> "{n}px".
// String measures and every other field pass through unchanged.
func ResolveFormat(f layout.TextFormat) layout.TextFormat {
	out := f
	out.FontSize = withSuffix(f.FontSize, "pt")
	out.LineHeight = withSuffix(f.LineHeight, "")
	out.LetterSpacing = withSuffix(f.LetterSpacing, "px")
	return out
}

func withSuffix(m *layout.Measure, suffix string) *layout.Measure {
	if m == nil || !m.IsNumber {
		return m
	}
	return layout.Str(m.String() + suffix)
}
