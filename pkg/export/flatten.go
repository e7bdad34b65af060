package export

import (
	"lms-presentation-be/internal/entity"
	"lms-presentation-be/pkg/lexical"
)

// maxBulletLevel is the deepest paragraph level DrawingML accepts (lvl 0..8)
const maxBulletLevel = 8

// FlattenValue turns an element value into plain text lines for a text box.
// Every content item becomes at least one line; rich-text items are expanded through
// the lexical parser and nested under the item's level.
func FlattenValue(v entity.ElementValue) []lexical.Line {
	if !v.IsStructured() {
		return lexical.ParseLines(v.Text())
	}

	lines := make([]lexical.Line, 0)
	for _, item := range v.Items() {
		if !lexical.IsLexical(item.Text) {
			lines = append(lines, lexical.Line{Text: item.Text, Level: clampLevel(item.Level)})
			continue
		}
		for _, l := range lexical.ParseLines(item.Text) {
			lines = append(lines, lexical.Line{Text: l.Text, Level: clampLevel(item.Level + l.Level)})
		}
	}
	return lines
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > maxBulletLevel {
		return maxBulletLevel
	}
	return level
}
