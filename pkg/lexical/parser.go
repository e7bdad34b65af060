package lexical

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parser flattens Lexical editor JSON into plain text lines
type Parser struct{}

// NewParser creates a new parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts a Lexical JSON string to plain lines, one per block or list item.
func (p *Parser) Parse(jsonContent string) ([]Line, error) {
	var root LexicalRoot
	if err := json.Unmarshal([]byte(jsonContent), &root); err != nil {
		return nil, fmt.Errorf("failed to parse lexical json: %w", err)
	}

	lines := make([]Line, 0)
	p.walkBlock(root.Root, 0, &lines)
	return lines, nil
}

// IsLexical is a quick check for serialized editor state
func IsLexical(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), `{"root":`)
}

// ParseLines returns the lines of content. Lexical JSON is flattened; anything else
// (or JSON that fails to parse) is split on newlines.
func ParseLines(content string) []Line {
	if IsLexical(content) {
		if lines, err := NewParser().Parse(strings.TrimSpace(content)); err == nil {
			return lines
		}
	}

	lines := make([]Line, 0)
	for _, l := range strings.Split(content, "\n") {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, Line{Text: l})
	}
	return lines
}

// ParseContent is a convenience function returning the flattened text joined by newlines
func ParseContent(content string) string {
	lines := ParseLines(content)
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

func (p *Parser) walkBlock(node Node, depth int, lines *[]Line) {
	switch node.Type {
	case "root":
		for _, child := range node.Children {
			p.walkBlock(child, depth, lines)
		}

	case "paragraph", "heading", "quote":
		text := strings.TrimSpace(p.inlineText(node))
		if text != "" {
			*lines = append(*lines, Line{Text: text, Level: depth + node.Indent})
		}

	case "list":
		p.handleList(node, depth, lines)

	case "table":
		p.handleTable(node, lines)

	case "horizontalrule":
		// no text

	default:
		if node.Text != "" {
			*lines = append(*lines, Line{Text: node.Text, Level: depth})
			return
		}
		for _, child := range node.Children {
			p.walkBlock(child, depth, lines)
		}
	}
}

func (p *Parser) handleList(node Node, depth int, lines *[]Line) {
	index := 1
	if node.Start > 0 {
		index = node.Start
	}

	for _, item := range node.Children {
		if item.Type != "listitem" {
			continue
		}

		var sb strings.Builder
		var nested []Node
		for _, child := range item.Children {
			if child.Type == "list" {
				nested = append(nested, child)
				continue
			}
			sb.WriteString(p.inlineText(child))
		}

		text := strings.TrimSpace(sb.String())
		if text != "" {
			switch node.ListType {
			case "number":
				text = fmt.Sprintf("%d. %s", index, text)
				index++
			case "check":
				if item.Checked {
					text = "[x] " + text
				} else {
					text = "[ ] " + text
				}
			}
			*lines = append(*lines, Line{Text: text, Level: depth})
		}

		for _, n := range nested {
			p.handleList(n, depth+1, lines)
		}
	}
}

func (p *Parser) handleTable(node Node, lines *[]Line) {
	for _, row := range node.Children {
		if row.Type != "tablerow" {
			continue
		}
		cells := make([]string, 0, len(row.Children))
		for _, cell := range row.Children {
			cells = append(cells, strings.TrimSpace(p.inlineText(cell)))
		}
		*lines = append(*lines, Line{Text: strings.Join(cells, " | ")})
	}
}

func (p *Parser) inlineText(node Node) string {
	switch node.Type {
	case "text":
		return node.Text
	case "linebreak":
		return " "
	}

	var sb strings.Builder
	for i, child := range node.Children {
		// block children of a cell or item are separated by a space
		if i > 0 && (child.Type == "paragraph" || child.Type == "heading") {
			sb.WriteString(" ")
		}
		sb.WriteString(p.inlineText(child))
	}
	return sb.String()
}
