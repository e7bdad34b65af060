package lexical

// LexicalRoot represents the top-level structure
type LexicalRoot struct {
	Root Node `json:"root"`
}

// Node represents any node in the Lexical tree
type Node struct {
	Type     string `json:"type"`
	Version  int    `json:"version"`
	Children []Node `json:"children,omitempty"`

	// Text specific
	Text string `json:"text,omitempty"`

	// Paragraph specific
	Indent int `json:"indent,omitempty"`

	// Link specific
	URL string `json:"url,omitempty"`

	// List specific
	ListType string `json:"listType,omitempty"` // check, bullet, number
	Start    int    `json:"start,omitempty"`

	// ListItem specific
	Checked bool `json:"checked,omitempty"`
}

// Line is one rendered line of plain text. Level is the list nesting depth.
type Line struct {
	Text  string
	Level int
}
