package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContentItem is one bullet or paragraph inside a structured element value.
type ContentItem struct {
	Id    string `json:"id,omitempty"`
	Type  string `json:"type,omitempty"`
	Text  string `json:"text"`
	Level int    `json:"level,omitempty"`
}

// UnmarshalJSON accepts either an object or a bare string.
func (c *ContentItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = ContentItem{Text: s}
		return nil
	}
	type alias ContentItem
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("content item: %w", err)
	}
	*c = ContentItem(a)
	return nil
}

// ElementValue is either plain text or an ordered list of content items.
type ElementValue struct {
	text  string
	items []ContentItem
	list  bool
}

func TextValue(s string) ElementValue {
	return ElementValue{text: s}
}

func ItemsValue(items ...ContentItem) ElementValue {
	return ElementValue{items: append([]ContentItem{}, items...), list: true}
}

// IsStructured reports whether the value is a content item list.
func (v ElementValue) IsStructured() bool { return v.list }

// Text returns the plain text; empty for structured values.
func (v ElementValue) Text() string { return v.text }

// Items returns a copy of the content items; nil for plain values.
func (v ElementValue) Items() []ContentItem {
	if !v.list {
		return nil
	}
	return append([]ContentItem{}, v.items...)
}

// IsEmpty reports whether there is nothing to render.
func (v ElementValue) IsEmpty() bool {
	if v.list {
		return len(v.items) == 0
	}
	return v.text == ""
}

func (v ElementValue) Clone() ElementValue {
	if v.list {
		return ItemsValue(v.items...)
	}
	return v
}

func (v ElementValue) MarshalJSON() ([]byte, error) {
	if v.list {
		return json.Marshal(v.items)
	}
	return json.Marshal(v.text)
}

func (v *ElementValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*v = ElementValue{}
		return nil
	case len(trimmed) > 0 && trimmed[0] == '[':
		var items []ContentItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*v = ItemsValue(items...)
		return nil
	default:
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("element value must be a string or a list: %w", err)
		}
		*v = TextValue(s)
		return nil
	}
}
