package entity

import (
	"time"

	"lms-presentation-be/pkg/layout"
)

// Presentation is the editable slide document
type Presentation struct {
	Id            string     `json:"_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Chapter       string     `json:"chapter"`
	ThemeId       string     `json:"themeId"`
	DefaultLayout string     `json:"defaultLayout"`
	AspectRatio   string     `json:"aspectRatio"`
	CreatedBy     string     `json:"createdBy"`
	IsPublic      bool       `json:"isPublic"`
	IsPublished   bool       `json:"isPublished"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	Slides        []Slide    `json:"slides"`
}

// CustomStyles are per-slide style overrides
type CustomStyles struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

type Slide struct {
	Id           string         `json:"id"`
	Layout       string         `json:"layout"`
	LayoutType   string         `json:"layoutType"`
	Title        *string        `json:"title,omitempty"`
	Elements     []SlideElement `json:"elements"`
	CustomStyles *CustomStyles  `json:"customStyles,omitempty"`
	Order        int            `json:"order"`
}

type SlideElement struct {
	Id            string            `json:"id"`
	Type          string            `json:"type"`
	Value         ElementValue      `json:"value"`
	Format        layout.TextFormat `json:"format"`
	ContentLayout string            `json:"contentLayout,omitempty"`
}

// TitleText returns the slide title or "" when unset.
func (s Slide) TitleText() string {
	if s.Title == nil {
		return ""
	}
	return *s.Title
}

// Clone copies the slide deep enough that editing the copy's element list,
// title or styles never reaches the original.
func (s Slide) Clone() Slide {
	out := s
	if s.Title != nil {
		t := *s.Title
		out.Title = &t
	}
	if s.CustomStyles != nil {
		cs := *s.CustomStyles
		out.CustomStyles = &cs
	}
	if s.Elements != nil {
		out.Elements = make([]SlideElement, len(s.Elements))
		for i, el := range s.Elements {
			out.Elements[i] = el.Clone()
		}
	}
	return out
}

func (e SlideElement) Clone() SlideElement {
	out := e
	out.Value = e.Value.Clone()
	return out
}

// Clone copies the presentation including every slide.
func (p Presentation) Clone() Presentation {
	out := p
	if p.Slides != nil {
		out.Slides = make([]Slide, len(p.Slides))
		for i, s := range p.Slides {
			out.Slides[i] = s.Clone()
		}
	}
	return out
}
