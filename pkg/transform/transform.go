package transform

import (
	"lms-presentation-be/internal/entity"
	"lms-presentation-be/pkg/layout"
)

// Element is one export-ready slot, in layout order.
type Element struct {
	Type   string              `json:"type"`
	Value  entity.ElementValue `json:"value"`
	Format layout.TextFormat   `json:"format"`
}

// SlideOutput is a slide reduced against its resolved layout.
type SlideOutput struct {
	SlideId         string        `json:"slideId"`
	Layout          layout.Layout `json:"-"`
	LayoutFound     bool          `json:"layoutFound"`
	Elements        []Element     `json:"elements"`
	BackgroundColor string        `json:"backgroundColor,omitempty"`
}

// TransformSlideElements reduces a slide to exactly one element per placeholder, in
// placeholder order. Title comes from the slide title; content and image take the
// first slide element of the same type; any other placeholder type gets an empty
// value. Slide content without a matching placeholder is dropped.
func TransformSlideElements(slide entity.Slide, placeholders []layout.Placeholder) []Element {
	out := make([]Element, 0, len(placeholders))

	for _, p := range placeholders {
		el := Element{
			Type:   p.Type,
			Value:  entity.TextValue(""),
			Format: ResolveFormat(p.Format),
		}

		switch p.Type {
		case layout.PlaceholderTitle:
			el.Value = entity.TextValue(slide.TitleText())
		case layout.PlaceholderContent, layout.PlaceholderImage:
			if match, ok := firstOfType(slide.Elements, p.Type); ok {
				el.Value = match.Value.Clone()
			}
		}

		out = append(out, el)
	}

	return out
}

// firstOfType is the lookup policy for slides carrying several elements of one type:
// the first in element order wins.
func firstOfType(elements []entity.SlideElement, typ string) (entity.SlideElement, bool) {
	for _, el := range elements {
		if el.Type == typ {
			return el, true
		}
	}
	return entity.SlideElement{}, false
}

// TransformPresentation reduces every slide against its layout. Unknown layout ids
// fall back to the presentation's default layout and then to the catalog default.
func TransformPresentation(p entity.Presentation, catalog *layout.Catalog) []SlideOutput {
	out := make([]SlideOutput, 0, len(p.Slides))

	for _, slide := range p.Slides {
		l, found := catalog.GetOrDefault(slide.Layout)
		if !found && p.DefaultLayout != "" {
			if presentationDefault, err := catalog.Get(p.DefaultLayout); err == nil {
				l = presentationDefault
			}
		}

		so := SlideOutput{
			SlideId:     slide.Id,
			Layout:      l,
			LayoutFound: found,
			Elements:    TransformSlideElements(slide, l.Elements),
		}
		if slide.CustomStyles != nil {
			so.BackgroundColor = slide.CustomStyles.BackgroundColor
		}
		out = append(out, so)
	}

	return out
}
