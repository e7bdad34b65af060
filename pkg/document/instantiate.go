package document

import (
	"lms-presentation-be/internal/entity"
	"lms-presentation-be/pkg/layout"

	"github.com/google/uuid"
)

// InstantiateSlideFromLayout creates a fresh slide with one element per placeholder,
// seeded with the placeholder's default value and format.
func InstantiateSlideFromLayout(l layout.Layout) entity.Slide {
	slide := entity.Slide{
		Id:         uuid.NewString(),
		Layout:     l.Id,
		LayoutType: l.Id,
		Elements:   make([]entity.SlideElement, 0, len(l.Elements)),
	}

	for _, p := range l.Elements {
		slide.Elements = append(slide.Elements, entity.SlideElement{
			Id:     uuid.NewString(),
			Type:   p.Type,
			Value:  entity.TextValue(p.Value),
			Format: p.Format,
		})
	}

	return slide
}
