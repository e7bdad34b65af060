package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"lms-presentation-be/internal/entity"

	"github.com/google/uuid"
)

var ErrMalformedDocument = errors.New("malformed presentation document")

// rawDocument mirrors the persisted shape: { presentation: {...}, slides: [...] }.
// Pointers let us tell a missing field apart from an empty one.
type rawDocument struct {
	Presentation *rawPresentation `json:"presentation"`
	Slides       *[]rawSlide      `json:"slides"`
}

type rawPresentation struct {
	Id            *string         `json:"_id"`
	Title         *string         `json:"title"`
	Description   string          `json:"description"`
	Chapter       json.RawMessage `json:"chapter"`
	ThemeId       string          `json:"themeId"`
	DefaultLayout string          `json:"defaultLayout"`
	AspectRatio   string          `json:"aspectRatio"`
	CreatedBy     json.RawMessage `json:"createdBy"`
	IsPublic      bool            `json:"isPublic"`
	IsPublished   bool            `json:"isPublished"`
	CreatedAt     *time.Time      `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt"`
}

type rawSlide struct {
	entity.Slide
	MongoId  string       `json:"_id"`
	Elements []rawElement `json:"elements"`
}

type rawElement struct {
	entity.SlideElement
	MongoId string `json:"_id"`
}

// Hydrate parses a persisted presentation document.
// presentation._id, presentation.title and slides are required; anything else
// that is missing keeps its zero value and unknown fields are ignored.
func Hydrate(raw []byte) (*entity.Presentation, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if doc.Presentation == nil {
		return nil, fmt.Errorf("%w: missing presentation", ErrMalformedDocument)
	}
	p := doc.Presentation
	if p.Id == nil || *p.Id == "" {
		return nil, fmt.Errorf("%w: missing presentation._id", ErrMalformedDocument)
	}
	if p.Title == nil {
		return nil, fmt.Errorf("%w: missing presentation.title", ErrMalformedDocument)
	}
	if doc.Slides == nil {
		return nil, fmt.Errorf("%w: missing slides", ErrMalformedDocument)
	}

	presentation := &entity.Presentation{
		Id:            *p.Id,
		Title:         *p.Title,
		Description:   p.Description,
		Chapter:       refId(p.Chapter),
		ThemeId:       p.ThemeId,
		DefaultLayout: p.DefaultLayout,
		AspectRatio:   p.AspectRatio,
		CreatedBy:     refId(p.CreatedBy),
		IsPublic:      p.IsPublic,
		IsPublished:   p.IsPublished,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Slides:        make([]entity.Slide, 0, len(*doc.Slides)),
	}

	for _, rs := range *doc.Slides {
		presentation.Slides = append(presentation.Slides, rs.toEntity())
	}

	return presentation, nil
}

func (rs rawSlide) toEntity() entity.Slide {
	s := rs.Slide
	if s.Id == "" {
		s.Id = rs.MongoId
	}
	if s.Id == "" {
		s.Id = uuid.NewString()
	}

	s.Elements = make([]entity.SlideElement, 0, len(rs.Elements))
	for _, re := range rs.Elements {
		el := re.SlideElement
		if el.Id == "" {
			el.Id = re.MongoId
		}
		if el.Id == "" {
			el.Id = uuid.NewString()
		}
		s.Elements = append(s.Elements, el)
	}
	return s
}

// refId reads a reference that may be a plain id or a populated object with _id.
func refId(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	var id string
	if err := json.Unmarshal(trimmed, &id); err == nil {
		return id
	}

	var obj struct {
		Id    string `json:"_id"`
		AltId string `json:"id"`
	}
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		if obj.Id != "" {
			return obj.Id
		}
		return obj.AltId
	}
	return ""
}
