package mapper

import (
	"encoding/json"
	"fmt"
	"time"

	"lms-presentation-be/internal/entity"
	"lms-presentation-be/internal/model"

	"gorm.io/datatypes"
)

type PresentationMapper struct{}

func NewPresentationMapper() *PresentationMapper {
	return &PresentationMapper{}
}

// ToEntity decodes the stored slide list. A row written with a broken slides column
// is reported instead of being returned half empty.
func (m *PresentationMapper) ToEntity(p *model.Presentation) (*entity.Presentation, error) {
	if p == nil {
		return nil, nil
	}

	slides := make([]entity.Slide, 0)
	if len(p.Slides) > 0 {
		if err := json.Unmarshal(p.Slides, &slides); err != nil {
			return nil, fmt.Errorf("decode slides of presentation %s: %w", p.Id, err)
		}
	}

	var createdAt, updatedAt *time.Time
	if !p.CreatedAt.IsZero() {
		t := p.CreatedAt
		createdAt = &t
	}
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Presentation{
		Id:            p.Id,
		Title:         p.Title,
		Description:   p.Description,
		Chapter:       p.Chapter,
		ThemeId:       p.ThemeId,
		DefaultLayout: p.DefaultLayout,
		AspectRatio:   p.AspectRatio,
		CreatedBy:     p.CreatedBy,
		IsPublic:      p.IsPublic,
		IsPublished:   p.IsPublished,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		Slides:        slides,
	}, nil
}

func (m *PresentationMapper) ToModel(p *entity.Presentation) (*model.Presentation, error) {
	if p == nil {
		return nil, nil
	}

	slides := p.Slides
	if slides == nil {
		slides = []entity.Slide{}
	}
	raw, err := json.Marshal(slides)
	if err != nil {
		return nil, fmt.Errorf("encode slides of presentation %s: %w", p.Id, err)
	}

	var createdAt, updatedAt time.Time
	if p.CreatedAt != nil {
		createdAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Presentation{
		Id:            p.Id,
		Title:         p.Title,
		Description:   p.Description,
		Chapter:       p.Chapter,
		ThemeId:       p.ThemeId,
		DefaultLayout: p.DefaultLayout,
		AspectRatio:   p.AspectRatio,
		CreatedBy:     p.CreatedBy,
		IsPublic:      p.IsPublic,
		IsPublished:   p.IsPublished,
		Slides:        datatypes.JSON(raw),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

func (m *PresentationMapper) ToEntities(presentations []*model.Presentation) ([]*entity.Presentation, error) {
	entities := make([]*entity.Presentation, len(presentations))
	for i, p := range presentations {
		e, err := m.ToEntity(p)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
