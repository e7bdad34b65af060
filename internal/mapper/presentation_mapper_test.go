package mapper

import (
	"testing"
	"time"

	"lms-presentation-be/internal/entity"
	"lms-presentation-be/internal/model"
	"lms-presentation-be/pkg/layout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestPresentationMapperRoundTrip(t *testing.T) {
	m := NewPresentationMapper()
	title := "Intro"
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	in := &entity.Presentation{
		Id:            "p-1",
		Title:         "Cells",
		Chapter:       "ch-1",
		DefaultLayout: layout.TitleContent,
		CreatedBy:     "u-1",
		IsPublic:      true,
		CreatedAt:     &created,
		Slides: []entity.Slide{{
			Id:     "s-1",
			Layout: layout.TitleContent,
			Title:  &title,
			Elements: []entity.SlideElement{
				{Id: "e-1", Type: "content", Value: entity.ItemsValue(entity.ContentItem{Id: "i", Type: "text", Text: "a"})},
			},
		}},
	}

	row, err := m.ToModel(in)
	require.NoError(t, err)
	assert.Equal(t, "presentations", row.TableName())
	assert.Equal(t, created, row.CreatedAt)

	out, err := m.ToEntity(row)
	require.NoError(t, err)
	assert.Equal(t, in.Id, out.Id)
	assert.Equal(t, in.CreatedBy, out.CreatedBy)
	require.Len(t, out.Slides, 1)
	assert.Equal(t, "Intro", out.Slides[0].TitleText())
	assert.True(t, out.Slides[0].Elements[0].Value.IsStructured())
	assert.Nil(t, out.UpdatedAt)
}

func TestPresentationMapperNilSlides(t *testing.T) {
	m := NewPresentationMapper()

	row, err := m.ToModel(&entity.Presentation{Id: "p"})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(row.Slides))

	out, err := m.ToEntity(&model.Presentation{Id: "p"})
	require.NoError(t, err)
	assert.NotNil(t, out.Slides)
	assert.Empty(t, out.Slides)
}

func TestPresentationMapperBrokenSlides(t *testing.T) {
	_, err := NewPresentationMapper().ToEntity(&model.Presentation{Id: "p", Slides: datatypes.JSON(`{"nope"`)})
	assert.Error(t, err)
}
