package editor

import (
	"lms-presentation-be/internal/entity"
	"lms-presentation-be/pkg/layout"
)

// SlideUpdate carries the slide fields to merge. Nil fields are left untouched.
type SlideUpdate struct {
	Title        *string               `json:"title,omitempty"`
	Layout       *string               `json:"layout,omitempty"`
	LayoutType   *string               `json:"layoutType,omitempty"`
	Elements     []entity.SlideElement `json:"elements,omitempty"`
	CustomStyles *entity.CustomStyles  `json:"customStyles,omitempty"`
}

// ElementUpdate carries the element fields to merge. Nil fields are left untouched;
// a provided Format replaces the element's format as a whole.
type ElementUpdate struct {
	Value         *entity.ElementValue `json:"value,omitempty"`
	Format        *layout.TextFormat   `json:"format,omitempty"`
	ContentLayout *string              `json:"contentLayout,omitempty"`
}

// MetadataUpdate carries presentation-level fields to merge.
type MetadataUpdate struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	ThemeId       *string `json:"themeId,omitempty"`
	DefaultLayout *string `json:"defaultLayout,omitempty"`
	AspectRatio   *string `json:"aspectRatio,omitempty"`
	IsPublic      *bool   `json:"isPublic,omitempty"`
	IsPublished   *bool   `json:"isPublished,omitempty"`
}

// PresentationMetadata is the persisted subset of presentation fields.
// Server-owned fields (author, timestamps) are not part of it.
type PresentationMetadata struct {
	Id            string `json:"_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Chapter       string `json:"chapter"`
	ThemeId       string `json:"themeId"`
	DefaultLayout string `json:"defaultLayout"`
	AspectRatio   string `json:"aspectRatio"`
	IsPublic      bool   `json:"isPublic"`
	IsPublished   bool   `json:"isPublished"`
}

// SerializableDocument is the shape handed to the persistence layer on save.
type SerializableDocument struct {
	Presentation PresentationMetadata `json:"presentation"`
	Slides       []entity.Slide       `json:"slides"`
}

// SaveTicket binds a save request to the revision it snapshotted.
type SaveTicket struct {
	Revision uint64
	Document SerializableDocument
}
