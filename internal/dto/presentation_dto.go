package dto

import (
	"time"

	"lms-presentation-be/pkg/editor"
	"lms-presentation-be/pkg/grid"
	"lms-presentation-be/pkg/layout"
)

type CreatePresentationRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Description   string `json:"description"`
	Chapter       string `json:"chapter" validate:"required"`
	ThemeId       string `json:"theme_id"`
	DefaultLayout string `json:"default_layout"`
	AspectRatio   string `json:"aspect_ratio" validate:"omitempty,oneof=16:9 4:3"`
	IsPublic      bool   `json:"is_public"`
}

type CreatePresentationResponse struct {
	Id string `json:"id"`
}

type ListPresentationsRequest struct {
	Chapter   string `query:"chapter" validate:"required"`
	Published bool   `query:"published"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
}

type ListPresentationsResponse struct {
	Items []*PresentationSummaryResponse `json:"items"`
	Total int64                          `json:"total"`
}

type PresentationSummaryResponse struct {
	Id          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Chapter     string     `json:"chapter"`
	SlideCount  int        `json:"slide_count"`
	CreatedBy   string     `json:"created_by"`
	IsPublic    bool       `json:"is_public"`
	IsPublished bool       `json:"is_published"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type OpenSessionRequest struct {
	PresentationId string `json:"presentation_id" validate:"required"`
}

type SessionResponse struct {
	SessionId      string                       `json:"session_id"`
	PresentationId string                       `json:"presentation_id"`
	Mode           string                       `json:"mode"`
	Revision       uint64                       `json:"revision"`
	IsDirty        bool                         `json:"is_dirty"`
	Document       *editor.SerializableDocument `json:"document"`
}

// Edit operations accepted by a session
const (
	EditUpdateSlide           = "updateSlide"
	EditUpdateSlideElement    = "updateSlideElement"
	EditUpdateSlideLayout     = "updateSlideLayout"
	EditUpdateSlideBackground = "updateSlideBackground"
	EditAddSlide              = "addSlide"
	EditRemoveSlide           = "removeSlide"
	EditMoveSlide             = "moveSlide"
	EditUpdateMetadata        = "updateMetadata"
	EditReload                = "reload"
)

type EditSessionRequest struct {
	Op              string                 `json:"op" validate:"required,oneof=updateSlide updateSlideElement updateSlideLayout updateSlideBackground addSlide removeSlide moveSlide updateMetadata reload"`
	SlideId         string                 `json:"slide_id"`
	ElementId       string                 `json:"element_id"`
	LayoutId        string                 `json:"layout_id"`
	LayoutType      string                 `json:"layout_type"`
	BackgroundColor string                 `json:"background_color"`
	Index           *int                   `json:"index"`
	Slide           *editor.SlideUpdate    `json:"slide"`
	Element         *editor.ElementUpdate  `json:"element"`
	Metadata        *editor.MetadataUpdate `json:"metadata"`
}

type EditSessionResponse struct {
	SessionResponse
	NewSlideId string `json:"new_slide_id,omitempty"`
}

type SaveSessionResponse struct {
	PresentationId string     `json:"presentation_id"`
	Revision       uint64     `json:"revision"`
	IsDirty        bool       `json:"is_dirty"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type ExportResponse struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        string `json:"data"` // base64
	Cached      bool   `json:"cached"`
}

type PlaceholderResponse struct {
	Type        string            `json:"type"`
	Grid        layout.GridRegion `json:"grid"`
	Bounds      grid.Bounds       `json:"bounds"`
	Format      layout.TextFormat `json:"format"`
	Placeholder string            `json:"placeholder"`
}

type LayoutResponse struct {
	Id          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	IsDefault   bool                  `json:"is_default"`
	IsPublic    bool                  `json:"is_public"`
	Elements    []PlaceholderResponse `json:"elements"`
}

// RenderExportMessage asks the background consumer to pre-render a stored presentation
type RenderExportMessage struct {
	PresentationId string `json:"presentation_id"`
}
