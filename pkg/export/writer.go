package export

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"lms-presentation-be/internal/entity"
	"lms-presentation-be/pkg/layout"
	"lms-presentation-be/pkg/transform"
)

var ErrExportFailure = errors.New("export failed")

// Metadata is the presentation-level information printed on the cover slide.
type Metadata struct {
	Title     string
	Subtitle  string
	Author    string
	CreatedAt time.Time
}

// DeckWriter turns reduced slides into a binary slide deck.
type DeckWriter interface {
	WriteDeck(slides []transform.SlideOutput, meta Metadata) ([]byte, error)
}

// Exporter runs the layout transform and hands the result to a DeckWriter.
type Exporter struct {
	writer  DeckWriter
	catalog *layout.Catalog
}

func NewExporter(writer DeckWriter, catalog *layout.Catalog) *Exporter {
	return &Exporter{
		writer:  writer,
		catalog: catalog,
	}
}

// ExportBytes renders p to a deck. The presentation itself is never modified.
func (e *Exporter) ExportBytes(p entity.Presentation) ([]byte, error) {
	slides := transform.TransformPresentation(p, e.catalog)

	meta := Metadata{
		Title:    p.Title,
		Subtitle: p.Description,
		Author:   p.CreatedBy,
	}
	if p.CreatedAt != nil {
		meta.CreatedAt = *p.CreatedAt
	}

	data, err := e.writer.WriteDeck(slides, meta)
	if err != nil {
		if errors.Is(err, ErrExportFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrExportFailure, err)
	}
	return data, nil
}

// Export renders p and returns the deck base64-encoded.
func (e *Exporter) Export(p entity.Presentation) (string, error) {
	data, err := e.ExportBytes(p)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
