package editor

import (
	"sync"

	"lms-presentation-be/internal/entity"
	"lms-presentation-be/pkg/document"
	"lms-presentation-be/pkg/layout"
)

// Session owns one live presentation while it is being edited.
//
// Every mutation produces a new Presentation value: the slide list (and the element
// list of a touched slide) is copied before it changes, so snapshots returned by
// Presentation() are never modified afterwards. Calls are serialised and applied in
// call order.
type Session struct {
	mu           sync.Mutex
	presentation *entity.Presentation
	isDirty      bool
	revision     uint64
}

func NewSession() *Session {
	return &Session{}
}

// Presentation returns the current snapshot, nil when nothing is loaded.
// The snapshot must be treated as read-only.
func (s *Session) Presentation() *entity.Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presentation
}

func (s *Session) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isDirty
}

// Revision increases with every load and every applied mutation.
func (s *Session) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// SetPresentationFromBackend replaces the document with freshly loaded data.
// A fresh load is never dirty.
func (s *Session) SetPresentationFromBackend(presentation entity.Presentation, slides []entity.Slide) {
	next := presentation
	next.Slides = make([]entity.Slide, len(slides))
	for i, sl := range slides {
		next.Slides[i] = sl.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.presentation = &next
	s.isDirty = false
	s.revision++
}

// Load hydrates raw persisted JSON into the session. On error the session keeps
// its previous state.
func (s *Session) Load(raw []byte) error {
	p, err := document.Hydrate(raw)
	if err != nil {
		return err
	}
	s.SetPresentationFromBackend(*p, p.Slides)
	return nil
}

// mutate applies fn to the current document. It does nothing when no presentation
// is loaded; otherwise the result becomes the new snapshot and the session is dirty.
func (s *Session) mutate(fn func(p entity.Presentation) entity.Presentation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.presentation == nil {
		return false
	}
	next := fn(*s.presentation)
	s.presentation = &next
	s.isDirty = true
	s.revision++
	return true
}

// UpdateSlide merges update into the slide with slideId. An unknown id leaves the
// slide list unchanged.
func (s *Session) UpdateSlide(slideId string, update SlideUpdate) bool {
	return s.mutate(func(p entity.Presentation) entity.Presentation {
		return withSlide(p, slideId, func(sl entity.Slide) entity.Slide {
			if update.Title != nil {
				t := *update.Title
				sl.Title = &t
			}
			if update.Layout != nil {
				sl.Layout = *update.Layout
			}
			if update.LayoutType != nil {
				sl.LayoutType = *update.LayoutType
			}
			if update.Elements != nil {
				sl.Elements = append([]entity.SlideElement{}, update.Elements...)
			}
			if update.CustomStyles != nil {
				cs := *update.CustomStyles
				sl.CustomStyles = &cs
			}
			return sl
		})
	})
}

// UpdateSlideElement merges update into one element of one slide.
func (s *Session) UpdateSlideElement(slideId, elementId string, update ElementUpdate) bool {
	return s.mutate(func(p entity.Presentation) entity.Presentation {
		return withSlide(p, slideId, func(sl entity.Slide) entity.Slide {
			elements := make([]entity.SlideElement, len(sl.Elements))
			copy(elements, sl.Elements)
			for i := range elements {
				if elements[i].Id != elementId {
					continue
				}
				if update.Value != nil {
					elements[i].Value = update.Value.Clone()
				}
				if update.Format != nil {
					elements[i].Format = *update.Format
				}
				if update.ContentLayout != nil {
					elements[i].ContentLayout = *update.ContentLayout
				}
			}
			sl.Elements = elements
			return sl
		})
	})
}

// UpdateSlideLayout switches the layout reference only. Elements are not re-seeded;
// placeholders are matched against elements at transform time.
func (s *Session) UpdateSlideLayout(slideId, layoutId, layoutType string) bool {
	return s.UpdateSlide(slideId, SlideUpdate{Layout: &layoutId, LayoutType: &layoutType})
}

func (s *Session) UpdateSlideBackground(slideId, backgroundColor string) bool {
	return s.mutate(func(p entity.Presentation) entity.Presentation {
		return withSlide(p, slideId, func(sl entity.Slide) entity.Slide {
			styles := entity.CustomStyles{}
			if sl.CustomStyles != nil {
				styles = *sl.CustomStyles
			}
			styles.BackgroundColor = backgroundColor
			sl.CustomStyles = &styles
			return sl
		})
	})
}

// AddSlide inserts a slide seeded from l at index (appended when index is out of
// range) and returns its id.
func (s *Session) AddSlide(l layout.Layout, index int) (string, bool) {
	slide := document.InstantiateSlideFromLayout(l)
	ok := s.mutate(func(p entity.Presentation) entity.Presentation {
		if index < 0 || index > len(p.Slides) {
			index = len(p.Slides)
		}
		slides := make([]entity.Slide, 0, len(p.Slides)+1)
		slides = append(slides, p.Slides[:index]...)
		slides = append(slides, slide)
		slides = append(slides, p.Slides[index:]...)
		p.Slides = renumber(slides)
		return p
	})
	if !ok {
		return "", false
	}
	return slide.Id, true
}

func (s *Session) RemoveSlide(slideId string) bool {
	return s.mutate(func(p entity.Presentation) entity.Presentation {
		slides := make([]entity.Slide, 0, len(p.Slides))
		for _, sl := range p.Slides {
			if sl.Id != slideId {
				slides = append(slides, sl)
			}
		}
		p.Slides = renumber(slides)
		return p
	})
}

// MoveSlide moves a slide to index, clamped to the slide range.
func (s *Session) MoveSlide(slideId string, index int) bool {
	return s.mutate(func(p entity.Presentation) entity.Presentation {
		from := -1
		for i, sl := range p.Slides {
			if sl.Id == slideId {
				from = i
				break
			}
		}
		if from < 0 {
			return p
		}

		rest := make([]entity.Slide, 0, len(p.Slides))
		rest = append(rest, p.Slides[:from]...)
		rest = append(rest, p.Slides[from+1:]...)
		if index < 0 {
			index = 0
		}
		if index > len(rest) {
			index = len(rest)
		}

		slides := make([]entity.Slide, 0, len(p.Slides))
		slides = append(slides, rest[:index]...)
		slides = append(slides, p.Slides[from])
		slides = append(slides, rest[index:]...)
		p.Slides = renumber(slides)
		return p
	})
}

func (s *Session) UpdateMetadata(update MetadataUpdate) bool {
	return s.mutate(func(p entity.Presentation) entity.Presentation {
		if update.Title != nil {
			p.Title = *update.Title
		}
		if update.Description != nil {
			p.Description = *update.Description
		}
		if update.ThemeId != nil {
			p.ThemeId = *update.ThemeId
		}
		if update.DefaultLayout != nil {
			p.DefaultLayout = *update.DefaultLayout
		}
		if update.AspectRatio != nil {
			p.AspectRatio = *update.AspectRatio
		}
		if update.IsPublic != nil {
			p.IsPublic = *update.IsPublic
		}
		if update.IsPublished != nil {
			p.IsPublished = *update.IsPublished
		}
		return p
	})
}

// GetSerializablePresentation returns the persisted shape of the current document,
// or nil when nothing is loaded.
func (s *Session) GetSerializablePresentation() *SerializableDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.presentation == nil {
		return nil
	}
	doc := serialize(*s.presentation)
	return &doc
}

// MarkAsSaved clears the dirty flag unconditionally.
func (s *Session) MarkAsSaved() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isDirty = false
}

// BeginSave snapshots the document for an outgoing save.
func (s *Session) BeginSave() (SaveTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.presentation == nil {
		return SaveTicket{}, false
	}
	return SaveTicket{Revision: s.revision, Document: serialize(*s.presentation)}, true
}

// CompleteSave is called once the save for ticket succeeded. The session is only
// marked clean when nothing changed since the ticket's snapshot; it reports whether
// that happened.
func (s *Session) CompleteSave(ticket SaveTicket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.presentation == nil || ticket.Revision != s.revision {
		return false
	}
	s.isDirty = false
	return true
}

func serialize(p entity.Presentation) SerializableDocument {
	slides := make([]entity.Slide, len(p.Slides))
	for i, sl := range p.Slides {
		slides[i] = sl.Clone()
	}
	return SerializableDocument{
		Presentation: PresentationMetadata{
			Id:            p.Id,
			Title:         p.Title,
			Description:   p.Description,
			Chapter:       p.Chapter,
			ThemeId:       p.ThemeId,
			DefaultLayout: p.DefaultLayout,
			AspectRatio:   p.AspectRatio,
			IsPublic:      p.IsPublic,
			IsPublished:   p.IsPublished,
		},
		Slides: slides,
	}
}

// withSlide returns p with a copied slide list where every slide matching slideId
// has been replaced by fn's result.
func withSlide(p entity.Presentation, slideId string, fn func(entity.Slide) entity.Slide) entity.Presentation {
	slides := make([]entity.Slide, len(p.Slides))
	copy(slides, p.Slides)
	for i := range slides {
		if slides[i].Id == slideId {
			slides[i] = fn(slides[i])
		}
	}
	p.Slides = slides
	return p
}

// renumber rewrites Order to match position. The slice must already be a fresh copy.
func renumber(slides []entity.Slide) []entity.Slide {
	for i := range slides {
		slides[i].Order = i
	}
	return slides
}
