package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"

	"lms-presentation-be/internal/dto"
	"lms-presentation-be/internal/entity"
	"lms-presentation-be/internal/pkg/cache"
	"lms-presentation-be/internal/pkg/logger"
	"lms-presentation-be/internal/repository/memory"
	"lms-presentation-be/internal/repository/specification"
	"lms-presentation-be/internal/repository/unitofwork"
	"lms-presentation-be/pkg/document"
	"lms-presentation-be/pkg/editor"
	"lms-presentation-be/pkg/events"
	"lms-presentation-be/pkg/export"
	"lms-presentation-be/pkg/grid"
	"lms-presentation-be/pkg/layout"
	"lms-presentation-be/pkg/store"

	"github.com/google/uuid"
)

const (
	PptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

	EventPresentationSaved    = "PRESENTATION_SAVED"
	EventPresentationExported = "PRESENTATION_EXPORTED"
	EventPresentationDeleted  = "PRESENTATION_DELETED"
)

type IPresentationService interface {
	Create(ctx context.Context, userId string, req *dto.CreatePresentationRequest) (*dto.CreatePresentationResponse, error)
	Import(ctx context.Context, userId string, raw []byte) (*dto.CreatePresentationResponse, error)
	Show(ctx context.Context, userId string, id string) (*entity.Presentation, error)
	ListByChapter(ctx context.Context, userId string, req *dto.ListPresentationsRequest) (*dto.ListPresentationsResponse, error)
	Delete(ctx context.Context, userId string, id string) error

	OpenSession(ctx context.Context, userId string, req *dto.OpenSessionRequest) (*dto.SessionResponse, error)
	SessionState(ctx context.Context, userId string, sessionId string) (*dto.SessionResponse, error)
	ApplyEdit(ctx context.Context, userId string, sessionId string, req *dto.EditSessionRequest) (*dto.EditSessionResponse, error)
	SaveSession(ctx context.Context, userId string, sessionId string) (*dto.SaveSessionResponse, error)
	CloseSession(ctx context.Context, userId string, sessionId string) error

	ExportSession(ctx context.Context, userId string, sessionId string) (*dto.ExportResponse, error)
	ExportPresentation(ctx context.Context, userId string, id string) (*dto.ExportResponse, error)

	ListLayouts(ctx context.Context) []dto.LayoutResponse
	GetLayout(ctx context.Context, id string) (*dto.LayoutResponse, error)
}

type presentationService struct {
	uowFactory       unitofwork.RepositoryFactory
	sessions         *memory.SessionRepository
	catalog          *layout.Catalog
	exporter         *export.Exporter
	exportCache      cache.ExportCache
	publisherService IPublisherService
	eventPublisher   IEventPublisher
	logger           logger.ILogger
}

func NewPresentationService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	catalog *layout.Catalog,
	exporter *export.Exporter,
	exportCache cache.ExportCache,
	publisherService IPublisherService,
	eventPublisher IEventPublisher,
	log logger.ILogger,
) IPresentationService {
	return &presentationService{
		uowFactory:       uowFactory,
		sessions:         sessions,
		catalog:          catalog,
		exporter:         exporter,
		exportCache:      exportCache,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (c *presentationService) Create(ctx context.Context, userId string, req *dto.CreatePresentationRequest) (*dto.CreatePresentationResponse, error) {
	first := c.catalog.Default()
	if req.DefaultLayout != "" {
		l, err := c.catalog.Get(req.DefaultLayout)
		if err != nil {
			return nil, err
		}
		first = l
	}

	aspectRatio := req.AspectRatio
	if aspectRatio == "" {
		aspectRatio = "16:9"
	}

	p := entity.Presentation{
		Id:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Chapter:       req.Chapter,
		ThemeId:       req.ThemeId,
		DefaultLayout: first.Id,
		AspectRatio:   aspectRatio,
		CreatedBy:     userId,
		IsPublic:      req.IsPublic,
		Slides:        []entity.Slide{document.InstantiateSlideFromLayout(first)},
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PresentationRepository().Create(ctx, &p); err != nil {
		return nil, err
	}

	c.logger.Info("PRESENTATION", "Presentation created", map[string]interface{}{
		"presentation_id": p.Id,
		"user_id":         userId,
	})

	return &dto.CreatePresentationResponse{Id: p.Id}, nil
}

// Import stores a raw {presentation, slides} document as a new presentation owned by
// the caller. The document's own id and author are replaced.
func (c *presentationService) Import(ctx context.Context, userId string, raw []byte) (*dto.CreatePresentationResponse, error) {
	ed := editor.NewSession()
	if err := ed.Load(raw); err != nil {
		return nil, err
	}

	p := *ed.Presentation()
	p.Id = uuid.NewString()
	p.CreatedBy = userId
	p.CreatedAt = nil
	p.UpdatedAt = nil

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PresentationRepository().Create(ctx, &p); err != nil {
		return nil, err
	}

	c.logger.Info("PRESENTATION", "Presentation imported", map[string]interface{}{
		"presentation_id": p.Id,
		"slides":          len(p.Slides),
	})

	return &dto.CreatePresentationResponse{Id: p.Id}, nil
}

func (c *presentationService) Show(ctx context.Context, userId string, id string) (*entity.Presentation, error) {
	return c.findVisible(ctx, userId, id)
}

// ListByChapter lists what the user can see in a chapter, newest first. Total counts
// every match regardless of the requested page.
func (c *presentationService) ListByChapter(ctx context.Context, userId string, req *dto.ListPresentationsRequest) (*dto.ListPresentationsResponse, error) {
	filters := []specification.Specification{
		specification.ByChapter{Chapter: req.Chapter},
		specification.VisibleTo{UserID: userId},
	}
	if req.Published {
		filters = append(filters, specification.Published{})
	}

	specs := append([]specification.Specification{}, filters...)
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	if req.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: req.Limit, Offset: req.Offset})
	}

	repo := c.uowFactory.NewUnitOfWork(ctx).PresentationRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	presentations, err := repo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PresentationSummaryResponse, 0, len(presentations))
	for _, p := range presentations {
		res = append(res, &dto.PresentationSummaryResponse{
			Id:          p.Id,
			Title:       p.Title,
			Description: p.Description,
			Chapter:     p.Chapter,
			SlideCount:  len(p.Slides),
			CreatedBy:   p.CreatedBy,
			IsPublic:    p.IsPublic,
			IsPublished: p.IsPublished,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	return &dto.ListPresentationsResponse{Items: res, Total: total}, nil
}

func (c *presentationService) Delete(ctx context.Context, userId string, id string) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PresentationRepository()

	p, err := repo.FindOne(ctx, specification.ByID{ID: id}, specification.OwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPresentationNotFound
	}

	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	closed := 0
	for _, es := range c.sessions.FindByUser(userId) {
		if es.PresentationID == id {
			c.sessions.Delete(es.ID)
			closed++
		}
	}
	if closed > 0 {
		c.logger.Info("SESSION", "Closed sessions of deleted presentation", map[string]interface{}{
			"presentation_id": id,
			"sessions":        closed,
		})
	}

	c.publishEvent(ctx, EventPresentationDeleted, map[string]interface{}{
		"presentation_id": id,
		"user_id":         userId,
	})
	return nil
}

// OpenSession loads the stored presentation into a new editing session. The owner
// gets an editable session; anyone else who can see it gets a read-only one.
func (c *presentationService) OpenSession(ctx context.Context, userId string, req *dto.OpenSessionRequest) (*dto.SessionResponse, error) {
	p, err := c.findVisible(ctx, userId, req.PresentationId)
	if err != nil {
		return nil, err
	}

	mode := store.ModeView
	if p.CreatedBy == userId {
		mode = store.ModeEdit
	}

	ed := editor.NewSession()
	ed.SetPresentationFromBackend(*p, p.Slides)

	es := &store.Session{
		ID:             uuid.NewString(),
		UserID:         userId,
		PresentationID: p.Id,
		Mode:           mode,
		OpenedAt:       time.Now(),
		Editor:         ed,
	}
	c.sessions.Save(es)

	c.logger.Info("SESSION", "Editing session opened", map[string]interface{}{
		"session_id":      es.ID,
		"presentation_id": p.Id,
		"mode":            mode,
		"open_sessions":   c.sessions.Count(),
	})

	return sessionResponse(es), nil
}

func (c *presentationService) SessionState(ctx context.Context, userId string, sessionId string) (*dto.SessionResponse, error) {
	es, err := c.session(userId, sessionId)
	if err != nil {
		return nil, err
	}
	return sessionResponse(es), nil
}

func (c *presentationService) ApplyEdit(ctx context.Context, userId string, sessionId string, req *dto.EditSessionRequest) (*dto.EditSessionResponse, error) {
	es, err := c.session(userId, sessionId)
	if err != nil {
		return nil, err
	}

	if req.Op == dto.EditReload {
		p, err := c.findVisible(ctx, userId, es.PresentationID)
		if err != nil {
			return nil, err
		}
		es.Editor.SetPresentationFromBackend(*p, p.Slides)
		return &dto.EditSessionResponse{SessionResponse: *sessionResponse(es)}, nil
	}

	if !es.CanEdit() {
		return nil, ErrReadOnlySession
	}

	ed := es.Editor
	var newSlideId string

	switch req.Op {
	case dto.EditUpdateSlide:
		if req.SlideId == "" || req.Slide == nil {
			return nil, invalidEdit("slide_id and slide are required")
		}
		if req.Slide.Layout != nil {
			if _, err := c.catalog.Get(*req.Slide.Layout); err != nil {
				return nil, err
			}
		}
		ed.UpdateSlide(req.SlideId, *req.Slide)

	case dto.EditUpdateSlideElement:
		if req.SlideId == "" || req.ElementId == "" || req.Element == nil {
			return nil, invalidEdit("slide_id, element_id and element are required")
		}
		ed.UpdateSlideElement(req.SlideId, req.ElementId, *req.Element)

	case dto.EditUpdateSlideLayout:
		if req.SlideId == "" || req.LayoutId == "" {
			return nil, invalidEdit("slide_id and layout_id are required")
		}
		if _, err := c.catalog.Get(req.LayoutId); err != nil {
			return nil, err
		}
		layoutType := req.LayoutType
		if layoutType == "" {
			layoutType = req.LayoutId
		}
		ed.UpdateSlideLayout(req.SlideId, req.LayoutId, layoutType)

	case dto.EditUpdateSlideBackground:
		if req.SlideId == "" {
			return nil, invalidEdit("slide_id is required")
		}
		ed.UpdateSlideBackground(req.SlideId, req.BackgroundColor)

	case dto.EditAddSlide:
		l, err := c.layoutForNewSlide(ed, req.LayoutId)
		if err != nil {
			return nil, err
		}
		index := -1
		if req.Index != nil {
			index = *req.Index
		}
		newSlideId, _ = ed.AddSlide(l, index)

	case dto.EditRemoveSlide:
		if req.SlideId == "" {
			return nil, invalidEdit("slide_id is required")
		}
		ed.RemoveSlide(req.SlideId)

	case dto.EditMoveSlide:
		if req.SlideId == "" || req.Index == nil {
			return nil, invalidEdit("slide_id and index are required")
		}
		ed.MoveSlide(req.SlideId, *req.Index)

	case dto.EditUpdateMetadata:
		if req.Metadata == nil {
			return nil, invalidEdit("metadata is required")
		}
		if req.Metadata.DefaultLayout != nil {
			if _, err := c.catalog.Get(*req.Metadata.DefaultLayout); err != nil {
				return nil, err
			}
		}
		ed.UpdateMetadata(*req.Metadata)

	default:
		return nil, invalidEdit(fmt.Sprintf("unknown operation %q", req.Op))
	}

	c.logger.Debug("SESSION", "Edit applied", map[string]interface{}{
		"session_id": es.ID,
		"op":         req.Op,
		"revision":   ed.Revision(),
	})

	return &dto.EditSessionResponse{
		SessionResponse: *sessionResponse(es),
		NewSlideId:      newSlideId,
	}, nil
}

// SaveSession persists a snapshot of the session. Edits that land while the write is
// in flight keep the session dirty.
func (c *presentationService) SaveSession(ctx context.Context, userId string, sessionId string) (*dto.SaveSessionResponse, error) {
	es, err := c.session(userId, sessionId)
	if err != nil {
		return nil, err
	}
	if !es.CanEdit() {
		return nil, ErrReadOnlySession
	}

	ticket, ok := es.Editor.BeginSave()
	if !ok {
		return nil, ErrSessionNotFound
	}
	doc := ticket.Document

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.PresentationRepository()
	existing, err := repo.FindOne(ctx,
		specification.ByID{ID: es.PresentationID},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPresentationNotFound
	}

	existing.Title = doc.Presentation.Title
	existing.Description = doc.Presentation.Description
	existing.ThemeId = doc.Presentation.ThemeId
	existing.DefaultLayout = doc.Presentation.DefaultLayout
	existing.AspectRatio = doc.Presentation.AspectRatio
	existing.IsPublic = doc.Presentation.IsPublic
	existing.IsPublished = doc.Presentation.IsPublished
	existing.Slides = doc.Slides

	if err := repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if !es.Editor.CompleteSave(ticket) {
		c.logger.Info("SESSION", "Session changed during save, staying dirty", map[string]interface{}{
			"session_id":     es.ID,
			"saved_revision": ticket.Revision,
		})
	}

	c.publishEvent(ctx, EventPresentationSaved, map[string]interface{}{
		"presentation_id": existing.Id,
		"title":           existing.Title,
		"user_id":         userId,
		"slides":          len(existing.Slides),
	})
	c.queuePrerender(ctx, existing.Id)

	return &dto.SaveSessionResponse{
		PresentationId: existing.Id,
		Revision:       ticket.Revision,
		IsDirty:        es.Editor.IsDirty(),
		UpdatedAt:      existing.UpdatedAt,
	}, nil
}

func (c *presentationService) CloseSession(ctx context.Context, userId string, sessionId string) error {
	es, err := c.session(userId, sessionId)
	if err != nil {
		return err
	}
	if es.Editor.IsDirty() {
		c.logger.Warn("SESSION", "Closing session with unsaved changes", map[string]interface{}{
			"session_id": es.ID,
			"revision":   es.Editor.Revision(),
		})
	}
	c.sessions.Delete(sessionId)
	return nil
}

// ExportSession renders the working copy, including unsaved edits.
func (c *presentationService) ExportSession(ctx context.Context, userId string, sessionId string) (*dto.ExportResponse, error) {
	es, err := c.session(userId, sessionId)
	if err != nil {
		return nil, err
	}
	p := es.Editor.Presentation()
	if p == nil {
		return nil, ErrSessionNotFound
	}

	data, err := c.exporter.Export(*p)
	if err != nil {
		c.logger.Error("EXPORT", "Session export failed", map[string]interface{}{
			"session_id": es.ID,
			"error":      err.Error(),
		})
		return nil, err
	}

	return &dto.ExportResponse{
		FileName:    exportFileName(p.Title),
		ContentType: PptxContentType,
		Data:        data,
	}, nil
}

// ExportPresentation renders the stored version, served from the export cache when a
// render of the same version exists.
func (c *presentationService) ExportPresentation(ctx context.Context, userId string, id string) (*dto.ExportResponse, error) {
	p, err := c.findVisible(ctx, userId, id)
	if err != nil {
		return nil, err
	}

	key := cache.ExportKey(p.Id, versionOf(p))
	res := &dto.ExportResponse{
		FileName:    exportFileName(p.Title),
		ContentType: PptxContentType,
	}

	data, found, err := c.exportCache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("EXPORT", "Export cache unavailable", map[string]interface{}{"error": err.Error()})
	}
	if found {
		res.Data = data
		res.Cached = true
		return res, nil
	}

	data, err = c.exporter.Export(*p)
	if err != nil {
		c.logger.Error("EXPORT", "Presentation export failed", map[string]interface{}{
			"presentation_id": p.Id,
			"error":           err.Error(),
		})
		return nil, err
	}
	if err := c.exportCache.Set(ctx, key, data); err != nil {
		c.logger.Warn("EXPORT", "Failed to cache export", map[string]interface{}{"error": err.Error()})
	}

	c.publishEvent(ctx, EventPresentationExported, map[string]interface{}{
		"presentation_id": p.Id,
		"user_id":         userId,
	})

	res.Data = data
	return res, nil
}

func (c *presentationService) ListLayouts(ctx context.Context) []dto.LayoutResponse {
	layouts := c.catalog.List()
	res := make([]dto.LayoutResponse, 0, len(layouts))
	for _, l := range layouts {
		res = append(res, layoutResponse(l))
	}
	return res
}

func (c *presentationService) GetLayout(ctx context.Context, id string) (*dto.LayoutResponse, error) {
	l, err := c.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	res := layoutResponse(l)
	return &res, nil
}

func (c *presentationService) findVisible(ctx context.Context, userId string, id string) (*entity.Presentation, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	p, err := uow.PresentationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.VisibleTo{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPresentationNotFound
	}
	return p, nil
}

// session hides other users' sessions behind the same not-found error.
func (c *presentationService) session(userId, sessionId string) (*store.Session, error) {
	es, ok := c.sessions.Get(sessionId)
	if !ok || es.UserID != userId {
		return nil, ErrSessionNotFound
	}
	return es, nil
}

func (c *presentationService) layoutForNewSlide(ed *editor.Session, layoutId string) (layout.Layout, error) {
	if layoutId != "" {
		return c.catalog.Get(layoutId)
	}
	if p := ed.Presentation(); p != nil && p.DefaultLayout != "" {
		if l, err := c.catalog.Get(p.DefaultLayout); err == nil {
			return l, nil
		}
	}
	return c.catalog.Default(), nil
}

func (c *presentationService) publishEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if c.eventPublisher == nil {
		return
	}
	if err := c.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		c.logger.Warn("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func (c *presentationService) queuePrerender(ctx context.Context, presentationId string) {
	if c.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.RenderExportMessage{PresentationId: presentationId})
	if err != nil {
		return
	}
	if err := c.publisherService.Publish(ctx, payload); err != nil {
		c.logger.Warn("EXPORT", "Failed to queue export pre-render", map[string]interface{}{
			"presentation_id": presentationId,
			"error":           err.Error(),
		})
	}
}

func sessionResponse(es *store.Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionId:      es.ID,
		PresentationId: es.PresentationID,
		Mode:           es.Mode,
		Revision:       es.Editor.Revision(),
		IsDirty:        es.Editor.IsDirty(),
		Document:       es.Editor.GetSerializablePresentation(),
	}
}

func layoutResponse(l layout.Layout) dto.LayoutResponse {
	elements := make([]dto.PlaceholderResponse, 0, len(l.Elements))
	for _, p := range l.Elements {
		elements = append(elements, dto.PlaceholderResponse{
			Type:        p.Type,
			Grid:        p.Grid,
			Bounds:      grid.ResolveBounds(p.Grid),
			Format:      p.Format,
			Placeholder: p.Placeholder,
		})
	}
	return dto.LayoutResponse{
		Id:          l.Id,
		Name:        l.Name,
		Description: l.Description,
		IsDefault:   l.IsDefault,
		IsPublic:    l.IsPublic,
		Elements:    elements,
	}
}

func invalidEdit(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidEdit, reason)
}

func versionOf(p *entity.Presentation) time.Time {
	if p.UpdatedAt != nil {
		return *p.UpdatedAt
	}
	if p.CreatedAt != nil {
		return *p.CreatedAt
	}
	return time.Time{}
}

func exportFileName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			return r
		case unicode.IsSpace(r):
			return '-'
		default:
			return -1
		}
	}, strings.TrimSpace(title))
	if name == "" {
		name = "presentation"
	}
	return name + ".pptx"
}
