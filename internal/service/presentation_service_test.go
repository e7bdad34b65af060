package service

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"lms-presentation-be/internal/dto"
	"lms-presentation-be/internal/entity"
	"lms-presentation-be/internal/pkg/cache"
	"lms-presentation-be/internal/pkg/logger"
	"lms-presentation-be/internal/repository/contract"
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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePresentationRepo understands the specifications the service uses.
type fakePresentationRepo struct {
	mu         sync.Mutex
	rows       map[string]entity.Presentation
	clock      time.Time
	updateHook func()
}

func newFakeRepo() *fakePresentationRepo {
	return &fakePresentationRepo{
		rows:  make(map[string]entity.Presentation),
		clock: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *fakePresentationRepo) tick() *time.Time {
	r.clock = r.clock.Add(time.Second)
	t := r.clock
	return &t
}

func matches(p entity.Presentation, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			if p.Id != spec.ID {
				return false
			}
		case specification.OwnedBy:
			if p.CreatedBy != spec.UserID {
				return false
			}
		case specification.VisibleTo:
			if p.CreatedBy != spec.UserID && !p.IsPublic {
				return false
			}
		case specification.ByChapter:
			if p.Chapter != spec.Chapter {
				return false
			}
		case specification.Published:
			if !p.IsPublished {
				return false
			}
		}
	}
	return true
}

func (r *fakePresentationRepo) Create(ctx context.Context, p *entity.Presentation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.tick()
	p.CreatedAt, p.UpdatedAt = now, now
	r.rows[p.Id] = p.Clone()
	return nil
}

func (r *fakePresentationRepo) Update(ctx context.Context, p *entity.Presentation) error {
	if r.updateHook != nil {
		r.updateHook()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p.UpdatedAt = r.tick()
	r.rows[p.Id] = p.Clone()
	return nil
}

func (r *fakePresentationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}

func (r *fakePresentationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Presentation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.rows {
		if matches(p, specs) {
			out := p.Clone()
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakePresentationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Presentation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Presentation, 0)
	for _, p := range r.rows {
		if matches(p, specs) {
			c := p.Clone()
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *fakePresentationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeUnitOfWork struct {
	repo *fakePresentationRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }
func (u *fakeUnitOfWork) PresentationRepository() contract.PresentationRepository {
	return u.repo
}

type fakeFactory struct {
	repo *fakePresentationRepo
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{repo: f.repo}
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

type fakeEvents struct {
	mu    sync.Mutex
	types []string
}

func (e *fakeEvents) Publish(ctx context.Context, event events.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.types = append(e.types, event.EventType())
	return nil
}

type fixture struct {
	svc       *presentationService
	repo      *fakePresentationRepo
	publisher *fakePublisher
	events    *fakeEvents
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newFakeRepo()
	catalog := layout.NewCatalog()
	pub := &fakePublisher{}
	evts := &fakeEvents{}

	svc := NewPresentationService(
		&fakeFactory{repo: repo},
		memory.NewSessionRepository(time.Minute),
		catalog,
		export.NewExporter(export.NewPptxWriter(grid.DefaultCanvas), catalog),
		cache.NewMemoryExportCache(time.Minute),
		pub,
		evts,
		logger.NewNopLogger(),
	).(*presentationService)

	return &fixture{svc: svc, repo: repo, publisher: pub, events: evts}
}

func (f *fixture) create(t *testing.T, userId string, public bool) string {
	t.Helper()
	res, err := f.svc.Create(context.Background(), userId, &dto.CreatePresentationRequest{
		Title:    "Cell Biology",
		Chapter:  "ch-1",
		IsPublic: public,
	})
	require.NoError(t, err)
	return res.Id
}

func (f *fixture) open(t *testing.T, userId, presentationId string) *dto.SessionResponse {
	t.Helper()
	res, err := f.svc.OpenSession(context.Background(), userId, &dto.OpenSessionRequest{PresentationId: presentationId})
	require.NoError(t, err)
	return res
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestCreateSeedsOneSlide(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)

	p, err := f.svc.Show(context.Background(), "u-1", id)
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.CreatedBy)
	assert.Equal(t, layout.TitleContent, p.DefaultLayout)
	assert.Equal(t, "16:9", p.AspectRatio)
	require.Len(t, p.Slides, 1)
	assert.Equal(t, layout.TitleContent, p.Slides[0].Layout)
}

func TestCreateUnknownLayout(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), "u-1", &dto.CreatePresentationRequest{
		Title: "x", Chapter: "c", DefaultLayout: "no-such-layout",
	})
	assert.ErrorIs(t, err, layout.ErrLayoutNotFound)
}

func TestShowVisibility(t *testing.T) {
	f := newFixture(t)
	private := f.create(t, "u-1", false)
	public := f.create(t, "u-1", true)

	_, err := f.svc.Show(context.Background(), "u-2", private)
	assert.ErrorIs(t, err, ErrPresentationNotFound)

	p, err := f.svc.Show(context.Background(), "u-2", public)
	require.NoError(t, err)
	assert.Equal(t, public, p.Id)
}

func TestListByChapter(t *testing.T) {
	f := newFixture(t)
	f.create(t, "u-1", false)
	f.create(t, "u-1", true)
	f.create(t, "u-2", false)

	mine, err := f.svc.ListByChapter(context.Background(), "u-1", &dto.ListPresentationsRequest{Chapter: "ch-1"})
	require.NoError(t, err)
	assert.Len(t, mine.Items, 2)
	assert.Equal(t, int64(2), mine.Total)

	theirs, err := f.svc.ListByChapter(context.Background(), "u-2", &dto.ListPresentationsRequest{Chapter: "ch-1"})
	require.NoError(t, err)
	assert.Len(t, theirs.Items, 2)
	for _, p := range theirs.Items {
		assert.Equal(t, 1, p.SlideCount)
	}

	none, err := f.svc.ListByChapter(context.Background(), "u-1", &dto.ListPresentationsRequest{Chapter: "other"})
	require.NoError(t, err)
	assert.Empty(t, none.Items)
	assert.Zero(t, none.Total)
}

func TestListByChapterPublishedOnly(t *testing.T) {
	f := newFixture(t)
	draft := f.create(t, "u-1", true)
	live := f.create(t, "u-1", true)

	s := f.open(t, "u-1", live)
	_, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{
		Op:       dto.EditUpdateMetadata,
		Metadata: &editor.MetadataUpdate{IsPublished: boolPtr(true)},
	})
	require.NoError(t, err)
	_, err = f.svc.SaveSession(context.Background(), "u-1", s.SessionId)
	require.NoError(t, err)

	res, err := f.svc.ListByChapter(context.Background(), "u-2", &dto.ListPresentationsRequest{Chapter: "ch-1", Published: true})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, live, res.Items[0].Id)
	assert.True(t, res.Items[0].IsPublished)
	assert.Equal(t, int64(1), res.Total)

	all, err := f.svc.ListByChapter(context.Background(), "u-2", &dto.ListPresentationsRequest{Chapter: "ch-1"})
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)
	assert.NotEqual(t, draft, live)
}

func TestOpenSessionModes(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", true)

	owner := f.open(t, "u-1", id)
	assert.Equal(t, store.ModeEdit, owner.Mode)
	assert.False(t, owner.IsDirty)
	require.NotNil(t, owner.Document)
	assert.Equal(t, id, owner.Document.Presentation.Id)

	viewer := f.open(t, "u-2", id)
	assert.Equal(t, store.ModeView, viewer.Mode)

	_, err := f.svc.ApplyEdit(context.Background(), "u-2", viewer.SessionId, &dto.EditSessionRequest{Op: dto.EditAddSlide})
	assert.ErrorIs(t, err, ErrReadOnlySession)

	_, err = f.svc.SaveSession(context.Background(), "u-2", viewer.SessionId)
	assert.ErrorIs(t, err, ErrReadOnlySession)
}

func TestSessionsArePrivate(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", true)
	s := f.open(t, "u-1", id)

	_, err := f.svc.SessionState(context.Background(), "u-2", s.SessionId)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.svc.SessionState(context.Background(), "u-1", "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestApplyEditAddSlide(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)

	res, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{
		Op:       dto.EditAddSlide,
		LayoutId: layout.TitleContentImage,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.NewSlideId)
	assert.True(t, res.IsDirty)
	assert.Greater(t, res.Revision, s.Revision)
	require.Len(t, res.Document.Slides, 2)
	assert.Equal(t, res.NewSlideId, res.Document.Slides[1].Id)
	assert.Len(t, res.Document.Slides[1].Elements, 3)
}

func TestApplyEditElementAndLayout(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)
	slide := s.Document.Slides[0]

	var contentId string
	for _, el := range slide.Elements {
		if el.Type == layout.PlaceholderContent {
			contentId = el.Id
		}
	}
	require.NotEmpty(t, contentId)

	value := entity.TextValue("Hello")
	_, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{
		Op:        dto.EditUpdateSlideElement,
		SlideId:   slide.Id,
		ElementId: contentId,
		Element:   &editor.ElementUpdate{Value: &value},
	})
	require.NoError(t, err)

	res, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{
		Op:       dto.EditUpdateSlideLayout,
		SlideId:  slide.Id,
		LayoutId: layout.ContentOnly,
	})
	require.NoError(t, err)

	updated := res.Document.Slides[0]
	assert.Equal(t, layout.ContentOnly, updated.Layout)
	assert.Equal(t, layout.ContentOnly, updated.LayoutType)
	for _, el := range updated.Elements {
		if el.Id == contentId {
			assert.Equal(t, "Hello", el.Value.Text())
		}
	}
}

func TestApplyEditValidation(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)

	tests := []struct {
		name string
		req  dto.EditSessionRequest
		want error
	}{
		{"update slide without id", dto.EditSessionRequest{Op: dto.EditUpdateSlide, Slide: &editor.SlideUpdate{}}, ErrInvalidEdit},
		{"element without element", dto.EditSessionRequest{Op: dto.EditUpdateSlideElement, SlideId: "s", ElementId: "e"}, ErrInvalidEdit},
		{"move without index", dto.EditSessionRequest{Op: dto.EditMoveSlide, SlideId: "s"}, ErrInvalidEdit},
		{"metadata missing", dto.EditSessionRequest{Op: dto.EditUpdateMetadata}, ErrInvalidEdit},
		{"unknown op", dto.EditSessionRequest{Op: "explode"}, ErrInvalidEdit},
		{"unknown layout", dto.EditSessionRequest{Op: dto.EditUpdateSlideLayout, SlideId: "s", LayoutId: "nope"}, layout.ErrLayoutNotFound},
		{"unknown default layout", dto.EditSessionRequest{Op: dto.EditUpdateMetadata, Metadata: &editor.MetadataUpdate{DefaultLayout: strPtr("nope")}}, layout.ErrLayoutNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	state, err := f.svc.SessionState(context.Background(), "u-1", s.SessionId)
	require.NoError(t, err)
	assert.False(t, state.IsDirty)
}

func TestSaveSessionPersists(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)

	_, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{
		Op:       dto.EditUpdateMetadata,
		Metadata: &editor.MetadataUpdate{Title: strPtr("Renamed")},
	})
	require.NoError(t, err)
	_, err = f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{Op: dto.EditAddSlide})
	require.NoError(t, err)

	res, err := f.svc.SaveSession(context.Background(), "u-1", s.SessionId)
	require.NoError(t, err)
	assert.False(t, res.IsDirty)
	assert.NotNil(t, res.UpdatedAt)

	stored, err := f.svc.Show(context.Background(), "u-1", id)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, "u-1", stored.CreatedBy)
	assert.Len(t, stored.Slides, 2)

	assert.Contains(t, f.events.types, EventPresentationSaved)
	require.Len(t, f.publisher.payloads, 1)
	var msg dto.RenderExportMessage
	require.NoError(t, json.Unmarshal(f.publisher.payloads[0], &msg))
	assert.Equal(t, id, msg.PresentationId)
}

func TestSaveSessionKeepsEditsMadeDuringSave(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)

	_, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{
		Op:       dto.EditUpdateMetadata,
		Metadata: &editor.MetadataUpdate{Title: strPtr("First")},
	})
	require.NoError(t, err)

	f.repo.updateHook = func() {
		f.repo.updateHook = nil
		_, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{
			Op:       dto.EditUpdateMetadata,
			Metadata: &editor.MetadataUpdate{Title: strPtr("Second")},
		})
		require.NoError(t, err)
	}

	res, err := f.svc.SaveSession(context.Background(), "u-1", s.SessionId)
	require.NoError(t, err)
	assert.True(t, res.IsDirty)

	stored, err := f.svc.Show(context.Background(), "u-1", id)
	require.NoError(t, err)
	assert.Equal(t, "First", stored.Title)

	state, err := f.svc.SessionState(context.Background(), "u-1", s.SessionId)
	require.NoError(t, err)
	assert.True(t, state.IsDirty)
	assert.Equal(t, "Second", state.Document.Presentation.Title)

	res, err = f.svc.SaveSession(context.Background(), "u-1", s.SessionId)
	require.NoError(t, err)
	assert.False(t, res.IsDirty)
}

func TestSaveSessionAfterDelete(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)

	require.NoError(t, f.svc.Delete(context.Background(), "u-1", id))
	assert.Contains(t, f.events.types, EventPresentationDeleted)

	_, err := f.svc.SaveSession(context.Background(), "u-1", s.SessionId)
	assert.ErrorIs(t, err, ErrPresentationNotFound)
}

func TestDeleteRequiresOwner(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", true)

	err := f.svc.Delete(context.Background(), "u-2", id)
	assert.ErrorIs(t, err, ErrPresentationNotFound)

	_, err = f.svc.Show(context.Background(), "u-1", id)
	assert.NoError(t, err)
}

func TestDeleteClosesOwnerSessions(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	other := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)
	keep := f.open(t, "u-1", other)

	require.NoError(t, f.svc.Delete(context.Background(), "u-1", id))

	_, err := f.svc.SessionState(context.Background(), "u-1", s.SessionId)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.svc.SessionState(context.Background(), "u-1", keep.SessionId)
	assert.NoError(t, err)
}

func TestReloadDiscardsUnsavedEdits(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)

	_, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{Op: dto.EditAddSlide})
	require.NoError(t, err)

	res, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{Op: dto.EditReload})
	require.NoError(t, err)
	assert.False(t, res.IsDirty)
	assert.Len(t, res.Document.Slides, 1)
}

func TestCloseSession(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)

	require.NoError(t, f.svc.CloseSession(context.Background(), "u-1", s.SessionId))
	_, err := f.svc.SessionState(context.Background(), "u-1", s.SessionId)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func unzipPart(t *testing.T, encoded, name string) string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			body, err := io.ReadAll(rc)
			require.NoError(t, err)
			return string(body)
		}
	}
	t.Fatalf("part %s not found", name)
	return ""
}

func TestExportSessionIncludesUnsavedEdits(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)
	s := f.open(t, "u-1", id)

	_, err := f.svc.ApplyEdit(context.Background(), "u-1", s.SessionId, &dto.EditSessionRequest{
		Op:       dto.EditUpdateMetadata,
		Metadata: &editor.MetadataUpdate{Title: strPtr("Draft Title")},
	})
	require.NoError(t, err)

	res, err := f.svc.ExportSession(context.Background(), "u-1", s.SessionId)
	require.NoError(t, err)
	assert.Equal(t, "Draft-Title.pptx", res.FileName)
	assert.Equal(t, PptxContentType, res.ContentType)
	assert.Contains(t, unzipPart(t, res.Data, "ppt/slides/slide1.xml"), "<a:t>Draft Title</a:t>")
}

func TestExportPresentationUsesCache(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", true)

	first, err := f.svc.ExportPresentation(context.Background(), "u-2", id)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Contains(t, f.events.types, EventPresentationExported)

	second, err := f.svc.ExportPresentation(context.Background(), "u-2", id)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Data, second.Data)
}

func TestExportPresentationNotVisible(t *testing.T) {
	f := newFixture(t)
	id := f.create(t, "u-1", false)

	_, err := f.svc.ExportPresentation(context.Background(), "u-2", id)
	assert.ErrorIs(t, err, ErrPresentationNotFound)
}

func TestImport(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Import(context.Background(), "u-1", []byte(`{"presentation":{"title":"x"},"slides":[]}`))
	assert.ErrorIs(t, err, document.ErrMalformedDocument)

	raw := `{"presentation":{"_id":"orig","title":"Imported","createdBy":{"_id":"someone"},"chapter":"ch-9"},
		"slides":[{"layout":"title-only","title":"Hi","elements":[]}]}`
	res, err := f.svc.Import(context.Background(), "u-1", []byte(raw))
	require.NoError(t, err)
	assert.NotEqual(t, "orig", res.Id)

	p, err := f.svc.Show(context.Background(), "u-1", res.Id)
	require.NoError(t, err)
	assert.Equal(t, "u-1", p.CreatedBy)
	assert.Equal(t, "ch-9", p.Chapter)
	require.Len(t, p.Slides, 1)
	assert.NotEmpty(t, p.Slides[0].Id)
}

func TestLayouts(t *testing.T) {
	f := newFixture(t)

	all := f.svc.ListLayouts(context.Background())
	assert.Len(t, all, len(layout.NewCatalog().List()))

	l, err := f.svc.GetLayout(context.Background(), layout.TitleContent)
	require.NoError(t, err)
	assert.True(t, l.IsDefault)
	assert.True(t, l.IsPublic)
	require.NotEmpty(t, l.Elements)
	assert.InDelta(t, 100, l.Elements[0].Bounds.WidthPercent, 1e-9)

	_, err = f.svc.GetLayout(context.Background(), "nope")
	assert.ErrorIs(t, err, layout.ErrLayoutNotFound)
}

func TestExportFileName(t *testing.T) {
	tests := map[string]string{
		"Cell Biology":  "Cell-Biology.pptx",
		"  Q&A: week 2": "QA-week-2.pptx",
		"":              "presentation.pptx",
		"???":           "presentation.pptx",
	}
	for in, want := range tests {
		assert.Equal(t, want, exportFileName(in), in)
	}
}
