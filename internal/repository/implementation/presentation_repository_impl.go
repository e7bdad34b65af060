package implementation

import (
	"context"
	"errors"

	"lms-presentation-be/internal/entity"
	"lms-presentation-be/internal/mapper"
	"lms-presentation-be/internal/model"
	"lms-presentation-be/internal/repository/contract"
	"lms-presentation-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PresentationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PresentationMapper
}

func NewPresentationRepository(db *gorm.DB) contract.PresentationRepository {
	return &PresentationRepositoryImpl{
		db:     db,
		mapper: mapper.NewPresentationMapper(),
	}
}

func (r *PresentationRepositoryImpl) Create(ctx context.Context, presentation *entity.Presentation) error {
	m, err := r.mapper.ToModel(presentation)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return r.refresh(presentation, m)
}

// Update overwrites every column, including the full slide list.
func (r *PresentationRepositoryImpl) Update(ctx context.Context, presentation *entity.Presentation) error {
	m, err := r.mapper.ToModel(presentation)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	return r.refresh(presentation, m)
}

func (r *PresentationRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Presentation{}).Error
}

func (r *PresentationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Presentation, error) {
	var m model.Presentation
	query := specification.All(specs).Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m)
}

func (r *PresentationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Presentation, error) {
	var models []*model.Presentation
	query := specification.All(specs).Apply(r.db.WithContext(ctx))
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models)
}

func (r *PresentationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := specification.All(specs).Apply(r.db.WithContext(ctx).Model(&model.Presentation{}))
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PresentationRepositoryImpl) refresh(presentation *entity.Presentation, m *model.Presentation) error {
	e, err := r.mapper.ToEntity(m)
	if err != nil {
		return err
	}
	*presentation = *e
	return nil
}
