package contract

import (
	"context"

	"lms-presentation-be/internal/entity"
	"lms-presentation-be/internal/repository/specification"
)

type PresentationRepository interface {
	Create(ctx context.Context, presentation *entity.Presentation) error
	Update(ctx context.Context, presentation *entity.Presentation) error
	Delete(ctx context.Context, id string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Presentation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Presentation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
