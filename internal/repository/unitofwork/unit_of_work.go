package unitofwork

import (
	"context"

	"lms-presentation-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PresentationRepository() contract.PresentationRepository
}
