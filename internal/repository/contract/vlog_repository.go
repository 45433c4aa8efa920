package contract

import (
	"context"

	"emogo-be/internal/entity"
)

type VlogRepository interface {
	Create(ctx context.Context, vlog *entity.Vlog) error
	// FindAll returns metadata only: implementations must leave Payload nil.
	FindAll(ctx context.Context, limit int) ([]*entity.Vlog, error)
	// FindById returns the full record including the stored payload.
	FindById(ctx context.Context, id string) (*entity.Vlog, error)
	Delete(ctx context.Context, id string) error
}
