package contract

import (
	"context"

	"emogo-be/internal/entity"
)

type GpsRepository interface {
	Create(ctx context.Context, point *entity.GpsPoint) error
	FindAll(ctx context.Context, limit int) ([]*entity.GpsPoint, error)
	FindById(ctx context.Context, id string) (*entity.GpsPoint, error)
	Delete(ctx context.Context, id string) error
}
