package contract

import (
	"context"

	"emogo-be/internal/entity"
)

type SentimentRepository interface {
	Create(ctx context.Context, sentiment *entity.Sentiment) error
	// FindAll returns at most limit records, newest timestamp first by raw
	// string comparison on the timestamp field.
	FindAll(ctx context.Context, limit int) ([]*entity.Sentiment, error)
	FindById(ctx context.Context, id string) (*entity.Sentiment, error)
	Delete(ctx context.Context, id string) error
}
