package memory

import (
	"context"
	"sort"
	"sync"

	"emogo-be/internal/entity"
	"emogo-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SentimentRepository is a map-backed stand-in for the Mongo implementation,
// reproducing its string-sort and limit semantics for tests.
type SentimentRepository struct {
	mu      sync.RWMutex
	records map[string]*entity.Sentiment
}

func NewSentimentRepository() contract.SentimentRepository {
	return &SentimentRepository{
		records: make(map[string]*entity.Sentiment),
	}
}

func (r *SentimentRepository) Create(ctx context.Context, sentiment *entity.Sentiment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sentiment.Id == "" {
		sentiment.Id = primitive.NewObjectID().Hex()
	}
	copied := *sentiment
	r.records[sentiment.Id] = &copied
	return nil
}

func (r *SentimentRepository) FindAll(ctx context.Context, limit int) ([]*entity.Sentiment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entity.Sentiment, 0, len(r.records))
	for _, s := range r.records {
		copied := *s
		all = append(all, &copied)
	}

	// Raw string comparison, deliberately not a parsed-date sort.
	sort.Slice(all, func(i, j int) bool {
		if all[i].Timestamp != all[j].Timestamp {
			return all[i].Timestamp > all[j].Timestamp
		}
		return all[i].Id > all[j].Id
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *SentimentRepository) FindById(ctx context.Context, id string) (*entity.Sentiment, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *SentimentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, id)
	return nil
}
