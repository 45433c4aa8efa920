package memory

import (
	"context"
	"sort"
	"sync"

	"emogo-be/internal/entity"
	"emogo-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GpsRepository struct {
	mu      sync.RWMutex
	records map[string]*entity.GpsPoint
}

func NewGpsRepository() contract.GpsRepository {
	return &GpsRepository{
		records: make(map[string]*entity.GpsPoint),
	}
}

func (r *GpsRepository) Create(ctx context.Context, point *entity.GpsPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if point.Id == "" {
		point.Id = primitive.NewObjectID().Hex()
	}
	copied := *point
	r.records[point.Id] = &copied
	return nil
}

func (r *GpsRepository) FindAll(ctx context.Context, limit int) ([]*entity.GpsPoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entity.GpsPoint, 0, len(r.records))
	for _, g := range r.records {
		copied := *g
		all = append(all, &copied)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Id < all[j].Id
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *GpsRepository) FindById(ctx context.Context, id string) (*entity.GpsPoint, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (r *GpsRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, id)
	return nil
}
