package memory

import (
	"context"
	"sort"
	"sync"

	"emogo-be/internal/entity"
	"emogo-be/internal/repository/contract"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VlogRepository struct {
	mu      sync.RWMutex
	records map[string]*entity.Vlog
}

func NewVlogRepository() contract.VlogRepository {
	return &VlogRepository{
		records: make(map[string]*entity.Vlog),
	}
}

func (r *VlogRepository) Create(ctx context.Context, vlog *entity.Vlog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if vlog.Id == "" {
		vlog.Id = primitive.NewObjectID().Hex()
	}
	copied := *vlog
	r.records[vlog.Id] = &copied
	return nil
}

func (r *VlogRepository) FindAll(ctx context.Context, limit int) ([]*entity.Vlog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entity.Vlog, 0, len(r.records))
	for _, v := range r.records {
		copied := *v
		copied.Payload = nil // match the Mongo projection
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

func (r *VlogRepository) FindById(ctx context.Context, id string) (*entity.Vlog, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	copied := *v
	return &copied, nil
}

func (r *VlogRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, id)
	return nil
}
