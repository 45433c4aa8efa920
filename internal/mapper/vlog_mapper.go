package mapper

import (
	"emogo-be/internal/entity"
	"emogo-be/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VlogMapper struct{}

func NewVlogMapper() *VlogMapper {
	return &VlogMapper{}
}

func (m *VlogMapper) ToEntity(v *model.Vlog) *entity.Vlog {
	if v == nil {
		return nil
	}

	return &entity.Vlog{
		Id:        v.ID.Hex(),
		Filename:  v.Filename,
		Slot:      v.Slot,
		Mood:      v.Mood,
		ScaleRef:  v.ScaleRef,
		Duration:  v.Duration,
		Timestamp: v.Timestamp,
		Payload:   v.Payload,
		CreatedAt: v.CreatedAt,
	}
}

func (m *VlogMapper) ToModel(v *entity.Vlog) *model.Vlog {
	if v == nil {
		return nil
	}

	id, _ := primitive.ObjectIDFromHex(v.Id)

	return &model.Vlog{
		ID:        id,
		Filename:  v.Filename,
		Slot:      v.Slot,
		Mood:      v.Mood,
		ScaleRef:  v.ScaleRef,
		Duration:  v.Duration,
		Timestamp: v.Timestamp,
		Payload:   v.Payload,
		CreatedAt: v.CreatedAt,
	}
}

func (m *VlogMapper) ToEntities(models []*model.Vlog) []*entity.Vlog {
	entities := make([]*entity.Vlog, len(models))
	for i, v := range models {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
