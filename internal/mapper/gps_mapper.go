package mapper

import (
	"emogo-be/internal/entity"
	"emogo-be/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GpsMapper struct{}

func NewGpsMapper() *GpsMapper {
	return &GpsMapper{}
}

func (m *GpsMapper) ToEntity(g *model.GpsPoint) *entity.GpsPoint {
	if g == nil {
		return nil
	}

	return &entity.GpsPoint{
		Id:        g.ID.Hex(),
		Latitude:  g.Latitude,
		Longitude: g.Longitude,
		Timestamp: g.Timestamp,
		CreatedAt: g.CreatedAt,
	}
}

func (m *GpsMapper) ToModel(g *entity.GpsPoint) *model.GpsPoint {
	if g == nil {
		return nil
	}

	id, _ := primitive.ObjectIDFromHex(g.Id)

	return &model.GpsPoint{
		ID:        id,
		Latitude:  g.Latitude,
		Longitude: g.Longitude,
		Timestamp: g.Timestamp,
		CreatedAt: g.CreatedAt,
	}
}

func (m *GpsMapper) ToEntities(models []*model.GpsPoint) []*entity.GpsPoint {
	entities := make([]*entity.GpsPoint, len(models))
	for i, g := range models {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
