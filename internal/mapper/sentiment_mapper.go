package mapper

import (
	"emogo-be/internal/entity"
	"emogo-be/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SentimentMapper struct{}

func NewSentimentMapper() *SentimentMapper {
	return &SentimentMapper{}
}

func (m *SentimentMapper) ToEntity(s *model.Sentiment) *entity.Sentiment {
	if s == nil {
		return nil
	}

	return &entity.Sentiment{
		Id:        s.ID.Hex(),
		Score:     s.Score,
		Slot:      s.Slot,
		Timestamp: s.Timestamp,
		GpsRef:    s.GpsRef,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SentimentMapper) ToModel(s *entity.Sentiment) *model.Sentiment {
	if s == nil {
		return nil
	}

	// An unparseable id stays zero so Mongo assigns one on insert.
	id, _ := primitive.ObjectIDFromHex(s.Id)

	return &model.Sentiment{
		ID:        id,
		Score:     s.Score,
		Slot:      s.Slot,
		Timestamp: s.Timestamp,
		GpsRef:    s.GpsRef,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SentimentMapper) ToEntities(models []*model.Sentiment) []*entity.Sentiment {
	entities := make([]*entity.Sentiment, len(models))
	for i, s := range models {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
