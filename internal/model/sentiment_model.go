package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Sentiment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Score     int                `bson:"score" json:"score"`
	Slot      string             `bson:"slot" json:"slot"`
	Timestamp string             `bson:"timestamp" json:"timestamp"`
	GpsRef    string             `bson:"gps_ref,omitempty" json:"gps_ref,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (Sentiment) CollectionName() string {
	return "sentiments"
}
