package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GpsPoint struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Latitude  float64            `bson:"latitude" json:"latitude"`
	Longitude float64            `bson:"longitude" json:"longitude"`
	Timestamp string             `bson:"timestamp" json:"timestamp"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (GpsPoint) CollectionName() string {
	return "gps"
}
