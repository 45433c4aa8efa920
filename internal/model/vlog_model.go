package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vlog stores the clip bytes inline under payload; bulk reads must project the
// field out so listing a thousand vlogs does not drag the blobs along.
type Vlog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Filename  string             `bson:"filename" json:"filename"`
	Slot      string             `bson:"slot" json:"slot"`
	Mood      int                `bson:"mood" json:"mood"`
	ScaleRef  string             `bson:"scale_ref,omitempty" json:"scale_ref,omitempty"`
	Duration  string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Timestamp string             `bson:"timestamp" json:"timestamp"`
	Payload   []byte             `bson:"payload,omitempty" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func (Vlog) CollectionName() string {
	return "vlogs"
}
