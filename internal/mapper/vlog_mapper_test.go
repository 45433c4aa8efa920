package mapper

import (
	"testing"
	"time"

	"emogo-be/internal/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestVlogMapperRoundTrip(t *testing.T) {
	m := NewVlogMapper()

	id := primitive.NewObjectID()
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	e := &entity.Vlog{
		Id:        id.Hex(),
		Filename:  "clip.mp4",
		Slot:      "morning",
		Mood:      4,
		ScaleRef:  "abcdef012345abcdef012345",
		Duration:  "12s",
		Timestamp: "2024-01-01T08:00:00",
		Payload:   []byte{0x01, 0x02},
		CreatedAt: created,
	}

	got := m.ToEntity(m.ToModel(e))
	if got.Id != e.Id {
		t.Errorf("Id = %q, want %q", got.Id, e.Id)
	}
	if got.ScaleRef != e.ScaleRef {
		t.Errorf("ScaleRef = %q, want %q", got.ScaleRef, e.ScaleRef)
	}
	if got.Filename != e.Filename || got.Slot != e.Slot || got.Mood != e.Mood {
		t.Errorf("metadata mismatch: %+v", got)
	}
	if string(got.Payload) != string(e.Payload) {
		t.Errorf("payload mismatch")
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, created)
	}
}

func TestVlogMapperNil(t *testing.T) {
	m := NewVlogMapper()
	if m.ToEntity(nil) != nil {
		t.Error("ToEntity(nil) should be nil")
	}
	if m.ToModel(nil) != nil {
		t.Error("ToModel(nil) should be nil")
	}
}

func TestSentimentMapperUnparseableIdStaysZero(t *testing.T) {
	m := NewSentimentMapper()

	model := m.ToModel(&entity.Sentiment{Id: "", Score: 5})
	if !model.ID.IsZero() {
		t.Errorf("empty id should map to zero ObjectID, got %v", model.ID)
	}

	model = m.ToModel(&entity.Sentiment{Id: "not-hex", Score: 5})
	if !model.ID.IsZero() {
		t.Errorf("malformed id should map to zero ObjectID, got %v", model.ID)
	}
}
