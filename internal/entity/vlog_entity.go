package entity

import "time"

// Vlog is a stored video clip plus metadata. ScaleRef names the Sentiment the
// clip was recorded for, as an opaque string. Payload is nil on bulk reads
// (the repository projects it out) and populated on by-id reads.
type Vlog struct {
	Id        string
	Filename  string
	Slot      string
	Mood      int
	ScaleRef  string
	Duration  string
	Timestamp string
	Payload   []byte
	CreatedAt time.Time
}
