package entity

import "time"

// Sentiment is a single mood submission. GpsRef carries the identifier of the
// GPS sample written in the same submission as an opaque string; it is never
// validated against the gps collection at write time.
type Sentiment struct {
	Id        string
	Score     int
	Slot      string
	Timestamp string
	GpsRef    string
	CreatedAt time.Time
}
