package entity

import "time"

type GpsPoint struct {
	Id        string
	Latitude  float64
	Longitude float64
	Timestamp string
	CreatedAt time.Time
}
