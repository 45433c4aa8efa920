package dto

type SentimentExport struct {
	Id        string `json:"id"`
	Score     int    `json:"score"`
	Slot      string `json:"slot"`
	Timestamp string `json:"timestamp"`
	GpsRef    string `json:"gps_ref,omitempty"`
}

type GpsExport struct {
	Id        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
}

// VlogExport is metadata only. The payload never leaves the store through the
// bulk export; consumers follow the download URL instead.
type VlogExport struct {
	Id        string `json:"id"`
	Filename  string `json:"filename"`
	Slot      string `json:"slot"`
	Mood      int    `json:"mood"`
	ScaleRef  string `json:"scale_ref,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Timestamp string `json:"timestamp"`
}

type ExportDataResponse struct {
	Sentiments []SentimentExport `json:"sentiments"`
	Gps        []GpsExport       `json:"gps"`
	Vlogs      []VlogExport      `json:"vlogs"`
}
