package dto

type UploadSentimentRequest struct {
	Score     int    `json:"score"`
	Slot      string `json:"slot" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
	GpsRef    string `json:"gps_ref"`
}

type UploadGpsRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp" validate:"required"`
}

type UploadResponse struct {
	Status string `json:"status"`
	Id     string `json:"id"`
}

type UploadVlogResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
}

type FullRecordResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FullRecordInput carries the parsed multipart fields of a unified upload.
// The controller owns form parsing; the service only sees typed values.
type FullRecordInput struct {
	MoodScore int
	Slot      string
	Latitude  float64
	Longitude float64
	Timestamp string
	Duration  string
	Filename  string
	Payload   []byte
}

// VlogInput is the legacy split-path vlog upload with an externally supplied
// scale reference.
type VlogInput struct {
	Slot     string
	Mood     int
	ScaleRef string
	Filename string
	Payload  []byte
}
