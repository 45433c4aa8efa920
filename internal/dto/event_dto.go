package dto

// RecordCreatedMessage is published after every successful ingest so the
// consumer can drop the cached aggregation view.
type RecordCreatedMessage struct {
	Kind string `json:"kind"` // "sentiment", "gps" or "vlog"
	Id   string `json:"id"`
}
