package dto

// DataRowView is one line of the HTML table: GPS and video already resolved
// to display text / link form.
type DataRowView struct {
	Score     int
	Slot      string
	Timestamp string
	GpsText   string
	HasVideo  bool
	VideoURL  string
	VideoText string
}
