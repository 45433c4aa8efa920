package entity

// AggregatedRow is one Sentiment joined with its resolved GPS sample and Vlog.
// HasGps/HasVideo distinguish a resolved reference from the sentinel case; the
// renderers decide how the sentinel is displayed.
type AggregatedRow struct {
	Sentiment Sentiment
	Gps       *GpsPoint
	Vlog      *Vlog
	HasGps    bool
	HasVideo  bool
}
