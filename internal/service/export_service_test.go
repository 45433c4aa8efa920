package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"emogo-be/internal/entity"
	"emogo-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestExportJSONOmitsPayload(t *testing.T) {
	sentimentRepo := memory.NewSentimentRepository()
	gpsRepo := memory.NewGpsRepository()
	vlogRepo := memory.NewVlogRepository()
	agg := NewAggregationService(sentimentRepo, gpsRepo, vlogRepo, 100, 1000, 30*time.Second)
	svc := NewExportService(sentimentRepo, gpsRepo, vlogRepo, agg, "http://localhost:8000", 1000)

	vlog := &entity.Vlog{
		Filename:  "clip.mp4",
		Slot:      "morning",
		Mood:      4,
		ScaleRef:  "some-sentiment",
		Timestamp: "2024-01-01T08:00:00",
		Payload:   []byte("RAW-VIDEO-BYTES"),
		CreatedAt: time.Now(),
	}
	assert.NoError(t, vlogRepo.Create(context.Background(), vlog))

	res, err := svc.ExportJSON(context.Background())
	assert.NoError(t, err)
	assert.Len(t, res.Vlogs, 1)
	assert.Equal(t, "clip.mp4", res.Vlogs[0].Filename)

	raw, err := json.Marshal(res)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "payload")
	assert.NotContains(t, string(raw), "RAW-VIDEO-BYTES")
}

func TestExportCSVJoinedRows(t *testing.T) {
	sentimentRepo := memory.NewSentimentRepository()
	gpsRepo := memory.NewGpsRepository()
	vlogRepo := memory.NewVlogRepository()
	agg := NewAggregationService(sentimentRepo, gpsRepo, vlogRepo, 100, 1000, 30*time.Second)
	svc := NewExportService(sentimentRepo, gpsRepo, vlogRepo, agg, "http://api.example.com", 1000)

	ctx := context.Background()

	gps := &entity.GpsPoint{Latitude: 25.03, Longitude: 121.56, Timestamp: "2024-01-02", CreatedAt: time.Now()}
	assert.NoError(t, gpsRepo.Create(ctx, gps))

	linked := &entity.Sentiment{Score: 4, Slot: "noon", Timestamp: "2024-01-02", GpsRef: gps.Id, CreatedAt: time.Now()}
	assert.NoError(t, sentimentRepo.Create(ctx, linked))

	vlog := &entity.Vlog{Filename: "clip.mp4", ScaleRef: linked.Id, Timestamp: "2024-01-02", CreatedAt: time.Now()}
	assert.NoError(t, vlogRepo.Create(ctx, vlog))

	bare := &entity.Sentiment{Score: 2, Slot: "night", Timestamp: "2024-01-01", CreatedAt: time.Now()}
	assert.NoError(t, sentimentRepo.Create(ctx, bare))

	data, err := svc.ExportCSV(ctx)
	assert.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, []string{"sentiment_id", "score", "slot", "timestamp", "latitude", "longitude", "video_filename", "video_url"}, records[0])

	// Newest first: the linked row leads.
	assert.Equal(t, linked.Id, records[1][0])
	assert.Equal(t, "25.03", records[1][4])
	assert.Equal(t, "121.56", records[1][5])
	assert.Equal(t, "clip.mp4", records[1][6])
	assert.Equal(t, "http://api.example.com/download/vlog/"+vlog.Id, records[1][7])

	// Sentinel case: empty GPS and video cells, never raw bytes.
	assert.Equal(t, bare.Id, records[2][0])
	assert.Equal(t, "", records[2][4])
	assert.Equal(t, "", records[2][5])
	assert.Equal(t, "", records[2][6])
	assert.Equal(t, "", records[2][7])
}
