package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"emogo-be/internal/bootstrap"
	"emogo-be/internal/config"
	"emogo-be/internal/dto"
	"emogo-be/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "8000",
			BaseURL:            "http://localhost:8000",
			CorsAllowedOrigins: "*",
		},
		Limits: config.LimitConfig{
			DataViewLimit:    100,
			ExportLimit:      1000,
			DataCacheSeconds: 30,
		},
		Topics: config.TopicConfig{RecordCreated: "RECORD_CREATED"},
	}

	container := bootstrap.NewContainerWithRepositories(
		cfg,
		nopLogger{},
		memory.NewSentimentRepository(),
		memory.NewGpsRepository(),
		memory.NewVlogRepository(),
	)
	return New(cfg, container).GetApp()
}

func postFullRecord(t *testing.T, app *fiber.App, timestamp string) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", "clip.mp4")
	assert.NoError(t, err)
	_, err = fw.Write([]byte("fake-video-bytes"))
	assert.NoError(t, err)
	assert.NoError(t, w.WriteField("mood_score", "5"))
	assert.NoError(t, w.WriteField("slot", "morning"))
	assert.NoError(t, w.WriteField("lat", "25.03"))
	assert.NoError(t, w.WriteField("lon", "121.56"))
	assert.NoError(t, w.WriteField("timestamp", timestamp))
	assert.NoError(t, w.WriteField("duration", "12s"))
	assert.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload/full_record", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res dto.FullRecordResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "success", res.Status)
}

func TestHealthRoutes(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/test"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestUploadSentiment(t *testing.T) {
	app := newTestApp(t)

	body := `{"score":5,"slot":"morning","timestamp":"2024-01-01T08:00:00"}`
	req := httptest.NewRequest("POST", "/upload/sentiment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var res dto.UploadResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.Equal(t, "success", res.Status)
	assert.NotEmpty(t, res.Id)
}

func TestUploadSentimentMissingFields(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/upload/sentiment", strings.NewReader(`{"score":5}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDataViewShowsSentinels(t *testing.T) {
	app := newTestApp(t)

	body := `{"score":5,"slot":"morning","timestamp":"2024-01-01T08:00:00"}`
	req := httptest.NewRequest("POST", "/upload/sentiment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/data", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	page, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(page), "無 GPS 資料")
	assert.Contains(t, string(page), "無影片")
}

func TestFullRecordFlowAndVideoDownload(t *testing.T) {
	app := newTestApp(t)

	postFullRecord(t, app, "2024-01-01T08:00:00")

	// Locate the stored vlog through the JSON export.
	req := httptest.NewRequest("GET", "/download_all_data", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	var export dto.ExportDataResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&export))
	assert.Len(t, export.Sentiments, 1)
	assert.Len(t, export.Gps, 1)
	assert.Len(t, export.Vlogs, 1)
	assert.Equal(t, export.Gps[0].Id, export.Sentiments[0].GpsRef)
	assert.Equal(t, export.Sentiments[0].Id, export.Vlogs[0].ScaleRef)

	// Download the exact stored bytes.
	req = httptest.NewRequest("GET", "/download/vlog/"+export.Vlogs[0].Id, nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "video/mp4", resp.Header.Get("Content-Type"))

	payload, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "fake-video-bytes", string(payload))
}

func TestDownloadVlogNotFound(t *testing.T) {
	app := newTestApp(t)

	// Well-formed but unknown identifier.
	req := httptest.NewRequest("GET", "/download/vlog/"+primitive.NewObjectID().Hex(), nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Malformed identifier.
	req = httptest.NewRequest("GET", "/download/vlog/not-a-valid-id", nil)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDownloadAllDataCSV(t *testing.T) {
	app := newTestApp(t)

	postFullRecord(t, app, "2024-01-01T08:00:00")

	req := httptest.NewRequest("GET", "/download_all_data?format=csv", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "emogo_data.csv")

	data, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "sentiment_id,score,slot,timestamp,latitude,longitude,video_filename,video_url", lines[0])
	assert.Contains(t, lines[1], "http://localhost:8000/download/vlog/")
	assert.NotContains(t, string(data), "fake-video-bytes")
}
