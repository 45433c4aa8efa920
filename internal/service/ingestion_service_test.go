package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"emogo-be/internal/dto"
	"emogo-be/internal/entity"
	"emogo-be/internal/repository/contract"
	"emogo-be/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// failingSentimentRepo rejects every insert; reads and deletes pass through.
type failingSentimentRepo struct {
	contract.SentimentRepository
}

func (r *failingSentimentRepo) Create(ctx context.Context, s *entity.Sentiment) error {
	return errors.New("sentiment insert failed")
}

type failingVlogRepo struct {
	contract.VlogRepository
}

func (r *failingVlogRepo) Create(ctx context.Context, v *entity.Vlog) error {
	return errors.New("vlog insert failed")
}

func newTestIngestion(sentimentRepo contract.SentimentRepository, gpsRepo contract.GpsRepository, vlogRepo contract.VlogRepository) IIngestionService {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := NewPublisherService("RECORD_CREATED", pubSub)
	return NewIngestionService(sentimentRepo, gpsRepo, vlogRepo, publisher, nopLogger{})
}

func fullRecordInput() *dto.FullRecordInput {
	return &dto.FullRecordInput{
		MoodScore: 5,
		Slot:      "morning",
		Latitude:  25.03,
		Longitude: 121.56,
		Timestamp: "2024-01-01T08:00:00",
		Duration:  "12s",
		Filename:  "clip.mp4",
		Payload:   []byte{0x00, 0x01, 0x02},
	}
}

func TestSubmitFullRecordLinksAllThree(t *testing.T) {
	sentimentRepo := memory.NewSentimentRepository()
	gpsRepo := memory.NewGpsRepository()
	vlogRepo := memory.NewVlogRepository()
	svc := newTestIngestion(sentimentRepo, gpsRepo, vlogRepo)

	res, err := svc.SubmitFullRecord(context.Background(), fullRecordInput())
	assert.NoError(t, err)
	assert.Equal(t, "success", res.Status)

	ctx := context.Background()
	sentiments, _ := sentimentRepo.FindAll(ctx, 10)
	gpsPoints, _ := gpsRepo.FindAll(ctx, 10)
	vlogs, _ := vlogRepo.FindAll(ctx, 10)
	assert.Len(t, sentiments, 1)
	assert.Len(t, gpsPoints, 1)
	assert.Len(t, vlogs, 1)

	// Sentiment's gps_ref resolves to the created GPS record.
	assert.Equal(t, gpsPoints[0].Id, sentiments[0].GpsRef)
	resolvedGps, err := gpsRepo.FindById(ctx, sentiments[0].GpsRef)
	assert.NoError(t, err)
	assert.NotNil(t, resolvedGps)
	assert.Equal(t, 25.03, resolvedGps.Latitude)

	// Vlog's scale_ref resolves to the created Sentiment record.
	assert.Equal(t, sentiments[0].Id, vlogs[0].ScaleRef)
	resolvedSentiment, err := sentimentRepo.FindById(ctx, vlogs[0].ScaleRef)
	assert.NoError(t, err)
	assert.NotNil(t, resolvedSentiment)
	assert.Equal(t, 5, resolvedSentiment.Score)

	// Stored payload survives the round trip.
	full, err := vlogRepo.FindById(ctx, vlogs[0].Id)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0x02}, full.Payload)
}

func TestSubmitFullRecordCompensatesGpsOnSentimentFailure(t *testing.T) {
	gpsRepo := memory.NewGpsRepository()
	vlogRepo := memory.NewVlogRepository()
	sentimentRepo := &failingSentimentRepo{memory.NewSentimentRepository()}
	svc := newTestIngestion(sentimentRepo, gpsRepo, vlogRepo)

	_, err := svc.SubmitFullRecord(context.Background(), fullRecordInput())
	assert.Error(t, err)

	// The GPS write that preceded the failure is rolled back.
	gpsPoints, _ := gpsRepo.FindAll(context.Background(), 10)
	assert.Empty(t, gpsPoints)
}

func TestSubmitFullRecordCompensatesOnVlogFailure(t *testing.T) {
	sentimentRepo := memory.NewSentimentRepository()
	gpsRepo := memory.NewGpsRepository()
	vlogRepo := &failingVlogRepo{memory.NewVlogRepository()}
	svc := newTestIngestion(sentimentRepo, gpsRepo, vlogRepo)

	_, err := svc.SubmitFullRecord(context.Background(), fullRecordInput())
	assert.Error(t, err)

	sentiments, _ := sentimentRepo.FindAll(context.Background(), 10)
	gpsPoints, _ := gpsRepo.FindAll(context.Background(), 10)
	assert.Empty(t, sentiments)
	assert.Empty(t, gpsPoints)
}

func TestSubmitSentimentLegacyPath(t *testing.T) {
	sentimentRepo := memory.NewSentimentRepository()
	svc := newTestIngestion(sentimentRepo, memory.NewGpsRepository(), memory.NewVlogRepository())

	res, err := svc.SubmitSentiment(context.Background(), &dto.UploadSentimentRequest{
		Score:     5,
		Slot:      "morning",
		Timestamp: "2024-01-01T08:00:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.NotEmpty(t, res.Id)

	stored, err := sentimentRepo.FindById(context.Background(), res.Id)
	assert.NoError(t, err)
	assert.NotNil(t, stored)
	assert.Empty(t, stored.GpsRef)
}

func TestSubmitVlogGeneratesFreshFilename(t *testing.T) {
	vlogRepo := memory.NewVlogRepository()
	svc := newTestIngestion(memory.NewSentimentRepository(), memory.NewGpsRepository(), vlogRepo)

	res, err := svc.SubmitVlog(context.Background(), &dto.VlogInput{
		Slot:     "noon",
		Mood:     3,
		ScaleRef: "abc",
		Filename: "原始檔名.mp4",
		Payload:  []byte{0xff},
	})
	assert.NoError(t, err)
	assert.Equal(t, "success", res.Status)
	assert.True(t, strings.HasSuffix(res.Filename, ".mp4"))
	assert.NotEqual(t, "原始檔名.mp4", res.Filename)

	res2, err := svc.SubmitVlog(context.Background(), &dto.VlogInput{Filename: "原始檔名.mp4"})
	assert.NoError(t, err)
	assert.NotEqual(t, res.Filename, res2.Filename)
}
