package service

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"emogo-be/internal/dto"
	"emogo-be/internal/entity"
	"emogo-be/internal/pkg/logger"
	"emogo-be/internal/repository/contract"

	"github.com/google/uuid"
)

type IIngestionService interface {
	SubmitSentiment(ctx context.Context, req *dto.UploadSentimentRequest) (*dto.UploadResponse, error)
	SubmitGps(ctx context.Context, req *dto.UploadGpsRequest) (*dto.UploadResponse, error)
	SubmitVlog(ctx context.Context, in *dto.VlogInput) (*dto.UploadVlogResponse, error)
	SubmitFullRecord(ctx context.Context, in *dto.FullRecordInput) (*dto.FullRecordResponse, error)
}

type ingestionService struct {
	sentimentRepo    contract.SentimentRepository
	gpsRepo          contract.GpsRepository
	vlogRepo         contract.VlogRepository
	publisherService IPublisherService
	log              logger.ILogger
}

func NewIngestionService(
	sentimentRepo contract.SentimentRepository,
	gpsRepo contract.GpsRepository,
	vlogRepo contract.VlogRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) IIngestionService {
	return &ingestionService{
		sentimentRepo:    sentimentRepo,
		gpsRepo:          gpsRepo,
		vlogRepo:         vlogRepo,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *ingestionService) SubmitSentiment(ctx context.Context, req *dto.UploadSentimentRequest) (*dto.UploadResponse, error) {
	sentiment := entity.Sentiment{
		Score:     req.Score,
		Slot:      req.Slot,
		Timestamp: req.Timestamp,
		GpsRef:    req.GpsRef,
		CreatedAt: time.Now(),
	}

	if err := s.sentimentRepo.Create(ctx, &sentiment); err != nil {
		return nil, err
	}

	s.publishRecordCreated(ctx, "sentiment", sentiment.Id)

	return &dto.UploadResponse{Status: "success", Id: sentiment.Id}, nil
}

func (s *ingestionService) SubmitGps(ctx context.Context, req *dto.UploadGpsRequest) (*dto.UploadResponse, error) {
	point := entity.GpsPoint{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timestamp: req.Timestamp,
		CreatedAt: time.Now(),
	}

	if err := s.gpsRepo.Create(ctx, &point); err != nil {
		return nil, err
	}

	s.publishRecordCreated(ctx, "gps", point.Id)

	return &dto.UploadResponse{Status: "success", Id: point.Id}, nil
}

func (s *ingestionService) SubmitVlog(ctx context.Context, in *dto.VlogInput) (*dto.UploadVlogResponse, error) {
	vlog := entity.Vlog{
		Filename:  storedFilename(in.Filename),
		Slot:      in.Slot,
		Mood:      in.Mood,
		ScaleRef:  in.ScaleRef,
		Timestamp: time.Now().Format(time.RFC3339),
		Payload:   in.Payload,
		CreatedAt: time.Now(),
	}

	if err := s.vlogRepo.Create(ctx, &vlog); err != nil {
		return nil, err
	}

	s.publishRecordCreated(ctx, "vlog", vlog.Id)

	return &dto.UploadVlogResponse{Status: "success", Filename: vlog.Filename}, nil
}

// SubmitFullRecord performs the three-step write: GPS, then Sentiment
// embedding the GPS id, then Vlog embedding the Sentiment id. The store does
// not give us a multi-document transaction, so a failed step triggers
// best-effort compensating deletes of the earlier writes instead of leaving
// dangling records behind.
func (s *ingestionService) SubmitFullRecord(ctx context.Context, in *dto.FullRecordInput) (*dto.FullRecordResponse, error) {
	now := time.Now()

	point := entity.GpsPoint{
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Timestamp: in.Timestamp,
		CreatedAt: now,
	}
	if err := s.gpsRepo.Create(ctx, &point); err != nil {
		return nil, err
	}

	sentiment := entity.Sentiment{
		Score:     in.MoodScore,
		Slot:      in.Slot,
		Timestamp: in.Timestamp,
		GpsRef:    point.Id,
		CreatedAt: now,
	}
	if err := s.sentimentRepo.Create(ctx, &sentiment); err != nil {
		s.compensate(ctx, "gps", point.Id, func() error { return s.gpsRepo.Delete(ctx, point.Id) })
		return nil, err
	}

	vlog := entity.Vlog{
		Filename:  storedFilename(in.Filename),
		Slot:      in.Slot,
		Mood:      in.MoodScore,
		ScaleRef:  sentiment.Id,
		Duration:  in.Duration,
		Timestamp: in.Timestamp,
		Payload:   in.Payload,
		CreatedAt: now,
	}
	if err := s.vlogRepo.Create(ctx, &vlog); err != nil {
		s.compensate(ctx, "sentiment", sentiment.Id, func() error { return s.sentimentRepo.Delete(ctx, sentiment.Id) })
		s.compensate(ctx, "gps", point.Id, func() error { return s.gpsRepo.Delete(ctx, point.Id) })
		return nil, err
	}

	s.publishRecordCreated(ctx, "sentiment", sentiment.Id)

	return &dto.FullRecordResponse{
		Status:  "success",
		Message: "Data and video uploaded successfully",
	}, nil
}

func (s *ingestionService) compensate(ctx context.Context, kind, id string, del func() error) {
	if err := del(); err != nil {
		s.log.Warn("ingestion", "compensating delete failed", map[string]interface{}{
			"kind":  kind,
			"id":    id,
			"error": err.Error(),
		})
	}
}

// publishRecordCreated notifies the consumer so the cached aggregation view
// gets dropped. The event is auxiliary; a publish failure never fails the
// upload.
func (s *ingestionService) publishRecordCreated(ctx context.Context, kind, id string) {
	payload, err := json.Marshal(dto.RecordCreatedMessage{Kind: kind, Id: id})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("ingestion", "failed to publish record created event", map[string]interface{}{
			"kind":  kind,
			"id":    id,
			"error": err.Error(),
		})
	}
}

// storedFilename keeps the upload's extension but replaces the name with a
// fresh uuid so concurrent uploads of "video.mp4" never collide.
func storedFilename(original string) string {
	ext := filepath.Ext(original)
	if ext == "" {
		ext = ".mp4"
	}
	return uuid.New().String() + ext
}
