package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"emogo-be/internal/dto"
	"emogo-be/internal/repository/contract"
)

type IExportService interface {
	// ExportJSON returns the raw per-collection arrays, vlog metadata only.
	ExportJSON(ctx context.Context) (*dto.ExportDataResponse, error)
	// ExportCSV returns the joined view, one row per sentiment, with resolved
	// GPS columns and an absolute video download URL.
	ExportCSV(ctx context.Context) ([]byte, error)
}

type exportService struct {
	sentimentRepo      contract.SentimentRepository
	gpsRepo            contract.GpsRepository
	vlogRepo           contract.VlogRepository
	aggregationService IAggregationService
	baseURL            string
	exportLimit        int
}

func NewExportService(
	sentimentRepo contract.SentimentRepository,
	gpsRepo contract.GpsRepository,
	vlogRepo contract.VlogRepository,
	aggregationService IAggregationService,
	baseURL string,
	exportLimit int,
) IExportService {
	return &exportService{
		sentimentRepo:      sentimentRepo,
		gpsRepo:            gpsRepo,
		vlogRepo:           vlogRepo,
		aggregationService: aggregationService,
		baseURL:            baseURL,
		exportLimit:        exportLimit,
	}
}

func (s *exportService) ExportJSON(ctx context.Context) (*dto.ExportDataResponse, error) {
	sentiments, err := s.sentimentRepo.FindAll(ctx, s.exportLimit)
	if err != nil {
		return nil, err
	}
	gpsPoints, err := s.gpsRepo.FindAll(ctx, s.exportLimit)
	if err != nil {
		return nil, err
	}
	vlogs, err := s.vlogRepo.FindAll(ctx, s.exportLimit)
	if err != nil {
		return nil, err
	}

	res := &dto.ExportDataResponse{
		Sentiments: make([]dto.SentimentExport, 0, len(sentiments)),
		Gps:        make([]dto.GpsExport, 0, len(gpsPoints)),
		Vlogs:      make([]dto.VlogExport, 0, len(vlogs)),
	}

	for _, sentiment := range sentiments {
		res.Sentiments = append(res.Sentiments, dto.SentimentExport{
			Id:        sentiment.Id,
			Score:     sentiment.Score,
			Slot:      sentiment.Slot,
			Timestamp: sentiment.Timestamp,
			GpsRef:    sentiment.GpsRef,
		})
	}
	for _, g := range gpsPoints {
		res.Gps = append(res.Gps, dto.GpsExport{
			Id:        g.Id,
			Latitude:  g.Latitude,
			Longitude: g.Longitude,
			Timestamp: g.Timestamp,
		})
	}
	for _, v := range vlogs {
		res.Vlogs = append(res.Vlogs, dto.VlogExport{
			Id:        v.Id,
			Filename:  v.Filename,
			Slot:      v.Slot,
			Mood:      v.Mood,
			ScaleRef:  v.ScaleRef,
			Duration:  v.Duration,
			Timestamp: v.Timestamp,
		})
	}

	return res, nil
}

func (s *exportService) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.aggregationService.AggregateRowsForExport(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"sentiment_id", "score", "slot", "timestamp", "latitude", "longitude", "video_filename", "video_url"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range rows {
		record := []string{
			row.Sentiment.Id,
			strconv.Itoa(row.Sentiment.Score),
			row.Sentiment.Slot,
			row.Sentiment.Timestamp,
			"", "", "", "",
		}
		if row.HasGps {
			record[4] = strconv.FormatFloat(row.Gps.Latitude, 'f', -1, 64)
			record[5] = strconv.FormatFloat(row.Gps.Longitude, 'f', -1, 64)
		}
		if row.HasVideo {
			record[6] = row.Vlog.Filename
			record[7] = fmt.Sprintf("%s/download/vlog/%s", s.baseURL, row.Vlog.Id)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
