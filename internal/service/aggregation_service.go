package service

import (
	"context"
	"time"

	"emogo-be/internal/entity"
	"emogo-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// Sentinel strings rendered when a reference is absent or dangling. They are
// part of the client contract and must match the original frontend.
const (
	SentinelNoGps   = "無 GPS 資料"
	SentinelNoVideo = "無影片"
)

const aggregationCacheKey = "aggregated_rows"

type IAggregationService interface {
	// AggregateRows serves the interactive view: capped at the view limit and
	// cached until the TTL expires or an ingest invalidates it.
	AggregateRows(ctx context.Context) ([]*entity.AggregatedRow, error)
	// AggregateRowsForExport uses the larger export cap and bypasses the cache.
	AggregateRowsForExport(ctx context.Context) ([]*entity.AggregatedRow, error)
	InvalidateCache()
}

type aggregationService struct {
	sentimentRepo contract.SentimentRepository
	gpsRepo       contract.GpsRepository
	vlogRepo      contract.VlogRepository
	viewLimit     int
	exportLimit   int
	viewCache     *cache.Cache
	cacheTTL      time.Duration
}

func NewAggregationService(
	sentimentRepo contract.SentimentRepository,
	gpsRepo contract.GpsRepository,
	vlogRepo contract.VlogRepository,
	viewLimit, exportLimit int,
	cacheTTL time.Duration,
) IAggregationService {
	return &aggregationService{
		sentimentRepo: sentimentRepo,
		gpsRepo:       gpsRepo,
		vlogRepo:      vlogRepo,
		viewLimit:     viewLimit,
		exportLimit:   exportLimit,
		viewCache:     cache.New(cacheTTL, 2*cacheTTL),
		cacheTTL:      cacheTTL,
	}
}

func (s *aggregationService) AggregateRows(ctx context.Context) ([]*entity.AggregatedRow, error) {
	if cached, found := s.viewCache.Get(aggregationCacheKey); found {
		return cached.([]*entity.AggregatedRow), nil
	}

	rows, err := s.aggregate(ctx, s.viewLimit)
	if err != nil {
		return nil, err
	}

	s.viewCache.Set(aggregationCacheKey, rows, cache.DefaultExpiration)
	return rows, nil
}

func (s *aggregationService) AggregateRowsForExport(ctx context.Context) ([]*entity.AggregatedRow, error) {
	return s.aggregate(ctx, s.exportLimit)
}

func (s *aggregationService) InvalidateCache() {
	s.viewCache.Delete(aggregationCacheKey)
}

// aggregate reads the sentiment collection as the primary axis (already
// sorted newest-first on the raw timestamp string by the repository) and
// resolves each row's GPS and Vlog references from capped lookup tables.
func (s *aggregationService) aggregate(ctx context.Context, limit int) ([]*entity.AggregatedRow, error) {
	sentiments, err := s.sentimentRepo.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	gpsPoints, err := s.gpsRepo.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	gpsById := make(map[string]*entity.GpsPoint, len(gpsPoints))
	for _, g := range gpsPoints {
		gpsById[g.Id] = g
	}

	vlogs, err := s.vlogRepo.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	vlogByScaleRef := make(map[string]*entity.Vlog, len(vlogs))
	for _, v := range vlogs {
		if v.ScaleRef == "" {
			continue
		}
		current, ok := vlogByScaleRef[v.ScaleRef]
		if !ok || newerVlog(v, current) {
			vlogByScaleRef[v.ScaleRef] = v
		}
	}

	rows := make([]*entity.AggregatedRow, 0, len(sentiments))
	for _, sentiment := range sentiments {
		row := &entity.AggregatedRow{Sentiment: *sentiment}

		if sentiment.GpsRef != "" {
			if g, ok := gpsById[sentiment.GpsRef]; ok {
				row.Gps = g
				row.HasGps = true
			}
		}

		if v, ok := vlogByScaleRef[sentiment.Id]; ok {
			row.Vlog = v
			row.HasVideo = true
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// newerVlog is the tie-break when several vlogs reference the same sentiment:
// newest created_at wins, equal timestamps fall back to the larger hex id so
// the winner never depends on store iteration order.
func newerVlog(candidate, current *entity.Vlog) bool {
	if !candidate.CreatedAt.Equal(current.CreatedAt) {
		return candidate.CreatedAt.After(current.CreatedAt)
	}
	return candidate.Id > current.Id
}
