package service

import (
	"context"

	"emogo-be/internal/entity"
	"emogo-be/internal/repository/contract"
)

type IVideoService interface {
	// GetVlog returns the full record including payload, or nil when the
	// identifier is malformed or names no stored record.
	GetVlog(ctx context.Context, id string) (*entity.Vlog, error)
}

type videoService struct {
	vlogRepo contract.VlogRepository
}

func NewVideoService(vlogRepo contract.VlogRepository) IVideoService {
	return &videoService{vlogRepo: vlogRepo}
}

func (s *videoService) GetVlog(ctx context.Context, id string) (*entity.Vlog, error) {
	return s.vlogRepo.FindById(ctx, id)
}
