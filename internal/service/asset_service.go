package service

import (
	"context"
	"errors"
	"time"

	"assetdesk/internal/dto"
	"assetdesk/internal/model"
	"assetdesk/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetService interface {
	Create(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AssetResponse, error)
	List(ctx context.Context, filter dto.AssetFilter) ([]dto.AssetResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type assetService struct {
	repo repository.AssetRepository
}

func NewAssetService(repo repository.AssetRepository) AssetService {
	return &assetService{repo: repo}
}

func (s *assetService) Create(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	status := model.StatusAvailable
	if req.Status != "" {
		status = model.AssetStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	asset := &model.Asset{Name: req.Name, Type: req.Type, Status: status}
	if err := s.repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

func (s *assetService) GetByID(ctx context.Context, id uuid.UUID) (*dto.AssetResponse, error) {
	asset, err := s.findAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

func (s *assetService) List(ctx context.Context, filter dto.AssetFilter) ([]dto.AssetResponse, error) {
	var (
		assets []model.Asset
		err    error
	)
	if filter.Status != "" {
		status := model.AssetStatus(filter.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		assets, err = s.repo.ListByStatus(ctx, status)
	} else {
		assets, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		result = append(result, *toAssetResponse(&assets[i]))
	}
	return result, nil
}

func (s *assetService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := s.findAsset(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := model.AssetStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		asset.Status = status
	}
	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Type != nil {
		asset.Type = *req.Type
	}

	if err := s.repo.Update(ctx, asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

func (s *assetService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findAsset(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *assetService) findAsset(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	asset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	return asset, nil
}

func toAssetResponse(a *model.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Type:      a.Type,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
