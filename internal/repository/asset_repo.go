package repository

import (
	"context"

	"assetdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetRepository interface {
	Create(ctx context.Context, a *model.Asset) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Asset, error)
	List(ctx context.Context) ([]model.Asset, error)
	ListByStatus(ctx context.Context, status model.AssetStatus) ([]model.Asset, error)
	Update(ctx context.Context, a *model.Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type assetRepo struct{ db *gorm.DB }

func NewAssetRepository(db *gorm.DB) AssetRepository { return &assetRepo{db: db} }

func (r *assetRepo) Create(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assetRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	var a model.Asset
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *assetRepo) List(ctx context.Context) ([]model.Asset, error) {
	var assets []model.Asset
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&assets).Error
	return assets, err
}

func (r *assetRepo) ListByStatus(ctx context.Context, status model.AssetStatus) ([]model.Asset, error) {
	var assets []model.Asset
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at DESC").Find(&assets).Error
	return assets, err
}

func (r *assetRepo) Update(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *assetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Asset{}, "id = ?", id).Error
}
