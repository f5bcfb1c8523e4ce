package repository

import (
	"context"
	"errors"

	"assetdesk/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	// Assign atomically transitions the asset AVAILABLE → IN_USE and inserts
	// the assignment row inside one transaction. Returns ErrAssetTaken when
	// the conditional status update matches no row (asset grabbed or edited
	// concurrently).
	Assign(ctx context.Context, assetID, employeeID uuid.UUID) (*model.AssetAssignment, error)
	// Unassign deletes the pair's row and resets the asset to AVAILABLE inside
	// one transaction. The reset is unconditional: even an asset moved to
	// IN_MAINTENANCE by an out-of-band edit comes back as AVAILABLE.
	Unassign(ctx context.Context, assetID, employeeID uuid.UUID) (*model.AssetAssignment, error)
	FindPair(ctx context.Context, assetID, employeeID uuid.UUID) (*model.AssetAssignment, error)
	ListAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Asset, error)
	CountNotebooksByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error)
}

// ErrAssetTaken signals that the compare-and-swap on the asset status found
// the asset no longer AVAILABLE.
var ErrAssetTaken = errors.New("asset is no longer available")

type assignmentRepo struct{ db *gorm.DB }

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository { return &assignmentRepo{db: db} }

func (r *assignmentRepo) Assign(ctx context.Context, assetID, employeeID uuid.UUID) (*model.AssetAssignment, error) {
	assignment := &model.AssetAssignment{AssetID: assetID, EmployeeID: employeeID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Asset{}).
			Where("id = ? AND status = ?", assetID, model.StatusAvailable).
			Update("status", model.StatusInUse)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAssetTaken
		}
		return tx.Create(assignment).Error
	})
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

func (r *assignmentRepo) Unassign(ctx context.Context, assetID, employeeID uuid.UUID) (*model.AssetAssignment, error) {
	var assignment model.AssetAssignment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ? AND employee_id = ?", assetID, employeeID).
			First(&assignment).Error; err != nil {
			return err
		}
		if err := tx.Delete(&assignment).Error; err != nil {
			return err
		}
		return tx.Model(&model.Asset{}).
			Where("id = ?", assetID).
			Update("status", model.StatusAvailable).Error
	})
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) FindPair(ctx context.Context, assetID, employeeID uuid.UUID) (*model.AssetAssignment, error) {
	var a model.AssetAssignment
	err := r.db.WithContext(ctx).
		Where("asset_id = ? AND employee_id = ?", assetID, employeeID).
		First(&a).Error
	return &a, err
}

func (r *assignmentRepo) ListAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]model.Asset, error) {
	var assets []model.Asset
	err := r.db.WithContext(ctx).
		Model(&model.Asset{}).
		Joins("JOIN asset_assignments ON asset_assignments.asset_id = assets.id").
		Where("asset_assignments.employee_id = ?", employeeID).
		Order("asset_assignments.assigned_at DESC").
		Find(&assets).Error
	return assets, err
}

func (r *assignmentRepo) CountNotebooksByEmployee(ctx context.Context, employeeID uuid.UUID) (int64, error) {
	var count int64
	// Case-insensitive substring match: any type containing "notebook"
	// counts ("Notebook", "mini-notebook", ...).
	err := r.db.WithContext(ctx).
		Model(&model.AssetAssignment{}).
		Joins("JOIN assets ON assets.id = asset_assignments.asset_id").
		Where("asset_assignments.employee_id = ? AND LOWER(assets.type) LIKE ?", employeeID, "%notebook%").
		Count(&count).Error
	return count, err
}
