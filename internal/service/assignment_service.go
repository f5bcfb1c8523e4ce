package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"assetdesk/internal/dto"
	"assetdesk/internal/model"
	"assetdesk/internal/repository"
	"assetdesk/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AssignmentService is the cross-entity rule engine deciding whether an
// asset may be handed to / taken from an employee.
//
// Rule order on assign:
//  1. asset exists            → not-found
//  2. employee exists         → not-found
//  3. asset is AVAILABLE      → invalid-request
//  4. pair not yet assigned   → conflict
//  5. notebook limit          → invalid-request
//
// The write itself is a single transaction: a compare-and-swap on the
// asset status (AVAILABLE → IN_USE) plus the assignment row insert, so two
// racing assigns cannot both succeed.
type AssignmentService interface {
	Assign(ctx context.Context, req dto.AssignAssetRequest) (*dto.AssignmentResponse, error)
	Unassign(ctx context.Context, req dto.UnassignAssetRequest) (*dto.AssignmentResponse, error)
	FindAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]dto.AssetResponse, error)
}

// notifier is the slice of worker.Dispatcher the engine needs. Nil disables
// notifications (tests, minimal deployments).
type notifier interface {
	EnqueueEmail(ctx context.Context, payload interface{}) error
}

type assignmentService struct {
	repo         repository.AssignmentRepository
	assetRepo    repository.AssetRepository
	employeeRepo repository.EmployeeRepository
	dispatcher   notifier
}

func NewAssignmentService(
	repo repository.AssignmentRepository,
	assetRepo repository.AssetRepository,
	employeeRepo repository.EmployeeRepository,
	dispatcher notifier,
) AssignmentService {
	return &assignmentService{
		repo:         repo,
		assetRepo:    assetRepo,
		employeeRepo: employeeRepo,
		dispatcher:   dispatcher,
	}
}

func (s *assignmentService) Assign(ctx context.Context, req dto.AssignAssetRequest) (*dto.AssignmentResponse, error) {
	assetID, employeeID, err := parseAssignmentIDs(req.AssetID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if asset.Status != model.StatusAvailable {
		return nil, fmt.Errorf("%w: current status %s", ErrAssetNotAvailable, asset.Status)
	}

	if _, err := s.repo.FindPair(ctx, assetID, employeeID); err == nil {
		return nil, ErrAssetAlreadyAssigned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// One notebook per employee. The rule keys off the free-text type, so
	// "Notebook Dell" and "mini-notebook" both count.
	if strings.Contains(strings.ToLower(asset.Type), "notebook") {
		count, err := s.repo.CountNotebooksByEmployee(ctx, employeeID)
		if err != nil {
			return nil, err
		}
		if count >= 1 {
			return nil, ErrNotebookLimit
		}
	}

	assignment, err := s.repo.Assign(ctx, assetID, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrAssetTaken) {
			// Lost the CAS to a concurrent assign or an out-of-band edit.
			return nil, ErrAssetNotAvailable
		}
		return nil, err
	}

	s.notify(ctx, employee.Email, "Asset assigned",
		fmt.Sprintf("The asset %q (%s) was assigned to you.", asset.Name, asset.Type))

	return toAssignmentResponse(assignment), nil
}

func (s *assignmentService) Unassign(ctx context.Context, req dto.UnassignAssetRequest) (*dto.AssignmentResponse, error) {
	assetID, employeeID, err := parseAssignmentIDs(req.AssetID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.FindByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}

	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	assignment, err := s.repo.Unassign(ctx, assetID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}

	s.notify(ctx, employee.Email, "Asset returned",
		fmt.Sprintf("The asset %q (%s) was unassigned from you.", asset.Name, asset.Type))

	return toAssignmentResponse(assignment), nil
}

func (s *assignmentService) FindAssetsByEmployee(ctx context.Context, employeeID uuid.UUID) ([]dto.AssetResponse, error) {
	if _, err := s.employeeRepo.FindByID(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	assets, err := s.repo.ListAssetsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		result = append(result, *toAssetResponse(&assets[i]))
	}
	return result, nil
}

// notify enqueues an email job — best effort, never fails the operation.
func (s *assignmentService) notify(ctx context.Context, to, subject, body string) {
	if s.dispatcher == nil {
		return
	}
	payload := worker.EmailJobPayload{ToEmail: to, Subject: subject, Body: body}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Warn().Err(err).Str("to", to).Msg("failed to enqueue assignment notification")
	}
}

func parseAssignmentIDs(rawAssetID, rawEmployeeID string) (uuid.UUID, uuid.UUID, error) {
	assetID, err := uuid.Parse(rawAssetID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrAssetNotFound
	}
	employeeID, err := uuid.Parse(rawEmployeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrEmployeeNotFound
	}
	return assetID, employeeID, nil
}

func toAssignmentResponse(a *model.AssetAssignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		ID:         a.ID.String(),
		AssetID:    a.AssetID.String(),
		EmployeeID: a.EmployeeID.String(),
		AssignedAt: a.AssignedAt.Format(time.RFC3339),
	}
}
