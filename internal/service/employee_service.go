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

type EmployeeService interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]dto.EmployeeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type employeeService struct {
	repo        repository.EmployeeRepository
	companyRepo repository.CompanyRepository
}

func NewEmployeeService(repo repository.EmployeeRepository, companyRepo repository.CompanyRepository) EmployeeService {
	return &employeeService{repo: repo, companyRepo: companyRepo}
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return nil, ErrCompanyNotFound
	}
	// Company existence is checked before the employee's own uniqueness rules.
	if err := s.companyExists(ctx, companyID); err != nil {
		return nil, err
	}
	if err := s.checkEmailFree(ctx, req.Email, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.checkCPFFree(ctx, req.CPF, uuid.Nil); err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Name:      req.Name,
		Email:     req.Email,
		CPF:       req.CPF,
		CompanyID: companyID,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func (s *employeeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.EmployeeResponse, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(employees), nil
}

func (s *employeeService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]dto.EmployeeResponse, error) {
	if err := s.companyExists(ctx, companyID); err != nil {
		return nil, err
	}
	employees, err := s.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponses(employees), nil
}

func (s *employeeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyID != nil {
		companyID, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return nil, ErrCompanyNotFound
		}
		if err := s.companyExists(ctx, companyID); err != nil {
			return nil, err
		}
		employee.CompanyID = companyID
	}
	if req.Email != nil {
		if err := s.checkEmailFree(ctx, *req.Email, id); err != nil {
			return nil, err
		}
		employee.Email = *req.Email
	}
	if req.CPF != nil {
		if err := s.checkCPFFree(ctx, *req.CPF, id); err != nil {
			return nil, err
		}
		employee.CPF = *req.CPF
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

func (s *employeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findEmployee(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ── internal helpers ──────────────────────────────────────────────────────────

func (s *employeeService) findEmployee(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) companyExists(ctx context.Context, companyID uuid.UUID) error {
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCompanyNotFound
		}
		return err
	}
	return nil
}

// checkEmailFree rejects when the email belongs to a different employee.
// selfID = uuid.Nil on create.
func (s *employeeService) checkEmailFree(ctx context.Context, email string, selfID uuid.UUID) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}

func (s *employeeService) checkCPFFree(ctx context.Context, cpf string, selfID uuid.UUID) error {
	existing, err := s.repo.FindByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrCPFTaken
	}
	return nil
}

func toEmployeeResponse(e *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID.String(),
		Name:      e.Name,
		Email:     e.Email,
		CPF:       e.CPF,
		CompanyID: e.CompanyID.String(),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}

func toEmployeeResponses(employees []model.Employee) []dto.EmployeeResponse {
	result := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		result = append(result, *toEmployeeResponse(&employees[i]))
	}
	return result
}
