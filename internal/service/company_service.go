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

type CompanyService interface {
	Create(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error)
	List(ctx context.Context) ([]dto.CompanyResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{repo: repo}
}

func (s *companyService) Create(ctx context.Context, req dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := s.repo.FindByCNPJ(ctx, req.CNPJ)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err == nil && existing != nil {
		return nil, ErrCNPJTaken
	}

	company := &model.Company{Name: req.Name, CNPJ: req.CNPJ}
	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func (s *companyService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func (s *companyService) List(ctx context.Context) ([]dto.CompanyResponse, error) {
	companies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		result = append(result, *toCompanyResponse(&companies[i]))
	}
	return result, nil
}

func (s *companyService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CNPJ != nil {
		// Only reject when the CNPJ belongs to a different company — updating
		// a record to its own current value is not a conflict.
		existing, err := s.repo.FindByCNPJ(ctx, *req.CNPJ)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil && existing.ID != id {
			return nil, ErrCNPJTaken
		}
		company.CNPJ = *req.CNPJ
	}
	if req.Name != nil {
		company.Name = *req.Name
	}

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func (s *companyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findCompany(ctx, id); err != nil {
		return err
	}
	// The FK RESTRICT on employees is the real guard; this pre-check only
	// exists for a readable error message.
	count, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCompanyHasEmployees
	}
	return s.repo.Delete(ctx, id)
}

func (s *companyService) findCompany(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func toCompanyResponse(c *model.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		CNPJ:      c.CNPJ,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
