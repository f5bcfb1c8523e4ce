package service

import (
	"context"
	"testing"

	"assetdesk/internal/dto"
	"assetdesk/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func newCompanyFixture() (*mockCompanyRepo, *mockEmployeeRepo, CompanyService) {
	companies := newMockCompanyRepo()
	employees := newMockEmployeeRepo()
	companies.employees = employees
	return companies, employees, NewCompanyService(companies)
}

func TestCompanyCreate(t *testing.T) {
	_, _, svc := newCompanyFixture()

	resp, err := svc.Create(context.Background(), dto.CreateCompanyRequest{
		Name: "Acme Ltda",
		CNPJ: "12345678000190",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Acme Ltda", resp.Name)
	assert.Equal(t, "12345678000190", resp.CNPJ)
}

func TestCompanyCreateDuplicateCNPJ(t *testing.T) {
	_, _, svc := newCompanyFixture()

	_, err := svc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme Ltda", CNPJ: "12345678000190"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Other SA", CNPJ: "12345678000190"})
	assert.ErrorIs(t, err, ErrCNPJTaken)

	companies, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, companies, 1)
}

func TestCompanyGetByIDNotFound(t *testing.T) {
	_, _, svc := newCompanyFixture()

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCompanyUpdatePartial(t *testing.T) {
	_, _, svc := newCompanyFixture()

	created, err := svc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme Ltda", CNPJ: "12345678000190"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	updated, err := svc.Update(context.Background(), id, dto.UpdateCompanyRequest{Name: strptr("Acme Holdings")})
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", updated.Name)
	assert.Equal(t, "12345678000190", updated.CNPJ, "untouched field keeps its value")
}

func TestCompanyUpdateKeepsOwnCNPJ(t *testing.T) {
	_, _, svc := newCompanyFixture()

	created, err := svc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme Ltda", CNPJ: "12345678000190"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	// Re-sending the record's own CNPJ is not a conflict.
	updated, err := svc.Update(context.Background(), id, dto.UpdateCompanyRequest{
		Name: strptr("Acme Holdings"),
		CNPJ: strptr("12345678000190"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", updated.Name)
}

func TestCompanyUpdateCNPJConflict(t *testing.T) {
	_, _, svc := newCompanyFixture()

	_, err := svc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme Ltda", CNPJ: "12345678000190"})
	require.NoError(t, err)
	other, err := svc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Other SA", CNPJ: "98765432000109"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), uuid.MustParse(other.ID), dto.UpdateCompanyRequest{
		CNPJ: strptr("12345678000190"),
	})
	assert.ErrorIs(t, err, ErrCNPJTaken)
}

func TestCompanyUpdateNotFound(t *testing.T) {
	_, _, svc := newCompanyFixture()

	_, err := svc.Update(context.Background(), uuid.New(), dto.UpdateCompanyRequest{Name: strptr("Ghost")})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCompanyDelete(t *testing.T) {
	_, _, svc := newCompanyFixture()

	created, err := svc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme Ltda", CNPJ: "12345678000190"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Delete(context.Background(), id))
	_, err = svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCompanyDeleteWithEmployees(t *testing.T) {
	_, employees, svc := newCompanyFixture()

	created, err := svc.Create(context.Background(), dto.CreateCompanyRequest{Name: "Acme Ltda", CNPJ: "12345678000190"})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, employees.Create(context.Background(), &model.Employee{
		Name: "Ana Souza", Email: "ana@acme.com", CPF: "12345678901", CompanyID: id,
	}))

	err = svc.Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrCompanyHasEmployees)

	_, err = svc.GetByID(context.Background(), id)
	assert.NoError(t, err, "company must survive the rejected delete")
}

func TestCompanyDeleteNotFound(t *testing.T) {
	_, _, svc := newCompanyFixture()

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}
