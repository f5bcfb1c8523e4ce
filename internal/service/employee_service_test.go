package service

import (
	"context"
	"testing"

	"assetdesk/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employeeFixture struct {
	companies *mockCompanyRepo
	employees *mockEmployeeRepo
	svc       EmployeeService
	companyID uuid.UUID
}

func newEmployeeFixture(t *testing.T) *employeeFixture {
	t.Helper()
	companies := newMockCompanyRepo()
	employees := newMockEmployeeRepo()
	companies.employees = employees

	companySvc := NewCompanyService(companies)
	created, err := companySvc.Create(context.Background(), dto.CreateCompanyRequest{
		Name: "Acme Ltda",
		CNPJ: "12345678000190",
	})
	require.NoError(t, err)

	return &employeeFixture{
		companies: companies,
		employees: employees,
		svc:       NewEmployeeService(employees, companies),
		companyID: uuid.MustParse(created.ID),
	}
}

func (f *employeeFixture) create(t *testing.T, name, email, cpf string) *dto.EmployeeResponse {
	t.Helper()
	resp, err := f.svc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name:      name,
		Email:     email,
		CPF:       cpf,
		CompanyID: f.companyID.String(),
	})
	require.NoError(t, err)
	return resp
}

func TestEmployeeCreate(t *testing.T) {
	f := newEmployeeFixture(t)

	resp := f.create(t, "Ana Souza", "ana@acme.com", "12345678901")
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "ana@acme.com", resp.Email)
	assert.Equal(t, f.companyID.String(), resp.CompanyID)
}

func TestEmployeeCreateUnknownCompany(t *testing.T) {
	f := newEmployeeFixture(t)

	_, err := f.svc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name:      "Ana Souza",
		Email:     "ana@acme.com",
		CPF:       "12345678901",
		CompanyID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
	assert.Empty(t, f.employees.employees, "nothing must be persisted")
}

func TestEmployeeCreateDuplicateEmail(t *testing.T) {
	f := newEmployeeFixture(t)
	f.create(t, "Ana Souza", "ana@acme.com", "12345678901")

	_, err := f.svc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name:      "Bruno Lima",
		Email:     "ana@acme.com",
		CPF:       "98765432100",
		CompanyID: f.companyID.String(),
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestEmployeeCreateDuplicateCPF(t *testing.T) {
	f := newEmployeeFixture(t)
	f.create(t, "Ana Souza", "ana@acme.com", "12345678901")

	_, err := f.svc.Create(context.Background(), dto.CreateEmployeeRequest{
		Name:      "Bruno Lima",
		Email:     "bruno@acme.com",
		CPF:       "12345678901",
		CompanyID: f.companyID.String(),
	})
	assert.ErrorIs(t, err, ErrCPFTaken)
}

func TestEmployeeGetByIDNotFound(t *testing.T) {
	f := newEmployeeFixture(t)

	_, err := f.svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeUpdateKeepsOwnNaturalKeys(t *testing.T) {
	f := newEmployeeFixture(t)
	created := f.create(t, "Ana Souza", "ana@acme.com", "12345678901")
	id := uuid.MustParse(created.ID)

	updated, err := f.svc.Update(context.Background(), id, dto.UpdateEmployeeRequest{
		Name:  strptr("Ana S. Lima"),
		Email: strptr("ana@acme.com"),
		CPF:   strptr("12345678901"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana S. Lima", updated.Name)
}

func TestEmployeeUpdateEmailConflict(t *testing.T) {
	f := newEmployeeFixture(t)
	f.create(t, "Ana Souza", "ana@acme.com", "12345678901")
	other := f.create(t, "Bruno Lima", "bruno@acme.com", "98765432100")

	_, err := f.svc.Update(context.Background(), uuid.MustParse(other.ID), dto.UpdateEmployeeRequest{
		Email: strptr("ana@acme.com"),
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestEmployeeUpdateUnknownCompany(t *testing.T) {
	f := newEmployeeFixture(t)
	created := f.create(t, "Ana Souza", "ana@acme.com", "12345678901")

	ghost := uuid.New().String()
	_, err := f.svc.Update(context.Background(), uuid.MustParse(created.ID), dto.UpdateEmployeeRequest{
		CompanyID: &ghost,
	})
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestEmployeeListByCompany(t *testing.T) {
	f := newEmployeeFixture(t)
	f.create(t, "Ana Souza", "ana@acme.com", "12345678901")
	f.create(t, "Bruno Lima", "bruno@acme.com", "98765432100")

	list, err := f.svc.ListByCompany(context.Background(), f.companyID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestEmployeeListByCompanyUnknown(t *testing.T) {
	f := newEmployeeFixture(t)

	_, err := f.svc.ListByCompany(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestEmployeeDelete(t *testing.T) {
	f := newEmployeeFixture(t)
	created := f.create(t, "Ana Souza", "ana@acme.com", "12345678901")
	id := uuid.MustParse(created.ID)

	require.NoError(t, f.svc.Delete(context.Background(), id))
	_, err := f.svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestEmployeeDeleteNotFound(t *testing.T) {
	f := newEmployeeFixture(t)

	err := f.svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}
