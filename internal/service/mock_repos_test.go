package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"assetdesk/internal/model"
	"assetdesk/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. Misses surface as gorm.ErrRecordNotFound, the
// same sentinel the real gorm-backed repositories bubble up, so the services
// under test cannot tell the difference.

type mockCompanyRepo struct {
	companies map[uuid.UUID]*model.Company
	employees *mockEmployeeRepo
}

func newMockCompanyRepo() *mockCompanyRepo {
	return &mockCompanyRepo{companies: make(map[uuid.UUID]*model.Company)}
}

func (m *mockCompanyRepo) Create(_ context.Context, c *model.Company) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.companies[c.ID] = &cp
	return nil
}

func (m *mockCompanyRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Company, error) {
	c, ok := m.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCompanyRepo) FindByCNPJ(_ context.Context, cnpj string) (*model.Company, error) {
	for _, c := range m.companies {
		if c.CNPJ == cnpj {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCompanyRepo) List(_ context.Context) ([]model.Company, error) {
	out := make([]model.Company, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockCompanyRepo) Update(_ context.Context, c *model.Company) error {
	if _, ok := m.companies[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	c.UpdatedAt = time.Now()
	cp := *c
	m.companies[c.ID] = &cp
	return nil
}

func (m *mockCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.companies, id)
	return nil
}

func (m *mockCompanyRepo) CountEmployees(_ context.Context, id uuid.UUID) (int64, error) {
	if m.employees == nil {
		return 0, nil
	}
	var n int64
	for _, e := range m.employees.employees {
		if e.CompanyID == id {
			n++
		}
	}
	return n, nil
}

type mockEmployeeRepo struct {
	employees map[uuid.UUID]*model.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[uuid.UUID]*model.Employee)}
}

func (m *mockEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	m.employees[e.ID] = &cp
	return nil
}

func (m *mockEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	e, ok := m.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockEmployeeRepo) FindByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) FindByCPF(_ context.Context, cpf string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.CPF == cpf {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockEmployeeRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range m.employees {
		if e.CompanyID == companyID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	if _, ok := m.employees[e.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	e.UpdatedAt = time.Now()
	cp := *e
	m.employees[e.ID] = &cp
	return nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.employees, id)
	return nil
}

type mockAssetRepo struct {
	assets map[uuid.UUID]*model.Asset
}

func newMockAssetRepo() *mockAssetRepo {
	return &mockAssetRepo{assets: make(map[uuid.UUID]*model.Asset)}
}

func (m *mockAssetRepo) Create(_ context.Context, a *model.Asset) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = model.StatusAvailable
	}
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	m.assets[a.ID] = &cp
	return nil
}

func (m *mockAssetRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Asset, error) {
	a, ok := m.assets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *mockAssetRepo) List(_ context.Context) ([]model.Asset, error) {
	out := make([]model.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockAssetRepo) ListByStatus(_ context.Context, status model.AssetStatus) ([]model.Asset, error) {
	var out []model.Asset
	for _, a := range m.assets {
		if a.Status == status {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockAssetRepo) Update(_ context.Context, a *model.Asset) error {
	if _, ok := m.assets[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	a.UpdatedAt = time.Now()
	cp := *a
	m.assets[a.ID] = &cp
	return nil
}

func (m *mockAssetRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.assets, id)
	return nil
}

// mockAssignmentRepo mirrors the transactional semantics of the real
// implementation: Assign only succeeds when the asset is still AVAILABLE,
// Unassign resets the status unconditionally.
type mockAssignmentRepo struct {
	assignments map[uuid.UUID]*model.AssetAssignment
	assets      *mockAssetRepo
	clock       time.Time
}

func newMockAssignmentRepo(assets *mockAssetRepo) *mockAssignmentRepo {
	return &mockAssignmentRepo{
		assignments: make(map[uuid.UUID]*model.AssetAssignment),
		assets:      assets,
		clock:       time.Now(),
	}
}

func (m *mockAssignmentRepo) Assign(_ context.Context, assetID, employeeID uuid.UUID) (*model.AssetAssignment, error) {
	asset, ok := m.assets.assets[assetID]
	if !ok || asset.Status != model.StatusAvailable {
		return nil, repository.ErrAssetTaken
	}
	asset.Status = model.StatusInUse
	m.clock = m.clock.Add(time.Second)
	a := &model.AssetAssignment{
		ID:         uuid.New(),
		AssetID:    assetID,
		EmployeeID: employeeID,
		AssignedAt: m.clock,
	}
	m.assignments[a.ID] = a
	cp := *a
	return &cp, nil
}

func (m *mockAssignmentRepo) Unassign(_ context.Context, assetID, employeeID uuid.UUID) (*model.AssetAssignment, error) {
	for id, a := range m.assignments {
		if a.AssetID == assetID && a.EmployeeID == employeeID {
			delete(m.assignments, id)
			if asset, ok := m.assets.assets[assetID]; ok {
				asset.Status = model.StatusAvailable
			}
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) FindPair(_ context.Context, assetID, employeeID uuid.UUID) (*model.AssetAssignment, error) {
	for _, a := range m.assignments {
		if a.AssetID == assetID && a.EmployeeID == employeeID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAssignmentRepo) ListAssetsByEmployee(_ context.Context, employeeID uuid.UUID) ([]model.Asset, error) {
	var rows []*model.AssetAssignment
	for _, a := range m.assignments {
		if a.EmployeeID == employeeID {
			rows = append(rows, a)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AssignedAt.After(rows[j].AssignedAt) })
	out := make([]model.Asset, 0, len(rows))
	for _, row := range rows {
		if asset, ok := m.assets.assets[row.AssetID]; ok {
			out = append(out, *asset)
		}
	}
	return out, nil
}

func (m *mockAssignmentRepo) CountNotebooksByEmployee(_ context.Context, employeeID uuid.UUID) (int64, error) {
	var n int64
	for _, a := range m.assignments {
		if a.EmployeeID != employeeID {
			continue
		}
		asset, ok := m.assets.assets[a.AssetID]
		if ok && strings.Contains(strings.ToLower(asset.Type), "notebook") {
			n++
		}
	}
	return n, nil
}

type mockUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username && u.Active {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (m *mockUserRepo) Update(_ context.Context, u *model.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *mockUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Active = false
	return nil
}
