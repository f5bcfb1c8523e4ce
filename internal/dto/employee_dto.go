package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateEmployeeRequest struct {
	Name      string `json:"name"      validate:"required,min=2,max=100"`
	Email     string `json:"email"     validate:"required,email"`
	CPF       string `json:"cpf"       validate:"required,len=11,numeric"`
	CompanyID string `json:"companyId" validate:"required,uuid4"`
}

// UpdateEmployeeRequest is a partial update — nil fields are left untouched.
type UpdateEmployeeRequest struct {
	Name      *string `json:"name"      validate:"omitempty,min=2,max=100"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	CPF       *string `json:"cpf"       validate:"omitempty,len=11,numeric"`
	CompanyID *string `json:"companyId" validate:"omitempty,uuid4"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	CompanyID string `json:"companyId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
