package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	CNPJ string `json:"cnpj" validate:"required,len=14,numeric"`
}

// UpdateCompanyRequest is a partial update — nil fields are left untouched.
type UpdateCompanyRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=100"`
	CNPJ *string `json:"cnpj" validate:"omitempty,len=14,numeric"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CompanyResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CNPJ      string `json:"cnpj"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
