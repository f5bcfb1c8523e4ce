package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateAssetRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
	Type string `json:"type" validate:"required,min=2,max=50"`
	// Optional — defaults to AVAILABLE; validated against the enum in the service.
	Status string `json:"status" validate:"omitempty"`
}

// UpdateAssetRequest is a partial update — nil fields are left untouched.
type UpdateAssetRequest struct {
	Name   *string `json:"name"   validate:"omitempty,min=2,max=100"`
	Type   *string `json:"type"   validate:"omitempty,min=2,max=50"`
	Status *string `json:"status" validate:"omitempty"`
}

type AssetFilter struct {
	Status string `form:"status"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AssetResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
