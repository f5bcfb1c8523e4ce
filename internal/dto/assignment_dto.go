package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AssignAssetRequest struct {
	AssetID    string `json:"assetId"    validate:"required,uuid4"`
	EmployeeID string `json:"employeeId" validate:"required,uuid4"`
}

type UnassignAssetRequest struct {
	AssetID    string `json:"assetId"    validate:"required,uuid4"`
	EmployeeID string `json:"employeeId" validate:"required,uuid4"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AssignmentResponse struct {
	ID         string `json:"id"`
	AssetID    string `json:"assetId"`
	EmployeeID string `json:"employeeId"`
	AssignedAt string `json:"assignedAt"`
}
