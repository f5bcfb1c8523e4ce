package handler

import (
	"net/http"

	"assetdesk/internal/apierror"
	"assetdesk/internal/dto"
	"assetdesk/internal/middleware"
	"assetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AssignmentsHandler struct{ svc service.AssignmentService }

func NewAssignmentsHandler(svc service.AssignmentService) *AssignmentsHandler {
	return &AssignmentsHandler{svc: svc}
}

func (h *AssignmentsHandler) Assign(c *gin.Context) {
	var req dto.AssignAssetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Assign(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditAssignment(c, "asset assigned", resp)
	c.JSON(http.StatusCreated, resp)
}

func (h *AssignmentsHandler) Unassign(c *gin.Context) {
	var req dto.UnassignAssetRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Unassign(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	auditAssignment(c, "asset unassigned", resp)
	c.JSON(http.StatusOK, resp)
}

// auditAssignment records who moved which asset. Handovers are the one
// operation operators ask to trace after the fact.
func auditAssignment(c *gin.Context, action string, resp *dto.AssignmentResponse) {
	ev := log.Info().
		Str("asset_id", resp.AssetID).
		Str("employee_id", resp.EmployeeID)
	if claims := middleware.GetClaims(c); claims != nil {
		ev = ev.Str("acting_user", claims.Username)
	}
	ev.Msg(action)
}

// AssetsByEmployee returns the employee's assets, most recently assigned first.
func (h *AssignmentsHandler) AssetsByEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid employee id"))
		return
	}
	resp, err := h.svc.FindAssetsByEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
