package handler

import (
	"errors"
	"net/http"

	"assetdesk/internal/apierror"
	"assetdesk/internal/repository"
	"assetdesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps business errors to HTTP statuses in one place:
// not-found → 404, conflict → 409, invalid-request → 400,
// everything else → 500 (logged by the error middleware).
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCompanyNotFound),
		errors.Is(err, service.ErrEmployeeNotFound),
		errors.Is(err, service.ErrAssetNotFound),
		errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))

	case errors.Is(err, service.ErrCNPJTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrCPFTaken),
		errors.Is(err, service.ErrAssetAlreadyAssigned),
		errors.Is(err, service.ErrCompanyHasEmployees),
		errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))

	case errors.Is(err, service.ErrAssetNotAvailable),
		errors.Is(err, service.ErrNotebookLimit),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, repository.ErrAssetTaken):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))

	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
