package http

import (
	"errors"
	"net/http"

	"github.com/gad/ecommerce-msvc/internal/adapter/dto"
	"github.com/gad/ecommerce-msvc/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const validationMessage = "Validation incorrect"

// errorStatuses is matched in order with errors.Is.
var errorStatuses = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidQuantity, http.StatusBadRequest},
	{domain.ErrBadRequest, http.StatusBadRequest},
	{domain.ErrInsufficientStock, http.StatusConflict},
	{domain.ErrRemoteUnavailable, http.StatusServiceUnavailable},

	{domain.ErrOrderNotFound, http.StatusNotFound},
	{domain.ErrLineItemNotFound, http.StatusNotFound},
	{domain.ErrProductNotFound, http.StatusNotFound},
	{domain.ErrDataNotFound, http.StatusNotFound},
	{domain.ErrConflictingData, http.StatusConflict},

	{domain.ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{domain.ErrInvalidAuthorizationType, http.StatusUnauthorized},
	{domain.ErrInvalidToken, http.StatusUnauthorized},
}

func statusOf(err error) (int, bool) {
	for _, s := range errorStatuses {
		if errors.Is(err, s.err) {
			return s.status, true
		}
	}
	return http.StatusInternalServerError, false
}

// errorResponse builds the envelope for err. Unknown errors are reported as internal.
func errorResponse(err error) (int, dto.DataResponse) {
	var unavailable *domain.UnavailableError
	if errors.As(err, &unavailable) {
		return unavailable.Status, dto.NewDataResponse(unavailable.Status, unavailable.Message, nil,
			map[string]string{"error": unavailable.Cause})
	}

	status, ok := statusOf(err)
	if !ok {
		return status, dto.NewDataResponse(status, domain.ErrInternal.Error(), nil, nil)
	}
	return status, dto.NewDataResponse(status, err.Error(), nil, nil)
}

// handleAbort sends an error response and aborts the handler chain
func handleAbort(ctx *gin.Context, err error) {
	status, body := errorResponse(err)
	_ = ctx.Error(err)
	ctx.AbortWithStatusJSON(status, body)
}

// handleValidationError sends 400 with the failed fields when err comes from binding
func handleValidationError(ctx *gin.Context, err error) {
	var fields []dto.FieldError
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, dto.FieldError{
				Field:    fe.Field(),
				Messages: []string{fe.Tag()},
			})
		}
	} else {
		fields = append(fields, dto.FieldError{Field: "body", Messages: []string{err.Error()}})
	}

	ctx.AbortWithStatusJSON(http.StatusBadRequest,
		dto.NewDataResponse(http.StatusBadRequest, validationMessage, nil, fields))
}

// handleSuccess sends the envelope with data, or only the status when there is nothing to send
func handleSuccess(ctx *gin.Context, status int, message string, data any) {
	if status == http.StatusNoContent {
		ctx.Status(status)
		return
	}
	ctx.JSON(status, dto.NewDataResponse(status, message, data, nil))
}
