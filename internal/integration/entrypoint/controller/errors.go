// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
)

// respondError maps a domain error to an HTTP status and error body. Coded
// domain errors carry their code through to the client; anything unknown
// becomes a 500 with a generic message.
func respondError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(authStatus(authErr), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: validationErr.Message,
			Code:  string(validationErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(recordStatus(txnErr.Err), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		ctx.JSON(recordStatus(budgetErr.Err), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(recordStatus(goalErr.Err), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var receivableErr *domainerror.ReceivableError
	if errors.As(err, &receivableErr) {
		ctx.JSON(recordStatus(receivableErr.Err), dto.ErrorResponse{
			Error: receivableErr.Message,
			Code:  string(receivableErr.Code),
		})
		return
	}

	var importErr *domainerror.ImportError
	if errors.As(err, &importErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: importErr.Message,
			Code:  string(importErr.Code),
		})
		return
	}

	var gatewayErr *domainerror.GatewayError
	if errors.As(err, &gatewayErr) {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: gatewayErr.Message,
			Code:  string(gatewayErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// authStatus maps auth error families to HTTP statuses.
func authStatus(err *domainerror.AuthError) int {
	switch {
	case errors.Is(err.Err, domainerror.ErrUnknownAccount):
		return http.StatusNotFound
	case errors.Is(err.Err, domainerror.ErrNotAdmin),
		errors.Is(err.Err, domainerror.ErrAccountProtected):
		return http.StatusForbidden
	case errors.Is(err.Err, domainerror.ErrEmailAlreadyExists):
		return http.StatusConflict
	case errors.Is(err.Err, domainerror.ErrPinConfirmationMismatch),
		errors.Is(err.Err, domainerror.ErrInvalidPinFormat):
		return http.StatusBadRequest
	default:
		return http.StatusUnauthorized
	}
}

// recordStatus maps record-level error causes to HTTP statuses.
func recordStatus(cause error) int {
	switch {
	case errors.Is(cause, domainerror.ErrTransactionNotFound),
		errors.Is(cause, domainerror.ErrBudgetNotFound),
		errors.Is(cause, domainerror.ErrGoalNotFound),
		errors.Is(cause, domainerror.ErrReceivableNotFound):
		return http.StatusNotFound
	case errors.Is(cause, domainerror.ErrNotAuthorizedToModifyTransaction),
		errors.Is(cause, domainerror.ErrNotAuthorizedToModifyBudget),
		errors.Is(cause, domainerror.ErrNotAuthorizedToModifyGoal),
		errors.Is(cause, domainerror.ErrNotAuthorizedToModifyReceivable):
		return http.StatusForbidden
	case errors.Is(cause, domainerror.ErrReceivableAlreadyPaid):
		return http.StatusConflict
	case errors.Is(cause, domainerror.ErrGoalRecordUpdateFailed),
		errors.Is(cause, domainerror.ErrReceivableRecordUpdateFailed):
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}
