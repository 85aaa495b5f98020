package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/application/usecase/auth"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	loginUseCase         *auth.LoginUseCase
	logoutUseCase        *auth.LogoutUseCase
	resumeSessionUseCase *auth.ResumeSessionUseCase
	setPinUseCase        *auth.SetPinUseCase
	removePinUseCase     *auth.RemovePinUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.LoginUseCase,
	logoutUseCase *auth.LogoutUseCase,
	resumeSessionUseCase *auth.ResumeSessionUseCase,
	setPinUseCase *auth.SetPinUseCase,
	removePinUseCase *auth.RemovePinUseCase,
) *AuthController {
	return &AuthController{
		loginUseCase:         loginUseCase,
		logoutUseCase:        logoutUseCase,
		resumeSessionUseCase: resumeSessionUseCase,
		setPinUseCase:        setPinUseCase,
		removePinUseCase:     removePinUseCase,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginInput{
		Email: req.Email,
		Pin:   req.Pin,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	if output.PinRequired {
		ctx.JSON(http.StatusOK, dto.LoginResponse{PinRequired: true})
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: output.AccessToken,
		Account:     dto.ToAccountPayload(output.Account),
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// ResumeSession handles POST /auth/resume requests. The account id comes
// from the expired-or-valid token subject; the stored session snapshot is
// authoritative.
func (c *AuthController) ResumeSession(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.resumeSessionUseCase.Execute(ctx.Request.Context(), auth.ResumeSessionInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	if !output.Resumed {
		ctx.JSON(http.StatusOK, dto.ResumeSessionResponse{Resumed: false})
		return
	}

	ctx.JSON(http.StatusOK, dto.ResumeSessionResponse{
		Resumed:     true,
		AccessToken: output.AccessToken,
		Account:     dto.ToAccountPayload(output.Account),
	})
}

// SetPin handles PUT /auth/pin requests.
func (c *AuthController) SetPin(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.SetPinRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	output, err := c.setPinUseCase.Execute(ctx.Request.Context(), auth.SetPinInput{
		AccountID:    accountID,
		NewPin:       req.NewPin,
		Confirmation: req.Confirmation,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// RemovePin handles DELETE /auth/pin requests.
func (c *AuthController) RemovePin(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.removePinUseCase.Execute(ctx.Request.Context(), auth.RemovePinInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// actingRole resolves the caller's role from context, defaulting to user.
func actingRole(ctx *gin.Context) entity.AccountRole {
	role, ok := middleware.GetAccountRoleFromContext(ctx)
	if !ok {
		return entity.AccountRoleUser
	}
	return role
}
