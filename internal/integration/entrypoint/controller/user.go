package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/personal-finance/tracker/internal/application/usecase/auth"
	"github.com/personal-finance/tracker/internal/application/usecase/user"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

// UserController handles profile and account endpoints.
type UserController struct {
	getProfileUseCase    *user.GetProfileUseCase
	updateProfileUseCase *user.UpdateProfileUseCase
	deleteAccountUseCase *auth.DeleteAccountUseCase
	cookie               CookieConfig
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getProfileUseCase *user.GetProfileUseCase,
	updateProfileUseCase *user.UpdateProfileUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
	cookie CookieConfig,
) *UserController {
	return &UserController{
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
		deleteAccountUseCase: deleteAccountUseCase,
		cookie:               cookie,
	}
}

// GetProfile handles GET /users/profile requests.
func (c *UserController) GetProfile(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	output, err := c.getProfileUseCase.Execute(ctx.Request.Context(), user.GetProfileInput{UserID: identity.UserID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Profile retrieved successfully", dto.ToUserResponse(output.User)))
}

// UpdateProfile handles PATCH /users/profile requests.
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := user.UpdateProfileInput{
		UserID:   identity.UserID,
		FullName: req.FullName,
		Sex:      req.Sex,
		Age:      req.Age,
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success("Profile updated successfully", dto.ToUserResponse(output.User)))
}

// DeleteAccount handles DELETE /users/me requests.
func (c *UserController) DeleteAccount(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.DeleteAccountRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := auth.DeleteAccountInput{
		UserID:       identity.UserID,
		SessionID:    identity.SessionID,
		Password:     req.Password,
		Confirmation: req.Confirmation,
	}

	if _, err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleError(ctx, err)
		return
	}

	clearSessionCookie(ctx, c.cookie)
	ctx.JSON(http.StatusOK, dto.Success("Account deleted successfully", nil))
}
