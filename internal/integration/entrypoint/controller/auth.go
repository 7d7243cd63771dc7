package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/personal-finance/tracker/internal/application/usecase/auth"
	"github.com/personal-finance/tracker/internal/integration/entrypoint/dto"
)

// CookieConfig describes the session cookie written on login.
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase *auth.RegisterUserUseCase
	loginUseCase    *auth.LoginUserUseCase
	logoutUseCase   *auth.LogoutUserUseCase
	cookie          CookieConfig
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
	cookie CookieConfig,
) *AuthController {
	return &AuthController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
		cookie:          cookie,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := auth.RegisterUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Sex:      req.Sex,
		Age:      req.Age,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, output.Session)
	ctx.JSON(http.StatusCreated, dto.Success("User registered successfully", dto.ToAuthResponse(output.User, output.Session)))
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	input := auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	c.setSessionCookie(ctx, output.Session)
	ctx.JSON(http.StatusOK, dto.Success("Login successful", dto.ToAuthResponse(output.User, output.Session)))
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	output, err := c.logoutUseCase.Execute(ctx.Request.Context(), auth.LogoutUserInput{SessionID: identity.SessionID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	clearSessionCookie(ctx, c.cookie)
	ctx.JSON(http.StatusOK, dto.Success(output.Message, nil))
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, session *auth.SessionOutput) {
	if c.cookie.Name == "" || session == nil || session.Token == nil {
		return
	}
	maxAge := int(time.Until(session.Token.ExpiresAt).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, session.Token.Token, maxAge, "/", "", c.cookie.Secure, true)
}

func clearSessionCookie(ctx *gin.Context, cookie CookieConfig) {
	if cookie.Name == "" {
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, true)
}
