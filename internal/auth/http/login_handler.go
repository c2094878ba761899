package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/auth/internal/auth/domain"
	authUseCase "github.com/allisson/auth/internal/auth/usecase"
	"github.com/allisson/auth/internal/httputil"
	userDTO "github.com/allisson/auth/internal/user/http/dto"
	customValidation "github.com/allisson/auth/internal/validation"
)

// LoginHandler handles HTTP requests for session token issuance.
type LoginHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewLoginHandler creates a new login handler with required dependencies.
func NewLoginHandler(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) *LoginHandler {
	return &LoginHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginRequest contains the credentials presented at the login endpoint.
// The form tags support the swagger variant which posts url-encoded fields.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Validate checks if the login request is valid.
func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(1, 128),
		),
	)
}

// LoginResponse is the token payload returned after a successful login.
type LoginResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	User        userDTO.UserResponse `json:"user"`
}

// LoginHandler issues a session token for valid credentials.
// POST /v1/auth - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the token and the sanitized user.
func (h *LoginHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.login(c, &req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, mapLoginToResponse(output))
}

// SwaggerLoginHandler issues a session token from form credentials and also
// sets the Authorization cookie, mirroring the interactive docs flow.
// POST /v1/auth/swagger - No authentication required.
func (h *LoginHandler) SwaggerLoginHandler(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBind(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.login(c, &req)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.SetCookie(
		authorizationCookie,
		fmt.Sprintf("Bearer %s", output.AccessToken),
		0,
		"/",
		"",
		false,
		true,
	)
	c.JSON(http.StatusOK, mapLoginToResponse(output))
}

// login runs the authentication protocol for a validated request.
func (h *LoginHandler) login(c *gin.Context, req *LoginRequest) (*authDomain.LoginOutput, error) {
	input := &authDomain.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}
	return h.authUseCase.Login(c.Request.Context(), input)
}

// mapLoginToResponse converts a login result to the API response shape.
func mapLoginToResponse(output *authDomain.LoginOutput) LoginResponse {
	return LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		User:        userDTO.ToUserResponse(output.User),
	}
}
