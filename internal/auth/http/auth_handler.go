// Package http provides HTTP handlers and middleware for login and session verification.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	"github.com/allisson/authgate/internal/auth/http/dto"
	authUseCase "github.com/allisson/authgate/internal/auth/usecase"
	"github.com/allisson/authgate/internal/httputil"
)

// AuthHandler handles HTTP requests for login and session verification.
type AuthHandler struct {
	gatewayUseCase authUseCase.GatewayUseCase
	logger         *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(gatewayUseCase authUseCase.GatewayUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		gatewayUseCase: gatewayUseCase,
		logger:         logger,
	}
}

// AuthenticateHandler logs a user in.
// POST /authenticate - Returns 200 with a session token or 401 "Invalid credentials".
//
// Malformed bodies are not rejected up front: they go through the gateway as an empty
// login so the failure is counted like any other. source_id/ip are bound separately
// so a bad username or password still counts against the caller's source.
func (h *AuthHandler) AuthenticateHandler(c *gin.Context) {
	var src dto.LoginSource
	var req dto.AuthenticateRequest

	input := &authDomain.AuthenticateInput{}
	if err := c.ShouldBindBodyWith(&src, binding.JSON); err != nil {
		h.logger.Debug("malformed login source", slog.Any("error", err))
	} else if err := src.Validate(); err != nil {
		h.logger.Debug("invalid login source", slog.Any("error", err))
	} else {
		input.SourceID = src.Source()
	}

	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.logger.Debug("malformed login request", slog.Any("error", err))
	} else if err := req.Validate(); err != nil {
		h.logger.Debug("invalid login request", slog.Any("error", err))
	} else {
		input.Username = req.Username
		input.Password = req.Password
	}

	output, err := h.gatewayUseCase.Authenticate(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapAuthenticateOutputToResponse(output))
}

// VerifyHandler checks a session token.
// GET /verify?token=... or Authorization: Bearer <token> - Returns 200 {user, status} or
// 401 "Token expired" / "Invalid token". The query parameter wins when both are present.
func (h *AuthHandler) VerifyHandler(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token, _ = bearerToken(c)
	}
	if token == "" {
		httputil.HandleErrorGin(c, authDomain.ErrTokenInvalid, h.logger)
		return
	}

	output, err := h.gatewayUseCase.VerifySession(c.Request.Context(), token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapVerifySessionOutputToResponse(output))
}
