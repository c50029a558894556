// Package http provides HTTP handlers for text encryption and decryption.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
	"github.com/allisson/authgate/internal/crypto/http/dto"
	cryptoUseCase "github.com/allisson/authgate/internal/crypto/usecase"
	"github.com/allisson/authgate/internal/httputil"
)

// CipherHandler handles HTTP requests for the cipher endpoints.
type CipherHandler struct {
	cipherUseCase cryptoUseCase.CipherUseCase
	logger        *slog.Logger
}

// NewCipherHandler creates a new cipher handler with required dependencies.
func NewCipherHandler(cipherUseCase cryptoUseCase.CipherUseCase, logger *slog.Logger) *CipherHandler {
	return &CipherHandler{
		cipherUseCase: cipherUseCase,
		logger:        logger,
	}
}

// EncryptHandler encrypts text.
// POST /encrypt - Returns 200 with the encrypted token.
func (h *CipherHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	encrypted, err := h.cipherUseCase.Encrypt(c.Request.Context(), *req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{EncryptedText: encrypted})
}

// DecryptHandler decrypts a token produced by EncryptHandler.
// POST /decrypt - Returns 200 with the plaintext or 422 "Decryption failed".
//
// Malformed bodies fail the same way as a bad token.
func (h *CipherHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("malformed decrypt request", slog.Any("error", err))
		httputil.HandleErrorGin(c, cryptoDomain.ErrInvalidCiphertext, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Debug("invalid decrypt request", slog.Any("error", err))
		httputil.HandleErrorGin(c, cryptoDomain.ErrInvalidCiphertext, h.logger)
		return
	}

	plaintext, err := h.cipherUseCase.Decrypt(c.Request.Context(), req.EncryptedText)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.DecryptResponse{DecryptedText: plaintext})
}
