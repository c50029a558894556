package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authUseCase "github.com/allisson/authgate/internal/auth/usecase"
	"github.com/allisson/authgate/internal/httputil"
)

const bearerPrefix = "bearer "

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
// The scheme is case-insensitive.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// SessionMiddleware requires a valid session token in the Authorization header and stores
// its username in the request context for GetUsername.
//
// Missing or malformed headers and invalid tokens get 401 "Invalid token"; expired tokens
// get 401 "Token expired".
func SessionMiddleware(gatewayUseCase authUseCase.GatewayUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			logger.Debug("session check failed: missing or malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrTokenInvalid, logger)
			c.Abort()
			return
		}

		session, err := gatewayUseCase.VerifySession(c.Request.Context(), token)
		if err != nil {
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithUsername(c.Request.Context(), session.Username))
		c.Next()
	}
}
