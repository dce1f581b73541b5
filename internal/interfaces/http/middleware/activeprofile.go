package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vita/internal/infrastructure/auth"
	"vita/internal/shared/constants"
	"vita/internal/shared/logger"
	"vita/internal/shared/utils"
)

// ActiveProfileMiddleware resolves the active profile from the session
// cookie. There is no password anywhere: possession of the cookie is
// the whole session model, so the token only names which profile the
// browser is acting as.
type ActiveProfileMiddleware struct {
	tokens *auth.ProfileTokenService
	logger logger.Interface
}

func NewActiveProfileMiddleware(tokens *auth.ProfileTokenService, logger logger.Interface) *ActiveProfileMiddleware {
	return &ActiveProfileMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// Require rejects requests without a valid active-profile cookie.
func (m *ActiveProfileMiddleware) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.GetActiveProfileCookie(c)
		if err != nil || token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "no active profile")
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify profile token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired profile token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set("user_name", claims.UserName)

		c.Next()
	}
}

// Optional resolves the cookie when present but never rejects. The
// tracker callback uses this: the redirect may land with a stale or
// missing cookie and still has to complete.
func (m *ActiveProfileMiddleware) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := utils.GetActiveProfileCookie(c)
		if err == nil && token != "" {
			if claims, err := m.tokens.Verify(token); err == nil {
				c.Set(constants.ContextKeyUserID, claims.UserID)
				c.Set("user_name", claims.UserName)
			}
		}
		c.Next()
	}
}
