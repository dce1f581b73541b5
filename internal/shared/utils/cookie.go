package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"vita/internal/shared/config"
)

// ActiveProfileCookie is the cookie carrying the signed active-profile token.
const ActiveProfileCookie = "vita_profile"

// SetActiveProfileCookie stores the signed profile token in an HTTP-only cookie.
func SetActiveProfileCookie(c *gin.Context, cfg *config.CookieConfig, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     ActiveProfileCookie,
		Value:    token,
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: parseSameSite(cfg.SameSite),
	})
}

// ClearActiveProfileCookie removes the active-profile cookie.
func ClearActiveProfileCookie(c *gin.Context, cfg *config.CookieConfig) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     ActiveProfileCookie,
		Value:    "",
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   -1,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: parseSameSite(cfg.SameSite),
	})
}

// GetActiveProfileCookie reads the active-profile token from the request.
func GetActiveProfileCookie(c *gin.Context) (string, error) {
	return c.Cookie(ActiveProfileCookie)
}

func parseSameSite(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
