package handlers

import (
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"

	"vita/internal/shared/constants"
	apperrors "vita/internal/shared/errors"
)

// renderCallbackSuccess renders the post-connection HTML page.
func (h *TrackerHandler) renderCallbackSuccess(c *gin.Context, userName string) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Tracker Connected</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background: #f0f4f8;
        }
        .card {
            background: white;
            border-radius: 12px;
            padding: 40px;
            text-align: center;
            box-shadow: 0 4px 12px rgba(0,0,0,0.08);
        }
        .icon { font-size: 48px; margin-bottom: 16px; }
        h1 { margin: 0 0 8px 0; font-size: 22px; color: #1a202c; }
        p { color: #4a5568; margin: 0; }
        a { color: #3182ce; }
    </style>
</head>
<body>
    <div class="card">
        <div class="icon">&#10003;</div>
        <h1>Tracker Connected</h1>
        <p>%s's Fitbit account is now linked. Data will sync automatically.</p>
        <p><a href="/">Back to the journal</a></p>
    </div>
</body>
</html>`, html.EscapeString(userName))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// renderCallbackError renders a human-readable failure page. The raw
// provider error code wins when present; otherwise the internal
// failure maps onto one of the known codes.
func (h *TrackerHandler) renderCallbackError(c *gin.Context, providerError string, err error) {
	code := constants.OAuthErrorServerError
	status := http.StatusBadGateway

	switch {
	case errors.Is(err, apperrors.ErrSessionExpired):
		code = constants.OAuthErrorSessionExpired
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrMissingCode):
		code = constants.OAuthErrorMissingCode
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrAuthorizationDenied):
		code = constants.OAuthErrorCode(providerError)
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrTokenExchangeFailed):
		code = constants.OAuthErrorExchangeFailed
	}

	message := constants.GetOAuthErrorMessage(code)
	if apperrors.IsTerminalHandoffError(err) {
		h.logger.Warnw("tracker connection failed", "code", code, "error", err)
	} else {
		h.logger.Errorw("tracker connection failed unexpectedly", "code", code, "error", err)
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Connection Failed</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
            background: #f0f4f8;
        }
        .card {
            background: white;
            border-radius: 12px;
            padding: 40px;
            text-align: center;
            box-shadow: 0 4px 12px rgba(0,0,0,0.08);
            max-width: 420px;
        }
        .icon { font-size: 48px; margin-bottom: 16px; }
        h1 { margin: 0 0 8px 0; font-size: 22px; color: #1a202c; }
        p { color: #4a5568; margin: 0 0 12px 0; }
        a { color: #3182ce; }
    </style>
</head>
<body>
    <div class="card">
        <div class="icon">&#9888;</div>
        <h1>Connection Failed</h1>
        <p>%s</p>
        <p><a href="/">Back to the journal</a></p>
    </div>
</body>
</html>`, html.EscapeString(message))

	c.Data(status, "text/html; charset=utf-8", []byte(page))
}
