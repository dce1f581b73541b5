package constants

// OAuthErrorCode represents OAuth error codes surfaced to the browser.
type OAuthErrorCode string

const (
	// Provider errors (from callback query parameters)
	OAuthErrorAccessDenied       OAuthErrorCode = "access_denied"
	OAuthErrorInvalidRequest     OAuthErrorCode = "invalid_request"
	OAuthErrorUnauthorizedClient OAuthErrorCode = "unauthorized_client"
	OAuthErrorServerError        OAuthErrorCode = "server_error"

	// Internal errors
	OAuthErrorMissingCode    OAuthErrorCode = "missing_code"
	OAuthErrorSessionExpired OAuthErrorCode = "session_expired"
	OAuthErrorExchangeFailed OAuthErrorCode = "exchange_failed"
)

// OAuthErrorMessages maps error codes to user-friendly messages.
var OAuthErrorMessages = map[OAuthErrorCode]string{
	OAuthErrorAccessDenied:       "You declined the connection request at the provider. You can try connecting again at any time.",
	OAuthErrorInvalidRequest:     "Invalid authorization request. Please contact support if this persists.",
	OAuthErrorUnauthorizedClient: "This application is not authorized with the provider. Please contact support.",
	OAuthErrorServerError:        "The provider encountered an error. Please try again later.",

	OAuthErrorMissingCode:    "Authorization code is missing from the callback. Please start the connection again.",
	OAuthErrorSessionExpired: "The connection attempt expired or its state was lost. Please start the connection again.",
	OAuthErrorExchangeFailed: "Failed to complete the connection with the provider. Please start again.",
}

// GetOAuthErrorMessage returns a user-friendly error message.
func GetOAuthErrorMessage(code OAuthErrorCode) string {
	if msg, ok := OAuthErrorMessages[code]; ok {
		return msg
	}
	return "An unexpected error occurred while connecting your account. Please try again."
}

// GetOAuthErrorMessageFromString returns a user-friendly error message from a raw provider code.
func GetOAuthErrorMessageFromString(code string) string {
	return GetOAuthErrorMessage(OAuthErrorCode(code))
}
