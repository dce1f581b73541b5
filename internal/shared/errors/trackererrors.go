package errors

import "errors"

// Tracker connection and synchronization failure taxonomy.
//
// The first four cover the OAuth handoff: SessionExpired means the pending
// connection state was lost between redirect-out and callback; the
// authorization code in TokenExchangeFailed is single-use, so that failure
// is terminal for the attempt. TransportUnreachable marks a sync run that
// never got off the ground (stored credentials rejected outright) and maps
// to a reconnect prompt rather than a silent retry.
var (
	ErrSessionExpired       = errors.New("pending connection state lost or expired")
	ErrAuthorizationDenied  = errors.New("authorization denied at provider")
	ErrMissingCode          = errors.New("authorization code missing from callback")
	ErrTokenExchangeFailed  = errors.New("token exchange failed")
	ErrTransportUnreachable = errors.New("provider transport unreachable")
	ErrSyncInProgress       = errors.New("a sync is already running for this user")
)

// IsTerminalHandoffError reports whether the OAuth handoff error cannot be
// retried with the same callback parameters.
func IsTerminalHandoffError(err error) bool {
	return errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrAuthorizationDenied) ||
		errors.Is(err, ErrMissingCode) ||
		errors.Is(err, ErrTokenExchangeFailed)
}
