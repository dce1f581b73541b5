package tracker

// PendingConnection is the short-lived handshake stored between sending
// a user to the provider's consent page and receiving the callback.
type PendingConnection struct {
	UserID    uint   `json:"user_id"`
	UserName  string `json:"user_name"`
	Expecting bool   `json:"expecting"`
}
