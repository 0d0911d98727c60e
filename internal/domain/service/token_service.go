package service

// Claims are the identity fields embedded in a session token.
type Claims struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenService issues and verifies signed, time-limited session tokens.
//
// Verify deliberately collapses every failure mode - malformed token, bad
// signature, expiry - into a single invalid outcome. The access gate relies
// on this: callers never branch on why a token was rejected.
type TokenService interface {
	// Issue creates a compact signed token carrying the claims.
	Issue(claims *Claims) (string, error)

	// Verify validates signature and expiry, returning the embedded claims
	// or ok=false.
	Verify(token string) (claims *Claims, ok bool)
}
