package domain

type TokenPair struct {
	Access  string
	Refresh string
}

// TokenManager issues and verifies the access/refresh token pair attached to
// authenticated requests.
type TokenManager interface {
	IssuePair(userID string) (*TokenPair, error)
	// VerifyAccess returns the user id carried by a valid access token.
	VerifyAccess(token string) (string, error)
	// VerifyRefresh returns the user id carried by a valid refresh token.
	VerifyRefresh(token string) (string, error)
}
