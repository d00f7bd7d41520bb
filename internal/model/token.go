package model

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	GenerateToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
}

// Identity is the authenticated caller decoded from a bearer token.
type Identity struct {
	UserID uint
	Email  string
}
