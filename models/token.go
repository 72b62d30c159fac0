package models

import "time"

// Token is a JWT issued to an authenticated user.
type Token struct {
	// SignedString is the compact JWS form (header.payload.signature) sent in
	// the Authorization header.
	SignedString string `json:"token"`

	// UserID is the owner taken from the "sub" claim.
	UserID int64 `json:"-"`

	// ExpiresAt is the value of the "exp" claim.
	ExpiresAt time.Time `json:"expires_at"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
