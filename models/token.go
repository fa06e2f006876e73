package models

import "github.com/golang-jwt/jwt/v5"

// CommissionerSubject is the "sub" claim of every commissioner token.
const CommissionerSubject = "commissioner"

// Token wraps a commissioner JWT.
//
// It embeds [jwt.Token] for signing and [jwt.RegisteredClaims] so it can be
// passed to jwt.ParseWithClaims directly.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent back to the caller.
	SignedString string `json:"-"`
}

// IsCommissioner reports whether the token was issued to the commissioner.
func (t *Token) IsCommissioner() bool {
	sub, err := t.GetSubject()
	return err == nil && sub == CommissionerSubject
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
