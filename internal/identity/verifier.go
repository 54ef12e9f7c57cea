// Package identity isolates the one capability this service needs from its
// identity provider: turn a bearer credential into a verified user id (and,
// when the token carries one, a role claim).  The provider itself — Google
// sign-in brokered through Supabase Auth in production — stays an external
// collaborator behind this interface.
package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified identity extracted from a credential.
type Claims struct {
	UserID string // subject of the token; matches t106_user_profile.user_id
	Role   string // role claim if present, empty otherwise
}

// ErrInvalidToken is returned for any credential that fails verification.
// Callers should not distinguish expired from forged tokens outward.
var ErrInvalidToken = errors.New("invalid token")

// Verifier produces a verified identity from a raw bearer token.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// JWTVerifier validates HS256 access tokens signed with a shared secret.
// Claims layout follows the issuer convention: subject in "sub", role code
// in "role".
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates the token, rejecting any signing method
// other than HMAC.  The subject claim is required; the role claim is not.
func (v *JWTVerifier) Verify(raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, _ := mc["sub"].(string)
	if sub == "" {
		return Claims{}, ErrInvalidToken
	}
	role, _ := mc["role"].(string)
	return Claims{UserID: sub, Role: role}, nil
}

// Static is a test double: it accepts exactly one token string and returns
// fixed claims for it.  It replaces the ad hoc mock session the frontend
// used to hard-code and must never be wired in a production build.
type Static struct {
	Token  string
	Claims Claims
}

func (s Static) Verify(raw string) (Claims, error) {
	if raw != s.Token {
		return Claims{}, ErrInvalidToken
	}
	return s.Claims, nil
}
