package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a presented token is malformed, carries a
// bad signature, or was signed with a different secret.
var ErrInvalidToken = errors.New("invalid token")

// claims is the full claim set carried by a session token: just the subject
// user id. Tokens deliberately carry no expiry; issued tokens stay valid for
// the lifetime of the signing secret.
type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Codec issues and verifies signed, stateless session tokens (HS256).
type Codec struct {
	secret []byte
}

// NewCodec creates a token codec signing with secret. An empty secret is a
// configuration error, never a silent default.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("auth: signing secret must not be empty")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Issue returns a signed token whose only claim is userID.
func (c *Codec) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{UserID: userID})
	return token.SignedString(c.secret)
}

// Verify decodes tokenString and returns the embedded user id. Any failure —
// bad signature, tampered payload, wrong algorithm, garbage input — comes
// back as ErrInvalidToken.
func (c *Codec) Verify(tokenString string) (string, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || parsed.UserID == "" {
		return "", ErrInvalidToken
	}
	return parsed.UserID, nil
}
