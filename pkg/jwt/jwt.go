package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now
var ErrMalformedToken error = errors.New("malformed token")

// Inspector reads claims out of a bearer token issued by the Krearsip
// backend. The token is verified server-side; client-side we only parse it
// to know who we are logged in as and when the session runs out.
type Inspector struct{}

func NewInspector() Inspector {
	return Inspector{}
}

func (i Inspector) Claims(token string) (jwt.MapClaims, error) {
	parser := jwt.Parser{}

	var claims jwt.MapClaims
	_, _, err := parser.ParseUnverified(token, &claims)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w: %w", err, ErrMalformedToken)
	}

	return claims, nil
}

// Expired reports whether the token carries an "exp" claim in the past.
// Tokens without an expiration claim are treated as live.
func (i Inspector) Expired(token string) (bool, error) {
	claims, err := i.Claims(token)
	if err != nil {
		return false, err
	}

	expVal, ok := claims["exp"].(float64)
	if !ok {
		return false, nil
	}

	return int64(expVal) < TimeNow().Unix(), nil
}

func (i Inspector) Wallet(token string) (string, error) {
	return i.stringClaim(token, "wallet")
}

func (i Inspector) Role(token string) (string, error) {
	return i.stringClaim(token, "peran")
}

func (i Inspector) stringClaim(token, name string) (string, error) {
	claims, err := i.Claims(token)
	if err != nil {
		return "", err
	}

	val, ok := claims[name].(string)
	if !ok {
		return "", fmt.Errorf("claim %q missing from token", name)
	}

	return val, nil
}
