// Package session answers "is there a usable session, and who is it for?"
// from the client-wide store, without calling the API.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/pulse/internal/common"
)

// Identity is the decoded claims of a session token.
type Identity jwt.MapClaims

func (id Identity) str(key string) string {
	switch v := id[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// UserID returns the "id" claim, falling back to "sub".
func (id Identity) UserID() string {
	if s := id.str("id"); s != "" {
		return s
	}
	return id.str("sub")
}

func (id Identity) Email() string    { return id.str("email") }
func (id Identity) UserName() string { return id.str("userName") }

// ExpiresAt returns the "exp" claim, or the zero time when absent.
func (id Identity) ExpiresAt() time.Time {
	exp, err := jwt.MapClaims(id).GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

var segmentDecoder = jwt.NewParser()

// DecodeToken returns the claims carried by a compact three-segment token.
// The signature is not checked: the client cannot verify it and only uses
// the claims to decide what to show.
func DecodeToken(token string) (Identity, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty", common.ErrInvalidToken)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", common.ErrInvalidToken, len(parts))
	}

	payload, err := segmentDecoder.DecodeSegment(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: payload: %v", common.ErrInvalidToken, err)
	}

	var claims jwt.MapClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload: %v", common.ErrInvalidToken, err)
	}
	if claims == nil {
		return nil, fmt.Errorf("%w: payload is not an object", common.ErrInvalidToken)
	}

	return Identity(claims), nil
}

// Validate decodes token and checks its expiry against now. A token
// without "exp" never expires; one whose "exp" is not after now, compared
// in whole seconds, has.
func Validate(token string, now time.Time) (Identity, error) {
	id, err := DecodeToken(token)
	if err != nil {
		return nil, err
	}

	exp, err := jwt.MapClaims(id).GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: exp: %v", common.ErrInvalidToken, err)
	}
	if exp != nil && exp.Unix() <= now.Unix() {
		return nil, common.ErrTokenExpired
	}
	return id, nil
}

// IsValid reports whether token decodes and has not expired at now.
func IsValid(token string, now time.Time) bool {
	_, err := Validate(token, now)
	return err == nil
}
