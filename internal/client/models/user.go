// Package models holds the data exchanged between the Pulse client, its
// local store and the Pulse API.
package models

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// ID is a user identifier as sent by the API. The backend may send it as a
// JSON number or a JSON string; both are kept in textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
	default:
		if _, err := strconv.ParseFloat(string(b), 64); err != nil {
			return fmt.Errorf("invalid id %s", string(b))
		}
		*id = ID(b)
	}
	return nil
}

// MarshalJSON writes numeric ids as JSON numbers and everything else as
// strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// ProfileImage is the avatar of a user. The API sends it either as a plain
// URL string or as an object with a "url" field.
type ProfileImage struct {
	URL string
}

func (p *ProfileImage) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		p.URL = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &p.URL)
	}
	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("invalid profile image: %w", err)
	}
	p.URL = obj.URL
	return nil
}

func (p ProfileImage) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.URL)
}

// UserProfile is the user object returned on sign-in and stored next to the
// session token.
type UserProfile struct {
	ID           ID            `json:"id"`
	UserName     string        `json:"userName"`
	Email        string        `json:"email"`
	ProfileImage *ProfileImage `json:"profileImage,omitempty"`
}

// ImageURL returns the avatar URL or "".
func (u *UserProfile) ImageURL() string {
	if u == nil || u.ProfileImage == nil {
		return ""
	}
	return u.ProfileImage.URL
}

// Session is what the API returns on a successful sign-in or OTP check.
type Session struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// SignupRequest creates an account; the API answers by mailing a one-time
// code to Email.
type SignupRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest signs an existing account in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyOTPRequest exchanges a one-time code for a session.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}
