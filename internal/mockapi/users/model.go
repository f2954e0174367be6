package users

import "time"

type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash []byte
	Verified     bool
	OTP          string
	CreatedAt    time.Time
}
