package models

import (
	"time"
)

// User represents an account on the platform. Accounts are created by the
// registration service; this core only reads them.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Fullname     string    `json:"fullname" db:"fullname"`
	Avatar       string    `json:"avatar" db:"avatar"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	RefreshToken string    `json:"-" db:"refresh_token"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// SubscriberProfile is the projection returned when listing a channel's
// subscribers
type SubscriberProfile struct {
	Username string `json:"username" db:"username"`
	Fullname string `json:"fullname" db:"fullname"`
	Avatar   string `json:"avatar" db:"avatar"`
}

// ChannelProfile is the projection returned when listing the channels a
// user has subscribed to
type ChannelProfile struct {
	Username string `json:"username" db:"username"`
	Avatar   string `json:"avatar" db:"avatar"`
}
