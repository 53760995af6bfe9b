// Package models holds the server-side data model shared by repositories,
// services, and the HTTP layer.
package models

import "time"

type User struct {
	ID int64 `json:"id"`
	// The frontend sends and expects this field as "name".
	Username  string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`

	// One-way digest, never serialized.
	PasswordHash string `json:"-"`
}
