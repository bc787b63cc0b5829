package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleAdvertiser = "advertiser"
	RoleInfluencer = "influencer"
)

func IsValidRole(role string) bool {
	return role == RoleAdvertiser || role == RoleInfluencer
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"phone,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}
