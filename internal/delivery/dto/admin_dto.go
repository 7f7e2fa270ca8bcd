package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateAdminRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,max=255"`
	LastName  string `json:"last_name" validate:"omitempty,max=255"`
}

type AdminResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdminListResponse struct {
	Admins []AdminResponse `json:"admins"`
	Total  int             `json:"total"`
}
