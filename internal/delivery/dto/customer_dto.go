package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateCustomerRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,max=255"`
	LastName    string `json:"last_name" validate:"omitempty,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=20"`
	City        string `json:"city" validate:"omitempty,max=100"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	City        string    `json:"city,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int                `json:"total"`
}
