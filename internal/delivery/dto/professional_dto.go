package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateProfessionalRequest struct {
	FirstName   string   `json:"first_name" validate:"omitempty,max=255"`
	LastName    string   `json:"last_name" validate:"omitempty,max=255"`
	PhoneNumber string   `json:"phone_number" validate:"omitempty,max=20"`
	City        string   `json:"city" validate:"omitempty,max=100"`
	ImageURL    string   `json:"image_url" validate:"omitempty,url"`
	Profession  string   `json:"profession" validate:"omitempty"`
	Fee         *float64 `json:"fee" validate:"omitempty,gte=0"`
}

type ProfessionalResponse struct {
	ID                uuid.UUID          `json:"id"`
	Email             string             `json:"email"`
	FirstName         string             `json:"first_name,omitempty"`
	LastName          string             `json:"last_name,omitempty"`
	PhoneNumber       string             `json:"phone_number,omitempty"`
	City              string             `json:"city,omitempty"`
	ImageURL          string             `json:"image_url,omitempty"`
	Available         bool               `json:"available"`
	Profession        string             `json:"profession"`
	Fee               *float64           `json:"fee,omitempty"`
	AvailableSlots    []TimeSlotResponse `json:"available_slots"`
	NotAvailableSlots []TimeSlotResponse `json:"not_available_slots"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
	Total         int                    `json:"total"`
}
