package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateMeetingRequest struct {
	CustomerID     uuid.UUID `json:"customer_id" validate:"required"`
	ProfessionalID uuid.UUID `json:"professional_id" validate:"required"`
	MeetingDate    string    `json:"meeting_date" validate:"omitempty"` // RFC 3339
	JobInfo        string    `json:"job_info" validate:"omitempty,max=200"`
}

// UpdateMeetingRequest touches only the meeting date and the job description;
// availability is never updatable through this shape.
type UpdateMeetingRequest struct {
	MeetingDate *string `json:"meeting_date" validate:"omitempty"` // RFC 3339
	JobInfo     *string `json:"job_info" validate:"omitempty,max=200"`
}

// Response DTOs

type MeetingResponse struct {
	ID             uuid.UUID  `json:"id"`
	CustomerID     uuid.UUID  `json:"customer_id"`
	ProfessionalID uuid.UUID  `json:"professional_id"`
	Status         string     `json:"status"`
	MeetingDate    *time.Time `json:"meeting_date,omitempty"`
	JobInfo        string     `json:"job_info,omitempty"`
	JobDone        bool       `json:"job_done"`
	Available      bool       `json:"available"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
	Total    int               `json:"total"`
}
