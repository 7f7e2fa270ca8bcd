package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"serviturnos-api/pkg/apperror"
)

// MeetingStatus is the lifecycle position of a meeting
type MeetingStatus string

const (
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusAccepted  MeetingStatus = "accepted"
	MeetingStatusRejected  MeetingStatus = "rejected"
	MeetingStatusFinalized MeetingStatus = "finalized"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

func ParseMeetingStatus(s string) (MeetingStatus, error) {
	switch MeetingStatus(s) {
	case MeetingStatusPending, MeetingStatusAccepted, MeetingStatusRejected,
		MeetingStatusFinalized, MeetingStatusCancelled:
		return MeetingStatus(s), nil
	}
	return "", apperror.Wrap(apperror.ErrInvalidArgument, "unknown meeting status %q", s)
}

// Meeting is an appointment between a customer and a professional. The
// customer_id and professional_id columns carry no foreign key constraint:
// a meeting row survives hard-deletion of either party with a dangling id.
type Meeting struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	ProfessionalID uuid.UUID     `gorm:"type:uuid;not null;index" json:"professional_id"`
	Status         MeetingStatus `gorm:"type:varchar(32);not null;default:'pending';index" json:"status"`
	MeetingDate    *time.Time    `gorm:"type:timestamptz" json:"meeting_date,omitempty"`
	JobInfo        string        `gorm:"type:varchar(200)" json:"job_info,omitempty"`
	JobDone        bool          `gorm:"not null;default:false" json:"job_done"`
	Available      *bool         `gorm:"not null;default:true;index" json:"available"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Meeting) TableName() string {
	return "meetings"
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = MeetingStatusPending
	}
	return nil
}

func (m *Meeting) IsAvailable() bool {
	return m.Available == nil || *m.Available
}

func (m *Meeting) SetAvailable(available bool) {
	m.Available = &available
}

// Accept moves a pending meeting to accepted
func (m *Meeting) Accept() error {
	if m.Status != MeetingStatusPending {
		return apperror.Wrap(apperror.ErrInvalidTransition,
			"meeting can only be accepted while pending, current status is %s", m.Status)
	}
	m.Status = MeetingStatusAccepted
	return nil
}

// Reject moves a pending meeting to rejected and clears jobDone
func (m *Meeting) Reject() error {
	if m.Status != MeetingStatusPending {
		return apperror.Wrap(apperror.ErrInvalidTransition,
			"meeting can only be rejected while pending, current status is %s", m.Status)
	}
	m.Status = MeetingStatusRejected
	m.JobDone = false
	return nil
}

// Cancel moves a pending or accepted meeting to cancelled and clears jobDone
func (m *Meeting) Cancel() error {
	if m.Status != MeetingStatusPending && m.Status != MeetingStatusAccepted {
		return apperror.Wrap(apperror.ErrInvalidTransition,
			"meeting can only be cancelled while pending or accepted, current status is %s", m.Status)
	}
	m.Status = MeetingStatusCancelled
	m.JobDone = false
	return nil
}

// Finalize moves an accepted meeting to finalized and marks the job done
func (m *Meeting) Finalize() error {
	if m.Status != MeetingStatusAccepted {
		return apperror.Wrap(apperror.ErrInvalidTransition,
			"meeting can only be finalized while accepted, current status is %s", m.Status)
	}
	m.Status = MeetingStatusFinalized
	m.JobDone = true
	return nil
}
