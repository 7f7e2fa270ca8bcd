package entity

import "time"

// UserType values carried in auth token claims
const (
	UserTypeAdmin        = "admin"
	UserTypeProfessional = "professional"
	UserTypeCustomer     = "customer"
)

// User is the shape shared by the three account kinds. It is embedded by
// composition in Customer, Professional and Admin and has no table of its own.
type User struct {
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	FirstName   string    `gorm:"type:varchar(255)" json:"first_name,omitempty"`
	LastName    string    `gorm:"type:varchar(255)" json:"last_name,omitempty"`
	PhoneNumber string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	City        string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	ImageURL    string    `gorm:"type:text" json:"image_url,omitempty"`
	Available   *bool     `gorm:"not null;default:true;index" json:"available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) IsAvailable() bool {
	return u.Available == nil || *u.Available
}

func (u *User) SetAvailable(available bool) {
	u.Available = &available
}

// HasAvailabilityFlag is implemented by every entity that supports the
// reversible soft-delete toggle. TimeSlot deliberately does not implement it.
type HasAvailabilityFlag interface {
	IsAvailable() bool
	SetAvailable(available bool)
}

// ToggleAvailability flips the flag and returns the previous value. Callers
// use the previous value to decide the user-facing message (blocked vs
// restored). Applying it twice restores the original state.
func ToggleAvailability(e HasAvailabilityFlag) bool {
	prev := e.IsAvailable()
	e.SetAvailable(!prev)
	return prev
}
