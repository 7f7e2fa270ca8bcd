package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Admin represents a marketplace moderator account
type Admin struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	User
}

func (Admin) TableName() string {
	return "admins"
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
