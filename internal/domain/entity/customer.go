package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a client account requesting services
type Customer struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	User
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
