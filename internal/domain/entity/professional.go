package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"serviturnos-api/pkg/apperror"
)

// Profession is the fixed list of trades offered on the marketplace
type Profession string

const (
	ProfessionElectrician Profession = "electrician"
	ProfessionPlumber     Profession = "plumber"
	ProfessionCarpenter   Profession = "carpenter"
	ProfessionPainter     Profession = "painter"
	ProfessionGardener    Profession = "gardener"
	ProfessionLocksmith   Profession = "locksmith"
)

func AllProfessions() []Profession {
	return []Profession{
		ProfessionElectrician,
		ProfessionPlumber,
		ProfessionCarpenter,
		ProfessionPainter,
		ProfessionGardener,
		ProfessionLocksmith,
	}
}

func ParseProfession(s string) (Profession, error) {
	for _, p := range AllProfessions() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", apperror.Wrap(apperror.ErrInvalidArgument, "unknown profession %q", s)
}

// Professional represents a service provider account. AvailableSlots and
// NotAvailableSlots are disjoint: a time slot reference lives in at most one
// of the two lists at a time.
type Professional struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	User
	Profession        Profession          `gorm:"type:varchar(32);not null;index" json:"profession"`
	Fee               decimal.NullDecimal `gorm:"type:decimal(10,2)" json:"fee,omitempty"`
	AvailableSlots    []TimeSlot          `gorm:"many2many:professional_available_slots" json:"available_slots"`
	NotAvailableSlots []TimeSlot          `gorm:"many2many:professional_not_available_slots" json:"not_available_slots"`
}

func (Professional) TableName() string {
	return "professionals"
}

func (p *Professional) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasAvailableSlot reports membership in the loaded available list
func (p *Professional) HasAvailableSlot(slotID int) bool {
	for _, s := range p.AvailableSlots {
		if s.ID == slotID {
			return true
		}
	}
	return false
}

// HasNotAvailableSlot reports membership in the loaded not-available list
func (p *Professional) HasNotAvailableSlot(slotID int) bool {
	for _, s := range p.NotAvailableSlots {
		if s.ID == slotID {
			return true
		}
	}
	return false
}
