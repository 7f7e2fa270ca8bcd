package repository

import (
	"context"

	"serviturnos-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessionalRepository reads always eager-load both slot membership lists.
type ProfessionalRepository interface {
	Create(ctx context.Context, db *gorm.DB, professional *entity.Professional) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Professional, error)
	FindByProfession(ctx context.Context, db *gorm.DB, profession entity.Profession) ([]entity.Professional, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Professional, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Professional, error)
	Update(ctx context.Context, db *gorm.DB, professional *entity.Professional) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error

	AddAvailableSlot(ctx context.Context, db *gorm.DB, professional *entity.Professional, slot *entity.TimeSlot) error
	RemoveAvailableSlot(ctx context.Context, db *gorm.DB, professional *entity.Professional, slot *entity.TimeSlot) error
	AddNotAvailableSlot(ctx context.Context, db *gorm.DB, professional *entity.Professional, slot *entity.TimeSlot) error
	RemoveNotAvailableSlot(ctx context.Context, db *gorm.DB, professional *entity.Professional, slot *entity.TimeSlot) error
	ClearAvailableSlots(ctx context.Context, db *gorm.DB, professional *entity.Professional) error
	ClearNotAvailableSlots(ctx context.Context, db *gorm.DB, professional *entity.Professional) error
}
