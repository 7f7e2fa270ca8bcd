package repository

import (
	"context"

	"serviturnos-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingRepository interface {
	Create(ctx context.Context, db *gorm.DB, meeting *entity.Meeting) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Meeting, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Meeting, error)
	FindByCustomerID(ctx context.Context, db *gorm.DB, customerID uuid.UUID) ([]entity.Meeting, error)
	FindByProfessionalID(ctx context.Context, db *gorm.DB, professionalID uuid.UUID) ([]entity.Meeting, error)
	FindByStatus(ctx context.Context, db *gorm.DB, status entity.MeetingStatus) ([]entity.Meeting, error)
	FindPendingByProfessionalID(ctx context.Context, db *gorm.DB, professionalID uuid.UUID) ([]entity.Meeting, error)
	Update(ctx context.Context, db *gorm.DB, meeting *entity.Meeting) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error

	// Cascade writes used by user soft/hard deletion
	SetAvailabilityByCustomer(ctx context.Context, db *gorm.DB, customerID uuid.UUID, available bool) error
	SetAvailabilityByProfessional(ctx context.Context, db *gorm.DB, professionalID uuid.UUID, available bool) error
}
