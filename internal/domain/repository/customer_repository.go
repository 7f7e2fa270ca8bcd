package repository

import (
	"context"

	"serviturnos-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(ctx context.Context, db *gorm.DB, customer *entity.Customer) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Customer, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Customer, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Customer, error)
	Update(ctx context.Context, db *gorm.DB, customer *entity.Customer) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
