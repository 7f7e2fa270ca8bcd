package repository

import (
	"context"

	"serviturnos-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(ctx context.Context, db *gorm.DB, admin *entity.Admin) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Admin, error)
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Admin, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Admin, error)
	Update(ctx context.Context, db *gorm.DB, admin *entity.Admin) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error
}
