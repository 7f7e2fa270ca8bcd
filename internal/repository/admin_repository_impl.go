package repository

import (
	"context"
	"errors"

	"serviturnos-api/internal/domain/entity"
	domainRepo "serviturnos-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type adminRepository struct{}

func NewAdminRepository() domainRepo.AdminRepository {
	return &adminRepository{}
}

func (r *adminRepository) Create(ctx context.Context, db *gorm.DB, admin *entity.Admin) error {
	return db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Admin, error) {
	var admins []entity.Admin
	err := db.WithContext(ctx).Order("created_at").Find(&admins).Error
	return admins, err
}

func (r *adminRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Admin, error) {
	var admin entity.Admin
	err := db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Admin, error) {
	var admin entity.Admin
	err := db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Update(ctx context.Context, db *gorm.DB, admin *entity.Admin) error {
	return db.WithContext(ctx).Save(admin).Error
}

func (r *adminRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Delete(&entity.Admin{}, "id = ?", id).Error
}
