package repository

import (
	"context"
	"errors"

	"serviturnos-api/internal/domain/entity"
	domainRepo "serviturnos-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct{}

func NewCustomerRepository() domainRepo.CustomerRepository {
	return &customerRepository{}
}

func (r *customerRepository) Create(ctx context.Context, db *gorm.DB, customer *entity.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := db.WithContext(ctx).Order("created_at").Find(&customers).Error
	return customers, err
}

func (r *customerRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Customer, error) {
	var customer entity.Customer
	err := db.WithContext(ctx).Where("email = ?", email).First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(ctx context.Context, db *gorm.DB, customer *entity.Customer) error {
	return db.WithContext(ctx).Save(customer).Error
}

func (r *customerRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Delete(&entity.Customer{}, "id = ?", id).Error
}
