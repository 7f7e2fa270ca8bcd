package repository

import (
	"context"
	"errors"

	"serviturnos-api/internal/domain/entity"
	domainRepo "serviturnos-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func withSlots(db *gorm.DB) *gorm.DB {
	return db.Preload("AvailableSlots").Preload("NotAvailableSlots")
}

func (r *professionalRepository) Create(ctx context.Context, db *gorm.DB, professional *entity.Professional) error {
	return db.WithContext(ctx).Create(professional).Error
}

func (r *professionalRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := withSlots(db.WithContext(ctx)).Order("created_at").Find(&professionals).Error
	return professionals, err
}

func (r *professionalRepository) FindByProfession(ctx context.Context, db *gorm.DB, profession entity.Profession) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := withSlots(db.WithContext(ctx)).
		Where("profession = ?", profession).
		Order("created_at").
		Find(&professionals).Error
	return professionals, err
}

func (r *professionalRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Professional, error) {
	var professional entity.Professional
	err := withSlots(db.WithContext(ctx)).Where("id = ?", id).First(&professional).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.Professional, error) {
	var professional entity.Professional
	err := withSlots(db.WithContext(ctx)).Where("email = ?", email).First(&professional).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) Update(ctx context.Context, db *gorm.DB, professional *entity.Professional) error {
	// Omit the association fields so a Save never rewrites the membership
	// lists; those change only through the dedicated slot operations.
	return db.WithContext(ctx).
		Omit("AvailableSlots", "NotAvailableSlots").
		Save(professional).Error
}

func (r *professionalRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	// Select(clause.Associations) removes the join table rows as well
	return db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&entity.Professional{ID: id}).Error
}

func (r *professionalRepository) AddAvailableSlot(ctx context.Context, db *gorm.DB, professional *entity.Professional, slot *entity.TimeSlot) error {
	return db.WithContext(ctx).Model(professional).Association("AvailableSlots").Append(slot)
}

func (r *professionalRepository) RemoveAvailableSlot(ctx context.Context, db *gorm.DB, professional *entity.Professional, slot *entity.TimeSlot) error {
	return db.WithContext(ctx).Model(professional).Association("AvailableSlots").Delete(slot)
}

func (r *professionalRepository) AddNotAvailableSlot(ctx context.Context, db *gorm.DB, professional *entity.Professional, slot *entity.TimeSlot) error {
	return db.WithContext(ctx).Model(professional).Association("NotAvailableSlots").Append(slot)
}

func (r *professionalRepository) RemoveNotAvailableSlot(ctx context.Context, db *gorm.DB, professional *entity.Professional, slot *entity.TimeSlot) error {
	return db.WithContext(ctx).Model(professional).Association("NotAvailableSlots").Delete(slot)
}

func (r *professionalRepository) ClearAvailableSlots(ctx context.Context, db *gorm.DB, professional *entity.Professional) error {
	return db.WithContext(ctx).Model(professional).Association("AvailableSlots").Clear()
}

func (r *professionalRepository) ClearNotAvailableSlots(ctx context.Context, db *gorm.DB, professional *entity.Professional) error {
	return db.WithContext(ctx).Model(professional).Association("NotAvailableSlots").Clear()
}
