package repository

import (
	"context"
	"errors"

	"serviturnos-api/internal/domain/entity"
	domainRepo "serviturnos-api/internal/domain/repository"

	"gorm.io/gorm"
)

type timeSlotRepository struct{}

func NewTimeSlotRepository() domainRepo.TimeSlotRepository {
	return &timeSlotRepository{}
}

func (r *timeSlotRepository) Create(ctx context.Context, db *gorm.DB, slot *entity.TimeSlot) error {
	return db.WithContext(ctx).Create(slot).Error
}

func (r *timeSlotRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.TimeSlot, error) {
	var slots []entity.TimeSlot
	err := db.WithContext(ctx).Order("id").Find(&slots).Error
	return slots, err
}

func (r *timeSlotRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.TimeSlot, error) {
	var slot entity.TimeSlot
	err := db.WithContext(ctx).Where("id = ?", id).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) FindByDayAndSlot(ctx context.Context, db *gorm.DB, day entity.Weekday, band entity.SlotBand) (*entity.TimeSlot, error) {
	var slot entity.TimeSlot
	err := db.WithContext(ctx).Where("day = ? AND slot = ?", day, band).First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.TimeSlot{}).Count(&count).Error
	return count, err
}
