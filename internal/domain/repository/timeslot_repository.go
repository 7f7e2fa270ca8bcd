package repository

import (
	"context"

	"serviturnos-api/internal/domain/entity"

	"gorm.io/gorm"
)

type TimeSlotRepository interface {
	Create(ctx context.Context, db *gorm.DB, slot *entity.TimeSlot) error
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.TimeSlot, error)
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.TimeSlot, error)
	FindByDayAndSlot(ctx context.Context, db *gorm.DB, day entity.Weekday, slot entity.SlotBand) (*entity.TimeSlot, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
