package database

import (
	"fmt"

	"serviturnos-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedTimeSlots fills the weekly slot catalog: one row per weekday and hour
// band, 98 rows total. Existing rows are left untouched, so the seed is safe
// to run on every start.
func SeedTimeSlots(db *gorm.DB) error {
	for _, day := range entity.AllWeekdays() {
		for _, band := range entity.AllSlotBands() {
			slot := entity.TimeSlot{Day: day, Slot: band}
			if err := db.Where(&entity.TimeSlot{Day: day, Slot: band}).FirstOrCreate(&slot).Error; err != nil {
				return fmt.Errorf("failed to seed time slot %s %s: %w", day, band, err)
			}
		}
	}

	logrus.Info("Time slot catalog seeded")

	return nil
}
