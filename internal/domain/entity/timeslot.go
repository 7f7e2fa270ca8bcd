package entity

import "fmt"

// Weekday is the day component of a time slot
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// SlotBand is a fixed one-hour band between 07:00 and 21:00
type SlotBand string

// AllSlotBands returns the 14 one-hour bands, "07:00-08:00" through
// "20:00-21:00".
func AllSlotBands() []SlotBand {
	bands := make([]SlotBand, 0, 14)
	for hour := 7; hour < 21; hour++ {
		bands = append(bands, SlotBand(fmt.Sprintf("%02d:00-%02d:00", hour, hour+1)))
	}
	return bands
}

// TimeSlot is one row of the canonical 7x14 grid. Exactly one row exists per
// (day, slot) pair; the full set is seeded at startup, never created ad hoc.
// TimeSlot has no availability flag, so it cannot be soft-deleted.
type TimeSlot struct {
	ID   int      `gorm:"primaryKey;autoIncrement" json:"id"`
	Day  Weekday  `gorm:"type:varchar(16);not null;uniqueIndex:idx_time_slots_day_slot" json:"day"`
	Slot SlotBand `gorm:"type:varchar(16);not null;uniqueIndex:idx_time_slots_day_slot" json:"slot"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}
