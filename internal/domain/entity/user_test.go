package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleAvailability(t *testing.T) {
	customer := &Customer{}
	assert.True(t, customer.IsAvailable())

	prev := ToggleAvailability(customer)
	assert.True(t, prev)
	assert.False(t, customer.IsAvailable())

	prev = ToggleAvailability(customer)
	assert.False(t, prev)
	assert.True(t, customer.IsAvailable())
}

func TestToggleAvailabilityMeeting(t *testing.T) {
	meeting := &Meeting{}
	prev := ToggleAvailability(meeting)
	assert.True(t, prev)
	assert.False(t, meeting.IsAvailable())
}

func TestParseProfession(t *testing.T) {
	profession, err := ParseProfession("plumber")
	assert.NoError(t, err)
	assert.Equal(t, ProfessionPlumber, profession)

	_, err = ParseProfession("astronaut")
	assert.Error(t, err)
}

func TestSlotCatalogDimensions(t *testing.T) {
	assert.Len(t, AllWeekdays(), 7)
	assert.Len(t, AllSlotBands(), 14)

	bands := AllSlotBands()
	assert.Equal(t, SlotBand("07:00-08:00"), bands[0])
	assert.Equal(t, SlotBand("20:00-21:00"), bands[len(bands)-1])
}
