package converter

import (
	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
)

// TimeSlotToResponse converts a TimeSlot entity to TimeSlotResponse DTO
func TimeSlotToResponse(slot *entity.TimeSlot) *dto.TimeSlotResponse {
	if slot == nil {
		return nil
	}

	return &dto.TimeSlotResponse{
		ID:   slot.ID,
		Day:  string(slot.Day),
		Slot: string(slot.Slot),
	}
}

// TimeSlotsToResponses converts a slice of TimeSlot entities to DTOs.
// It never returns nil so membership lists serialize as [] rather than null.
func TimeSlotsToResponses(slots []entity.TimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i := range slots {
		responses[i] = *TimeSlotToResponse(&slots[i])
	}
	return responses
}
