package converter

import (
	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
)

// MeetingToResponse converts a Meeting entity to MeetingResponse DTO
func MeetingToResponse(meeting *entity.Meeting) *dto.MeetingResponse {
	if meeting == nil {
		return nil
	}

	return &dto.MeetingResponse{
		ID:             meeting.ID,
		CustomerID:     meeting.CustomerID,
		ProfessionalID: meeting.ProfessionalID,
		Status:         string(meeting.Status),
		MeetingDate:    meeting.MeetingDate,
		JobInfo:        meeting.JobInfo,
		JobDone:        meeting.JobDone,
		Available:      meeting.IsAvailable(),
		CreatedAt:      meeting.CreatedAt,
		UpdatedAt:      meeting.UpdatedAt,
	}
}

// MeetingsToResponses converts a slice of Meeting entities to DTOs
func MeetingsToResponses(meetings []entity.Meeting) []dto.MeetingResponse {
	responses := make([]dto.MeetingResponse, len(meetings))
	for i := range meetings {
		responses[i] = *MeetingToResponse(&meetings[i])
	}
	return responses
}
