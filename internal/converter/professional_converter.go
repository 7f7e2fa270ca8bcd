package converter

import (
	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to DTO, including
// both slot membership lists.
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	response := &dto.ProfessionalResponse{
		ID:                professional.ID,
		Email:             professional.Email,
		FirstName:         professional.FirstName,
		LastName:          professional.LastName,
		PhoneNumber:       professional.PhoneNumber,
		City:              professional.City,
		ImageURL:          professional.ImageURL,
		Available:         professional.IsAvailable(),
		Profession:        string(professional.Profession),
		AvailableSlots:    TimeSlotsToResponses(professional.AvailableSlots),
		NotAvailableSlots: TimeSlotsToResponses(professional.NotAvailableSlots),
		CreatedAt:         professional.CreatedAt,
		UpdatedAt:         professional.UpdatedAt,
	}

	if professional.Fee.Valid {
		fee := professional.Fee.Decimal.InexactFloat64()
		response.Fee = &fee
	}

	return response
}

// ProfessionalsToResponses converts a slice of Professional entities to DTOs
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i])
	}
	return responses
}
