package converter

import (
	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
)

// AdminToResponse converts an Admin entity to AdminResponse DTO
func AdminToResponse(admin *entity.Admin) *dto.AdminResponse {
	if admin == nil {
		return nil
	}

	return &dto.AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Available: admin.IsAvailable(),
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
}

// AdminsToResponses converts a slice of Admin entities to DTOs
func AdminsToResponses(admins []entity.Admin) []dto.AdminResponse {
	responses := make([]dto.AdminResponse, len(admins))
	for i := range admins {
		responses[i] = *AdminToResponse(&admins[i])
	}
	return responses
}
