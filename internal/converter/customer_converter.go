package converter

import (
	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/domain/entity"
)

// CustomerToResponse converts a Customer entity to CustomerResponse DTO
func CustomerToResponse(customer *entity.Customer) *dto.CustomerResponse {
	if customer == nil {
		return nil
	}

	return &dto.CustomerResponse{
		ID:          customer.ID,
		Email:       customer.Email,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		PhoneNumber: customer.PhoneNumber,
		City:        customer.City,
		ImageURL:    customer.ImageURL,
		Available:   customer.IsAvailable(),
		CreatedAt:   customer.CreatedAt,
		UpdatedAt:   customer.UpdatedAt,
	}
}

// CustomersToResponses converts a slice of Customer entities to DTOs
func CustomersToResponses(customers []entity.Customer) []dto.CustomerResponse {
	responses := make([]dto.CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = *CustomerToResponse(&customers[i])
	}
	return responses
}
