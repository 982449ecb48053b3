package converter

import (
	"github.com/TechBirds21/hospital-web-hub/internal/delivery/dto"
	"github.com/TechBirds21/hospital-web-hub/internal/domain/entity"
)

// PharmacyItemToResponse converts a PharmacyItem entity to its DTO
func PharmacyItemToResponse(item *entity.PharmacyItem) *dto.PharmacyItemResponse {
	if item == nil {
		return nil
	}

	response := &dto.PharmacyItemResponse{
		ID:                item.ID,
		ClinicID:          item.ClinicID,
		Name:              item.Name,
		QuantityAvailable: item.QuantityAvailable,
		ReorderLevel:      item.ReorderLevel,
		UnitPrice:         item.UnitPrice,
		CreatedAt:         item.CreatedAt,
	}

	if item.ExpiryDate != nil {
		response.ExpiryDate = item.ExpiryDate.Format(entity.DateLayout)
	}

	return response
}

// PharmacyItemsToResponses converts a slice of PharmacyItem entities to DTOs
func PharmacyItemsToResponses(items []entity.PharmacyItem) []dto.PharmacyItemResponse {
	responses := make([]dto.PharmacyItemResponse, len(items))
	for i, item := range items {
		responses[i] = *PharmacyItemToResponse(&item)
	}
	return responses
}
