package handler

import (
	"net/http"

	"serviturnos-api/internal/usecase"
	"serviturnos-api/pkg/response"
)

type TimeSlotHandler struct {
	slotUsecase usecase.SlotUsecase
}

func NewTimeSlotHandler(slotUsecase usecase.SlotUsecase) *TimeSlotHandler {
	return &TimeSlotHandler{slotUsecase: slotUsecase}
}

// GetAll lists the weekly slot catalog
// @Summary List time slots
// @Tags TimeSlots
// @Produce json
// @Success 200 {object} response.Response
// @Router /time-slots [get]
func (h *TimeSlotHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	slots, err := h.slotUsecase.ListTimeSlots(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}
