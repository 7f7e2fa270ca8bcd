package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/usecase"
	"serviturnos-api/pkg/response"
	"serviturnos-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ProfessionalHandler struct {
	professionalUsecase usecase.ProfessionalUsecase
	slotUsecase         usecase.SlotUsecase
	validator           *validator.CustomValidator
}

func NewProfessionalHandler(professionalUsecase usecase.ProfessionalUsecase, slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *ProfessionalHandler {
	return &ProfessionalHandler{
		professionalUsecase: professionalUsecase,
		slotUsecase:         slotUsecase,
		validator:           validator,
	}
}

func (h *ProfessionalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if profession := r.URL.Query().Get("profession"); profession != "" {
		professionals, err := h.professionalUsecase.GetByProfession(r.Context(), profession)
		if err != nil {
			response.FromError(w, err)
			return
		}
		response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
		return
	}

	professionals, err := h.professionalUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Professionals retrieved successfully", professionals)
}

func (h *ProfessionalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	professional, err := h.professionalUsecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Professional retrieved successfully", professional)
}

func (h *ProfessionalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.professionalUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Professional updated successfully", professional)
}

func (h *ProfessionalHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	result, err := h.professionalUsecase.SoftDelete(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	message := "Professional restored successfully"
	if result.WasAvailable {
		message = "Professional blocked successfully"
	}
	response.Success(w, http.StatusOK, message, result)
}

func (h *ProfessionalHandler) HardDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	if err := h.professionalUsecase.HardDelete(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Professional deleted successfully", nil)
}

// Slot membership endpoints. All resolve {id} to the professional and
// {slot_id} to the catalog slot.

func (h *ProfessionalHandler) slotVars(w http.ResponseWriter, r *http.Request) (uuid.UUID, int, bool) {
	vars := mux.Vars(r)

	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return uuid.Nil, 0, false
	}

	slotID, err := strconv.Atoi(vars["slot_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot ID", nil)
		return uuid.Nil, 0, false
	}

	return id, slotID, true
}

func (h *ProfessionalHandler) AddAvailableSlot(w http.ResponseWriter, r *http.Request) {
	id, slotID, ok := h.slotVars(w, r)
	if !ok {
		return
	}

	professional, err := h.slotUsecase.AddAvailableSlot(r.Context(), id, slotID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slot added to available list", professional)
}

func (h *ProfessionalHandler) RemoveAvailableSlot(w http.ResponseWriter, r *http.Request) {
	id, slotID, ok := h.slotVars(w, r)
	if !ok {
		return
	}

	professional, err := h.slotUsecase.RemoveAvailableSlot(r.Context(), id, slotID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slot removed from available list", professional)
}

func (h *ProfessionalHandler) AddNotAvailableSlot(w http.ResponseWriter, r *http.Request) {
	id, slotID, ok := h.slotVars(w, r)
	if !ok {
		return
	}

	professional, err := h.slotUsecase.AddNotAvailableSlot(r.Context(), id, slotID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slot added to not available list", professional)
}

func (h *ProfessionalHandler) RemoveNotAvailableSlot(w http.ResponseWriter, r *http.Request) {
	id, slotID, ok := h.slotVars(w, r)
	if !ok {
		return
	}

	professional, err := h.slotUsecase.RemoveNotAvailableSlot(r.Context(), id, slotID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slot removed from not available list", professional)
}

func (h *ProfessionalHandler) MoveToNotAvailable(w http.ResponseWriter, r *http.Request) {
	id, slotID, ok := h.slotVars(w, r)
	if !ok {
		return
	}

	professional, err := h.slotUsecase.MoveToNotAvailable(r.Context(), id, slotID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slot moved to not available list", professional)
}

func (h *ProfessionalHandler) MoveToAvailable(w http.ResponseWriter, r *http.Request) {
	id, slotID, ok := h.slotVars(w, r)
	if !ok {
		return
	}

	professional, err := h.slotUsecase.MoveToAvailable(r.Context(), id, slotID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slot moved to available list", professional)
}

func (h *ProfessionalHandler) ClearAvailableSlots(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	professional, err := h.slotUsecase.ClearAvailableSlots(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Available slots cleared", professional)
}

func (h *ProfessionalHandler) ClearNotAvailableSlots(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	professional, err := h.slotUsecase.ClearNotAvailableSlots(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Not available slots cleared", professional)
}
