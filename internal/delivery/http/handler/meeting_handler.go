package handler

import (
	"encoding/json"
	"net/http"

	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/usecase"
	"serviturnos-api/pkg/response"
	"serviturnos-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MeetingHandler struct {
	meetingUsecase usecase.MeetingUsecase
	validator      *validator.CustomValidator
}

func NewMeetingHandler(meetingUsecase usecase.MeetingUsecase, validator *validator.CustomValidator) *MeetingHandler {
	return &MeetingHandler{
		meetingUsecase: meetingUsecase,
		validator:      validator,
	}
}

// Create books a meeting request between a customer and a professional
// @Summary Create a meeting
// @Tags Meetings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMeetingRequest true "Create Meeting Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /meetings [post]
func (h *MeetingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	meeting, err := h.meetingUsecase.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Meeting created successfully", meeting)
}

func (h *MeetingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if status := r.URL.Query().Get("status"); status != "" {
		meetings, err := h.meetingUsecase.GetByStatus(r.Context(), status)
		if err != nil {
			response.FromError(w, err)
			return
		}
		response.Success(w, http.StatusOK, "Meetings retrieved successfully", meetings)
		return
	}

	meetings, err := h.meetingUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Meetings retrieved successfully", meetings)
}

func (h *MeetingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid meeting ID", nil)
		return
	}

	meeting, err := h.meetingUsecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Meeting retrieved successfully", meeting)
}

func (h *MeetingHandler) transition(w http.ResponseWriter, r *http.Request, message string, fn func(r *http.Request, id uuid.UUID) (*dto.MeetingResponse, error)) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid meeting ID", nil)
		return
	}

	meeting, err := fn(r, id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, message, meeting)
}

func (h *MeetingHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Meeting accepted successfully", func(r *http.Request, id uuid.UUID) (*dto.MeetingResponse, error) {
		return h.meetingUsecase.Accept(r.Context(), id)
	})
}

func (h *MeetingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Meeting rejected successfully", func(r *http.Request, id uuid.UUID) (*dto.MeetingResponse, error) {
		return h.meetingUsecase.Reject(r.Context(), id)
	})
}

func (h *MeetingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Meeting cancelled successfully", func(r *http.Request, id uuid.UUID) (*dto.MeetingResponse, error) {
		return h.meetingUsecase.Cancel(r.Context(), id)
	})
}

func (h *MeetingHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Meeting finalized successfully", func(r *http.Request, id uuid.UUID) (*dto.MeetingResponse, error) {
		return h.meetingUsecase.Finalize(r.Context(), id)
	})
}

func (h *MeetingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid meeting ID", nil)
		return
	}

	var req dto.UpdateMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	meeting, err := h.meetingUsecase.UpdateDetails(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Meeting updated successfully", meeting)
}

func (h *MeetingHandler) GetByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(mux.Vars(r)["customer_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	meetings, err := h.meetingUsecase.GetByCustomer(r.Context(), customerID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Meetings retrieved successfully", meetings)
}

func (h *MeetingHandler) GetByProfessional(w http.ResponseWriter, r *http.Request) {
	professionalID, err := uuid.Parse(mux.Vars(r)["professional_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	meetings, err := h.meetingUsecase.GetByProfessional(r.Context(), professionalID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Meetings retrieved successfully", meetings)
}

func (h *MeetingHandler) GetPendingForProfessional(w http.ResponseWriter, r *http.Request) {
	professionalID, err := uuid.Parse(mux.Vars(r)["professional_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid professional ID", nil)
		return
	}

	meetings, err := h.meetingUsecase.GetPendingForProfessional(r.Context(), professionalID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Pending meetings retrieved successfully", meetings)
}

func (h *MeetingHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid meeting ID", nil)
		return
	}

	result, err := h.meetingUsecase.SoftDelete(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	message := "Meeting restored successfully"
	if result.WasAvailable {
		message = "Meeting hidden successfully"
	}
	response.Success(w, http.StatusOK, message, result)
}

func (h *MeetingHandler) HardDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid meeting ID", nil)
		return
	}

	if err := h.meetingUsecase.HardDelete(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Meeting deleted successfully", nil)
}
