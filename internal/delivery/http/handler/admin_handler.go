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

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

func (h *AdminHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Admins retrieved successfully", admins)
}

func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admin ID", nil)
		return
	}

	admin, err := h.adminUsecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Admin retrieved successfully", admin)
}

func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admin ID", nil)
		return
	}

	var req dto.UpdateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.adminUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Admin updated successfully", admin)
}

func (h *AdminHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admin ID", nil)
		return
	}

	result, err := h.adminUsecase.SoftDelete(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	message := "Admin restored successfully"
	if result.WasAvailable {
		message = "Admin blocked successfully"
	}
	response.Success(w, http.StatusOK, message, result)
}

func (h *AdminHandler) HardDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admin ID", nil)
		return
	}

	if err := h.adminUsecase.HardDelete(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Admin deleted successfully", nil)
}

func (h *AdminHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	logs, err := h.adminUsecase.GetAuditLogs(r.Context(), limit)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
