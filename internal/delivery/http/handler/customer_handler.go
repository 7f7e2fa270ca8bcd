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

type CustomerHandler struct {
	customerUsecase usecase.CustomerUsecase
	validator       *validator.CustomValidator
}

func NewCustomerHandler(customerUsecase usecase.CustomerUsecase, validator *validator.CustomValidator) *CustomerHandler {
	return &CustomerHandler{
		customerUsecase: customerUsecase,
		validator:       validator,
	}
}

func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerUsecase.GetAll(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Customers retrieved successfully", customers)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	customer, err := h.customerUsecase.Get(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Customer retrieved successfully", customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	var req dto.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	customer, err := h.customerUsecase.Update(r.Context(), id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Customer updated successfully", customer)
}

func (h *CustomerHandler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	result, err := h.customerUsecase.SoftDelete(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	message := "Customer restored successfully"
	if result.WasAvailable {
		message = "Customer blocked successfully"
	}
	response.Success(w, http.StatusOK, message, result)
}

func (h *CustomerHandler) HardDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid customer ID", nil)
		return
	}

	if err := h.customerUsecase.HardDelete(r.Context(), id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Customer deleted successfully", nil)
}
