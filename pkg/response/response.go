package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"serviturnos-api/pkg/apperror"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   errors,
	})
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message, nil)
}

// FromError maps an error to the HTTP status of its apperror kind.
func FromError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, apperror.ErrInvalidArgument),
		errors.Is(err, apperror.ErrInvalidTransition):
		Error(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, apperror.ErrAlreadyPresent):
		Error(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, apperror.ErrUnauthorized):
		Error(w, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, apperror.ErrForbidden):
		Error(w, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, apperror.ErrUnsupportedOperation):
		Error(w, http.StatusMethodNotAllowed, err.Error(), nil)
	default:
		InternalServerError(w, "")
	}
}
