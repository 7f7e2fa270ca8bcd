package handler

import (
	"encoding/json"
	"net/http"

	"serviturnos-api/internal/delivery/dto"
	"serviturnos-api/internal/delivery/http/middleware"
	"serviturnos-api/internal/usecase"
	"serviturnos-api/pkg/jwt"
	"serviturnos-api/pkg/response"
	"serviturnos-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	jwtService  *jwt.JWTService
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, jwtService *jwt.JWTService) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		jwtService:  jwtService,
	}
}

// RegisterCustomer handles customer registration
// @Summary Register a new customer
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterCustomerRequest true "Register Customer Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register/customer [post]
func (h *AuthHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	customer, err := h.authUsecase.RegisterCustomer(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Customer registered successfully", customer)
}

// RegisterProfessional handles professional registration
// @Summary Register a new professional
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterProfessionalRequest true "Register Professional Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register/professional [post]
func (h *AuthHandler) RegisterProfessional(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	professional, err := h.authUsecase.RegisterProfessional(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Professional registered successfully", professional)
}

// RegisterAdmin handles admin registration, admin only
// @Summary Register a new admin
// @Tags Auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterAdminRequest true "Register Admin Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register/admin [post]
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admin, err := h.authUsecase.RegisterAdmin(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Admin registered successfully", admin)
}

// Login handles user login
// @Summary Login user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Login successful", tokens)
}

// Logout handles user logout
// @Summary Logout user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// Get refresh token from request body if provided
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	refreshTokenID := ""
	if req.RefreshToken != "" {
		claims, err := h.jwtService.ValidateToken(req.RefreshToken)
		if err == nil {
			refreshTokenID = claims.TokenID
		}
	}

	if err := h.authUsecase.Logout(r.Context(), tokenID, refreshTokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed successfully", tokens)
}

// GetCurrentUser handles getting current user info
// @Summary Get current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	userType, ok := middleware.GetUserTypeFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID, userType)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}
