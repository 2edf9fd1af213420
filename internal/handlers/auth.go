package handlers

import (
	"encoding/json"
	"net/http"

	"HEALTHAPI_BACK-END/internal/apperrors"
	"HEALTHAPI_BACK-END/internal/dto"
	"HEALTHAPI_BACK-END/internal/services"
	"HEALTHAPI_BACK-END/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	users *services.UserService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// writeServiceError maps a service error to its HTTP status
func writeServiceError(w http.ResponseWriter, err error) {
	status := apperrors.Status(err)
	if status == http.StatusInternalServerError {
		utils.WriteErrorResponse(w, status, "Internal server error", err.Error())
		return
	}
	utils.WriteErrorResponse(w, status, http.StatusText(status), err.Error())
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account with the admin, doctor, or patient role. Patient accounts require cpf, phone, and birth_date and get a linked patient profile.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.UserResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or duplicate email/cpf"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.users.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewUserResponse(user))
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with email and password and receive a bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	token, err := h.users.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{Token: token, TokenType: "bearer"})
}
