package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"HEALTHAPI_BACK-END/internal/dto"
	"HEALTHAPI_BACK-END/internal/middleware"
	"HEALTHAPI_BACK-END/internal/models"
	"HEALTHAPI_BACK-END/internal/services"
	"HEALTHAPI_BACK-END/internal/utils"
)

// PatientHandler handles patient-record HTTP requests
type PatientHandler struct {
	patients *services.PatientService
}

// NewPatientHandler creates a new PatientHandler instance
func NewPatientHandler(patients *services.PatientService) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// caller extracts the authenticated account placed in the context by
// AuthMiddleware; a miss means the route was wired without it
func caller(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
	}
	return user, ok
}

// pathID parses the {id} path segment
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid id", "id must be an integer")
		return 0, false
	}
	return id, true
}

// List returns all patient profiles
// @Summary List patients
// @Description List every patient profile (admin and doctor only)
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.PatientResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Router /pacientes/ [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	patients, err := h.patients.List(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewPatientListResponse(patients))
}

// Me returns the caller's own patient profile
// @Summary Get own profile
// @Description Get the profile linked to the authenticated patient account
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PatientResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /pacientes/me [get]
func (h *PatientHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	patient, err := h.patients.Me(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewPatientResponse(patient))
}

// Get returns one patient profile
// @Summary Get patient
// @Description Get a patient profile by id. Patients can only access their own.
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 200 {object} dto.PatientResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Patient not found"
// @Router /pacientes/{id} [get]
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	patient, err := h.patients.Get(r.Context(), user, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewPatientResponse(patient))
}

// Update modifies a patient profile
// @Summary Update patient
// @Description Update a patient profile by id. Patients can only edit their own.
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Param request body dto.PatientUpdateRequest true "Fields to update"
// @Success 200 {object} dto.PatientResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Patient not found"
// @Router /pacientes/{id} [put]
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.PatientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	patient, err := h.patients.Update(r.Context(), user, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewPatientResponse(patient))
}

// Delete removes a patient profile and its account
// @Summary Delete patient
// @Description Delete a patient profile and the linked account (admin, or the patient themselves)
// @Tags patients
// @Security BearerAuth
// @Param id path int true "Patient ID"
// @Success 204 "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Patient not found"
// @Router /pacientes/{id} [delete]
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.patients.Delete(r.Context(), user, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
