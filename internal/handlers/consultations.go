package handlers

import (
	"encoding/json"
	"net/http"

	"HEALTHAPI_BACK-END/internal/dto"
	"HEALTHAPI_BACK-END/internal/services"
	"HEALTHAPI_BACK-END/internal/utils"
)

// ConsultationHandler handles consultation-scheduling HTTP requests
type ConsultationHandler struct {
	consultations *services.ConsultationService
}

// NewConsultationHandler creates a new ConsultationHandler instance
func NewConsultationHandler(consultations *services.ConsultationService) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations}
}

// Create schedules a consultation
// @Summary Create consultation
// @Description Schedule a consultation for an existing patient (admin and doctor only)
// @Tags consultations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ConsultationCreateRequest true "Consultation data"
// @Success 201 {object} dto.ConsultationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Patient not found"
// @Router /consultas/ [post]
func (h *ConsultationHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	var req dto.ConsultationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	consultation, err := h.consultations.Create(r.Context(), user, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.NewConsultationResponse(consultation))
}

// List returns consultations visible to the caller
// @Summary List consultations
// @Description List all consultations (staff) or only the caller's own (patient)
// @Tags consultations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ConsultationResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /consultas/ [get]
func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}

	consultations, err := h.consultations.List(r.Context(), user)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewConsultationListResponse(consultations))
}

// Get returns one consultation
// @Summary Get consultation
// @Description Get a consultation by id. Patients can only access their own.
// @Tags consultations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Consultation ID"
// @Success 200 {object} dto.ConsultationResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Consultation not found"
// @Router /consultas/{id} [get]
func (h *ConsultationHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	consultation, err := h.consultations.Get(r.Context(), user, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewConsultationResponse(consultation))
}

// Update changes status and notes of a consultation
// @Summary Update consultation
// @Description Update status and notes of a consultation (admin and doctor only)
// @Tags consultations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Consultation ID"
// @Param request body dto.ConsultationUpdateRequest true "Fields to update"
// @Success 200 {object} dto.ConsultationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Consultation not found"
// @Router /consultas/{id} [put]
func (h *ConsultationHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.ConsultationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	consultation, err := h.consultations.Update(r.Context(), user, id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewConsultationResponse(consultation))
}

// Delete removes a consultation
// @Summary Delete consultation
// @Description Delete a consultation (admin and doctor only)
// @Tags consultations
// @Security BearerAuth
// @Param id path int true "Consultation ID"
// @Success 204 "Deleted"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Consultation not found"
// @Router /consultas/{id} [delete]
func (h *ConsultationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.consultations.Delete(r.Context(), user, id); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
