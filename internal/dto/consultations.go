package dto

import (
	"time"

	"HEALTHAPI_BACK-END/internal/models"
)

// ConsultationCreateRequest represents the payload for scheduling a
// consultation. Modality defaults to "in-person" when absent.
type ConsultationCreateRequest struct {
	PatientID   int64     `json:"patient_id" validate:"required"`
	DoctorName  string    `json:"doctor_name" validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	Modality    *string   `json:"modality,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

// ConsultationUpdateRequest carries the mutable consultation fields.
// Absent fields are left unchanged.
type ConsultationUpdateRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ConsultationResponse represents a consultation in API responses
type ConsultationResponse struct {
	ID          int64   `json:"id"`
	PatientID   int64   `json:"patient_id"`
	DoctorName  string  `json:"doctor_name"`
	ScheduledAt string  `json:"scheduled_at"`
	Modality    string  `json:"modality"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"created_at"`
}

// NewConsultationResponse converts a consultation model to its API representation
func NewConsultationResponse(c *models.Consultation) ConsultationResponse {
	return ConsultationResponse{
		ID:          c.ID,
		PatientID:   c.PatientID,
		DoctorName:  c.DoctorName,
		ScheduledAt: c.ScheduledAt.Format(time.RFC3339),
		Modality:    string(c.Modality),
		Status:      string(c.Status),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
	}
}

// NewConsultationListResponse converts a list of consultation models
func NewConsultationListResponse(consultations []models.Consultation) []ConsultationResponse {
	out := make([]ConsultationResponse, 0, len(consultations))
	for i := range consultations {
		out = append(out, NewConsultationResponse(&consultations[i]))
	}
	return out
}
