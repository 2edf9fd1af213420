package dto

import (
	"time"

	"HEALTHAPI_BACK-END/internal/models"
)

// PatientUpdateRequest carries the mutable profile fields. Absent fields
// are left unchanged.
type PatientUpdateRequest struct {
	Phone          *string `json:"phone,omitempty"`
	BirthDate      *string `json:"birth_date,omitempty"`
	Address        *string `json:"address,omitempty"`
	MedicalHistory *string `json:"medical_history,omitempty"`
}

// PatientResponse represents a patient profile in API responses
type PatientResponse struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"user_id"`
	CPF            string  `json:"cpf"`
	Phone          *string `json:"phone"`
	BirthDate      *string `json:"birth_date"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// NewPatientResponse converts a patient model to its API representation
func NewPatientResponse(p *models.Patient) PatientResponse {
	return PatientResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		CPF:            p.CPF,
		Phone:          p.Phone,
		BirthDate:      p.BirthDate,
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

// NewPatientListResponse converts a list of patient models
func NewPatientListResponse(patients []models.Patient) []PatientResponse {
	out := make([]PatientResponse, 0, len(patients))
	for i := range patients {
		out = append(out, NewPatientResponse(&patients[i]))
	}
	return out
}
