package models

import "time"

// Modality is how a consultation takes place
type Modality string

const (
	ModalityInPerson Modality = "in-person"
	ModalityRemote   Modality = "remote"
)

// Valid reports whether the modality is a known value
func (m Modality) Valid() bool {
	return m == ModalityInPerson || m == ModalityRemote
}

// ConsultationStatus is the lifecycle state of a consultation
type ConsultationStatus string

const (
	StatusScheduled ConsultationStatus = "scheduled"
	StatusCompleted ConsultationStatus = "completed"
	StatusCancelled ConsultationStatus = "cancelled"
)

// Valid reports whether the status is a known value
func (s ConsultationStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Consultation represents a scheduled appointment for a patient
type Consultation struct {
	ID          int64              `json:"id" db:"id"`
	PatientID   int64              `json:"patient_id" db:"patient_id"`
	DoctorName  string             `json:"doctor_name" db:"doctor_name"`
	ScheduledAt time.Time          `json:"scheduled_at" db:"scheduled_at"`
	Modality    Modality           `json:"modality" db:"modality"`
	Status      ConsultationStatus `json:"status" db:"status"`
	Notes       *string            `json:"notes" db:"notes"`
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`
}
