package services

import (
	"context"
	"errors"
	"fmt"

	"HEALTHAPI_BACK-END/internal/apperrors"
	"HEALTHAPI_BACK-END/internal/authz"
	"HEALTHAPI_BACK-END/internal/dto"
	"HEALTHAPI_BACK-END/internal/models"
	"HEALTHAPI_BACK-END/internal/store"
)

// ConsultationService implements the appointment-scheduling workflows
type ConsultationService struct {
	consultations store.ConsultationStore
	patients      store.PatientStore
	audit         store.AuditStore
}

// NewConsultationService creates a new ConsultationService
func NewConsultationService(consultations store.ConsultationStore, patients store.PatientStore, audit store.AuditStore) *ConsultationService {
	return &ConsultationService{consultations: consultations, patients: patients, audit: audit}
}

// Create schedules a consultation for an existing patient. Staff only.
func (s *ConsultationService) Create(ctx context.Context, caller *models.User, req dto.ConsultationCreateRequest) (*models.Consultation, error) {
	if err := authz.RequireRole(caller, "only admins and doctors can schedule consultations",
		models.RoleAdmin, models.RoleDoctor); err != nil {
		return nil, err
	}

	if req.DoctorName == "" || req.PatientID == 0 || req.ScheduledAt.IsZero() {
		return nil, apperrors.NewValidation("patient_id, doctor_name, and scheduled_at are required")
	}

	if _, err := s.patients.GetByID(ctx, req.PatientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFound("patient not found")
		}
		return nil, err
	}

	modality := models.ModalityInPerson
	if req.Modality != nil && *req.Modality != "" {
		modality = models.Modality(*req.Modality)
		if !modality.Valid() {
			return nil, apperrors.NewValidation("modality must be one of: in-person, remote")
		}
	}

	consultation := &models.Consultation{
		PatientID:   req.PatientID,
		DoctorName:  req.DoctorName,
		ScheduledAt: req.ScheduledAt,
		Modality:    modality,
		Status:      models.StatusScheduled,
		Notes:       req.Notes,
	}

	if err := s.consultations.Create(ctx, consultation); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, &caller.ID, models.ActionCreateConsultation,
		fmt.Sprintf("New consultation created - ID: %d", consultation.ID)); err != nil {
		return nil, err
	}

	return consultation, nil
}

// List returns all consultations for staff and only the caller's own for
// patients. A patient without a profile gets an empty list, not an error.
func (s *ConsultationService) List(ctx context.Context, caller *models.User) ([]models.Consultation, error) {
	switch caller.Role {
	case models.RoleAdmin, models.RoleDoctor:
		return s.consultations.List(ctx)
	case models.RolePatient:
		patient, err := s.patients.GetByUserID(ctx, caller.ID)
		if errors.Is(err, store.ErrNotFound) {
			return []models.Consultation{}, nil
		}
		if err != nil {
			return nil, err
		}
		return s.consultations.ListByPatient(ctx, patient.ID)
	}
	return nil, apperrors.NewAuthorization("access denied")
}

// Get returns one consultation. The target is looked up first (404), then
// patient callers are checked against the owning profile (403).
func (s *ConsultationService) Get(ctx context.Context, caller *models.User, id int64) (*models.Consultation, error) {
	consultation, err := s.consultations.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewNotFound("consultation not found")
	}
	if err != nil {
		return nil, err
	}

	if caller.Role == models.RolePatient {
		patient, err := s.patients.GetByUserID(ctx, caller.ID)
		if errors.Is(err, store.ErrNotFound) || (err == nil && consultation.PatientID != patient.ID) {
			return nil, apperrors.NewAuthorization("you can only access your own consultations")
		}
		if err != nil {
			return nil, err
		}
	}

	return consultation, nil
}

// Update changes status and notes. Staff only.
func (s *ConsultationService) Update(ctx context.Context, caller *models.User, id int64, req dto.ConsultationUpdateRequest) (*models.Consultation, error) {
	if err := authz.RequireRole(caller, "only admins and doctors can update consultations",
		models.RoleAdmin, models.RoleDoctor); err != nil {
		return nil, err
	}

	consultation, err := s.consultations.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewNotFound("consultation not found")
	}
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		status := models.ConsultationStatus(*req.Status)
		if !status.Valid() {
			return nil, apperrors.NewValidation("status must be one of: scheduled, completed, cancelled")
		}
		consultation.Status = status
	}
	if req.Notes != nil {
		consultation.Notes = req.Notes
	}

	if err := s.consultations.Update(ctx, consultation); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, &caller.ID, models.ActionUpdateConsultation,
		fmt.Sprintf("Consultation ID %d updated", id)); err != nil {
		return nil, err
	}

	return consultation, nil
}

// Delete removes a consultation. Staff only.
func (s *ConsultationService) Delete(ctx context.Context, caller *models.User, id int64) error {
	if err := authz.RequireRole(caller, "only admins and doctors can delete consultations",
		models.RoleAdmin, models.RoleDoctor); err != nil {
		return err
	}

	if _, err := s.consultations.GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.NewNotFound("consultation not found")
		}
		return err
	}

	if err := s.audit.Record(ctx, &caller.ID, models.ActionDeleteConsultation,
		fmt.Sprintf("Consultation ID %d was deleted", id)); err != nil {
		return err
	}

	return s.consultations.Delete(ctx, id)
}
