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

// PatientService implements the patient-record workflows
type PatientService struct {
	patients store.PatientStore
	audit    store.AuditStore
}

// NewPatientService creates a new PatientService
func NewPatientService(patients store.PatientStore, audit store.AuditStore) *PatientService {
	return &PatientService{patients: patients, audit: audit}
}

// List returns every patient profile. Staff only.
func (s *PatientService) List(ctx context.Context, caller *models.User) ([]models.Patient, error) {
	if err := authz.RequireRole(caller, "access denied", models.RoleAdmin, models.RoleDoctor); err != nil {
		return nil, err
	}

	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, &caller.ID, models.ActionListPatients,
		fmt.Sprintf("Listed %d patients", len(patients))); err != nil {
		return nil, err
	}

	return patients, nil
}

// Me returns the caller's own profile. Patient only.
func (s *PatientService) Me(ctx context.Context, caller *models.User) (*models.Patient, error) {
	if err := authz.RequireRole(caller, "only patients can access this endpoint", models.RolePatient); err != nil {
		return nil, err
	}

	patient, err := s.patients.GetByUserID(ctx, caller.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewNotFound("patient profile not found")
	}
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// Get returns a patient profile by id. Patient callers are checked against
// their own profile before the target is even looked up, so a patient
// probing another id always sees 403, never 404.
func (s *PatientService) Get(ctx context.Context, caller *models.User, id int64) (*models.Patient, error) {
	if err := s.requireOwnProfile(ctx, caller, id, "you can only access your own records"); err != nil {
		return nil, err
	}

	patient, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewNotFound("patient not found")
	}
	if err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, &caller.ID, models.ActionAccessPatient,
		fmt.Sprintf("Accessed data of patient ID: %d", id)); err != nil {
		return nil, err
	}

	return patient, nil
}

// Update modifies the mutable profile fields, refreshing the update
// timestamp. Same access rule and check order as Get.
func (s *PatientService) Update(ctx context.Context, caller *models.User, id int64, req dto.PatientUpdateRequest) (*models.Patient, error) {
	if err := s.requireOwnProfile(ctx, caller, id, "you can only edit your own records"); err != nil {
		return nil, err
	}

	patient, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.NewNotFound("patient not found")
	}
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		patient.Phone = req.Phone
	}
	if req.BirthDate != nil {
		patient.BirthDate = req.BirthDate
	}
	if req.Address != nil {
		patient.Address = req.Address
	}
	if req.MedicalHistory != nil {
		patient.MedicalHistory = req.MedicalHistory
	}

	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}

	if err := s.audit.Record(ctx, &caller.ID, models.ActionUpdatePatient,
		fmt.Sprintf("Data of patient ID %d was updated", id)); err != nil {
		return nil, err
	}

	return patient, nil
}

// Delete removes a patient profile together with its account (and, via the
// FK cascade, its consultations). Admins may delete anyone; patients only
// themselves; doctors are excluded entirely. Unlike Get, the target is
// looked up before the ownership comparison.
func (s *PatientService) Delete(ctx context.Context, caller *models.User, id int64) error {
	if err := authz.RequireRole(caller, "access denied", models.RoleAdmin, models.RolePatient); err != nil {
		return err
	}

	patient, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperrors.NewNotFound("patient not found")
	}
	if err != nil {
		return err
	}

	if err := authz.RequireOwner(caller, patient.UserID, "you can only delete your own records"); err != nil {
		return err
	}

	// Written before the delete so the entry keeps a valid actor reference
	// even when a patient erases their own account.
	if err := s.audit.Record(ctx, &caller.ID, models.ActionDeletePatient,
		fmt.Sprintf("Patient ID %d was deleted", id)); err != nil {
		return err
	}

	return s.patients.DeleteCascade(ctx, patient.ID, patient.UserID)
}

// requireOwnProfile enforces the patient ownership rule for reads and
// updates: the caller's own profile id must match the requested id. A
// patient without a profile is denied, not told the target is missing.
func (s *PatientService) requireOwnProfile(ctx context.Context, caller *models.User, id int64, message string) error {
	if caller.Role != models.RolePatient {
		return nil
	}
	own, err := s.patients.GetByUserID(ctx, caller.ID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && own.ID != id) {
		return apperrors.NewAuthorization(message)
	}
	return err
}
