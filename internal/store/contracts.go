// Package store provides PostgreSQL-backed persistence for accounts,
// patient profiles, consultations, and the audit trail.
package store

import (
	"context"
	"errors"

	"HEALTHAPI_BACK-END/internal/models"
)

// Sentinel errors returned by store implementations. Unique-constraint
// violations are translated here so services never see driver errors.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateCPF   = errors.New("cpf already registered")
)

// UserStore provides access to account records
type UserStore interface {
	// Create inserts an account and fills in its ID and creation time
	Create(ctx context.Context, user *models.User) error
	// CreateWithPatient inserts an account and its patient profile in a
	// single transaction
	CreateWithPatient(ctx context.Context, user *models.User, patient *models.Patient) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// PatientStore provides access to patient profiles
type PatientStore interface {
	GetByID(ctx context.Context, id int64) (*models.Patient, error)
	// GetByUserID resolves the profile owned by an account
	GetByUserID(ctx context.Context, userID int64) (*models.Patient, error)
	List(ctx context.Context) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	// DeleteCascade removes the profile and its owning account in a single
	// transaction; consultations go with the profile via the FK cascade
	DeleteCascade(ctx context.Context, patientID, userID int64) error
}

// ConsultationStore provides access to consultation records
type ConsultationStore interface {
	Create(ctx context.Context, consultation *models.Consultation) error
	GetByID(ctx context.Context, id int64) (*models.Consultation, error)
	List(ctx context.Context) ([]models.Consultation, error)
	ListByPatient(ctx context.Context, patientID int64) ([]models.Consultation, error)
	Update(ctx context.Context, consultation *models.Consultation) error
	Delete(ctx context.Context, id int64) error
}

// AuditStore records and lists immutable audit entries
type AuditStore interface {
	// Record appends an entry; actorID may be nil for anonymous actions
	Record(ctx context.Context, actorID *int64, action, details string) error
	// ListRecent returns up to limit entries, newest first
	ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error)
}
