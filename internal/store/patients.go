package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"HEALTHAPI_BACK-END/internal/models"
)

// Patients is the PostgreSQL implementation of PatientStore
type Patients struct {
	db *pgxpool.Pool
}

// NewPatients creates a new Patients store
func NewPatients(db *pgxpool.Pool) *Patients {
	return &Patients{db: db}
}

const patientColumns = `id, user_id, cpf, phone, birth_date, address, medical_history, created_at, updated_at`

func (s *Patients) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	return s.get(ctx, "id = $1", id)
}

func (s *Patients) GetByUserID(ctx context.Context, userID int64) (*models.Patient, error) {
	return s.get(ctx, "user_id = $1", userID)
}

func (s *Patients) get(ctx context.Context, where string, arg any) (*models.Patient, error) {
	var p models.Patient
	err := s.db.QueryRow(ctx,
		`SELECT `+patientColumns+` FROM patients WHERE `+where, arg,
	).Scan(&p.ID, &p.UserID, &p.CPF, &p.Phone, &p.BirthDate, &p.Address,
		&p.MedicalHistory, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Patients) List(ctx context.Context) ([]models.Patient, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+patientColumns+` FROM patients ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := []models.Patient{}
	for rows.Next() {
		var p models.Patient
		if err := rows.Scan(&p.ID, &p.UserID, &p.CPF, &p.Phone, &p.BirthDate,
			&p.Address, &p.MedicalHistory, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (s *Patients) Update(ctx context.Context, patient *models.Patient) error {
	err := s.db.QueryRow(ctx,
		`UPDATE patients
		 SET phone = $1, birth_date = $2, address = $3, medical_history = $4, updated_at = now()
		 WHERE id = $5
		 RETURNING updated_at`,
		patient.Phone, patient.BirthDate, patient.Address, patient.MedicalHistory, patient.ID,
	).Scan(&patient.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *Patients) DeleteCascade(ctx context.Context, patientID, userID int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Consultations are removed by the FK cascade on patients.
	tag, err := tx.Exec(ctx, `DELETE FROM patients WHERE id = $1`, patientID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
