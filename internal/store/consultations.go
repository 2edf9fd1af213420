package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"HEALTHAPI_BACK-END/internal/models"
)

// Consultations is the PostgreSQL implementation of ConsultationStore
type Consultations struct {
	db *pgxpool.Pool
}

// NewConsultations creates a new Consultations store
func NewConsultations(db *pgxpool.Pool) *Consultations {
	return &Consultations{db: db}
}

const consultationColumns = `id, patient_id, doctor_name, scheduled_at, modality, status, notes, created_at`

func (s *Consultations) Create(ctx context.Context, c *models.Consultation) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO consultations (patient_id, doctor_name, scheduled_at, modality, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		c.PatientID, c.DoctorName, c.ScheduledAt, c.Modality, c.Status, c.Notes,
	).Scan(&c.ID, &c.CreatedAt)
}

func (s *Consultations) GetByID(ctx context.Context, id int64) (*models.Consultation, error) {
	var c models.Consultation
	err := s.db.QueryRow(ctx,
		`SELECT `+consultationColumns+` FROM consultations WHERE id = $1`, id,
	).Scan(&c.ID, &c.PatientID, &c.DoctorName, &c.ScheduledAt, &c.Modality,
		&c.Status, &c.Notes, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *Consultations) List(ctx context.Context) ([]models.Consultation, error) {
	return s.list(ctx, `SELECT `+consultationColumns+` FROM consultations ORDER BY id`)
}

func (s *Consultations) ListByPatient(ctx context.Context, patientID int64) ([]models.Consultation, error) {
	return s.list(ctx,
		`SELECT `+consultationColumns+` FROM consultations WHERE patient_id = $1 ORDER BY id`,
		patientID)
}

func (s *Consultations) list(ctx context.Context, query string, args ...any) ([]models.Consultation, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	consultations := []models.Consultation{}
	for rows.Next() {
		var c models.Consultation
		if err := rows.Scan(&c.ID, &c.PatientID, &c.DoctorName, &c.ScheduledAt,
			&c.Modality, &c.Status, &c.Notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		consultations = append(consultations, c)
	}
	return consultations, rows.Err()
}

func (s *Consultations) Update(ctx context.Context, c *models.Consultation) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE consultations SET status = $1, notes = $2 WHERE id = $3`,
		c.Status, c.Notes, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Consultations) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM consultations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
