package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"HEALTHAPI_BACK-END/internal/models"
)

// Named unique constraints from the migrations. Violations are mapped to
// the duplicate sentinels so uniqueness is enforced by the database, not by
// a racy pre-check.
const (
	constraintUsersEmail  = "users_email_key"
	constraintPatientsCPF = "patients_cpf_key"
)

// Users is the PostgreSQL implementation of UserStore
type Users struct {
	db *pgxpool.Pool
}

// NewUsers creates a new Users store
func NewUsers(db *pgxpool.Pool) *Users {
	return &Users{db: db}
}

func (s *Users) Create(ctx context.Context, user *models.User) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		user.Name, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	return mapUniqueViolation(err)
}

func (s *Users) CreateWithPatient(ctx context.Context, user *models.User, patient *models.Patient) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		user.Name, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}

	patient.UserID = user.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO patients (user_id, cpf, phone, birth_date, address, medical_history)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		patient.UserID, patient.CPF, patient.Phone, patient.BirthDate,
		patient.Address, patient.MedicalHistory,
	).Scan(&patient.ID, &patient.CreatedAt, &patient.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}

	return tx.Commit(ctx)
}

func (s *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.get(ctx, "email = $1", email)
}

func (s *Users) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.get(ctx, "id = $1", id)
}

func (s *Users) get(ctx context.Context, where string, arg any) (*models.User, error) {
	var user models.User
	err := s.db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, created_at
		 FROM users WHERE `+where, arg,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case constraintUsersEmail:
			return ErrDuplicateEmail
		case constraintPatientsCPF:
			return ErrDuplicateCPF
		}
	}
	return err
}
