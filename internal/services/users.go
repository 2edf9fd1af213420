// Package services orchestrates validation, authorization, storage, and the
// audit trail for the HTTP handlers.
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"HEALTHAPI_BACK-END/internal/apperrors"
	"HEALTHAPI_BACK-END/internal/config"
	"HEALTHAPI_BACK-END/internal/dto"
	"HEALTHAPI_BACK-END/internal/middleware"
	"HEALTHAPI_BACK-END/internal/models"
	"HEALTHAPI_BACK-END/internal/store"
)

// UserService implements registration and login
type UserService struct {
	users  store.UserStore
	audit  store.AuditStore
	jwtCfg *config.JWTConfig
}

// NewUserService creates a new UserService
func NewUserService(users store.UserStore, audit store.AuditStore, jwtCfg *config.JWTConfig) *UserService {
	return &UserService{users: users, audit: audit, jwtCfg: jwtCfg}
}

// Register creates a new account. Patient accounts additionally require
// cpf, phone, and birth date and get a linked profile in the same
// transaction. Duplicate email or CPF surfaces as a validation error from
// the database's unique constraints.
func (s *UserService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, apperrors.NewValidation("name, email, password, and role are required")
	}
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewValidation("role must be one of: admin, doctor, patient")
	}

	var patient *models.Patient
	if role == models.RolePatient {
		if req.CPF == nil || *req.CPF == "" {
			return nil, apperrors.NewValidation("cpf is required for patient accounts")
		}
		if req.Phone == nil || *req.Phone == "" {
			return nil, apperrors.NewValidation("phone is required for patient accounts")
		}
		if req.BirthDate == nil || *req.BirthDate == "" {
			return nil, apperrors.NewValidation("birth_date is required for patient accounts")
		}
		patient = &models.Patient{
			CPF:            *req.CPF,
			Phone:          req.Phone,
			BirthDate:      req.BirthDate,
			Address:        req.Address,
			MedicalHistory: req.MedicalHistory,
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if patient != nil {
		err = s.users.CreateWithPatient(ctx, user, patient)
	} else {
		err = s.users.Create(ctx, user)
	}
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return nil, apperrors.NewValidation("email already registered")
	case errors.Is(err, store.ErrDuplicateCPF):
		return nil, apperrors.NewValidation("cpf already registered")
	case err != nil:
		return nil, err
	}

	if err := s.audit.Record(ctx, &user.ID, models.ActionRegister,
		fmt.Sprintf("New user registered: %s", user.Email)); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password produce the same error.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", apperrors.NewValidation("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return "", apperrors.NewAuthentication("incorrect email or password")
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", apperrors.NewAuthentication("incorrect email or password")
	}

	token, err := middleware.GenerateToken(user.Email, s.jwtCfg)
	if err != nil {
		return "", err
	}

	if err := s.audit.Record(ctx, &user.ID, models.ActionLogin,
		fmt.Sprintf("Login: %s", user.Email)); err != nil {
		return "", err
	}

	return token, nil
}
