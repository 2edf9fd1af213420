package models

import "time"

// Patient holds the clinical profile linked one-to-one to a patient account
type Patient struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"user_id" db:"user_id"`
	CPF            string    `json:"cpf" db:"cpf"`
	Phone          *string   `json:"phone" db:"phone"`
	BirthDate      *string   `json:"birth_date" db:"birth_date"`
	Address        *string   `json:"address" db:"address"`
	MedicalHistory *string   `json:"medical_history" db:"medical_history"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
