package models

import "time"

// Audit action tags recorded by the services.
const (
	ActionRegister           = "REGISTRO"
	ActionLogin              = "LOGIN"
	ActionListPatients       = "LISTAR_PACIENTES"
	ActionAccessPatient      = "ACESSAR_DADOS_PACIENTE"
	ActionUpdatePatient      = "ATUALIZAR_PACIENTE"
	ActionDeletePatient      = "DELETAR_PACIENTE"
	ActionCreateConsultation = "CRIAR_CONSULTA"
	ActionUpdateConsultation = "ATUALIZAR_CONSULTA"
	ActionDeleteConsultation = "DELETAR_CONSULTA"
)

// AuditLog is an immutable record of a security-relevant action.
// The actor reference is nullable so entries survive account deletion.
type AuditLog struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"user_id" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Details   string    `json:"details" db:"details"`
	IPAddress *string   `json:"ip_address,omitempty" db:"ip_address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
