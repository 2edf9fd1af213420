package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"HEALTHAPI_BACK-END/internal/models"
	"HEALTHAPI_BACK-END/internal/store"
)

// memStore is a map-backed stand-in for the database, close enough to the
// real schema for exercising full request flows: auto-incremented ids,
// unique email and cpf, and cascading deletes. The store contracts overlap
// in method names, so each is served by a facet type sharing this struct.
type memStore struct {
	mu sync.Mutex

	users         map[int64]*models.User
	patients      map[int64]*models.Patient
	consultations map[int64]*models.Consultation
	logs          []models.AuditLog

	nextUserID         int64
	nextPatientID      int64
	nextConsultationID int64
	nextLogID          int64
}

func newMemStore() *memStore {
	return &memStore{
		users:         make(map[int64]*models.User),
		patients:      make(map[int64]*models.Patient),
		consultations: make(map[int64]*models.Consultation),
	}
}

func (s *memStore) Users() store.UserStore                 { return (*memUsers)(s) }
func (s *memStore) Patients() store.PatientStore           { return (*memPatients)(s) }
func (s *memStore) Consultations() store.ConsultationStore { return (*memConsultations)(s) }
func (s *memStore) Audit() store.AuditStore                { return (*memAudit)(s) }

type memUsers memStore

var _ store.UserStore = (*memUsers)(nil)

func (s *memUsers) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertUser(user)
}

func (s *memUsers) CreateWithPatient(ctx context.Context, user *models.User, patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.patients {
		if p.CPF == patient.CPF {
			return store.ErrDuplicateCPF
		}
	}
	if err := s.insertUser(user); err != nil {
		return err
	}

	s.nextPatientID++
	patient.ID = s.nextPatientID
	patient.UserID = user.ID
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = patient.CreatedAt
	s.patients[patient.ID] = patient
	return nil
}

func (s *memUsers) insertUser(user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	s.nextUserID++
	user.ID = s.nextUserID
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return nil
}

func (s *memUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, store.ErrNotFound
}

type memPatients memStore

var _ store.PatientStore = (*memPatients)(nil)

func (s *memPatients) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.patients[id]; ok {
		return p, nil
	}
	return nil, store.ErrNotFound
}

func (s *memPatients) GetByUserID(ctx context.Context, userID int64) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memPatients) List(ctx context.Context) ([]models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memPatients) Update(ctx context.Context, patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[patient.ID]; !ok {
		return store.ErrNotFound
	}
	patient.UpdatedAt = time.Now()
	s.patients[patient.ID] = patient
	return nil
}

func (s *memPatients) DeleteCascade(ctx context.Context, patientID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.patients, patientID)
	delete(s.users, userID)
	for id, c := range s.consultations {
		if c.PatientID == patientID {
			delete(s.consultations, id)
		}
	}
	return nil
}

type memConsultations memStore

var _ store.ConsultationStore = (*memConsultations)(nil)

func (s *memConsultations) Create(ctx context.Context, consultation *models.Consultation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextConsultationID++
	consultation.ID = s.nextConsultationID
	consultation.CreatedAt = time.Now()
	s.consultations[consultation.ID] = consultation
	return nil
}

func (s *memConsultations) GetByID(ctx context.Context, id int64) (*models.Consultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.consultations[id]; ok {
		return c, nil
	}
	return nil, store.ErrNotFound
}

func (s *memConsultations) List(ctx context.Context) ([]models.Consultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Consultation, 0, len(s.consultations))
	for _, c := range s.consultations {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memConsultations) ListByPatient(ctx context.Context, patientID int64) ([]models.Consultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Consultation{}
	for _, c := range s.consultations {
		if c.PatientID == patientID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memConsultations) Update(ctx context.Context, consultation *models.Consultation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.consultations[consultation.ID]; !ok {
		return store.ErrNotFound
	}
	s.consultations[consultation.ID] = consultation
	return nil
}

func (s *memConsultations) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.consultations, id)
	return nil
}

type memAudit memStore

var _ store.AuditStore = (*memAudit)(nil)

func (s *memAudit) Record(ctx context.Context, actorID *int64, action, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLogID++
	s.logs = append(s.logs, models.AuditLog{
		ID:        s.nextLogID,
		UserID:    actorID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

func (s *memAudit) ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AuditLog, len(s.logs))
	copy(out, s.logs)
	// Newest first, matching the SQL ordering
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
