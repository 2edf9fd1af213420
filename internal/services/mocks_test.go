package services

import (
	"context"
	"errors"
	"sync/atomic"

	"HEALTHAPI_BACK-END/internal/models"
	"HEALTHAPI_BACK-END/internal/store"
)

// Compile-time checks that the mocks satisfy the store contracts
var (
	_ store.UserStore         = (*MockUserStore)(nil)
	_ store.PatientStore      = (*MockPatientStore)(nil)
	_ store.ConsultationStore = (*MockConsultationStore)(nil)
	_ store.AuditStore        = (*MockAuditStore)(nil)
)

// MockUserStore is a func-field mock of store.UserStore
type MockUserStore struct {
	CreateFunc            func(ctx context.Context, user *models.User) error
	CreateWithPatientFunc func(ctx context.Context, user *models.User, patient *models.Patient) error
	GetByEmailFunc        func(ctx context.Context, email string) (*models.User, error)
	GetByIDFunc           func(ctx context.Context, id int64) (*models.User, error)
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockUserStore) CreateWithPatient(ctx context.Context, user *models.User, patient *models.Patient) error {
	if m.CreateWithPatientFunc != nil {
		return m.CreateWithPatientFunc(ctx, user, patient)
	}
	return errors.New("CreateWithPatientFunc not implemented in mock")
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, errors.New("GetByEmailFunc not implemented in mock")
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

// MockPatientStore is a func-field mock of store.PatientStore. GetByID calls
// are counted so tests can assert whether a lookup happened at all.
type MockPatientStore struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*models.Patient, error)
	GetByUserIDFunc   func(ctx context.Context, userID int64) (*models.Patient, error)
	ListFunc          func(ctx context.Context) ([]models.Patient, error)
	UpdateFunc        func(ctx context.Context, patient *models.Patient) error
	DeleteCascadeFunc func(ctx context.Context, patientID, userID int64) error

	GetByIDCalls       int32
	DeleteCascadeCalls int32
}

func (m *MockPatientStore) GetByID(ctx context.Context, id int64) (*models.Patient, error) {
	atomic.AddInt32(&m.GetByIDCalls, 1)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientStore) GetByUserID(ctx context.Context, userID int64) (*models.Patient, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, errors.New("GetByUserIDFunc not implemented in mock")
}

func (m *MockPatientStore) List(ctx context.Context) ([]models.Patient, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("ListFunc not implemented in mock")
}

func (m *MockPatientStore) Update(ctx context.Context, patient *models.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientStore) DeleteCascade(ctx context.Context, patientID, userID int64) error {
	atomic.AddInt32(&m.DeleteCascadeCalls, 1)
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, patientID, userID)
	}
	return errors.New("DeleteCascadeFunc not implemented in mock")
}

// MockConsultationStore is a func-field mock of store.ConsultationStore
type MockConsultationStore struct {
	CreateFunc        func(ctx context.Context, c *models.Consultation) error
	GetByIDFunc       func(ctx context.Context, id int64) (*models.Consultation, error)
	ListFunc          func(ctx context.Context) ([]models.Consultation, error)
	ListByPatientFunc func(ctx context.Context, patientID int64) ([]models.Consultation, error)
	UpdateFunc        func(ctx context.Context, c *models.Consultation) error
	DeleteFunc        func(ctx context.Context, id int64) error

	DeleteCalls int32
}

func (m *MockConsultationStore) Create(ctx context.Context, c *models.Consultation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return errors.New("CreateFunc not implemented in mock")
}

func (m *MockConsultationStore) GetByID(ctx context.Context, id int64) (*models.Consultation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockConsultationStore) List(ctx context.Context) ([]models.Consultation, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, errors.New("ListFunc not implemented in mock")
}

func (m *MockConsultationStore) ListByPatient(ctx context.Context, patientID int64) ([]models.Consultation, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errors.New("ListByPatientFunc not implemented in mock")
}

func (m *MockConsultationStore) Update(ctx context.Context, c *models.Consultation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockConsultationStore) Delete(ctx context.Context, id int64) error {
	atomic.AddInt32(&m.DeleteCalls, 1)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

// MockAuditStore records actions in memory so tests can assert exactly one
// entry per operation. Record never fails unless RecordFunc says so.
type MockAuditStore struct {
	RecordFunc     func(ctx context.Context, actorID *int64, action, details string) error
	ListRecentFunc func(ctx context.Context, limit int) ([]models.AuditLog, error)

	Actions []string
}

func (m *MockAuditStore) Record(ctx context.Context, actorID *int64, action, details string) error {
	m.Actions = append(m.Actions, action)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, actorID, action, details)
	}
	return nil
}

func (m *MockAuditStore) ListRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}
