package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"HEALTHAPI_BACK-END/internal/config"
	"HEALTHAPI_BACK-END/internal/handlers"
	"HEALTHAPI_BACK-END/internal/models"
	"HEALTHAPI_BACK-END/internal/routes"
	"HEALTHAPI_BACK-END/internal/services"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:         "test-secret",
			AccessTokenTTL: 30 * time.Minute,
		},
		Audit: config.AuditConfig{PublicLogs: true},
	}
}

// newTestServer wires the full stack (stores, services, handlers, routes)
// against an in-memory database
func newTestServer(t *testing.T, cfg *config.Config) (*httptest.Server, *memStore) {
	t.Helper()

	db := newMemStore()
	userService := services.NewUserService(db.Users(), db.Audit(), &cfg.JWT)
	patientService := services.NewPatientService(db.Patients(), db.Audit())
	consultationService := services.NewConsultationService(db.Consultations(), db.Patients(), db.Audit())

	mux := routes.SetupRoutes(
		handlers.NewAuthHandler(userService),
		handlers.NewPatientHandler(patientService),
		handlers.NewConsultationHandler(consultationService),
		handlers.NewLogsHandler(db.Audit()),
		handlers.NewHealthHandler(nil),
		db.Users(),
		cfg,
	)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, db
}

func doJSON(t *testing.T, method, url, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode %s %s response: %v", method, url, err)
	}
	return resp, decoded
}

func registerPayload(name, email, cpf string) map[string]any {
	return map[string]any{
		"name":       name,
		"email":      email,
		"password":   "secret123",
		"role":       "patient",
		"cpf":        cpf,
		"phone":      "11999990000",
		"birth_date": "1990-05-01",
	}
}

func login(t *testing.T, baseURL, email string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, baseURL+"/auth/login", "", map[string]any{
		"email":    email,
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d, body %v", email, resp.StatusCode, body)
	}
	if body["token_type"] != "bearer" {
		t.Fatalf("login %s: token_type = %v, want bearer", email, body["token_type"])
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login %s: empty token", email)
	}
	return token
}

func TestPatientRegistrationAndAccessFlow(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	// Register a patient; password material must never leak
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", registerPayload("Ana Lima", "ana@example.com", "11111111111"))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status %d, body %v", resp.StatusCode, body)
	}
	raw, _ := json.Marshal(body)
	if strings.Contains(strings.ToLower(string(raw)), "password") {
		t.Fatalf("register response leaks password material: %s", raw)
	}

	token := login(t, srv.URL, "ana@example.com")

	// The caller's own profile is reachable via /pacientes/me
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/pacientes/me", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: status %d, body %v", resp.StatusCode, body)
	}
	if body["cpf"] != "11111111111" {
		t.Fatalf("me: cpf = %v", body["cpf"])
	}

	// Without a token the same route is 401
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/pacientes/me", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me without token: status %d, want 401", resp.StatusCode)
	}
}

func TestPatientCannotProbeOtherProfiles(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", registerPayload("Ana Lima", "ana@example.com", "11111111111"))
	doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", registerPayload("Bruno Reis", "bruno@example.com", "22222222222"))

	anaToken := login(t, srv.URL, "ana@example.com")

	// Ana is patient id 1, Bruno id 2. Probing Bruno and a nonexistent id
	// must look identical: 403 either way.
	for _, id := range []int{2, 999} {
		resp, _ := doJSON(t, http.MethodGet, fmt.Sprintf("%s/pacientes/%d", srv.URL, id), anaToken, nil)
		if resp.StatusCode != http.StatusForbidden {
			t.Fatalf("patient probing id %d: status %d, want 403", id, resp.StatusCode)
		}
	}

	// Own record still works through the id route
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/pacientes/1", anaToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("own record: status %d, body %v", resp.StatusCode, body)
	}
}

func TestDeletedPatientCannotLogIn(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", registerPayload("Ana Lima", "ana@example.com", "11111111111"))
	token := login(t, srv.URL, "ana@example.com")

	// A patient erases their own record; profile and account go together
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/pacientes/1", nil)
	if err != nil {
		t.Fatalf("build delete request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: status %d, want 204", delResp.StatusCode)
	}

	// The credentials died with the account
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "", map[string]any{
		"email":    "ana@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("login after delete: status %d, body %v, want 401", resp.StatusCode, body)
	}

	// The still-held token is dead too: the middleware can no longer
	// resolve its subject to an account
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/pacientes/me", token, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me after delete: status %d, want 401", resp.StatusCode)
	}
}

func TestDuplicateRegistrationRejected(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", registerPayload("Ana Lima", "ana@example.com", "11111111111"))
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register: status %d", resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", registerPayload("Ana Clone", "ana@example.com", "33333333333"))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate email: status %d, body %v", resp.StatusCode, body)
	}
	if !strings.Contains(fmt.Sprint(body["message"]), "email") {
		t.Fatalf("duplicate email message: %v", body["message"])
	}
}

func TestAuditTrailNewestFirst(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", registerPayload("Ana Lima", "ana@example.com", "11111111111"))
	login(t, srv.URL, "ana@example.com")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/logs", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logs: status %d, body %v", resp.StatusCode, body)
	}
	if body["total"] != float64(2) {
		t.Fatalf("logs total = %v, want 2", body["total"])
	}

	logs, _ := body["logs"].([]any)
	if len(logs) != 2 {
		t.Fatalf("logs entries = %d, want 2", len(logs))
	}
	first, _ := logs[0].(map[string]any)
	second, _ := logs[1].(map[string]any)
	if first["action"] != models.ActionLogin || second["action"] != models.ActionRegister {
		t.Fatalf("logs order = %v then %v, want %s then %s",
			first["action"], second["action"], models.ActionLogin, models.ActionRegister)
	}
}

func TestRestrictedLogsRequireAdmin(t *testing.T) {
	cfg := testConfig()
	cfg.Audit.PublicLogs = false
	srv, _ := newTestServer(t, cfg)

	doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", registerPayload("Ana Lima", "ana@example.com", "11111111111"))
	anaToken := login(t, srv.URL, "ana@example.com")

	// Unauthenticated and patient callers are both turned away
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/logs", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("logs without token: status %d, want 401", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/logs", anaToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("logs as patient: status %d, want 403", resp.StatusCode)
	}

	doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", map[string]any{
		"name": "Root", "email": "root@example.com", "password": "secret123", "role": "admin",
	})
	adminToken := login(t, srv.URL, "root@example.com")
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/logs", adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logs as admin: status %d, body %v", resp.StatusCode, body)
	}
}

func TestConsultationLifecycleOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", registerPayload("Ana Lima", "ana@example.com", "11111111111"))
	doJSON(t, http.MethodPost, srv.URL+"/auth/register", "", map[string]any{
		"name": "Dr. Souza", "email": "souza@example.com", "password": "secret123", "role": "doctor",
	})

	doctorToken := login(t, srv.URL, "souza@example.com")
	anaToken := login(t, srv.URL, "ana@example.com")

	// Patients cannot schedule
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/consultas/", anaToken, map[string]any{
		"patient_id": 1, "doctor_name": "Dr. Souza", "scheduled_at": "2026-09-15T14:00:00Z",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("patient scheduling: status %d, want 403", resp.StatusCode)
	}

	// A doctor schedules one for Ana; modality defaults to in-person
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/consultas/", doctorToken, map[string]any{
		"patient_id": 1, "doctor_name": "Dr. Souza", "scheduled_at": "2026-09-15T14:00:00Z",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("schedule: status %d, body %v", resp.StatusCode, body)
	}
	if body["modality"] != "in-person" || body["status"] != "scheduled" {
		t.Fatalf("schedule defaults: modality=%v status=%v", body["modality"], body["status"])
	}

	// Ana sees her own consultation in the scoped listing
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/consultas/1", anaToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("patient reading own consultation: status %d", resp.StatusCode)
	}

	// Completion and deletion are staff operations
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/consultas/1", doctorToken, map[string]any{
		"status": "completed",
	})
	if resp.StatusCode != http.StatusOK || body["status"] != "completed" {
		t.Fatalf("complete: status %d, body %v", resp.StatusCode, body)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/consultas/1", nil)
	req.Header.Set("Authorization", "Bearer "+doctorToken)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	delResp.Body.Close()
	if delResp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: status %d, want 204", delResp.StatusCode)
	}
}
