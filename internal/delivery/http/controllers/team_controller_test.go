package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"techfestbackend/internal/delivery/http/helpers"
	"techfestbackend/internal/domain"
)

type mockTeamService struct {
	reg       *domain.TeamRegistration
	lookupReg *domain.TeamRegistration
	err       error
}

func (m *mockTeamService) Register(ctx context.Context, input domain.TeamRegistrationInput) (*domain.TeamRegistration, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reg, nil
}

func (m *mockTeamService) Lookup(ctx context.Context, registrationID string) (*domain.TeamRegistration, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.lookupReg != nil && m.lookupReg.RegistrationID == registrationID {
		return m.lookupReg, nil
	}
	return nil, domain.ErrNotFound
}

const validTeamBody = `{
	"team_name": "Null Pointers",
	"contact_email": "captain@example.com",
	"contact_first_name": "Grace",
	"contact_last_name": "Hopper",
	"contact_phone": "456",
	"member_count": 4,
	"agreed_to_terms": true
}`

func TestTeamController_Register_Created(t *testing.T) {
	svc := &mockTeamService{
		reg: &domain.TeamRegistration{RegistrationID: "BTT25-000001", TeamName: "Null Pointers"},
	}
	ctrl := NewTeamController(discardLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/api/teams/register", strings.NewReader(validTeamBody))
	w := httptest.NewRecorder()
	ctrl.Register(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	var resp TeamRegisterSuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Data.RegistrationID != "BTT25-000001" {
		t.Fatalf("expected registration id BTT25-000001, got %q", resp.Data.RegistrationID)
	}
}

func TestTeamController_Register_DuplicateContact(t *testing.T) {
	ctrl := NewTeamController(discardLogger(), &mockTeamService{err: domain.ErrDuplicateRegistration})

	req := httptest.NewRequest(http.MethodPost, "/api/teams/register", strings.NewReader(validTeamBody))
	w := httptest.NewRecorder()
	ctrl.Register(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeDuplicate {
		t.Fatalf("expected duplicate_registration error, got %+v", resp.Error)
	}
}

func TestTeamController_Lookup_NotFound(t *testing.T) {
	ctrl := NewTeamController(discardLogger(), &mockTeamService{})

	req := httptest.NewRequest(http.MethodGet, "/api/teams/registrations/BTT25-999999", nil)
	req.SetPathValue("id", "BTT25-999999")
	w := httptest.NewRecorder()
	ctrl.Lookup(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
