package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

func newAdminHandler(catalog *stubCatalogService, accounts *stubAccountService) *AdminHandler {
	return NewAdminHandler(catalog, accounts, zerolog.Nop())
}

func TestAdminHandler_UpdateFormation_WhitelistsFields(t *testing.T) {
	var got domain.FormationPatch
	catalog := &stubCatalogService{
		updateFn: func(_ context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error) {
			if id != 3 {
				t.Fatalf("unexpected id %d", id)
			}
			got = patch
			return &domain.Formation{ID: id, Title: *patch.Title}, nil
		},
	}

	body := `{"titre":"Nouveau titre","prix":"99.90","email":"admin@example.com","id":50,"created_at":"2020-01-01T00:00:00Z"}`
	c, rec := newContext(http.MethodPut, "/api/admin/formations/3", body)
	if err := newAdminHandler(catalog, nil).UpdateFormation(withID(c, "3")); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Title == nil || *got.Title != "Nouveau titre" {
		t.Fatalf("title not forwarded: %+v", got)
	}
	if got.Price == nil || !got.Price.Equal(decimal.RequireFromString("99.9")) {
		t.Fatalf("price not forwarded: %+v", got.Price)
	}
	if got.Description != nil || got.Status != nil || got.Image != nil {
		t.Fatalf("unexpected fields in patch: %+v", got)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != domain.MsgUpdated {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAdminHandler_UpdateFormation_BadPrice(t *testing.T) {
	c, _ := newContext(http.MethodPut, "/api/admin/formations/3", `{"prix":"cher"}`)

	de := domainErr(t, newAdminHandler(&stubCatalogService{}, nil).UpdateFormation(withID(c, "3")))
	if de.Kind != domain.ErrInvalidInput {
		t.Fatalf("expected invalid input, got %v", de)
	}
}

func TestAdminHandler_DeleteFormation(t *testing.T) {
	deleted := int64(0)
	catalog := &stubCatalogService{
		deleteFn: func(_ context.Context, id int64) error {
			if id == 999 {
				return domain.NewError(domain.ErrNotFound, domain.MsgFormationNotFound)
			}
			deleted = id
			return nil
		},
	}
	h := newAdminHandler(catalog, nil)

	c, rec := newContext(http.MethodDelete, "/api/admin/formations/4", "")
	if err := h.DeleteFormation(withID(c, "4")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || deleted != 4 {
		t.Fatalf("expected 200 and deletion of 4, got %d / %d", rec.Code, deleted)
	}

	c, _ = newContext(http.MethodDelete, "/api/admin/formations/999", "")
	de := domainErr(t, h.DeleteFormation(withID(c, "999")))
	if de.Kind != domain.ErrNotFound {
		t.Fatalf("expected not found, got %v", de)
	}
}

func TestAdminHandler_SetFormationStatus(t *testing.T) {
	catalog := &stubCatalogService{
		setStatusFn: func(_ context.Context, id int64, status string) (*ports.StatusChangeResult, error) {
			if status != string(domain.StatusDraft) {
				return nil, domain.NewError(domain.ErrInvalidInput, domain.MsgInvalidStatus)
			}
			return &ports.StatusChangeResult{
				Formation: &domain.Formation{ID: id, Status: domain.StatusDraft},
				Message:   domain.MsgDrafted,
			}, nil
		},
	}
	h := newAdminHandler(catalog, nil)

	c, rec := newContext(http.MethodPatch, "/api/admin/formations/2/statut", `{"statut":"brouillon"}`)
	if err := h.SetFormationStatus(withID(c, "2")); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp formationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != domain.MsgDrafted || resp.Formation.Status != domain.StatusDraft {
		t.Fatalf("unexpected response: %+v", resp)
	}

	c, _ = newContext(http.MethodPatch, "/api/admin/formations/2/statut", `{"statut":"archive"}`)
	de := domainErr(t, h.SetFormationStatus(withID(c, "2")))
	if de.Message != domain.MsgInvalidStatus {
		t.Fatalf("unexpected error: %v", de)
	}
}

func TestAdminHandler_ListUsersAndPromote(t *testing.T) {
	accounts := &stubAccountService{
		listFn: func(context.Context) ([]*domain.User, error) {
			return []*domain.User{{ID: 2, Email: "b@example.com"}, {ID: 1, Email: "a@example.com"}}, nil
		},
		promoteFn: func(_ context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RoleAdmin}, nil
		},
	}
	h := newAdminHandler(nil, accounts)

	c, rec := newContext(http.MethodGet, "/api/admin/users", "")
	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	c, rec = newContext(http.MethodPatch, "/api/admin/users/2/promote", "")
	if err := h.PromoteUser(withID(c, "2")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp accountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != domain.MsgPromoted || resp.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
