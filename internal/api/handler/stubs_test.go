package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

type stubAccountService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	promoteFn  func(ctx context.Context, id int64) (*domain.User, error)
	listFn     func(ctx context.Context) ([]*domain.User, error)
}

func (s *stubAccountService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAccountService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAccountService) Promote(ctx context.Context, id int64) (*domain.User, error) {
	return s.promoteFn(ctx, id)
}

func (s *stubAccountService) ListAccounts(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

type stubCatalogService struct {
	listPublishedFn func(ctx context.Context, in ports.ListFormationsInput) ([]*domain.Formation, error)
	getFn           func(ctx context.Context, id int64) (*domain.Formation, error)
	listAllFn       func(ctx context.Context) ([]*domain.Formation, error)
	updateFn        func(ctx context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error)
	deleteFn        func(ctx context.Context, id int64) error
	setStatusFn     func(ctx context.Context, id int64, status string) (*ports.StatusChangeResult, error)
}

func (s *stubCatalogService) ListPublished(ctx context.Context, in ports.ListFormationsInput) ([]*domain.Formation, error) {
	return s.listPublishedFn(ctx, in)
}

func (s *stubCatalogService) Get(ctx context.Context, id int64) (*domain.Formation, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) ListAll(ctx context.Context) ([]*domain.Formation, error) {
	return s.listAllFn(ctx)
}

func (s *stubCatalogService) Update(ctx context.Context, id int64, patch domain.FormationPatch) (*domain.Formation, error) {
	return s.updateFn(ctx, id, patch)
}

func (s *stubCatalogService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func (s *stubCatalogService) SetStatus(ctx context.Context, id int64, status string) (*ports.StatusChangeResult, error) {
	return s.setStatusFn(ctx, id, status)
}

func (s *stubCatalogService) Seed(context.Context) (int, error) {
	return 0, nil
}

type stubContactService struct {
	submitFn func(ctx context.Context, in ports.SubmitContactInput) (*ports.SubmitContactResult, error)
}

func (s *stubContactService) Submit(ctx context.Context, in ports.SubmitContactInput) (*ports.SubmitContactResult, error) {
	return s.submitFn(ctx, in)
}

// newContext builds an echo context for a JSON request with the validator
// registered, the way the router sets it up.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// withID sets the :id route parameter.
func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

// domainErr unwraps a *domain.Error or fails the test.
func domainErr(t *testing.T, err error) *domain.Error {
	t.Helper()
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error, got %v", err)
	}
	return de
}
