package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dchlearning/platform/internal/api/metrics"
	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

// UserHandler serves the public account routes.
type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// Register creates an account. The very first account becomes admin.
//
// @Summary      Register a new account
// @Tags         Authentification
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/inscription [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
	})
	if err != nil {
		return fail(err, domain.MsgRegisterFailure)
	}

	msg := domain.MsgRegistered
	if res.Bootstrapped {
		msg = domain.MsgRegisteredAdmin
	}
	metrics.AccountsRegisteredTotal.WithLabelValues(string(res.User.Role)).Inc()

	return c.JSON(http.StatusCreated, accountResponse{Message: msg, User: res.User})
}

// Login checks credentials and returns the account without its password.
//
// @Summary      Login
// @Tags         Authentification
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/users/connexion [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return fail(err, domain.MsgLoginFailure)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{Message: domain.MsgLoggedIn, User: res.User, Token: res.Token})
}
