package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/dchlearning/platform/internal/api/metrics"
	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

const adminKey = "admin"

// RequireAdmin lets a request through only when its identity resolves to a
// stored account holding the admin role. In claim mode the identity is the
// unverified email claim; in token mode it is the email of a verified bearer
// token. The resolved account is attached to the context (see AdminFrom).
func RequireAdmin(authz ports.AuthorizationService, tokenMode bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, err := identity(c, authz, tokenMode)
			if err != nil {
				metrics.AdminGateDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return err
			}

			user, err := authz.AuthorizeAdmin(c.Request().Context(), email)
			if err != nil {
				metrics.AdminGateDecisionsTotal.WithLabelValues(gateResult(err)).Inc()
				return domain.AsStoreFailure(err, domain.MsgAuthFailure)
			}

			metrics.AdminGateDecisionsTotal.WithLabelValues("allowed").Inc()
			c.Set(adminKey, user)
			return next(c)
		}
	}
}

func identity(c echo.Context, authz ports.AuthorizationService, tokenMode bool) (string, error) {
	if !tokenMode {
		return emailClaim(c), nil
	}

	token, ok := bearerToken(c)
	if !ok {
		return "", domain.NewError(domain.ErrNotAuthenticated, domain.MsgClaimRequired)
	}
	return authz.EmailFromToken(token)
}

// AdminFrom returns the account attached by RequireAdmin, or nil.
func AdminFrom(c echo.Context) *domain.User {
	u, _ := c.Get(adminKey).(*domain.User)
	return u
}

func gateResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "unauthenticated"
	case errors.Is(err, domain.ErrNotFound):
		return "unknown_account"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}
