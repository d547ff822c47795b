package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderUserEmail carries the admin claim in claim mode.
	HeaderUserEmail = "user-email"

	maxClaimBody = 1 << 20
)

// emailClaim returns the claimed email from, in order, the user-email header,
// the email query parameter and the email field of a JSON body. The body is
// restored so the handler can bind it again.
func emailClaim(c echo.Context) string {
	req := c.Request()
	if email := req.Header.Get(HeaderUserEmail); email != "" {
		return email
	}
	if email := c.QueryParam("email"); email != "" {
		return email
	}
	return bodyEmail(req)
}

func bodyEmail(req *http.Request) string {
	if req.Body == nil || req.Body == http.NoBody {
		return ""
	}
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(req.Body, maxClaimBody))
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return ""
	}

	var body struct {
		Email any `json:"email"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	email, _ := body.Email.(string)
	return email
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
