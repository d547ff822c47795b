package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dchlearning/platform/internal/api/metrics"
	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

// HeaderIdempotencyKey lets a client retry a contact submission safely.
const HeaderIdempotencyKey = "Idempotency-Key"

type ContactHandler struct {
	contacts ports.ContactService
}

func NewContactHandler(contacts ports.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit stores a contact form message.
//
// @Summary      Send a contact message
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string          false  "Replay protection key"
// @Param        body             body      contactRequest  true   "Message"
// @Success      201              {object}  contactResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.contacts.Submit(c.Request().Context(), ports.SubmitContactInput{
		Name:           req.Name,
		Email:          req.Email,
		Subject:        req.Subject,
		Message:        req.Message,
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return fail(err, domain.MsgContactFailure)
	}

	result := "stored"
	if res.Replayed {
		result = "replayed"
	}
	metrics.ContactMessagesTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusCreated, contactResponse{Message: domain.MsgContactSent, Contact: res.Contact})
}
