package ports

import (
	"context"

	"github.com/dchlearning/platform/internal/core/domain"
)

// ContactRepository persists contact messages. There is no update or delete.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	FindByID(ctx context.Context, id int64) (*domain.ContactMessage, error)
}
