package ports

import "context"

// IdempotencyStore remembers which contact message an Idempotency-Key
// produced, so a replayed submission does not append a second message.
type IdempotencyStore interface {
	// Lookup returns the message id recorded for key, and false when unseen.
	Lookup(ctx context.Context, key string) (int64, bool, error)
	Remember(ctx context.Context, key string, messageID int64) error
}
