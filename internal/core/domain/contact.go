package domain

import "time"

// ContactMessage is a message left through the public contact form.
// Messages are append-only.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nom"`
	Email     string    `json:"email"`
	Subject   *string   `json:"sujet"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
