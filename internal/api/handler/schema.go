package handler

import (
	"github.com/shopspring/decimal"

	"github.com/dchlearning/platform/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error" example:"Formation non trouvée"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Accounts ---

type registerRequest struct {
	Name     string `json:"nom"          validate:"max=100"`
	Email    string `json:"email"        validate:"max=150"`
	Phone    string `json:"telephone"    validate:"max=20"`
	Password string `json:"mot_de_passe" validate:"max=72"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"mot_de_passe"`
}

type accountResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
	Token   string       `json:"token,omitempty"`
}

// --- Catalog ---

type listFormationsQuery struct {
	Category string `query:"categorie"`
	Level    string `query:"niveau"`
	Duration string `query:"duree"`
	Sort     string `query:"tri"`
}

// updateFormationRequest lists the only fields an update may touch. Any other
// body field, including the admin claim email, is ignored.
type updateFormationRequest struct {
	Title       *string          `json:"titre"       validate:"omitempty,max=200"`
	Description *string          `json:"description"`
	Duration    *string          `json:"duree"       validate:"omitempty,max=50"`
	Price       *decimal.Decimal `json:"prix"        swaggertype:"string"`
	Level       *string          `json:"niveau"      validate:"omitempty,max=50"`
	Category    *string          `json:"categorie"   validate:"omitempty,max=50"`
	Status      *string          `json:"statut"`
	Image       *string          `json:"image"       validate:"omitempty,max=255"`
}

func (r updateFormationRequest) toPatch() domain.FormationPatch {
	p := domain.FormationPatch{
		Title:       r.Title,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
		Level:       r.Level,
		Category:    r.Category,
		Image:       r.Image,
	}
	if r.Status != nil {
		s := domain.FormationStatus(*r.Status)
		p.Status = &s
	}
	return p
}

type statusRequest struct {
	Status string `json:"statut"`
}

type formationResponse struct {
	Message   string            `json:"message"`
	Formation *domain.Formation `json:"formation"`
}

// --- Contact ---

type contactRequest struct {
	Name    string `json:"nom"     validate:"max=100"`
	Email   string `json:"email"   validate:"max=150"`
	Subject string `json:"sujet"   validate:"max=200"`
	Message string `json:"message"`
}

type contactResponse struct {
	Message string                 `json:"message"`
	Contact *domain.ContactMessage `json:"contact"`
}
