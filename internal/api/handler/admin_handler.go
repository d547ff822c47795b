package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dchlearning/platform/internal/api/metrics"
	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

// AdminHandler serves the routes behind the admin gate.
type AdminHandler struct {
	catalog  ports.CatalogService
	accounts ports.AccountService
	log      zerolog.Logger
}

func NewAdminHandler(catalog ports.CatalogService, accounts ports.AccountService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{catalog: catalog, accounts: accounts, log: log}
}

// ListFormations returns every formation, drafts included.
//
// @Summary      List all formations
// @Tags         Admin - Formations
// @Produce      json
// @Security     AdminAuth
// @Success      200  {array}   domain.Formation
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/formations [get]
func (h *AdminHandler) ListFormations(c echo.Context) error {
	formations, err := h.catalog.ListAll(c.Request().Context())
	if err != nil {
		return fail(err, domain.MsgAdminListFailure)
	}
	return c.JSON(http.StatusOK, formations)
}

// UpdateFormation applies a partial update.
//
// @Summary      Update a formation
// @Tags         Admin - Formations
// @Accept       json
// @Produce      json
// @Security     AdminAuth
// @Param        id    path      int                     true  "Formation id"
// @Param        body  body      updateFormationRequest  true  "Fields to change"
// @Success      200   {object}  formationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/formations/{id} [put]
func (h *AdminHandler) UpdateFormation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateFormationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	f, err := h.catalog.Update(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return fail(err, domain.MsgUpdateFailure)
	}

	metrics.AdminChangesTotal.WithLabelValues("update").Inc()
	h.log.Info().Int64("admin_id", actorID(c)).Int64("formation_id", id).Msg("admin updated formation")
	return c.JSON(http.StatusOK, formationResponse{Message: domain.MsgUpdated, Formation: f})
}

// DeleteFormation removes a formation.
//
// @Summary      Delete a formation
// @Tags         Admin - Formations
// @Produce      json
// @Security     AdminAuth
// @Param        id   path      int  true  "Formation id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/formations/{id} [delete]
func (h *AdminHandler) DeleteFormation(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.Delete(c.Request().Context(), id); err != nil {
		return fail(err, domain.MsgDeleteFailure)
	}

	metrics.AdminChangesTotal.WithLabelValues("delete").Inc()
	h.log.Info().Int64("admin_id", actorID(c)).Int64("formation_id", id).Msg("admin deleted formation")
	return c.JSON(http.StatusOK, messageResponse{Message: domain.MsgDeleted})
}

// SetFormationStatus publishes or drafts a formation.
//
// @Summary      Change formation status
// @Tags         Admin - Formations
// @Accept       json
// @Produce      json
// @Security     AdminAuth
// @Param        id    path      int            true  "Formation id"
// @Param        body  body      statusRequest  true  "publie or brouillon"
// @Success      200   {object}  formationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/admin/formations/{id}/statut [patch]
func (h *AdminHandler) SetFormationStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req statusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.catalog.SetStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return fail(err, domain.MsgStatusFailure)
	}

	action := "draft"
	if res.Formation.Status == domain.StatusPublished {
		action = "publish"
	}
	metrics.AdminChangesTotal.WithLabelValues(action).Inc()

	return c.JSON(http.StatusOK, formationResponse{Message: res.Message, Formation: res.Formation})
}

// ListUsers returns every account without credentials.
//
// @Summary      List accounts
// @Tags         Admin - Utilisateurs
// @Produce      json
// @Security     AdminAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.accounts.ListAccounts(c.Request().Context())
	if err != nil {
		return fail(err, domain.MsgListUsersFailure)
	}
	return c.JSON(http.StatusOK, users)
}

// PromoteUser grants the admin role to an account.
//
// @Summary      Promote an account to admin
// @Tags         Admin - Utilisateurs
// @Produce      json
// @Security     AdminAuth
// @Param        id   path      int  true  "Account id"
// @Success      200  {object}  accountResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/admin/users/{id}/promote [patch]
func (h *AdminHandler) PromoteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.accounts.Promote(c.Request().Context(), id)
	if err != nil {
		return fail(err, domain.MsgPromoteFailure)
	}

	metrics.AdminChangesTotal.WithLabelValues("promote").Inc()
	h.log.Info().Int64("admin_id", actorID(c)).Int64("user_id", id).Msg("admin promoted account")
	return c.JSON(http.StatusOK, accountResponse{Message: domain.MsgPromoted, User: user})
}
