package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dchlearning/platform/internal/core/domain"
	"github.com/dchlearning/platform/internal/core/ports"
)

// FormationHandler serves the public catalog.
type FormationHandler struct {
	catalog ports.CatalogService
}

func NewFormationHandler(catalog ports.CatalogService) *FormationHandler {
	return &FormationHandler{catalog: catalog}
}

// List returns the published formations.
//
// @Summary      List published formations
// @Tags         Formations
// @Produce      json
// @Param        categorie  query     string  false  "Category filter"
// @Param        niveau     query     string  false  "Level filter"
// @Param        duree      query     string  false  "Duration filter"
// @Param        tri        query     string  false  "Price ordering"  Enums(prix_asc, prix_desc)
// @Success      200        {array}   domain.Formation
// @Failure      400        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/formations [get]
func (h *FormationHandler) List(c echo.Context) error {
	var q listFormationsQuery
	if err := bind(c, &q); err != nil {
		return err
	}

	formations, err := h.catalog.ListPublished(c.Request().Context(), ports.ListFormationsInput{
		Category: q.Category,
		Level:    q.Level,
		Duration: q.Duration,
		Sort:     q.Sort,
	})
	if err != nil {
		return fail(err, domain.MsgListFailure)
	}
	return c.JSON(http.StatusOK, formations)
}

// Get returns one formation by id. Drafts are returned as well.
//
// @Summary      Get a formation
// @Tags         Formations
// @Produce      json
// @Param        id   path      int  true  "Formation id"
// @Success      200  {object}  domain.Formation
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/formations/{id} [get]
func (h *FormationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	f, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err, domain.MsgGetFailure)
	}
	return c.JSON(http.StatusOK, f)
}
