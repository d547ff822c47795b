package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const serverActive = "API DCH Learning - Serveur actif"

type infoResponse struct {
	Message       string `json:"message"`
	Documentation string `json:"documentation"`
	Version       string `json:"version"`
}

// InfoHandler answers GET / with a short banner pointing at the docs.
type InfoHandler struct {
	docsPath string
	version  string
}

func NewInfoHandler(docsPath, version string) *InfoHandler {
	return &InfoHandler{docsPath: docsPath, version: version}
}

func (h *InfoHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, infoResponse{
		Message:       serverActive,
		Documentation: c.Scheme() + "://" + c.Request().Host + h.docsPath,
		Version:       h.version,
	})
}
