package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ReindexHandler handles POST /api/reindex. The sweep runs inline on the
// request; partial per-URL failures never fail the response.
func (h *Handlers) ReindexHandler(c echo.Context) error {
	auth := c.Request().Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || h.Cfg.IndexingSecretKey == "" || token != h.Cfg.IndexingSecretKey {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	result, err := h.Indexer.IndexAllPages(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Indexing service unavailable")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"result":  result,
	})
}
