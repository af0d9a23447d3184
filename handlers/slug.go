package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"revive_physio_go/models"
	"revive_physio_go/templates/pages"
)

// SlugHandler serves the dynamic catch-all route. The slug must exist in the
// registry; registered slugs get a generic placeholder page because this
// route does not resolve dedicated per-slug content yet.
func (h *Handlers) SlugHandler(c echo.Context) error {
	slug := c.Param("slug")

	if !h.Store.HasSlug(slug) {
		c.Response().WriteHeader(http.StatusNotFound)
		return render(c, pages.NotFound())
	}

	meta := models.Metadata{
		Title:     slug + " | Revive Physiotherapy",
		Canonical: h.Cfg.AppURL + "/" + slug,
	}
	return render(c, pages.SlugPlaceholder(slug, meta))
}
