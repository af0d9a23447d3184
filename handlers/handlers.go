// Package handlers wires HTTP routes to the content store, the email
// pipeline, and the indexing layer. All dependencies are injected
// explicitly; nothing here reads package-level state.
package handlers

import (
	"log"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"revive_physio_go/config"
	"revive_physio_go/models"
	"revive_physio_go/services"
)

type Handlers struct {
	Cfg       *config.Config
	Store     *services.ContentStore
	Templates services.TemplateTable
	Bookings  *services.BookingFile
	Indexer   *services.Indexer
}

// New builds the handler set. A missing template table is tolerated at
// startup (the submission endpoints fail per-request instead), so the
// content site keeps serving even when the email config is broken.
func New(cfg *config.Config) *Handlers {
	store := services.NewContentStore(cfg.ContentDir, cfg.RoutesDir)

	templates, err := services.LoadTemplateTable(cfg.ContentDir)
	if err != nil {
		log.Printf("Email template table unavailable: %v", err)
		templates = services.TemplateTable{}
	}

	return &Handlers{
		Cfg:       cfg,
		Store:     store,
		Templates: templates,
		Bookings:  services.NewBookingFile(cfg.DataDir),
		Indexer:   services.NewIndexer(cfg, store),
	}
}

// resolvePage loads a content document, degrading any failure to nil so the
// renderer shows its inline error block instead of crashing the page.
func (h *Handlers) resolvePage(pageID string) *models.PageContent {
	page, err := h.Store.PageContent(pageID)
	if err != nil {
		return nil
	}
	return page
}

// pageMetadata resolves the metadata descriptor for a page: the content
// document's seo object when present, otherwise the static fallback map.
func (h *Handlers) pageMetadata(pageID string, page *models.PageContent) models.Metadata {
	if page != nil && page.Seo != nil {
		if meta := services.StandardMetadata(page.Seo); !meta.IsZero() {
			return meta
		}
	}
	return GetSEO(pageID)
}

// render writes a templ component to the response.
func render(c echo.Context, component templ.Component) error {
	return component.Render(c.Request().Context(), c.Response().Writer)
}
