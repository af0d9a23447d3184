package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// PageContentHandler handles GET /api/page-content?pageId=<id>, returning
// the exact parsed JSON of the page's content file.
func (h *Handlers) PageContentHandler(c echo.Context) error {
	pageID := c.QueryParam("pageId")
	if pageID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "pageId query parameter is required",
		})
	}

	page, err := h.Store.PageContent(pageID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Content not found",
		})
	}

	return c.JSONBlob(http.StatusOK, page.Raw)
}

// ContentFileHandler handles GET /api/content/<...path>, serving any JSON
// file under the content root with the extension appended.
func (h *Handlers) ContentFileHandler(c echo.Context) error {
	path := c.Param("*")
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Content not found"})
	}

	raw, err := h.Store.ContentFile(segments...)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Content not found"})
	}

	return c.JSONBlob(http.StatusOK, raw)
}
