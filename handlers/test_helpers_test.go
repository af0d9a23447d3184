package handlers

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"revive_physio_go/config"
)

const testTemplates = `{
  "homepage": {"subject": "New appointment request from {{fullName}}", "html": "<p>{{fullName}} / {{phone}} / {{email}} / {{page}} / {{timestamp}}</p>"},
  "general":  {"subject": "New enquiry from {{name}}", "html": "<p>{{name}} / {{phone}} / {{message}}</p>"},
  "course":   {"subject": "Course booking: {{courseTitle}}", "html": "<p>{{name}} / {{courseTitle}} / {{coursePrice}}</p>"}
}`

const testHomepage = `{
  "seo": {"metaTitle": "Home", "metaDescription": "Test home", "canonical": "https://example.test/"},
  "hero": {"title": "Move Better"},
  "services": [{"id": "a", "title": "Service A"}, {"id": "b", "title": "Service B"}],
  "founders": []
}`

const testCourses = `{
  "hero": {"title": "Courses"},
  "courseList": [{"id": "c1", "title": "Course One", "price": "₹10,000"}]
}`

const testSlugs = `{"routes": [{"slug": "faq", "type": "page"}]}`

// setupHandlers builds a handler set over throwaway content, routes, and
// data directories, with emails in test mode.
func setupHandlers(t *testing.T) *Handlers {
	t.Helper()

	contentDir := t.TempDir()
	routesDir := t.TempDir()
	dataDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "email-templates.json"), []byte(testTemplates), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "homepage.json"), []byte(testHomepage), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "courses.json"), []byte(testCourses), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(routesDir, "slugs.json"), []byte(testSlugs), 0644))

	cfg := &config.Config{
		Environment:       "test",
		AppURL:            "https://example.test",
		ContentDir:        contentDir,
		RoutesDir:         routesDir,
		DataDir:           dataDir,
		EmailTo:           "care@example.test",
		EmailTestMode:     true,
		IndexingSecretKey: "test-secret",
	}

	return New(cfg)
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}
