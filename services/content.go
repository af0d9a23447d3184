package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"revive_physio_go/models"
)

var (
	// ErrPageNotFound means no content file exists for the requested id.
	ErrPageNotFound = errors.New("page content not found")
	// ErrPageMalformed means the content file exists but is not valid JSON.
	ErrPageMalformed = errors.New("page content malformed")
)

// ContentStore reads page documents and the slug registry from disk.
// Every call re-reads the file; content is authored out-of-band and the
// expected traffic does not justify a cache.
type ContentStore struct {
	ContentDir string
	RoutesDir  string
}

func NewContentStore(contentDir, routesDir string) *ContentStore {
	return &ContentStore{ContentDir: contentDir, RoutesDir: routesDir}
}

// PageContent loads <ContentDir>/<pageID>.json. A missing file yields
// ErrPageNotFound and a parse failure ErrPageMalformed; callers that do not
// care about the distinction treat both as "not found".
func (s *ContentStore) PageContent(pageID string) (*models.PageContent, error) {
	if pageID == "" || strings.ContainsAny(pageID, "/\\") {
		return nil, fmt.Errorf("%w: invalid page id %q", ErrPageNotFound, pageID)
	}

	path := filepath.Join(s.ContentDir, pageID+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Content read failed for %q: %v", pageID, err)
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, pageID)
	}

	var page models.PageContent
	if err := json.Unmarshal(raw, &page); err != nil {
		log.Printf("Content parse failed for %q: %v", pageID, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrPageMalformed, pageID, err)
	}
	page.Raw = raw

	// The generic view of the document, for renderers that read sections the
	// typed contract does not cover.
	if err := json.Unmarshal(raw, &page.Fields); err != nil {
		log.Printf("Content parse failed for %q: %v", pageID, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrPageMalformed, pageID, err)
	}

	return &page, nil
}

// Slugs returns the routes array of <RoutesDir>/slugs.json, or an empty
// slice if the registry is missing or malformed.
func (s *ContentStore) Slugs() []models.RouteSlug {
	path := filepath.Join(s.RoutesDir, "slugs.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Slug registry read failed: %v", err)
		return []models.RouteSlug{}
	}

	var registry models.SlugRegistry
	if err := json.Unmarshal(raw, &registry); err != nil {
		log.Printf("Slug registry parse failed: %v", err)
		return []models.RouteSlug{}
	}
	if registry.Routes == nil {
		return []models.RouteSlug{}
	}
	return registry.Routes
}

// HasSlug reports whether slug is present in the registry.
func (s *ContentStore) HasSlug(slug string) bool {
	for _, r := range s.Slugs() {
		if r.Slug == slug {
			return true
		}
	}
	return false
}

// ContentFile serves an arbitrary JSON document under the content root by
// path segments, appending the .json extension. Any read failure is a
// not-found; path escapes outside the content root are rejected the same way.
func (s *ContentStore) ContentFile(segments ...string) (json.RawMessage, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrPageNotFound)
	}

	rel := filepath.Join(segments...) + ".json"
	path := filepath.Join(s.ContentDir, rel)

	// Reject traversal out of the content root.
	cleanRoot := filepath.Clean(s.ContentDir) + string(filepath.Separator)
	if !strings.HasPrefix(filepath.Clean(path), cleanRoot) {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, rel)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Content file read failed for %q: %v", rel, err)
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, rel)
	}
	if !json.Valid(raw) {
		log.Printf("Content file %q is not valid JSON", rel)
		return nil, fmt.Errorf("%w: %s", ErrPageMalformed, rel)
	}
	return raw, nil
}
