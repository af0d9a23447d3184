package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/indexing/v3"
	"google.golang.org/api/option"

	"revive_physio_go/config"
)

// Indexer publishes URL_UPDATED notifications to the Google Indexing API for
// every public page of the site.
type Indexer struct {
	cfg   *config.Config
	store *ContentStore
}

func NewIndexer(cfg *config.Config, store *ContentStore) *Indexer {
	return &Indexer{cfg: cfg, store: store}
}

// IndexResult summarizes one indexing sweep.
type IndexResult struct {
	RunID     string `json:"runId"`
	Attempted int    `json:"attempted"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// newService builds an Indexing API client from the service-account
// credentials. The private key arrives through the environment with literal
// \n sequences, so they are unescaped here.
func (ix *Indexer) newService(ctx context.Context) (*indexing.Service, error) {
	if ix.cfg.GoogleClientEmail == "" || ix.cfg.GooglePrivateKey == "" {
		return nil, fmt.Errorf("google indexing credentials not configured")
	}

	conf := &jwt.Config{
		Email:      ix.cfg.GoogleClientEmail,
		PrivateKey: []byte(strings.ReplaceAll(ix.cfg.GooglePrivateKey, `\n`, "\n")),
		Scopes:     []string{indexing.IndexingScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := indexing.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create indexing service: %w", err)
	}
	return svc, nil
}

// PageURLs enumerates the fixed public pages plus every URL derived from the
// content store and the condition registry. A content source that fails to
// load is skipped; the sweep still covers everything else.
func (ix *Indexer) PageURLs() []string {
	baseURL := ix.cfg.AppURL

	urls := []string{
		baseURL + "/",
		baseURL + "/about",
		baseURL + "/services",
		baseURL + "/conditions",
		baseURL + "/courses",
		baseURL + "/podcasts",
		baseURL + "/team",
		baseURL + "/success-stories",
	}

	if homepage, err := ix.store.PageContent("homepage"); err == nil {
		for _, svc := range homepage.Services {
			if svc.ID != "" {
				urls = append(urls, baseURL+"/services/"+svc.ID)
			}
		}
		seen := map[string]bool{}
		for _, f := range homepage.Founders {
			url := baseURL + "/team/" + f.ID
			if f.ID != "" && !seen[url] {
				seen[url] = true
				urls = append(urls, url)
			}
		}
	} else {
		log.Printf("Indexing sweep: homepage content unavailable: %v", err)
	}

	if courses, err := ix.store.PageContent("courses"); err == nil {
		for _, course := range courses.CourseList {
			if course.ID != "" {
				urls = append(urls, baseURL+"/courses/"+course.ID)
			}
		}
	} else {
		log.Printf("Indexing sweep: courses content unavailable: %v", err)
	}

	for _, cond := range Conditions() {
		urls = append(urls, baseURL+"/conditions/"+cond.Slug)
	}

	return urls
}

// IndexAllPages publishes a notification for every page URL. Each URL is
// attempted independently; per-URL failures are counted and logged and never
// abort the sweep. The returned error is non-nil only when the API client
// itself cannot be constructed.
func (ix *Indexer) IndexAllPages(ctx context.Context) (IndexResult, error) {
	svc, err := ix.newService(ctx)
	if err != nil {
		return IndexResult{}, err
	}

	result := IndexResult{RunID: uuid.New().String()}
	urls := ix.PageURLs()
	result.Attempted = len(urls)

	log.Printf("Indexing sweep %s: notifying %d URLs", result.RunID, len(urls))

	for _, url := range urls {
		notification := &indexing.UrlNotification{
			Url:  url,
			Type: "URL_UPDATED",
		}
		if _, err := svc.UrlNotifications.Publish(notification).Context(ctx).Do(); err != nil {
			result.Failed++
			log.Printf("Indexing sweep %s: failed to notify %s: %v", result.RunID, url, err)
			continue
		}
		result.Succeeded++
	}

	log.Printf("Indexing sweep %s done: %d succeeded, %d failed of %d", result.RunID, result.Succeeded, result.Failed, result.Attempted)
	return result, nil
}
