package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"revive_physio_go/services"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapHandler generates the XML sitemap: fixed static pages plus entries
// derived from the content store and the condition registry. A content
// source that fails to load is skipped; the sitemap is served regardless.
func (h *Handlers) SitemapHandler(c echo.Context) error {
	baseURL := h.Cfg.AppURL

	// Static pages
	urls := []SitemapURL{
		{Loc: baseURL + "/", ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/about", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/services", ChangeFreq: "weekly", Priority: 0.9},
		{Loc: baseURL + "/conditions", ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/courses", ChangeFreq: "weekly", Priority: 0.8},
		{Loc: baseURL + "/podcasts", ChangeFreq: "weekly", Priority: 0.6},
		{Loc: baseURL + "/team", ChangeFreq: "monthly", Priority: 0.6},
		{Loc: baseURL + "/success-stories", ChangeFreq: "monthly", Priority: 0.6},
	}

	if homepage, err := h.Store.PageContent("homepage"); err == nil {
		for _, svc := range homepage.Services {
			if svc.ID != "" {
				urls = append(urls, SitemapURL{
					Loc:        baseURL + "/services/" + svc.ID,
					ChangeFreq: "weekly",
					Priority:   0.8,
				})
			}
		}
		seen := map[string]bool{}
		for _, f := range homepage.Founders {
			loc := baseURL + "/team/" + f.ID
			if f.ID != "" && !seen[loc] {
				seen[loc] = true
				urls = append(urls, SitemapURL{
					Loc:        loc,
					ChangeFreq: "monthly",
					Priority:   0.6,
				})
			}
		}
	} else {
		c.Logger().Error("Failed to load homepage content for sitemap: ", err)
	}

	if courses, err := h.Store.PageContent("courses"); err == nil {
		for _, course := range courses.CourseList {
			if course.ID != "" {
				urls = append(urls, SitemapURL{
					Loc:        baseURL + "/courses/" + course.ID,
					ChangeFreq: "weekly",
					Priority:   0.7,
				})
			}
		}
	} else {
		c.Logger().Error("Failed to load courses content for sitemap: ", err)
	}

	for _, cond := range services.Conditions() {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/conditions/" + cond.Slug,
			ChangeFreq: "monthly",
			Priority:   0.7,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// RobotsHandler serves robots.txt pointing crawlers at the sitemap.
func (h *Handlers) RobotsHandler(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", h.Cfg.AppURL)
	return c.String(http.StatusOK, body)
}
