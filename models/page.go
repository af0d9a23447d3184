package models

import "encoding/json"

// PageContent is one document from the content store. Raw preserves the exact
// bytes of the file so API consumers get the document unchanged; the typed
// fields below are the minimal contract the renderers and the sitemap rely on.
// Every field is optional — the only guarantee a page gives is "may have seo".
type PageContent struct {
	Raw    json.RawMessage `json:"-"`
	Fields map[string]any  `json:"-"`

	Seo        *PageSEO       `json:"seo,omitempty"`
	Hero       map[string]any `json:"hero,omitempty"`
	Services   []ServiceEntry `json:"services,omitempty"`
	Founders   []FounderEntry `json:"founders,omitempty"`
	Conditions []string       `json:"conditions,omitempty"`
	CourseList []CourseEntry  `json:"courseList,omitempty"`
}

// PageSEO is the optional top-level `seo` object of a content document.
type PageSEO struct {
	MetaTitle          string          `json:"metaTitle,omitempty"`
	MetaDescription    string          `json:"metaDescription,omitempty"`
	Keywords           []string        `json:"keywords,omitempty"`
	Canonical          string          `json:"canonical,omitempty"`
	OGTitle            string          `json:"ogTitle,omitempty"`
	OGDescription      string          `json:"ogDescription,omitempty"`
	OGImage            string          `json:"ogImage,omitempty"`
	OGType             string          `json:"ogType,omitempty"`
	OGSiteName         string          `json:"ogSiteName,omitempty"`
	OGLocale           string          `json:"ogLocale,omitempty"`
	TwitterCard        string          `json:"twitterCard,omitempty"`
	TwitterTitle       string          `json:"twitterTitle,omitempty"`
	TwitterDescription string          `json:"twitterDescription,omitempty"`
	TwitterImage       string          `json:"twitterImage,omitempty"`
	Robots             string          `json:"robots,omitempty"`
	StructuredData     json.RawMessage `json:"structuredData,omitempty"`
	PagesSeo           json.RawMessage `json:"pagesSeo,omitempty"`
}

// ServiceEntry is one item of homepage.services.
type ServiceEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// FounderEntry is one item of homepage.founders.
type FounderEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	Bio   string `json:"bio,omitempty"`
	URL   string `json:"url,omitempty"`
	Image string `json:"image,omitempty"`
}

// CourseEntry is one item of courses.courseList.
type CourseEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// RouteSlug is one entry of the slug registry used by the dynamic route.
type RouteSlug struct {
	Slug string `json:"slug"`
	Type string `json:"type"`
}

// SlugRegistry is the shape of routes/slugs.json.
type SlugRegistry struct {
	Routes []RouteSlug `json:"routes"`
}
