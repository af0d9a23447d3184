package models

import "encoding/json"

// Metadata is the resolved per-page SEO descriptor consumed by the page shell.
// It is a pure projection of a PageSEO document; empty fields are simply
// omitted from the rendered head.
type Metadata struct {
	Title              string
	Description        string
	Keywords           string // comma-separated
	Canonical          string
	OGTitle            string
	OGDescription      string
	OGImage            string
	OGType             string
	OGSiteName         string
	OGLocale           string
	TwitterCard        string
	TwitterTitle       string
	TwitterDescription string
	TwitterImage       string
	Robots             string
	StructuredData     json.RawMessage
}

// GetOGTitle returns OGTitle or falls back to Title
func (m Metadata) GetOGTitle() string {
	if m.OGTitle != "" {
		return m.OGTitle
	}
	return m.Title
}

// GetOGDescription returns OGDescription or falls back to Description
func (m Metadata) GetOGDescription() string {
	if m.OGDescription != "" {
		return m.OGDescription
	}
	return m.Description
}

// GetTwitterTitle returns TwitterTitle or falls back to the OG title chain
func (m Metadata) GetTwitterTitle() string {
	if m.TwitterTitle != "" {
		return m.TwitterTitle
	}
	return m.GetOGTitle()
}

// IsZero reports whether no metadata was resolved for the page.
func (m Metadata) IsZero() bool {
	return m.Title == "" && m.Description == "" && m.Canonical == "" &&
		m.OGImage == "" && m.Robots == "" && len(m.StructuredData) == 0
}
