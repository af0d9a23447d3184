package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"revive_physio_go/models"
)

func TestStandardMetadataNil(t *testing.T) {
	meta := StandardMetadata(nil)
	assert.True(t, meta.IsZero())
}

func TestStandardMetadata(t *testing.T) {
	seo := &models.PageSEO{
		MetaTitle:       "Our Services | Revive Physiotherapy",
		MetaDescription: "What we offer.",
		Keywords:        []string{"physiotherapy", "rehab"},
		Canonical:       "https://revivephysio.in/services",
		OGTitle:         "Our Services",
		OGImage:         "https://revivephysio.in/static/images/og-image.png",
		OGType:          "website",
		TwitterCard:     "summary_large_image",
		Robots:          "index, follow",
		StructuredData:  json.RawMessage(`{"@type":"MedicalClinic"}`),
	}

	meta := StandardMetadata(seo)
	assert.Equal(t, "Our Services | Revive Physiotherapy", meta.Title)
	assert.Equal(t, "physiotherapy, rehab", meta.Keywords)
	assert.Equal(t, "https://revivephysio.in/services", meta.Canonical)
	assert.Equal(t, "Our Services", meta.GetOGTitle())
	assert.Equal(t, "What we offer.", meta.GetOGDescription())
	assert.Equal(t, "Our Services", meta.GetTwitterTitle())
	assert.Equal(t, json.RawMessage(`{"@type":"MedicalClinic"}`), meta.StructuredData)
	assert.False(t, meta.IsZero())
}

func TestConditionMetadata(t *testing.T) {
	cond, ok := ConditionBySlug("back-pain")
	assert.True(t, ok)

	meta := ConditionMetadata(cond, "https://revivephysio.in")
	assert.Equal(t, cond.SEO.Title, meta.Title)
	assert.Equal(t, "https://revivephysio.in/conditions/back-pain", meta.Canonical)
}
