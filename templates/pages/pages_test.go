package pages

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revive_physio_go/models"
)

func renderToString(t *testing.T, component templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, component.Render(context.Background(), &sb))
	return sb.String()
}

func TestLayoutHeadEscapesMetadata(t *testing.T) {
	meta := models.Metadata{
		Title:       `Physio <"Pune">`,
		Description: "Hands-on care & rehab",
		Canonical:   "https://example.test/about",
	}

	out := renderToString(t, layout(meta, func(w io.Writer) error { return nil }))

	assert.Contains(t, out, "<title>Physio &lt;&#34;Pune&#34;&gt;</title>")
	assert.Contains(t, out, `content="Hands-on care &amp; rehab"`)
	assert.Contains(t, out, `<link rel="canonical" href="https://example.test/about">`)
}

func TestLayoutDefaultTitle(t *testing.T) {
	out := renderToString(t, layout(models.Metadata{}, func(w io.Writer) error { return nil }))
	assert.Contains(t, out, "<title>Revive Physiotherapy &amp; Rehab</title>")
}

func TestHomeNilPageShowsErrorBlock(t *testing.T) {
	out := renderToString(t, Home(nil, models.Metadata{Title: "Home"}))
	assert.Contains(t, out, "Error loading content")
	assert.NotContains(t, out, "<form")
}

func TestHomeRendersServicesAndBookingForm(t *testing.T) {
	page := &models.PageContent{
		Hero: map[string]any{"title": "Move Better"},
		Services: []models.ServiceEntry{
			{ID: "manual-therapy", Title: "Manual Therapy", Description: "Joint mobilisation"},
		},
	}

	out := renderToString(t, Home(page, models.Metadata{Title: "Home"}))
	assert.Contains(t, out, "Move Better")
	assert.Contains(t, out, `href="/services/manual-therapy"`)
	assert.Contains(t, out, `action="/api/book"`)
}

func TestCoursesListsPriceAndDuration(t *testing.T) {
	page := &models.PageContent{
		Hero: map[string]any{"title": "Courses"},
		CourseList: []models.CourseEntry{
			{ID: "c1", Title: "Dry Needling", Price: "₹18,500", Duration: "2 days"},
		},
	}

	out := renderToString(t, Courses(page, models.Metadata{Title: "Courses"}))
	assert.Contains(t, out, "Dry Needling")
	assert.Contains(t, out, "₹18,500")
	assert.Contains(t, out, "2 days")
}

func TestConditionDetailSanitizesRichContent(t *testing.T) {
	cond := models.Condition{
		Slug:  "back-pain",
		Title: "Back Pain",
		Summary: models.ConditionSummary{
			WhatItIs:       "Pain in the lumbar region",
			WhenToSeekHelp: "Numbness or weakness in the legs",
		},
		Content: models.ConditionContent{
			Overview:          `<p>Common condition</p><script>alert(1)</script>`,
			TreatmentApproach: "<p>Manual therapy and graded exercise</p>",
		},
	}

	out := renderToString(t, ConditionDetail(cond, models.Metadata{Title: "Back Pain"}))
	assert.Contains(t, out, "<p>Common condition</p>")
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "Manual therapy and graded exercise")
}

func TestSlugPlaceholder(t *testing.T) {
	out := renderToString(t, SlugPlaceholder("workshops", models.Metadata{Title: "workshops | Revive Physiotherapy"}))
	assert.Contains(t, out, "workshops")
}

func TestNotFoundIsNoindex(t *testing.T) {
	out := renderToString(t, NotFound())
	assert.Contains(t, out, `content="noindex`)
	assert.Contains(t, out, "Page Not Found")
}
