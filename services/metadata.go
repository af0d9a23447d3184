package services

import (
	"strings"

	"revive_physio_go/models"
)

// StandardMetadata maps a page's seo object into the descriptor the page
// shell renders. A nil seo yields the zero descriptor; the caller decides
// whether to fall back to static defaults.
func StandardMetadata(seo *models.PageSEO) models.Metadata {
	if seo == nil {
		return models.Metadata{}
	}

	return models.Metadata{
		Title:              seo.MetaTitle,
		Description:        seo.MetaDescription,
		Keywords:           strings.Join(seo.Keywords, ", "),
		Canonical:          seo.Canonical,
		OGTitle:            seo.OGTitle,
		OGDescription:      seo.OGDescription,
		OGImage:            seo.OGImage,
		OGType:             seo.OGType,
		OGSiteName:         seo.OGSiteName,
		OGLocale:           seo.OGLocale,
		TwitterCard:        seo.TwitterCard,
		TwitterTitle:       seo.TwitterTitle,
		TwitterDescription: seo.TwitterDescription,
		TwitterImage:       seo.TwitterImage,
		Robots:             seo.Robots,
		StructuredData:     seo.StructuredData,
	}
}

// ConditionMetadata builds the descriptor for a compiled condition page.
func ConditionMetadata(cond models.Condition, baseURL string) models.Metadata {
	return models.Metadata{
		Title:       cond.SEO.Title,
		Description: cond.SEO.Description,
		Keywords:    cond.SEO.Keywords,
		Canonical:   baseURL + "/conditions/" + cond.Slug,
		OGType:      "article",
		TwitterCard: "summary",
	}
}
