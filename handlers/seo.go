package handlers

import "revive_physio_go/models"

const (
	baseURL        = "https://revivephysio.in"
	defaultOGImage = "https://revivephysio.in/static/images/og-image.png"
)

// Fallback SEO for pages whose content document carries no seo object.
var pageSEO = map[string]models.Metadata{
	"homepage": {
		Title:       "Revive Physiotherapy & Rehab - Expert Physiotherapy Care",
		Description: "Evidence-based physiotherapy for back pain, sports injuries, post-surgical rehab, and more. Book an appointment with our experienced physiotherapists today.",
		Keywords:    "physiotherapy clinic, physiotherapist, back pain treatment, sports injury rehab",
		Canonical:   baseURL + "/",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"about": {
		Title:       "About Us | Revive Physiotherapy",
		Description: "Meet the team behind Revive Physiotherapy & Rehab and learn how our movement-first approach helps patients recover faster.",
		Keywords:    "about Revive Physiotherapy, physiotherapy team, clinic story",
		Canonical:   baseURL + "/about",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"services": {
		Title:       "Our Services | Revive Physiotherapy",
		Description: "Manual therapy, exercise rehabilitation, sports physiotherapy, home visits, and post-surgical programs - explore everything we offer.",
		Keywords:    "physiotherapy services, manual therapy, exercise rehabilitation",
		Canonical:   baseURL + "/services",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"conditions": {
		Title:       "Conditions We Treat | Revive Physiotherapy",
		Description: "From back pain and sciatica to frozen shoulder and stroke rehabilitation - see the conditions our physiotherapists treat every day.",
		Keywords:    "conditions treated, back pain, sciatica, frozen shoulder",
		Canonical:   baseURL + "/conditions",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"courses": {
		Title:       "Courses & Workshops | Revive Physiotherapy",
		Description: "Certificate courses and workshops for clinicians and fitness professionals, taught by senior physiotherapists.",
		Keywords:    "physiotherapy courses, rehab workshops, clinical education",
		Canonical:   baseURL + "/courses",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"podcasts": {
		Title:       "Podcasts | Revive Physiotherapy",
		Description: "Conversations on movement, recovery, and pain science from the Revive Physiotherapy team.",
		Keywords:    "physiotherapy podcast, rehab podcast, pain science",
		Canonical:   baseURL + "/podcasts",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary",
	},
	"team": {
		Title:       "Our Team | Revive Physiotherapy",
		Description: "The physiotherapists and rehabilitation specialists of Revive Physiotherapy & Rehab.",
		Keywords:    "physiotherapists, rehab specialists, clinic team",
		Canonical:   baseURL + "/team",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
	"success-stories": {
		Title:       "Success Stories | Revive Physiotherapy",
		Description: "Real recovery stories from our patients - from first assessment back to full activity.",
		Keywords:    "patient success stories, physiotherapy results, recovery stories",
		Canonical:   baseURL + "/success-stories",
		OGImage:     defaultOGImage,
		OGType:      "website",
		TwitterCard: "summary_large_image",
	},
}

// GetSEO returns the fallback SEO descriptor for a page, or the zero
// descriptor for unknown pages.
func GetSEO(page string) models.Metadata {
	return pageSEO[page]
}
