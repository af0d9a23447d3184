package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"revive_physio_go/services"
	"revive_physio_go/templates/pages"
)

// HomeHandler renders the homepage from the content store.
func (h *Handlers) HomeHandler(c echo.Context) error {
	page := h.resolvePage("homepage")
	return render(c, pages.Home(page, h.pageMetadata("homepage", page)))
}

func (h *Handlers) AboutHandler(c echo.Context) error {
	page := h.resolvePage("about")
	return render(c, pages.Simple(page, h.pageMetadata("about", page), "About Revive Physiotherapy",
		pages.Section{Field: "values", Heading: "What We Stand For"},
		pages.Section{Field: "founders", Heading: "Our Founders"},
	))
}

func (h *Handlers) ServicesHandler(c echo.Context) error {
	page := h.resolvePage("services")
	return render(c, pages.Simple(page, h.pageMetadata("services", page), "Our Services",
		pages.Section{Field: "services", Heading: "What We Offer"},
	))
}

func (h *Handlers) CoursesHandler(c echo.Context) error {
	page := h.resolvePage("courses")
	return render(c, pages.Courses(page, h.pageMetadata("courses", page)))
}

func (h *Handlers) PodcastsHandler(c echo.Context) error {
	page := h.resolvePage("podcasts")
	return render(c, pages.Simple(page, h.pageMetadata("podcasts", page), "The Revive Podcast",
		pages.Section{Field: "episodes", Heading: "Episodes"},
	))
}

func (h *Handlers) TeamHandler(c echo.Context) error {
	page := h.resolvePage("team")
	return render(c, pages.Simple(page, h.pageMetadata("team", page), "Our Team",
		pages.Section{Field: "members", Heading: "Clinicians"},
	))
}

func (h *Handlers) SuccessStoriesHandler(c echo.Context) error {
	page := h.resolvePage("success-stories")
	return render(c, pages.Simple(page, h.pageMetadata("success-stories", page), "Success Stories",
		pages.Section{Field: "stories", Heading: "Patient Stories"},
	))
}

// ConditionsHandler renders the index of the compiled condition registry.
func (h *Handlers) ConditionsHandler(c echo.Context) error {
	return render(c, pages.Conditions(services.Conditions(), GetSEO("conditions")))
}

// ConditionDetailHandler renders one condition page; unknown slugs are 404.
func (h *Handlers) ConditionDetailHandler(c echo.Context) error {
	slug := c.Param("slug")
	cond, ok := services.ConditionBySlug(slug)
	if !ok {
		c.Response().WriteHeader(http.StatusNotFound)
		return render(c, pages.NotFound())
	}
	return render(c, pages.ConditionDetail(cond, services.ConditionMetadata(cond, h.Cfg.AppURL)))
}
