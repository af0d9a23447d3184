package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"revive_physio_go/models"
)

// Home renders the homepage: hero, services, founders, and the booking form.
func Home(page *models.PageContent, meta models.Metadata) templ.Component {
	return layout(meta, func(w io.Writer) error {
		if page == nil {
			return writeContentError(w)
		}
		if err := writeHero(w, page, "Move Better. Live Better."); err != nil {
			return err
		}

		if len(page.Services) > 0 {
			if _, err := io.WriteString(w, "<section class=\"services\"><h2>Our Services</h2><ul>"); err != nil {
				return err
			}
			for _, svc := range page.Services {
				if _, err := fmt.Fprintf(w, "<li><a href=\"/services/%s\"><h3>%s</h3><p>%s</p></a></li>",
					templ.EscapeString(svc.ID), templ.EscapeString(svc.Title), templ.EscapeString(svc.Description)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</ul></section>\n"); err != nil {
				return err
			}
		}

		if len(page.Founders) > 0 {
			if _, err := io.WriteString(w, "<section class=\"founders\"><h2>Meet the Team</h2><ul>"); err != nil {
				return err
			}
			for _, f := range page.Founders {
				if _, err := fmt.Fprintf(w, "<li><h3>%s</h3><p>%s</p></li>",
					templ.EscapeString(f.Name), templ.EscapeString(f.Role)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</ul></section>\n"); err != nil {
				return err
			}
		}

		return writeBookingForm(w)
	})
}

// Section names a content array field and the heading it renders under.
type Section struct {
	Field   string
	Heading string
}

// Simple renders a content-driven page with a hero plus any list sections,
// in order, skipping sections absent from the document.
func Simple(page *models.PageContent, meta models.Metadata, pageTitle string, sections ...Section) templ.Component {
	return layout(meta, func(w io.Writer) error {
		if page == nil {
			return writeContentError(w)
		}
		if err := writeHero(w, page, pageTitle); err != nil {
			return err
		}
		for _, s := range sections {
			if err := writeItems(w, page, s.Field, s.Heading); err != nil {
				return err
			}
		}
		return nil
	})
}

// Courses renders the course catalogue with enquiry details per course.
func Courses(page *models.PageContent, meta models.Metadata) templ.Component {
	return layout(meta, func(w io.Writer) error {
		if page == nil {
			return writeContentError(w)
		}
		if err := writeHero(w, page, "Courses & Workshops"); err != nil {
			return err
		}
		if len(page.CourseList) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, "<section class=\"courses\"><ul>"); err != nil {
			return err
		}
		for _, course := range page.CourseList {
			if _, err := fmt.Fprintf(w, "<li><h3>%s</h3><p>%s</p><p class=\"price\">%s</p><p class=\"duration\">%s</p></li>",
				templ.EscapeString(course.Title), templ.EscapeString(course.Description),
				templ.EscapeString(course.Price), templ.EscapeString(course.Duration)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul></section>\n")
		return err
	})
}

// Conditions renders the index of treated conditions.
func Conditions(conditions []models.Condition, meta models.Metadata) templ.Component {
	return layout(meta, func(w io.Writer) error {
		if _, err := io.WriteString(w, "<section class=\"hero\"><h1>Conditions We Treat</h1></section>\n<section class=\"conditions\"><ul>"); err != nil {
			return err
		}
		for _, cond := range conditions {
			if _, err := fmt.Fprintf(w, "<li><a href=\"/conditions/%s\"><h3>%s</h3><p>%s</p></a></li>",
				templ.EscapeString(cond.Slug), templ.EscapeString(cond.Title), templ.EscapeString(cond.Summary.WhatItIs)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul></section>\n")
		return err
	})
}

// ConditionDetail renders one condition page. The overview and treatment
// sections are CMS-authored HTML and pass through the sanitizer.
func ConditionDetail(cond models.Condition, meta models.Metadata) templ.Component {
	return layout(meta, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<article class=\"condition\"><h1>%s</h1>", templ.EscapeString(cond.Title)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<section><h2>What it is</h2><p>%s</p></section>", templ.EscapeString(cond.Summary.WhatItIs)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<section><h2>When to seek help</h2><p>%s</p></section>", templ.EscapeString(cond.Summary.WhenToSeekHelp)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<section><h2>Overview</h2>%s</section>", richHTML.Sanitize(cond.Content.Overview)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<section><h2>Our treatment approach</h2>%s</section>", richHTML.Sanitize(cond.Content.TreatmentApproach)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</article>\n")
		return err
	})
}

// SlugPlaceholder renders the generic page served for registered dynamic
// slugs. The route validates against the registry but does not resolve
// dedicated content yet.
func SlugPlaceholder(slug string, meta models.Metadata) templ.Component {
	return layout(meta, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "<section class=\"placeholder\"><h1>%s</h1><p>This page is coming soon.</p></section>\n", templ.EscapeString(slug))
		return err
	})
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	meta := models.Metadata{Title: "Page Not Found | Revive Physiotherapy", Robots: "noindex"}
	return layout(meta, func(w io.Writer) error {
		_, err := io.WriteString(w, "<section class=\"not-found\"><h1>Page not found</h1><p>The page you are looking for does not exist. <a href=\"/\">Back to home</a></p></section>\n")
		return err
	})
}

func writeBookingForm(w io.Writer) error {
	_, err := io.WriteString(w, `<section class="booking">
<h2>Book an Appointment</h2>
<form method="post" action="/api/book">
<label>Full name <input type="text" name="fullName" required></label>
<label>Phone <input type="tel" name="phone" required></label>
<label>Email <input type="email" name="email"></label>
<label>Preferred date <input type="date" name="preferredDate"></label>
<button type="submit">Request Appointment</button>
</form>
</section>
`)
	return err
}
