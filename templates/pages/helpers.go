package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"

	"revive_physio_go/models"
)

// richHTML sanitizes CMS-authored HTML fragments before they reach the page.
var richHTML = bluemonday.UGCPolicy()

// heroString pulls a string field out of a page's hero object.
func heroString(page *models.PageContent, key string) string {
	if page == nil || page.Hero == nil {
		return ""
	}
	if v, ok := page.Hero[key].(string); ok {
		return v
	}
	return ""
}

// writeHero renders the hero block. pageTitle is the fallback when the
// content document carries no hero.
func writeHero(w io.Writer, page *models.PageContent, pageTitle string) error {
	title := heroString(page, "title")
	if title == "" {
		title = pageTitle
	}
	if _, err := fmt.Fprintf(w, "<section class=\"hero\"><h1>%s</h1>", templ.EscapeString(title)); err != nil {
		return err
	}
	if subtitle := heroString(page, "subtitle"); subtitle != "" {
		if _, err := fmt.Fprintf(w, "<p>%s</p>", templ.EscapeString(subtitle)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</section>\n")
	return err
}

// writeContentError renders the inline error block shown when a page's
// content document could not be resolved.
func writeContentError(w io.Writer) error {
	_, err := io.WriteString(w, "<section class=\"content-error\"><p>Error loading content. Please try again later.</p></section>\n")
	return err
}

// writeItems renders a generic list section from an untyped content array.
// Each item is expected to be an object; its "title" and "description"
// fields are rendered when present.
func writeItems(w io.Writer, page *models.PageContent, field, heading string) error {
	if page == nil || page.Fields == nil {
		return nil
	}
	items, ok := page.Fields[field].([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "<section class=\"%s\"><h2>%s</h2><ul>", field, templ.EscapeString(heading)); err != nil {
		return err
	}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title, _ := obj["title"].(string)
		if title == "" {
			title, _ = obj["name"].(string)
		}
		description, _ := obj["description"].(string)
		if _, err := fmt.Fprintf(w, "<li><h3>%s</h3><p>%s</p></li>", templ.EscapeString(title), templ.EscapeString(description)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</ul></section>\n")
	return err
}
