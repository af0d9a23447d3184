package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"revive_physio_go/models"
)

// layout wraps a page body in the shared document shell and emits the SEO
// head from the resolved metadata descriptor.
func layout(meta models.Metadata, body func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"UTF-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n"); err != nil {
			return err
		}
		if err := writeHead(w, meta); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "<link rel=\"stylesheet\" href=\"/static/css/site.css\">\n"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</head>\n<body>\n<header><a href=\"/\">Revive Physiotherapy</a></header>\n<main>\n"); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main>\n<footer><p>&copy; Revive Physiotherapy &amp; Rehab</p></footer>\n</body>\n</html>\n")
		return err
	})
}

func writeHead(w io.Writer, meta models.Metadata) error {
	title := meta.Title
	if title == "" {
		title = "Revive Physiotherapy & Rehab"
	}
	if _, err := fmt.Fprintf(w, "<title>%s</title>\n", templ.EscapeString(title)); err != nil {
		return err
	}

	metaTag := func(attr, name, content string) error {
		if content == "" {
			return nil
		}
		_, err := fmt.Fprintf(w, "<meta %s=\"%s\" content=\"%s\">\n", attr, name, templ.EscapeString(content))
		return err
	}

	if err := metaTag("name", "description", meta.Description); err != nil {
		return err
	}
	if err := metaTag("name", "keywords", meta.Keywords); err != nil {
		return err
	}
	if err := metaTag("name", "robots", meta.Robots); err != nil {
		return err
	}
	if meta.Canonical != "" {
		if _, err := fmt.Fprintf(w, "<link rel=\"canonical\" href=\"%s\">\n", templ.EscapeString(meta.Canonical)); err != nil {
			return err
		}
	}
	if err := metaTag("property", "og:title", meta.GetOGTitle()); err != nil {
		return err
	}
	if err := metaTag("property", "og:description", meta.GetOGDescription()); err != nil {
		return err
	}
	if err := metaTag("property", "og:image", meta.OGImage); err != nil {
		return err
	}
	if err := metaTag("property", "og:type", meta.OGType); err != nil {
		return err
	}
	if err := metaTag("property", "og:site_name", meta.OGSiteName); err != nil {
		return err
	}
	if err := metaTag("property", "og:locale", meta.OGLocale); err != nil {
		return err
	}
	if err := metaTag("name", "twitter:card", meta.TwitterCard); err != nil {
		return err
	}
	if err := metaTag("name", "twitter:title", meta.GetTwitterTitle()); err != nil {
		return err
	}
	if err := metaTag("name", "twitter:description", meta.TwitterDescription); err != nil {
		return err
	}
	if err := metaTag("name", "twitter:image", meta.TwitterImage); err != nil {
		return err
	}

	if len(meta.StructuredData) > 0 {
		if _, err := fmt.Fprintf(w, "<script type=\"application/ld+json\">%s</script>\n", string(meta.StructuredData)); err != nil {
			return err
		}
	}
	return nil
}
