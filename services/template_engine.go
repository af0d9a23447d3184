package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"revive_physio_go/models"
)

// ErrTemplateNotFound means the template table has no entry for the
// requested name.
var ErrTemplateNotFound = errors.New("email template not found")

// TemplateTable is the static map of template name -> {subject, html},
// loaded once from content/email-templates.json and passed to handlers as a
// value rather than kept in package state.
type TemplateTable map[string]models.EmailTemplate

// LoadTemplateTable reads the email template table from the content root.
func LoadTemplateTable(contentDir string) (TemplateTable, error) {
	path := filepath.Join(contentDir, "email-templates.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template table: %w", err)
	}

	var table TemplateTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse template table: %w", err)
	}
	return table, nil
}

// Names returns the sorted template names, used in logs when a lookup misses
// so operators can see what the table actually holds.
func (t TemplateTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render substitutes the payload into the named template. Every occurrence
// of {{key}} in subject and html is replaced with the key's value, or the
// literal "N/A" when the value is empty. Placeholders with no matching
// payload key are left untouched. Substitution is purely textual: values are
// injected verbatim, with no HTML escaping.
func (t TemplateTable) Render(name string, payload map[string]string) (models.RenderedEmail, error) {
	tmpl, ok := t[name]
	if !ok {
		log.Printf("Email template %q not found. Available templates: %s", name, strings.Join(t.Names(), ", "))
		return models.RenderedEmail{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	subject := tmpl.Subject
	html := tmpl.HTML
	for key, value := range payload {
		if value == "" {
			value = "N/A"
		}
		placeholder := "{{" + key + "}}"
		subject = strings.ReplaceAll(subject, placeholder, value)
		html = strings.ReplaceAll(html, placeholder, value)
	}

	return models.RenderedEmail{Subject: subject, HTML: html}, nil
}
