package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTemplateTable(t *testing.T) {
	contentDir := t.TempDir()

	t.Run("Missing table", func(t *testing.T) {
		_, err := LoadTemplateTable(contentDir)
		assert.Error(t, err)
	})

	t.Run("Valid table", func(t *testing.T) {
		body := `{"general":{"subject":"Hi {{name}}","html":"<p>{{name}}</p>"}}`
		require.NoError(t, os.WriteFile(filepath.Join(contentDir, "email-templates.json"), []byte(body), 0644))

		table, err := LoadTemplateTable(contentDir)
		require.NoError(t, err)
		assert.Equal(t, []string{"general"}, table.Names())
		assert.Equal(t, "Hi {{name}}", table["general"].Subject)
	})
}

func TestTemplateTableRender(t *testing.T) {
	table := TemplateTable{
		"general": {
			Subject: "New enquiry from {{name}}",
			HTML:    "Hi {{name}}, call {{phone}}. Email: {{email}}",
		},
		"repeat": {
			Subject: "{{name}} {{name}}",
			HTML:    "{{name}} and {{name}} again",
		},
	}

	tests := []struct {
		name            string
		template        string
		payload         map[string]string
		expectedSubject string
		expectedHTML    string
	}{
		{
			name:            "Basic substitution, missing placeholder untouched",
			template:        "general",
			payload:         map[string]string{"name": "Priya", "phone": "9876543210"},
			expectedSubject: "New enquiry from Priya",
			expectedHTML:    "Hi Priya, call 9876543210. Email: {{email}}",
		},
		{
			name:            "Empty value becomes N/A",
			template:        "general",
			payload:         map[string]string{"name": "Priya", "phone": "9876543210", "email": ""},
			expectedSubject: "New enquiry from Priya",
			expectedHTML:    "Hi Priya, call 9876543210. Email: N/A",
		},
		{
			name:            "Repeated placeholders all replaced",
			template:        "repeat",
			payload:         map[string]string{"name": "Ravi"},
			expectedSubject: "Ravi Ravi",
			expectedHTML:    "Ravi and Ravi again",
		},
		{
			name:            "Extra payload keys are ignored",
			template:        "repeat",
			payload:         map[string]string{"name": "Ravi", "unused": "x"},
			expectedSubject: "Ravi Ravi",
			expectedHTML:    "Ravi and Ravi again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := table.Render(tt.template, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedSubject, rendered.Subject)
			assert.Equal(t, tt.expectedHTML, rendered.HTML)
		})
	}

	t.Run("Unknown template", func(t *testing.T) {
		_, err := table.Render("missing", map[string]string{"name": "x"})
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("Values are injected verbatim", func(t *testing.T) {
		rendered, err := table.Render("repeat", map[string]string{"name": "<b>bold</b>"})
		require.NoError(t, err)
		assert.Equal(t, "<b>bold</b> and <b>bold</b> again", rendered.HTML)
	})

	t.Run("Rendering its own output is stable", func(t *testing.T) {
		first, err := table.Render("general", map[string]string{"name": "Priya", "phone": "9876543210"})
		require.NoError(t, err)

		again := TemplateTable{"general": {Subject: first.Subject, HTML: first.HTML}}
		second, err := again.Render("general", map[string]string{"name": "Priya", "phone": "9876543210"})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
