package models

// EmailTemplate is one entry of the template table
// (content/email-templates.json), keyed by template-type name.
type EmailTemplate struct {
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// RenderedEmail is the result of substituting a submission payload into a
// template.
type RenderedEmail struct {
	Subject string
	HTML    string
}
