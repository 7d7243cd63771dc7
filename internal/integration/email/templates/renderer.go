// Package templates renders the transactional emails. Each email is a pair of
// embedded files sharing a base name: <name>.html and an optional <name>.txt.
package templates

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

const TemplateBudgetExceeded = "budget_exceeded"

//go:embed *.html *.txt
var templateFS embed.FS

// Content is one rendered email. Text is empty when the email has no plain-text part.
type Content struct {
	HTML string
	Text string
}

type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func NewRenderer() (*Renderer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML templates: %w", err)
	}
	text, err := texttemplate.ParseFS(templateFS, "*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text}, nil
}

func (r *Renderer) Render(name string, data any) (*Content, error) {
	var html strings.Builder
	if err := r.html.ExecuteTemplate(&html, name+".html", data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}

	content := &Content{HTML: html.String()}
	if r.text.Lookup(name+".txt") == nil {
		return content, nil
	}

	var text strings.Builder
	if err := r.text.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return nil, fmt.Errorf("failed to render %s plain text: %w", name, err)
	}
	content.Text = text.String()
	return content, nil
}

// BudgetExceededData fills budget_exceeded. Money values are preformatted with two decimals.
type BudgetExceededData struct {
	UserName     string
	BudgetName   string
	Amount       string
	SpentAmount  string
	Overspent    string
	StartDate    string
	EndDate      string
	DashboardURL string
}
