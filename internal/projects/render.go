package projects

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

// View is the content of the project detail view.
type View struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ImageClass   string   `json:"image_class"`
	Format       Format   `json:"format"`
	Duration     string   `json:"duration"`
	Role         string   `json:"role"`
	Description  string   `json:"description"`
	Challenge    string   `json:"challenge"`
	Solution     string   `json:"solution"`
	Results      []string `json:"results"`
	Technologies []string `json:"technologies"`
}

// Render maps a record to its detail view. Results and technologies keep
// their input order.
func Render(rec Record) View {
	format := rec.Format
	if format == "" {
		format = FormatText
	}
	return View{
		ID:           rec.ID,
		Title:        rec.Title,
		ImageClass:   rec.ImageClass,
		Format:       format,
		Duration:     rec.Duration,
		Role:         rec.Role,
		Description:  rec.Description,
		Challenge:    rec.Challenge,
		Solution:     rec.Solution,
		Results:      copyStrings(rec.Results),
		Technologies: copyStrings(rec.Technologies),
	}
}

// Renderer turns views into HTML fragments.
type Renderer struct {
	tmpl   *template.Template
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer parses the embedded detail view template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse project templates: %w", err)
	}
	return &Renderer{
		tmpl:   tmpl,
		md:     goldmark.New(),
		policy: newProseHTMLPolicy(),
	}, nil
}

func newProseHTMLPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("p", "span", "code")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

type fragmentData struct {
	View
	DescriptionHTML template.HTML
	ChallengeHTML   template.HTML
	SolutionHTML    template.HTML
}

// Fragment renders v as the detail view markup.
func (r *Renderer) Fragment(v View) (template.HTML, error) {
	data := fragmentData{View: v}
	var err error
	if data.DescriptionHTML, err = r.prose(v.Format, v.Description); err != nil {
		return "", err
	}
	if data.ChallengeHTML, err = r.prose(v.Format, v.Challenge); err != nil {
		return "", err
	}
	if data.SolutionHTML, err = r.prose(v.Format, v.Solution); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "project-modal", data); err != nil {
		return "", fmt.Errorf("render project %s: %w", v.ID, err)
	}
	return template.HTML(buf.String()), nil
}

func (r *Renderer) prose(format Format, s string) (template.HTML, error) {
	if format != FormatMarkdown {
		return template.HTML("<p>" + template.HTMLEscapeString(s) + "</p>"), nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}
