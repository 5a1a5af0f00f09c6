package projects

import "fmt"

// Format says how the prose fields of a record are rendered.
type Format string

const (
	// FormatText escapes every field. This is the default.
	FormatText Format = "text"
	// FormatMarkdown renders description, challenge and solution as
	// sanitized markdown. Title, role, duration, results and technologies
	// stay plain text.
	FormatMarkdown Format = "markdown"
)

func (f Format) valid() bool {
	return f == "" || f == FormatText || f == FormatMarkdown
}

// Record is one portfolio project as shown in the detail view.
type Record struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	ImageClass   string   `json:"image_class" yaml:"image_class"`
	Category     string   `json:"category" yaml:"category"`
	Format       Format   `json:"format,omitempty" yaml:"format"`
	Description  string   `json:"description" yaml:"description"`
	Challenge    string   `json:"challenge" yaml:"challenge"`
	Solution     string   `json:"solution" yaml:"solution"`
	Results      []string `json:"results" yaml:"results"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Duration     string   `json:"duration" yaml:"duration"`
	Role         string   `json:"role" yaml:"role"`
}

func (r Record) validate() error {
	if r.ID == "" {
		return fmt.Errorf("project %q: empty id", r.Title)
	}
	if !r.Format.valid() {
		return fmt.Errorf("project %s: unknown format %q", r.ID, r.Format)
	}
	return nil
}

// clone returns a copy that shares no slices with r.
func (r Record) clone() Record {
	r.Results = copyStrings(r.Results)
	r.Technologies = copyStrings(r.Technologies)
	if r.Format == "" {
		r.Format = FormatText
	}
	return r
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
