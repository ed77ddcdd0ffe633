package promptkit

import (
	"strings"

	"github.com/randalmurphal/promptkit/template"
)

// Builder assembles a prompt from parts, joined by blank lines. Parts may
// contain template expressions; Render substitutes them in one pass.
type Builder struct {
	parts []string
}

// NewBuilder creates an empty prompt builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a block of text.
func (b *Builder) Add(text string) *Builder {
	b.parts = append(b.parts, text)
	return b
}

// Section appends a markdown section with a header.
func (b *Builder) Section(header, content string) *Builder {
	b.parts = append(b.parts, "## "+header+"\n\n"+content)
	return b
}

// List appends a bulleted list under an optional header.
func (b *Builder) List(header string, items []string) *Builder {
	var sb strings.Builder
	if header != "" {
		sb.WriteString("## ")
		sb.WriteString(header)
		sb.WriteString("\n\n")
	}
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("- ")
		sb.WriteString(item)
	}
	b.parts = append(b.parts, sb.String())
	return b
}

// Build returns the assembled prompt text.
func (b *Builder) Build() string {
	return strings.Join(b.parts, "\n\n")
}

// Render builds the prompt and substitutes template variables.
func (b *Builder) Render(engine *template.Engine, vars map[string]string) (string, error) {
	return engine.Render(b.Build(), vars)
}

// Reset discards all parts.
func (b *Builder) Reset() {
	b.parts = nil
}
