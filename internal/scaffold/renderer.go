package scaffold

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// EscapeTOMLString escapes backslashes and double quotes so an arbitrary
// value round-trips through a TOML basic string.
func EscapeTOMLString(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `"`, `\"`)
}

// Renderer renders embedded templates against a fixed context.
type Renderer struct {
	ctx Context
}

// NewRenderer creates a renderer for the given context.
func NewRenderer(ctx Context) *Renderer {
	return &Renderer{ctx: ctx}
}

// Render resolves name against the embedded template filesystem and renders
// it with the run's context. Rendering has no side effects.
func (r *Renderer) Render(name string) ([]byte, error) {
	content, err := templateFS.ReadFile(templateRoot + "/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, r.ctx); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
