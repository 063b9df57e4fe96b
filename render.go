package canaries

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultTemplate is a starter template.html. It ranges over .messages and
// shows each name, message and signature.
//
//go:embed template.html
var DefaultTemplate string

// Renderer fills an HTML template with signed messages.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer loads and parses the template at path.
func NewRenderer(path string) (*Renderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return ParseRenderer(filepath.Base(path), string(data))
}

// ParseRenderer parses template source directly.
func ParseRenderer(name, src string) (*Renderer, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render binds msgs to the template variable "messages" and returns the page.
func (r *Renderer) Render(msgs []SignedMessage) ([]byte, error) {
	records := make([]map[string]any, len(msgs))
	for i, msg := range msgs {
		records[i] = msg.templateRecord()
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, map[string]any{"messages": records}); err != nil {
		return nil, fmt.Errorf("failed to render template: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFile renders msgs and writes the page to path, replacing whatever was
// there. Nothing is written if rendering fails.
func (r *Renderer) RenderFile(msgs []SignedMessage, path string) error {
	page, err := r.Render(msgs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// WriteDefaultTemplate writes DefaultTemplate to path unless a file is
// already there.
func WriteDefaultTemplate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(DefaultTemplate), 0o644)
}
