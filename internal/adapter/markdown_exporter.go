package adapter

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

const htmlPageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// MarkdownExporter converts Markdown documents into standalone HTML files.
type MarkdownExporter interface {
	ExportHTML(ctx context.Context, title, markdown string, path m.Path) error
}

// GoldmarkExporter renders Markdown with goldmark (GFM task lists and tables).
type GoldmarkExporter struct {
	md goldmark.Markdown
}

// NewGoldmarkExporter constructs a GoldmarkExporter.
func NewGoldmarkExporter() *GoldmarkExporter {
	return &GoldmarkExporter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// RenderHTML returns the HTML fragment for markdown.
func (e *GoldmarkExporter) RenderHTML(markdown string) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportHTML writes markdown as a complete HTML page to path.
func (e *GoldmarkExporter) ExportHTML(ctx context.Context, title, markdown string, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := e.RenderHTML(markdown)
	if err != nil {
		return err
	}

	page := fmt.Sprintf(htmlPageTemplate, html.EscapeString(title), body)

	if err := atomicWrite(string(path), []byte(page), 0o644); err != nil {
		slog.Error("Failed to export HTML", "path", path, "error", err)
		return err
	}

	return nil
}
