package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

func TestGoldmarkExporter_RenderHTML(t *testing.T) {
	exporter := NewGoldmarkExporter()

	out, err := exporter.RenderHTML("# Guide\n\n- [ ] paste the snippet\n- `errors.c`\n")
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, "<h1>Guide</h1>")
	assert.Contains(t, html, `type="checkbox"`)
	assert.Contains(t, html, "<code>errors.c</code>")
}

func TestGoldmarkExporter_ExportHTML(t *testing.T) {
	exporter := NewGoldmarkExporter()
	path := filepath.Join(t.TempDir(), "guide.html")

	err := exporter.ExportHTML(context.Background(), "Checks <1>", "## Stage\n\ntext\n", m.Path(path))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	page := string(data)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>Checks &lt;1&gt;</title>")
	assert.Contains(t, page, "<h2>Stage</h2>")
	assert.Contains(t, page, `<meta charset="utf-8">`)
}
