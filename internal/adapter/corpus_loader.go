package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"frontcheck.dev/pkg/frontcheck/internal/corpus"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

const corpusManifestVersion = 1

var caseIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// CorpusLoader reads a corpus definition: a manifest plus one snippet file
// per case.
type CorpusLoader interface {
	Load(fsys fs.FS) ([]m.TestCase, error)
}

// YAMLCorpusLoader loads corpus.yaml manifests.
type YAMLCorpusLoader struct{}

// NewYAMLCorpusLoader constructs a YAMLCorpusLoader.
func NewYAMLCorpusLoader() *YAMLCorpusLoader {
	return &YAMLCorpusLoader{}
}

type corpusManifest struct {
	Version   int                  `yaml:"version"`
	Extension string               `yaml:"extension"`
	Cases     []corpusManifestCase `yaml:"cases"`
}

type corpusManifestCase struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Focus    string `yaml:"focus"`
}

// Load parses the manifest in fsys and reads each snippet next to it.
// Cases are returned in manifest order.
func (l *YAMLCorpusLoader) Load(fsys fs.FS) ([]m.TestCase, error) {
	raw, err := fs.ReadFile(fsys, corpus.ManifestName)
	if err != nil {
		slog.Error("Failed to read corpus manifest", "error", err)
		return nil, fmt.Errorf("read corpus manifest: %w", err)
	}

	var manifest corpusManifest

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	if err := decoder.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("parse corpus manifest: %w", err)
	}

	if manifest.Version != corpusManifestVersion {
		return nil, fmt.Errorf("unsupported corpus manifest version %d", manifest.Version)
	}

	ext := manifest.Extension
	if ext == "" {
		ext = m.DefaultExtension
	}

	if !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\`) {
		return nil, fmt.Errorf("invalid snippet extension %q", ext)
	}

	if len(manifest.Cases) == 0 {
		return nil, errors.New("corpus manifest defines no cases")
	}

	cases := make([]m.TestCase, 0, len(manifest.Cases))
	seen := make(map[string]struct{}, len(manifest.Cases))

	for i, entry := range manifest.Cases {
		tc, err := l.loadCase(fsys, entry, ext)
		if err != nil {
			return nil, fmt.Errorf("corpus case %d: %w", i, err)
		}

		if _, dup := seen[tc.ID]; dup {
			return nil, fmt.Errorf("duplicate corpus case id %q", tc.ID)
		}

		seen[tc.ID] = struct{}{}
		cases = append(cases, tc)
	}

	slog.Debug("Loaded corpus", "cases", len(cases), "extension", ext)

	return cases, nil
}

func (l *YAMLCorpusLoader) loadCase(fsys fs.FS, entry corpusManifestCase, ext string) (m.TestCase, error) {
	if !caseIDPattern.MatchString(entry.ID) {
		return m.TestCase{}, fmt.Errorf("invalid case id %q", entry.ID)
	}

	category, err := m.ParseCategory(entry.Category)
	if err != nil {
		return m.TestCase{}, fmt.Errorf("case %q: %w", entry.ID, err)
	}

	tc := m.TestCase{
		ID:        entry.ID,
		Category:  category,
		Focus:     strings.TrimSpace(entry.Focus),
		Extension: ext,
	}

	body, err := fs.ReadFile(fsys, tc.FileName())
	if err != nil {
		return m.TestCase{}, fmt.Errorf("case %q: read snippet: %w", entry.ID, err)
	}

	if !utf8.Valid(body) {
		return m.TestCase{}, fmt.Errorf("case %q: snippet %s is not valid UTF-8", entry.ID, tc.FileName())
	}

	tc.SourceText = string(body)

	return tc, nil
}
