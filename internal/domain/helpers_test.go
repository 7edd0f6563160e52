package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"frontcheck.dev/pkg/frontcheck/internal/adapter"
	"frontcheck.dev/pkg/frontcheck/internal/corpus"
	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

func defaultCases(t *testing.T) []m.TestCase {
	t.Helper()

	cases, err := adapter.NewYAMLCorpusLoader().Load(corpus.Default())
	require.NoError(t, err)

	return cases
}

func writeTarget(t *testing.T, dir string, perm os.FileMode) m.Path {
	t.Helper()

	path := filepath.Join(dir, "CompilerFrontend")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), perm))
	require.NoError(t, os.Chmod(path, perm))

	return m.Path(path)
}

func statOf(t *testing.T, path string) os.FileInfo {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)

	return info
}
