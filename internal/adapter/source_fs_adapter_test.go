package adapter

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	m "frontcheck.dev/pkg/frontcheck/internal/model"
)

func TestLocalSourceFSAdapter_WriteAndRead(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	dir := filepath.Join(t.TempDir(), "test_cases", "nested")
	if err := adapter.MkdirAll(ctx, m.Path(dir), 0o750); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	path := adapter.JoinPath(ctx, dir, "errors.c")
	if want := m.Path(filepath.Join(dir, "errors.c")); path != want {
		t.Fatalf("JoinPath() = %q, want %q", path, want)
	}

	content := []byte("int b = undeclared_var;  // 错误：未声明变量")
	if err := adapter.WriteFile(ctx, path, content, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := adapter.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != string(content) {
		t.Fatalf("ReadFile() = %q, want %q", got, content)
	}

	info, err := adapter.FileInfo(ctx, path)
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() || info.Size() != int64(len(content)) {
		t.Fatalf("FileInfo() = dir %v size %d, want file of %d bytes", info.IsDir(), info.Size(), len(content))
	}
}

func TestLocalSourceFSAdapter_FileInfoMissing(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	_, err := adapter.FileInfo(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.c")))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("FileInfo() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLocalSourceFSAdapter_CanceledContext(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, "a.c"))

	if err := adapter.WriteFile(ctx, path, []byte("int a;"), 0o644); !errors.Is(err, context.Canceled) {
		t.Fatalf("WriteFile() error = %v, want context.Canceled", err)
	}

	if _, err := os.Stat(string(path)); !os.IsNotExist(err) {
		t.Fatalf("file written despite canceled context: %v", err)
	}

	if err := adapter.MkdirAll(ctx, m.Path(filepath.Join(dir, "sub")), 0o750); !errors.Is(err, context.Canceled) {
		t.Fatalf("MkdirAll() error = %v, want context.Canceled", err)
	}
}
