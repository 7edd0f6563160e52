//go:build !unix

package adapter

import (
	"os"
	"path/filepath"
	"strings"
)

// checkExecutable falls back to mode bits, and to the extension on Windows
// where mode bits carry no execute information.
func checkExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.Mode().Perm()&0o111 != 0 {
		return nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".exe", ".bat", ".cmd", ".com":
		return nil
	}

	return ErrNotExecutable
}
