// Package corpus ships the built-in snippet corpus.
package corpus

import (
	"embed"
	"io/fs"
)

//go:embed fixtures/corpus.yaml fixtures/*.c
var fixtures embed.FS

// ManifestName is the file name of the corpus manifest inside a fixture directory.
const ManifestName = "corpus.yaml"

// Default returns the built-in corpus rooted at its manifest directory.
func Default() fs.FS {
	sub, err := fs.Sub(fixtures, "fixtures")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}

	return sub
}
