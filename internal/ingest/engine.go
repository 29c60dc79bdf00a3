// Package ingest turns a directory description into a fully indexed
// tree.Store. The flat separator-delimited format is the native one; HCL and
// JSON descriptions of the same hierarchy are accepted as alternatives. All
// formats either produce a complete, path-unique forest or fail outright.
package ingest

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/horhof/datafort.network/internal/tree"
)

// Load reads the file at path and dispatches on its extension: .hcl and
// .json get their structured decoders, everything else is treated as the
// flat format with the given separator.
func Load(path, sep string) (*tree.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".hcl":
		return ParseHCL(data, filepath.Base(path))
	case ".json":
		return ParseJSON(data)
	default:
		return ParseFlat(bytes.NewReader(data), sep)
	}
}
