package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rdita/go-ttl2html/internal/fileutil"
)

// ErrInvalidExtension indicates a single-file input without a .ttl
// extension.
var ErrInvalidExtension = errors.New("file must have .ttl extension")

// discoverFiles finds the Turtle files to convert. It accepts either a
// directory, walked recursively, or a single .ttl file. The returned
// root is the directory relative output paths are computed against.
func discoverFiles(inputPath string) (files []string, root string, err error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, "", err
	}

	if !info.IsDir() {
		if !fileutil.IsTurtleFile(inputPath) {
			return nil, "", fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		return []string{inputPath}, filepath.Dir(inputPath), nil
	}

	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsTurtleFile(path) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	// WalkDir yields lexical order per directory, but sort anyway so
	// index order never depends on filesystem quirks.
	sort.Strings(files)

	return files, inputPath, nil
}
