// Package fileutil provides the path mapping between Turtle inputs and
// HTML outputs, plus small file helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HTMLExt is the extension given to generated files.
const HTMLExt = ".html"

// ErrOutsideRoot indicates an input path that does not live under the
// input root.
var ErrOutsideRoot = errors.New("path is outside the input root")

// RelativeHTMLPath returns the output-relative, slash-separated HTML
// path for an input file: the path relative to inputRoot with its
// extension swapped to .html. This is the value recorded in the index,
// so it must be reversible back to the original relative path (minus
// the extension change).
func RelativeHTMLPath(inputPath, inputRoot string) (string, error) {
	rel, err := filepath.Rel(inputRoot, inputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOutsideRoot, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, inputPath)
	}
	return filepath.ToSlash(SwapExtension(rel, HTMLExt)), nil
}

// OutputPath maps an input file under inputRoot to its HTML output path
// under outputRoot, preserving the directory structure.
func OutputPath(inputPath, inputRoot, outputRoot string) (string, error) {
	rel, err := RelativeHTMLPath(inputPath, inputRoot)
	if err != nil {
		return "", err
	}
	return filepath.Join(outputRoot, filepath.FromSlash(rel)), nil
}

// SwapExtension replaces the path's extension (if any) with ext.
func SwapExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// IsTurtleFile reports whether the path has a Turtle extension
// (case-insensitive).
func IsTurtleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ttl")
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
