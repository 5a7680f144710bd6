package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads assets from a directory on the filesystem,
// laid out as {base}/templates/{name}.html and {base}/styles/{name}.css.
// Implements AssetLoader.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for the given base
// path. Returns ErrInvalidBasePath if the path is not a readable
// directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	// Resolve symlinks so the containment check compares real paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// LoadTemplate loads an HTML template from {base}/templates/{name}.html.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	return f.load(filepath.Join("templates", name+".html"), name, ErrTemplateNotFound)
}

// LoadStyle loads a CSS stylesheet from {base}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	return f.load(filepath.Join("styles", name+".css"), name, ErrStyleNotFound)
}

func (f *FilesystemLoader) load(rel, name string, notFound error) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.basePath, rel)
	if err := f.verifyPathContainment(path); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path validated above
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", notFound, name)
		}
		return "", fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return string(content), nil
}

// verifyPathContainment ensures the resolved file path stays within the
// base path, even through symlinks.
func (f *FilesystemLoader) verifyPathContainment(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrInvalidAssetName)
	}
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}
	if !strings.HasPrefix(absPath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrInvalidAssetName)
	}
	return nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)

// FallbackLoader tries a primary loader and falls back to a secondary
// one when an asset is not found. Used to let a custom asset directory
// override the embedded defaults selectively.
type FallbackLoader struct {
	primary   AssetLoader
	secondary AssetLoader
}

// NewFallbackLoader creates a FallbackLoader.
func NewFallbackLoader(primary, secondary AssetLoader) *FallbackLoader {
	return &FallbackLoader{primary: primary, secondary: secondary}
}

// LoadTemplate loads from the primary loader, falling back on not-found.
func (f *FallbackLoader) LoadTemplate(name string) (string, error) {
	content, err := f.primary.LoadTemplate(name)
	if isNotFound(err) {
		return f.secondary.LoadTemplate(name)
	}
	return content, err
}

// LoadStyle loads from the primary loader, falling back on not-found.
func (f *FallbackLoader) LoadStyle(name string) (string, error) {
	content, err := f.primary.LoadStyle(name)
	if isNotFound(err) {
		return f.secondary.LoadStyle(name)
	}
	return content, err
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) || errors.Is(err, ErrStyleNotFound)
}

// Compile-time interface check.
var _ AssetLoader = (*FallbackLoader)(nil)
