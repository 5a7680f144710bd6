package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ttl2html "github.com/rdita/go-ttl2html"
	"github.com/rdita/go-ttl2html/internal/config"
	"github.com/rdita/go-ttl2html/internal/fileutil"
	"github.com/rdita/go-ttl2html/internal/markdown"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput    = errors.New("no input specified")
	ErrNoOutput   = errors.New("no output directory specified")
	ErrReadTurtle = errors.New("failed to read turtle file")
	ErrWriteHTML  = errors.New("failed to write HTML file")
)

// runConvert orchestrates the whole run: setup, sequential per-file
// conversion, and index generation. Per-file failures are reported and
// skipped; setup and index failures abort.
func runConvert(ctx context.Context, flags *convertFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags override config.
	mergeFlags(flags, cfg)

	if cfg.Input.DefaultDir == "" {
		return ErrNoInput
	}
	if cfg.Output.DefaultDir == "" {
		return ErrNoOutput
	}
	inputPath := cfg.Input.DefaultDir
	outputDir := cfg.Output.DefaultDir

	conv, err := ttl2html.NewConverter(converterOptions(cfg)...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	files, inputRoot, err := discoverFiles(inputPath)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(env.Stderr, "WARNING: no turtle files found in %s\n", inputPath)
	}

	// Index entries accumulate in discovery order; failed files are
	// omitted so the index only links pages that exist.
	var entries []ttl2html.IndexEntry
	failed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "Converting %s\n", path)
		}

		entry, diags, err := convertFile(ctx, conv, path, inputRoot, outputDir)
		if err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", path, err)
			continue
		}

		if flags.verbose {
			for _, d := range diags {
				fmt.Fprintf(env.Stderr, "%s: skipped %s\n", path, d)
			}
		}

		entries = append(entries, entry)
		if !flags.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", filepath.Join(outputDir, filepath.FromSlash(entry.Path)))
		}
	}

	if cfg.Index.Enabled {
		preamble := loadPreamble(ctx, inputRoot, cfg, env)
		if err := writeIndex(ctx, conv, outputDir, entries, preamble); err != nil {
			return fmt.Errorf("generating index: %w", err)
		}
	}

	if !flags.quiet && len(files) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(entries), failed)
	}

	// Per-file failures were already reported and their files skipped;
	// only setup and index failures make the run itself fail.
	return nil
}

// mergeFlags merges CLI flags into config. CLI values win.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.input != "" {
		cfg.Input.DefaultDir = flags.input
	}
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}
	if flags.title != "" {
		cfg.Site.Title = flags.title
	}
	if flags.indexTitle != "" {
		cfg.Site.IndexTitle = flags.indexTitle
	}
	if flags.style != "" {
		cfg.Site.Style = flags.style
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.strict {
		cfg.Site.Strict = true
	}
	if flags.noIndex {
		cfg.Index.Enabled = false
	}
	if flags.noReadme {
		cfg.Index.Readme = false
	}
}

// converterOptions translates config into library options. Empty config
// fields fall through to the library defaults.
func converterOptions(cfg *config.Config) []ttl2html.Option {
	var opts []ttl2html.Option
	if cfg.Site.Title != "" {
		opts = append(opts, ttl2html.WithTitle(cfg.Site.Title))
	}
	if cfg.Site.IndexTitle != "" {
		opts = append(opts, ttl2html.WithIndexTitle(cfg.Site.IndexTitle))
	}
	if cfg.Site.Style != "" {
		opts = append(opts, ttl2html.WithStyle(cfg.Site.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, ttl2html.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Site.Strict {
		opts = append(opts, ttl2html.WithStrictParsing())
	}
	for _, p := range cfg.Prefixes {
		opts = append(opts, ttl2html.WithPrefixes(ttl2html.Prefix{Name: p.Name, IRI: p.IRI}))
	}
	return opts
}

// convertFile converts a single Turtle file and writes its HTML page.
func convertFile(ctx context.Context, conv *ttl2html.Converter, inputPath, inputRoot, outputDir string) (ttl2html.IndexEntry, []ttl2html.Diagnostic, error) {
	var entry ttl2html.IndexEntry

	content, err := os.ReadFile(inputPath) // #nosec G304 -- discovered path
	if err != nil {
		return entry, nil, fmt.Errorf("%w: %v", ErrReadTurtle, err)
	}

	res, err := conv.Convert(ctx, ttl2html.Input{Turtle: string(content)})
	if err != nil {
		return entry, nil, err
	}

	rel, err := fileutil.RelativeHTMLPath(inputPath, inputRoot)
	if err != nil {
		return entry, nil, err
	}
	outPath := filepath.Join(outputDir, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(outPath), dirPermissions); err != nil {
		return entry, nil, fmt.Errorf("creating output directory: %w", err)
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(outPath, res.HTML, filePermissions); err != nil {
		return entry, nil, fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	entry = ttl2html.IndexEntry{Path: rel, Name: filepath.Base(inputPath)}
	return entry, res.Diagnostics, nil
}

// loadPreamble renders README.md from the input root for the index
// page. Missing README is normal; read or render failures degrade to a
// warning, never a run failure.
func loadPreamble(ctx context.Context, inputRoot string, cfg *config.Config, env *Environment) string {
	if !cfg.Index.Readme {
		return ""
	}
	path := filepath.Join(inputRoot, "README.md")
	if !fileutil.FileExists(path) {
		return ""
	}

	content, err := os.ReadFile(path) // #nosec G304 -- path under the input root
	if err != nil {
		fmt.Fprintf(env.Stderr, "WARNING: reading %s: %v\n", path, err)
		return ""
	}

	html, err := markdown.NewRenderer().ToHTML(ctx, string(content))
	if err != nil {
		fmt.Fprintf(env.Stderr, "WARNING: rendering %s: %v\n", path, err)
		return ""
	}
	return html
}

// writeIndex renders and writes index.html in the output root.
func writeIndex(ctx context.Context, conv *ttl2html.Converter, outputDir string, entries []ttl2html.IndexEntry, preamble string) error {
	html, err := conv.GenerateIndex(ctx, ttl2html.IndexInput{
		Entries:      entries,
		PreambleHTML: preamble,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(outputDir, "index.html")
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(indexPath, html, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	return nil
}
