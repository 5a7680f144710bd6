package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// convertFlags holds all CLI flags.
type convertFlags struct {
	input  string
	output string
	config string

	title      string
	indexTitle string
	style      string
	assetPath  string

	strict   bool
	noIndex  bool
	noReadme bool

	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses command-line flags. A positional argument may be
// used instead of --input.
func parseFlags(args []string) (*convertFlags, error) {
	fs := flag.NewFlagSet("ttl2html", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.input, "input", "i", "", "input directory (or single .ttl file)")
	fs.StringVarP(&f.output, "output", "o", "", "output directory for generated HTML")
	fs.StringVarP(&f.config, "config", "c", "", "config file path")

	fs.StringVar(&f.title, "title", "", "title for generated pages")
	fs.StringVar(&f.indexTitle, "index-title", "", "title for the index page")
	fs.StringVar(&f.style, "style", "", "stylesheet name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory (templates/, styles/)")

	fs.BoolVar(&f.strict, "strict", false, "fail a file on the first malformed statement")
	fs.BoolVar(&f.noIndex, "no-index", false, "skip index page generation")
	fs.BoolVar(&f.noReadme, "no-readme", false, "skip the README preamble on the index page")

	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show parse diagnostics")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Positional input path as a convenience for `ttl2html dir -o out`.
	if f.input == "" && fs.NArg() > 0 {
		f.input = fs.Arg(0)
	}

	return f, nil
}
