package main

import (
	"fmt"
	"io"
)

// printUsage writes CLI usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `ttl2html - convert RDF Turtle files to browseable HTML

Usage:
  ttl2html -i <input-dir> -o <output-dir> [flags]
  ttl2html <input-dir> -o <output-dir> [flags]

Every .ttl file under the input directory is converted to an HTML page
at the mirrored path under the output directory, plus an index.html
linking all converted files.

Flags:
  -i, --input string        input directory (or single .ttl file)
  -o, --output string       output directory for generated HTML
  -c, --config string       config file path
      --title string        title for generated pages (default "Definitions")
      --index-title string  title for the index page (default "Index of RDF Files")
      --style string        stylesheet name (default "default")
      --asset-path string   custom asset directory (templates/, styles/)
      --strict              fail a file on the first malformed statement
      --no-index            skip index page generation
      --no-readme           skip the README preamble on the index page
  -q, --quiet               only show errors
  -v, --verbose             show parse diagnostics
      --version             print version and exit

Examples:
  ttl2html -i vocab/ -o public/
  ttl2html vocab/ -o public/ --title "Vocabulary" --strict
  ttl2html -c site.yaml
`)
}
