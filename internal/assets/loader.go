// Package assets loads the HTML templates and CSS stylesheets used for
// rendering. The defaults ship embedded in the binary; a user-supplied
// asset directory can override them selectively.
package assets

// AssetLoader defines the contract for loading templates and styles.
// Implementations may load from embedded assets, the filesystem, or
// anything else.
type AssetLoader interface {
	// LoadTemplate loads an HTML template by name (without the .html
	// extension). Returns ErrTemplateNotFound if it doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadStyle loads a CSS stylesheet by name (without the .css
	// extension). Returns ErrStyleNotFound if it doesn't exist.
	LoadStyle(name string) (string, error)
}

// DefaultStyleName is the name of the built-in CSS stylesheet.
const DefaultStyleName = "default"
