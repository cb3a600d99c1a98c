// Package content bundles the read-only material the site is built from: the
// portfolio catalogue, the fixed page copy and the static assets.
package content

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"

	"siteprisme.fr/internal/models"
)

//go:embed data/portfolio.json
var portfolioJSON []byte

//go:embed all:static
var staticFS embed.FS

// Static returns the embedded asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("content: static tree missing: " + err.Error())
	}
	return sub
}

// EmbeddedPortfolio returns the raw bundled catalogue.
func EmbeddedPortfolio() []byte {
	return bytes.Clone(portfolioJSON)
}

// LoadPortfolio parses the catalogue at path, or the bundled one when path is
// empty.
func LoadPortfolio(path string) (*models.ProjectList, error) {
	if path == "" {
		return ParsePortfolio(bytes.NewReader(portfolioJSON))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open portfolio: %w", err)
	}
	defer f.Close()

	return ParsePortfolio(f)
}

// ParsePortfolio decodes a catalogue document.
func ParsePortfolio(r io.Reader) (*models.ProjectList, error) {
	var list models.ProjectList
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio: %w", err)
	}
	return &list, nil
}
