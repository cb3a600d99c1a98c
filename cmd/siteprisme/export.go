package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/spf13/cobra"

	"siteprisme.fr/internal/content"
	"siteprisme.fr/internal/handlers"
	"siteprisme.fr/internal/models"
	"siteprisme.fr/internal/services"
	"siteprisme.fr/internal/views"
)

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Render the page, the catalogue and the assets to a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	outputDir := args[0]

	list, err := loadCatalogue(cfg)
	if err != nil {
		return err
	}
	projects := services.NewProjectService(list)

	// Ensure output directory exists
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, "/", nil)
	if err != nil {
		return err
	}
	page := handlers.NewPageHandler(projects, cfg.Site, cfg.Carousel.Interval.Std())

	var buf bytes.Buffer
	if err := views.Render(&buf, page.Data(req, services.FormState{})); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if err := writeFile(outputDir, "index.html", buf.Bytes()); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created index.html (%d bytes)\n", buf.Len())

	data, err := marshalCatalogue(list)
	if err != nil {
		return err
	}
	if err := writeFile(outputDir, "portfolio.json", data); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Created portfolio.json (%d projects)\n", len(list.Projects))

	n, err := exportStatic(outputDir, content.Static())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Copied %d static assets\n", n)

	fmt.Fprintln(out, "Done!")
	return nil
}

func marshalCatalogue(list *models.ProjectList) ([]byte, error) {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalogue: %w", err)
	}
	return append(data, '\n'), nil
}

func exportStatic(outputDir string, static fs.FS) (int, error) {
	count := 0
	err := fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		count++
		return writeFile(outputDir, filepath.Join("static", filepath.FromSlash(path)), data)
	})
	if err != nil {
		return count, fmt.Errorf("failed to export static assets: %w", err)
	}
	return count, nil
}

// writeFile replaces outputDir/name atomically.
func writeFile(outputDir, name string, data []byte) error {
	path := filepath.Join(outputDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
