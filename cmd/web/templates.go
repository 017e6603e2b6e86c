package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fitevolve/fitevolve/internal/contexthelpers"
)

const (
	appName = "FitEvolve"
	// baseLayout is the file that marks a directory as the FitEvolve template root.
	baseLayout = "base.gohtml"
)

// BaseTemplateData is embedded in the data of every page.
type BaseTemplateData struct {
	// Title is the document title shown in the browser tab.
	Title       string
	CurrentPath string
}

// newBaseTemplateData fills the data shared by every page. An empty page title falls back to the app name.
func newBaseTemplateData(r *http.Request, page string) BaseTemplateData {
	title := appName
	if page != "" {
		title = page + " · " + appName
	}
	return BaseTemplateData{
		Title:       title,
		CurrentPath: contexthelpers.CurrentPath(r.Context()),
	}
}

// templateDir returns the directory holding the HTML templates. A configured path is used as is. Otherwise
// ui/templates is searched for from the working directory upwards, so both the repository root and cmd/web work.
func templateDir(configured string) (string, error) {
	if configured != "" {
		if err := checkTemplateDir(configured); err != nil {
			return "", err
		}
		return configured, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ui", "templates")
		if checkTemplateDir(candidate) == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no ui/templates above working directory: %w", os.ErrNotExist)
		}
		dir = parent
	}
}

func checkTemplateDir(dir string) error {
	stat, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("template dir %s: %w", dir, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("template dir %s is not a directory", dir)
	}
	if _, err = os.Stat(filepath.Join(dir, baseLayout)); err != nil {
		return fmt.Errorf("template dir %s lacks %s: %w", dir, baseLayout, err)
	}
	return nil
}
