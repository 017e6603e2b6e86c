package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fitevolve/fitevolve/internal/contexthelpers"
)

func Test_templateDir(t *testing.T) {
	t.Run("Found from the working directory", func(t *testing.T) {
		dir, err := templateDir("")
		if err != nil {
			t.Fatalf("templateDir() error = %v", err)
		}
		if _, err = os.Stat(filepath.Join(dir, baseLayout)); err != nil {
			t.Errorf("%s has no base layout: %v", dir, err)
		}
	})

	withLayout := t.TempDir()
	if err := os.WriteFile(filepath.Join(withLayout, baseLayout), []byte(`{{ define "base" }}{{ end }}`), 0o600); err != nil {
		t.Fatal(err)
	}
	notDir := filepath.Join(withLayout, baseLayout)

	tests := []struct {
		name       string
		configured string
		wantErr    bool
	}{
		{name: "Configured", configured: withLayout},
		{name: "Missing base layout", configured: t.TempDir(), wantErr: true},
		{name: "Not a directory", configured: notDir, wantErr: true},
		{name: "Missing", configured: filepath.Join(withLayout, "missing"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := templateDir(tt.configured)
			if (err != nil) != tt.wantErr {
				t.Fatalf("templateDir(%q) error = %v, wantErr %v", tt.configured, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.configured {
				t.Errorf("templateDir(%q) = %q", tt.configured, got)
			}
		})
	}
}

func Test_newBaseTemplateData(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/exercises/barbell_back_squat", nil)
	r = contexthelpers.SetCurrentPath(r, r.URL.Path)

	if got := newBaseTemplateData(r, "Dashboard"); got.Title != "Dashboard · FitEvolve" ||
		got.CurrentPath != "/exercises/barbell_back_squat" {
		t.Errorf("newBaseTemplateData() = %+v", got)
	}
	if got := newBaseTemplateData(r, ""); got.Title != appName {
		t.Errorf("empty page title = %q, want %q", got.Title, appName)
	}
}
