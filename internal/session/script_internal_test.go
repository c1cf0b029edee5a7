package session

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEngineScript_FromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "axe.min.js")
	if err := os.WriteFile(path, []byte("var axe = {};"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := loadEngineScript(Config{EnginePath: path})
	if err != nil {
		t.Fatalf("loadEngineScript returned error: %v", err)
	}
	if src != "var axe = {};" {
		t.Errorf("unexpected script contents: %q", src)
	}
}

func TestLoadEngineScript_FromURL(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "var axe = {run: function(){}};")
	}))
	defer srv.Close()

	src, err := loadEngineScript(Config{EngineURL: srv.URL})
	if err != nil {
		t.Fatalf("loadEngineScript returned error: %v", err)
	}
	if len(src) == 0 {
		t.Error("fetched script is empty")
	}
}

func TestLoadEngineScript_NoSource(t *testing.T) {
	t.Parallel()

	if _, err := loadEngineScript(Config{}); err == nil {
		t.Fatal("expected error when no script source is configured")
	}
}

func TestLoadEngineScript_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := loadEngineScript(Config{EnginePath: filepath.Join(t.TempDir(), "nope.js")}); err == nil {
		t.Fatal("expected error for missing engine file")
	}
}
