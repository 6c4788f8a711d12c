package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  file-secret \n"), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	got, err := Load(Source{Name: "gemini api key", File: path, Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "file-secret" {
		t.Fatalf("expected file secret, got %q", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("   "), 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	_, err := Load(Source{Name: "gemini api key", File: path})
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Source{File: filepath.Join(t.TempDir(), "missing")})
	if err == nil || !strings.Contains(err.Error(), "reading secret") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PROGRAMME_SURVEY_TEST_KEY", " env-secret ")

	got, err := Load(Source{Name: "key", Env: "PROGRAMME_SURVEY_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "env-secret" {
		t.Fatalf("expected env secret, got %q", got)
	}
}

func TestLoadValueBeforeEnv(t *testing.T) {
	t.Setenv("PROGRAMME_SURVEY_TEST_KEY", "env-secret")

	got, err := Load(Source{Value: "inline", Env: "PROGRAMME_SURVEY_TEST_KEY"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "inline" {
		t.Fatalf("expected inline value, got %q", got)
	}
}

func TestLoadNotConfigured(t *testing.T) {
	t.Setenv("PROGRAMME_SURVEY_TEST_KEY", "")

	_, err := Load(Source{Name: "key", Env: "PROGRAMME_SURVEY_TEST_KEY"})
	if err == nil || !strings.Contains(err.Error(), "set PROGRAMME_SURVEY_TEST_KEY") {
		t.Fatalf("expected hint in error, got %v", err)
	}

	if _, err := Load(Source{}); err == nil {
		t.Fatalf("expected error for empty source")
	}
}
