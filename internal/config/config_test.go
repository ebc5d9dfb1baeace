package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/banterhq/banter/internal/mock"
)

func testConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(testConfigPath(t))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.GetAPIBaseURL() != DefaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, want %q", cfg.GetAPIBaseURL(), DefaultAPIBaseURL)
	}
	if cfg.GetDefaultMood() != mock.DefaultMood {
		t.Errorf("DefaultMood = %q, want %q", cfg.GetDefaultMood(), mock.DefaultMood)
	}
	if cfg.IsAuthenticated() {
		t.Error("fresh config should not be authenticated")
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := testConfigPath(t)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	cfg.SetAuthToken("tok-123")
	cfg.SetDefaultMood(mock.MoodFunny)
	cfg.SetTheme("nord")
	cfg.SetNotificationsEnabled(true)

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom after save failed: %v", err)
	}

	if loaded.GetAuthToken() != "tok-123" {
		t.Errorf("AuthToken = %q, want %q", loaded.GetAuthToken(), "tok-123")
	}
	if loaded.GetDefaultMood() != mock.MoodFunny {
		t.Errorf("DefaultMood = %q, want %q", loaded.GetDefaultMood(), mock.MoodFunny)
	}
	if loaded.GetTheme() != "nord" {
		t.Errorf("Theme = %q, want %q", loaded.GetTheme(), "nord")
	}
	if !loaded.GetNotificationsEnabled() {
		t.Error("NotificationsEnabled = false, want true")
	}
	if !loaded.IsAuthenticated() {
		t.Error("IsAuthenticated = false after saving a token")
	}
}

func TestLoadFrom_BackfillsEmptyFields(t *testing.T) {
	path := testConfigPath(t)
	if err := os.WriteFile(path, []byte(`{"theme":"nord"}`), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if cfg.GetAPIBaseURL() != DefaultAPIBaseURL {
		t.Errorf("APIBaseURL = %q, want backfilled default", cfg.GetAPIBaseURL())
	}
	if cfg.GetDefaultMood() != mock.DefaultMood {
		t.Errorf("DefaultMood = %q, want backfilled default", cfg.GetDefaultMood())
	}
	if cfg.GetTheme() != "nord" {
		t.Errorf("Theme = %q, want %q", cfg.GetTheme(), "nord")
	}
}

func TestLoadFrom_MalformedJSON(t *testing.T) {
	path := testConfigPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestSave_FilePermissions(t *testing.T) {
	path := testConfigPath(t)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	cfg.SetAuthToken("secret")
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file mode = %o, want 0600", perm)
	}
}

func TestSave_OmitsEmptyToken(t *testing.T) {
	path := testConfigPath(t)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, present := raw["auth_token"]; present {
		t.Error("empty auth_token should be omitted from the config file")
	}
}

func TestSignOut(t *testing.T) {
	cfg, err := LoadFrom(testConfigPath(t))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	cfg.SetAuthToken("tok")
	if !cfg.IsAuthenticated() {
		t.Fatal("expected authenticated after SetAuthToken")
	}

	cfg.SetAuthToken("")
	if cfg.IsAuthenticated() {
		t.Error("expected signed out after clearing token")
	}
}
