package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := `
upstream:
  base_url: https://stats.example.com
dashboard:
  envs: [prod, staging]
  default_sort:
    key: database
    direction: asc
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Upstream.BaseURL != "https://stats.example.com" {
		t.Errorf("base_url = %q", c.Upstream.BaseURL)
	}
	if c.Upstream.ConfigID != "DEFAULT_WIDGET_ID" {
		t.Errorf("config_id default = %q", c.Upstream.ConfigID)
	}
	if diff := cmp.Diff([]string{"prod", "staging"}, c.Dashboard.Envs); diff != "" {
		t.Errorf("envs mismatch (-want +got):\n%s", diff)
	}
	if c.Dashboard.DefaultSort.Key != "database" || c.Dashboard.DefaultSort.Direction != "asc" {
		t.Errorf("default_sort = %+v", c.Dashboard.DefaultSort)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); !os.IsNotExist(err) {
		t.Errorf("Load(missing) err = %v, want not-exist", err)
	}
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("upstream: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(bad yaml) should fail")
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yml"))
	c, err := LoadOrDefault()
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if c.Upstream.BaseURL != "http://localhost:5000" {
		t.Errorf("base_url = %q", c.Upstream.BaseURL)
	}
}
