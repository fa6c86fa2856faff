package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if len(cfg.Feeds) != 4 {
		t.Errorf("Feeds: got %d sources, want 4 defaults", len(cfg.Feeds))
	}
	if cfg.Feeds[0].Name != "BBC News" {
		t.Errorf("Feeds[0].Name: got %q", cfg.Feeds[0].Name)
	}

	checks := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"Fetch.DelayMs", cfg.Fetch.DelayMs, 500},
		{"Fetch.TimeoutSeconds", cfg.Fetch.TimeoutSeconds, 10},
		{"Fetch.UserAgent", cfg.Fetch.UserAgent, "NewsRiver/1.0 RSS Reader"},
		{"Display.Limit", cfg.Display.Limit, 15},
		{"Display.SummaryLen", cfg.Display.SummaryLen, 150},
		{"Log.Level", cfg.Log.Level, "info"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if len(cfg.Filters) != 2 {
		t.Fatalf("Filters: got %d, want 2 defaults", len(cfg.Filters))
	}
	if cfg.Filters[0].Keyword != "technology" || cfg.Filters[0].Limit != 10 {
		t.Errorf("Filters[0]: got %+v", cfg.Filters[0])
	}
	if cfg.Filters[1].Keyword != "artificial intelligence" || cfg.Filters[1].Limit != 5 {
		t.Errorf("Filters[1]: got %+v", cfg.Filters[1])
	}
}

func TestSetDefaults_DoesNotOverride(t *testing.T) {
	cfg := &Config{
		Fetch:   FetchConfig{DelayMs: 100, TimeoutSeconds: 3, UserAgent: "custom"},
		Display: DisplayConfig{Limit: 5, SummaryLen: 80},
		Filters: []FilterConfig{{Keyword: "science", Limit: 3}},
		Log:     LogConfig{Level: "debug"},
	}
	setDefaults(cfg)

	if cfg.Fetch.DelayMs != 100 {
		t.Errorf("DelayMs should not be overridden: got %d", cfg.Fetch.DelayMs)
	}
	if cfg.Display.Limit != 5 || cfg.Display.SummaryLen != 80 {
		t.Errorf("Display should not be overridden: got %+v", cfg.Display)
	}
	if len(cfg.Filters) != 1 || cfg.Filters[0].Keyword != "science" {
		t.Errorf("Filters should not be overridden: got %+v", cfg.Filters)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level should not be overridden: got %s", cfg.Log.Level)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Feeds) != 4 || cfg.Display.Limit != 15 {
		t.Errorf("Default config incomplete: %+v", cfg)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	yamlContent := `
feeds:
  - name: Example
    url: https://example.com/rss.xml
fetch:
  delay_ms: 200
  timeout_seconds: 5
display:
  limit: 7
filters:
  - keyword: golang
    limit: 4
log:
  level: debug
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(tmpFile, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Feeds) != 1 || cfg.Feeds[0].URL != "https://example.com/rss.xml" {
		t.Errorf("Feeds: got %+v", cfg.Feeds)
	}
	if cfg.Fetch.DelayMs != 200 || cfg.Fetch.TimeoutSeconds != 5 {
		t.Errorf("Fetch: got %+v", cfg.Fetch)
	}
	if cfg.Display.Limit != 7 {
		t.Errorf("Display.Limit: got %d, want 7", cfg.Display.Limit)
	}
	if len(cfg.Filters) != 1 || cfg.Filters[0].Keyword != "golang" || cfg.Filters[0].Limit != 4 {
		t.Errorf("Filters: got %+v", cfg.Filters)
	}
	// Defaults should be applied for unset fields
	if cfg.Display.SummaryLen != 150 {
		t.Errorf("Display.SummaryLen should default to 150, got %d", cfg.Display.SummaryLen)
	}
	if cfg.Fetch.UserAgent == "" {
		t.Error("Fetch.UserAgent should get a default")
	}
}

func TestLoad_EnvVarExpansion(t *testing.T) {
	t.Setenv("TEST_FEED_URL", "https://env.example.com/rss")

	yamlContent := `
feeds:
  - name: FromEnv
    url: "${TEST_FEED_URL}"
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(tmpFile, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Feeds[0].URL != "https://env.example.com/rss" {
		t.Errorf("expected env var expansion, got %q", cfg.Feeds[0].URL)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}
