package config

import (
	"os"
	"path/filepath"
	"testing"

	"dnacode-core/practicality"
)

func isolate(t *testing.T) {
	t.Helper()
	// Keep the developer's own config out of the tests.
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Thresholds != practicality.DefaultThresholds {
		t.Fatalf("thresholds = %+v, want defaults", c.Thresholds)
	}
	if c.Output != "text" || c.Threads != 0 || c.Quiet || c.File != "" {
		t.Fatalf("unexpected defaults %+v", c)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "dnacode.yaml")
	data := "analyze:\n  gc_low: 30\n  homopolymer_run: 5\noutput:\n  format: json\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Thresholds.GCLow != 30 || c.Thresholds.HomopolymerRun != 5 || c.Thresholds.GCHigh != 80 {
		t.Fatalf("unexpected thresholds %+v", c.Thresholds)
	}
	if c.Output != "json" || c.File != path {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "dnacode.toml")
	if err := os.WriteFile(path, []byte("[analyze]\ngc_high = 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DNACODE_ANALYZE_GC_HIGH", "90")
	t.Setenv("DNACODE_QUIET", "true")
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Thresholds.GCHigh != 90 || !c.Quiet {
		t.Fatalf("env overrides ignored: %+v", c)
	}
}

func TestLoadUserConfigDir(t *testing.T) {
	isolate(t)
	dir, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config dir on this platform")
	}
	if err := os.MkdirAll(filepath.Join(dir, "dnacode"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dnacode", "dnacode.json"), []byte(`{"output":{"threads":3}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if c.Threads != 3 {
		t.Fatalf("user config not picked up: %+v", c)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Thresholds: practicality.DefaultThresholds, Output: "text"}
	if err := base.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	bad := []func(*Config){
		func(c *Config) { c.Thresholds.GCLow = 90 },
		func(c *Config) { c.Thresholds.GCHigh = 101 },
		func(c *Config) { c.Thresholds.HomopolymerRun = -1 },
		func(c *Config) { c.Thresholds.PalindromeWindow = -2 },
		func(c *Config) { c.Output = "xml" },
		func(c *Config) { c.Threads = -1 },
	}
	for i, mut := range bad {
		c := base
		mut(&c)
		if err := c.Validate(); err == nil {
			t.Errorf("case %d: expected validation error for %+v", i, c)
		}
	}
}
