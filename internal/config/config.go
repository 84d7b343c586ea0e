// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dnacode-core/practicality"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. DNACODE_ANALYZE_GC_LOW=25.
const EnvPrefix = "DNACODE"

// Keys understood in config files and the environment.
const (
	KeyHomopolymerRun   = "analyze.homopolymer_run"
	KeyGCLow            = "analyze.gc_low"
	KeyGCHigh           = "analyze.gc_high"
	KeyPalindromeWindow = "analyze.palindrome_window"
	KeyOutput           = "output.format"
	KeyThreads          = "output.threads"
	KeyQuiet            = "quiet"
)

// Config is the resolved configuration shared by dnacode and dnacode-shell.
type Config struct {
	Thresholds practicality.Thresholds
	Output     string
	Threads    int
	Quiet      bool

	// File is the config file that was read, if any.
	File string
}

func setDefaults(v *viper.Viper) {
	d := practicality.DefaultThresholds
	v.SetDefault(KeyHomopolymerRun, d.HomopolymerRun)
	v.SetDefault(KeyGCLow, d.GCLow)
	v.SetDefault(KeyGCHigh, d.GCHigh)
	v.SetDefault(KeyPalindromeWindow, d.PalindromeWindow)
	v.SetDefault(KeyOutput, "text")
	v.SetDefault(KeyThreads, 0)
	v.SetDefault(KeyQuiet, false)
}

// Load resolves defaults, then the config file, then DNACODE_* variables.
// An empty path looks for "dnacode.{yaml,toml,json,…}" in the user config
// directory and silently skips it when absent; an explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.SetConfigName("dnacode")
		v.AddConfigPath(filepath.Join(dir, "dnacode"))
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	c := Config{
		Thresholds: practicality.Thresholds{
			HomopolymerRun:   v.GetInt(KeyHomopolymerRun),
			GCLow:            v.GetFloat64(KeyGCLow),
			GCHigh:           v.GetFloat64(KeyGCHigh),
			PalindromeWindow: v.GetInt(KeyPalindromeWindow),
		},
		Output:  strings.ToLower(v.GetString(KeyOutput)),
		Threads: v.GetInt(KeyThreads),
		Quiet:   v.GetBool(KeyQuiet),
		File:    v.ConfigFileUsed(),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges. A run length or palindrome window of 0 disables that check.
func (c Config) Validate() error {
	th := c.Thresholds
	if th.HomopolymerRun < 0 {
		return fmt.Errorf("%s must be ≥ 0", KeyHomopolymerRun)
	}
	if th.PalindromeWindow < 0 {
		return fmt.Errorf("%s must be ≥ 0", KeyPalindromeWindow)
	}
	if th.GCLow < 0 || th.GCHigh > 100 || th.GCLow > th.GCHigh {
		return fmt.Errorf("GC thresholds must satisfy 0 ≤ %s ≤ %s ≤ 100 (got %g, %g)", KeyGCLow, KeyGCHigh, th.GCLow, th.GCHigh)
	}
	switch c.Output {
	case "text", "json", "jsonl", "fasta":
	default:
		return fmt.Errorf("invalid %s %q", KeyOutput, c.Output)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%s must be ≥ 0", KeyThreads)
	}
	return nil
}
