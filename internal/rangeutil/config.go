package rangeutil

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"haystack/internal/tz"
)

// configFile is the top-level haystack.toml document. [range].default_tz
// names the IANA-or-Haystack-short timezone used when a caller resolves
// "today"/"yesterday" without an explicit provider TZ.
type configFile struct {
	Range rangeConfig `toml:"range"`
}

type rangeConfig struct {
	DefaultTZ string `toml:"default_tz"`
}

// Config is the loaded, resolved form of haystack.toml.
type Config struct {
	DefaultLocation *time.Location
}

// LoadConfig reads path as a haystack.toml file and resolves its
// default_tz entry against the timezone table. A missing file is not an
// error — callers get the UTC default.
func LoadConfig(path string) (*Config, error) {
	var doc configFile
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{DefaultLocation: time.UTC}, nil
	}
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("rangeutil: parse %q: %w", path, err)
	}
	if doc.Range.DefaultTZ == "" {
		return &Config{DefaultLocation: time.UTC}, nil
	}
	loc, err := tz.Load(doc.Range.DefaultTZ)
	if err != nil {
		return nil, fmt.Errorf("rangeutil: resolve default_tz %q: %w", doc.Range.DefaultTZ, err)
	}
	return &Config{DefaultLocation: loc}, nil
}
