package pngwire

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTag is the chunk type used when neither the config file nor the
// command line picks one: ancillary, private, safe to copy.
const DefaultTag = "ruSt"

// Config holds the CLI defaults read from an optional pngwire.yaml.
type Config struct {
	Tag  string `yaml:"tag"`
	Zstd bool   `yaml:"zstd"`
}

// LoadConfig reads path. A missing file is not an error and yields the
// defaults; a file that does not parse is.
func LoadConfig(path string) (Config, error) {
	cfg := Config{Tag: DefaultTag}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Tag == "" {
		cfg.Tag = DefaultTag
	}
	return cfg, nil
}
