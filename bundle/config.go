package bundle

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes a bundle project, loaded from a yaml file.
//
// Example:
//
//	entries:
//	  - src/index.js
//	  - src/util.js
//	output: dist/bundle.js
type Config struct {
	// Entries are the input files, bundled in order.
	Entries []string `yaml:"entries"`
	// Output is the path the bundled result is written to.
	Output string `yaml:"output"`
}

// LoadConfig reads and validates a bundle project config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read bundle config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse bundle config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bundle config %q: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the config for structural problems.
func (c *Config) Validate() error {
	if len(c.Entries) == 0 {
		return fmt.Errorf("no entries configured")
	}
	for i, entry := range c.Entries {
		if entry == "" {
			return fmt.Errorf("entry %d is empty", i)
		}
	}
	if c.Output == "" {
		return fmt.Errorf("no output path configured")
	}
	return nil
}
