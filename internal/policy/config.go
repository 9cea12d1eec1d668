package policy

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// UnmountEntry names one path the engine tracks for unmount bookkeeping,
// with host-defined flag bits.
type UnmountEntry struct {
	Path  string `toml:"path"`
	Flags uint32 `toml:"flags"`
}

// Config is the TOML-backed engine configuration.
type Config struct {
	// AllowUIDs lists real UIDs permitted to transition to uid 0.
	AllowUIDs []uint32 `toml:"allow_uids"`

	// InitScripts lists paths whose open during early boot marks init-script
	// processing.
	InitScripts []string `toml:"init_scripts"`

	// Unmount lists paths the engine reports for unmounting, with flags.
	Unmount []UnmountEntry `toml:"unmount"`
}

// LoadConfig parses and validates a TOML configuration.
func LoadConfig(content []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse policy config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfigFile reads and parses a TOML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read policy config %s: %w", path, err)
	}
	return LoadConfig(content)
}

func (c *Config) validate() error {
	seen := make(map[string]struct{}, len(c.Unmount))
	for _, entry := range c.Unmount {
		if entry.Path == "" {
			return ErrEmptyUnmountPath
		}
		if _, dup := seen[entry.Path]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateUnmountPath, entry.Path)
		}
		seen[entry.Path] = struct{}{}
	}
	return nil
}
