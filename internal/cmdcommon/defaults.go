// Package cmdcommon provides shared defaults for the privgate command-line
// binaries.
package cmdcommon

import "os"

// DefaultConfigPath is the policy configuration consulted when no -config
// flag is given.
const DefaultConfigPath = "/etc/privgate/policy.toml"

// ConfigPathEnvVar overrides the default config path when set.
const ConfigPathEnvVar = "PRIVGATE_CONFIG"

// ResolveConfigPath picks the effective config path: the flag value wins,
// then the environment variable, then the built-in default.
func ResolveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(ConfigPathEnvVar); env != "" {
		return env
	}
	return DefaultConfigPath
}
