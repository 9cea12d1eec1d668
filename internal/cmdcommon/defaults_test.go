package cmdcommon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/env/policy.toml")
		assert.Equal(t, "/flag/policy.toml", ResolveConfigPath("/flag/policy.toml"))
	})

	t.Run("env over default", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/env/policy.toml")
		assert.Equal(t, "/env/policy.toml", ResolveConfigPath(""))
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		assert.Equal(t, DefaultConfigPath, ResolveConfigPath(""))
	})
}
