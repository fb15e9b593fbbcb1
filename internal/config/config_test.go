package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/bigint"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bigcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	f, err := c.Flavor()
	require.NoError(t, err)
	assert.Equal(t, bigint.Default, f)
	s, err := c.ConvStrategy()
	require.NoError(t, err)
	assert.Equal(t, bigint.Horner, s)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
base: 3
strategy: division
difftest:
  cases: 50
  seed: 42
  mul: true
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), c.Base)
	assert.Equal(t, "division", c.Strategy)
	assert.Equal(t, 50, c.DiffTest.Cases)
	assert.Equal(t, int64(42), c.DiffTest.Seed)
	assert.True(t, c.DiffTest.Mul)
	// unset keys keep their defaults
	assert.Equal(t, DefaultMaxLen, c.DiffTest.MaxLen)
	assert.Equal(t, DefaultWorkers, c.DiffTest.Workers)

	f, err := c.Flavor()
	require.NoError(t, err)
	assert.Equal(t, bigint.Ternary, f)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"unknown key", "bases: 3\n", "field bases not found"},
		{"invalid base", "base: 1\n", "invalid target base"},
		{"base too large", "base: 4294967297\n", "invalid target base"},
		{"invalid strategy", "strategy: newton\n", "unknown conversion strategy"},
		{"no workers", "difftest:\n  workers: 0\n", "workers"},
		{"malformed", "base: [\n", "parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := Load(writeFile(t, "strategy: newton\n"))
	assert.ErrorIs(t, err, bigint.ErrUnknownStrategy)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
