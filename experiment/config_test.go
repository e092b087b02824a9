package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, KindVarying, cfg.Sweep.Kind)
	assert.Len(t, cfg.Sweep.Points(), 11)
	assert.Equal(t, 1000, cfg.Graph.Nodes)
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
protocols:
  - id: Flooding
  - id: "2"
    fanout: 3
graph:
  nodes: 200
  require_connected: true
sweep:
  kind: churn
  start: 0
  finish: 1.05
  delta: 0.1
trials: 3
seed: 42
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Protocols, 2)
	assert.Equal(t, 3, cfg.Protocols[1].Fanout)
	assert.Equal(t, 200, cfg.Graph.Nodes)
	assert.True(t, cfg.Graph.RequireConnected)
	assert.Equal(t, 10.0, cfg.Graph.Radius, "unset keys keep their defaults")
	assert.Equal(t, KindChurn, cfg.Sweep.Kind)
	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, 10, cfg.GraphTrials)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := writeFile(t, "bad.yaml", "trials: 2\nunknown_key: 1\n")
	_, err = LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GOSSIPSIM_SEED", "7")
	t.Setenv("GOSSIPSIM_TRIALS", "4")
	t.Setenv("GOSSIPSIM_GRAPH_TRIALS", "not-a-number")
	t.Setenv("GOSSIPSIM_OUTPUT_DIR", "out")
	t.Setenv("GOSSIPSIM_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 4, cfg.Trials)
	assert.Equal(t, 10, cfg.GraphTrials, "unparsable overrides are ignored")
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no protocols", func(c *Config) { c.Protocols = nil }},
		{"unknown protocol", func(c *Config) { c.Protocols = []ProtocolSpec{{ID: "Epidemic"}} }},
		{"negative fanout", func(c *Config) { c.Protocols[0].Fanout = -1 }},
		{"zero nodes", func(c *Config) { c.Graph.Nodes = 0 }},
		{"tiny range", func(c *Config) { c.Graph.XRange = 0.5 }},
		{"unknown sweep", func(c *Config) { c.Sweep.Kind = "random" }},
		{"zero delta", func(c *Config) { c.Sweep.Delta = 0 }},
		{"reversed range", func(c *Config) { c.Sweep.Start, c.Sweep.Finish = 1, 0 }},
		{"too many points", func(c *Config) { c.Sweep.Delta = 1e-12 }},
		{"rate above one", func(c *Config) { c.Sweep.Values = []float64{0.5, 1.5} }},
		{"fractional fixed count", func(c *Config) {
			c.Sweep.FixedCount = true
			c.Sweep.Values = []float64{3600.5}
		}},
		{"fixed count outside varying", func(c *Config) {
			c.Sweep.Kind = KindChurn
			c.Sweep.FixedCount = true
		}},
		{"zero trials", func(c *Config) { c.Trials = 0 }},
		{"zero cells", func(c *Config) { c.Sweep.CellsX = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidate_FixedCountSweep(t *testing.T) {
	cfg := Default()
	cfg.Sweep.FixedCount = true
	cfg.Sweep.Values = []float64{3600, 3700, 3800, 3900, 4000, 4100, 4200}
	require.NoError(t, cfg.Validate())
}

func TestConfig_YAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99
	cfg.Sweep.Kind = KindBiased

	raw, err := cfg.YAML()
	require.NoError(t, err)
	back, err := LoadFromFile(writeFile(t, "rt.yaml", string(raw)))
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
