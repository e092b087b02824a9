package experiment

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance.
var validate = validator.New()

// Config describes one sweep over one or more protocol variants.
type Config struct {
	// Protocols lists the variants to simulate; each gets its own result file.
	Protocols []ProtocolSpec `json:"protocols" yaml:"protocols" validate:"required,min=1,dive"`

	// Graph configures the random geometric graph drawn for every trial group.
	Graph GraphConfig `json:"graph" yaml:"graph"`

	// Sweep selects the swept parameter and the fixed companions.
	Sweep SweepConfig `json:"sweep" yaml:"sweep"`

	// Trials is the number of graphs drawn per sweep point.
	Trials int `json:"trials" yaml:"trials" validate:"min=1"`

	// GraphTrials is the number of trials run on each drawn graph.
	GraphTrials int `json:"graph_trials" yaml:"graph_trials" validate:"min=1"`

	// TTL is the hop budget of the distance table search.
	TTL int `json:"ttl" yaml:"ttl" validate:"gte=0"`

	// MaxHops aborts a trial that is still propagating after this many hops.
	MaxHops int `json:"max_hops" yaml:"max_hops" validate:"min=1"`

	// Seed fixes every random stream of the run; 0 draws a fresh time seed.
	Seed int64 `json:"seed" yaml:"seed"`

	// Output configures where results and metrics go.
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging configures the operational log.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// ProtocolSpec names one protocol variant.
type ProtocolSpec struct {
	// ID is "Flooding", "FFG" or "GMBC", or the numeric aliases "0", "1", "2".
	ID string `json:"id" yaml:"id" validate:"required,oneof=Flooding FFG GMBC 0 1 2"`

	// Fanout is the per-hop forward budget of FFG and GMBC; ignored by Flooding.
	Fanout int `json:"fanout" yaml:"fanout" validate:"gte=0"`
}

// GraphConfig configures the random geometric graph.
type GraphConfig struct {
	Nodes  int     `json:"nodes" yaml:"nodes" validate:"min=1"`
	Radius float64 `json:"radius" yaml:"radius" validate:"gte=0"`
	XRange float64 `json:"x_range" yaml:"x_range" validate:"gte=1"`
	YRange float64 `json:"y_range" yaml:"y_range" validate:"gte=1"`

	// RequireConnected redraws the graph until it is connected.
	RequireConnected bool `json:"require_connected" yaml:"require_connected"`

	// MaxAttempts bounds the redraws when RequireConnected is set.
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts" validate:"min=1"`

	// IDPrefix is prepended to the decimal vertex index ("" keeps "0","1",...).
	IDPrefix string `json:"id_prefix,omitempty" yaml:"id_prefix,omitempty" validate:"max=16"`

	// PadIDs zero-pads vertex indices so that the lowest ID, the default
	// message source, is vertex 0.
	PadIDs bool `json:"pad_ids" yaml:"pad_ids"`
}

// SweepConfig selects the swept parameter and its range.
type SweepConfig struct {
	// Kind is one of varying, biased, churn, update.
	Kind Kind `json:"kind" yaml:"kind" validate:"required,oneof=varying biased churn update"`

	// Start, Finish and Delta describe the inclusive sweep range.
	Start  float64 `json:"start" yaml:"start"`
	Finish float64 `json:"finish" yaml:"finish"`
	Delta  float64 `json:"delta" yaml:"delta" validate:"gt=0"`

	// Values, when set, replaces the Start/Finish/Delta range.
	Values []float64 `json:"values,omitempty" yaml:"values,omitempty"`

	// FixedCount makes a varying sweep toggle exactly N edges per pass,
	// with N taken from the sweep values.
	FixedCount bool `json:"fixed_count" yaml:"fixed_count"`

	// VaryingRate is the fixed edge churn rate of the biased and update sweeps.
	VaryingRate float64 `json:"varying_rate" yaml:"varying_rate" validate:"gte=0,lte=1"`

	// UpdateRate is the GMBC table refresh rate outside the update sweep.
	UpdateRate float64 `json:"update_rate" yaml:"update_rate" validate:"gte=0,lte=1"`

	// CellsX and CellsY lay the checkerboard of the biased sweep.
	CellsX int `json:"cells_x" yaml:"cells_x" validate:"min=1"`
	CellsY int `json:"cells_y" yaml:"cells_y" validate:"min=1"`
}

// OutputConfig configures the result files.
type OutputConfig struct {
	// Dir receives one CSV per protocol; "" disables CSV output.
	Dir string `json:"dir" yaml:"dir"`

	// MetricsFile receives the Prometheus text dump; "" disables it.
	MetricsFile string `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty"`
}

// LoggingConfig configures the operational log.
type LoggingConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `json:"level" yaml:"level" validate:"omitempty,oneof=trace debug info warn warning error"`

	// Format is "console" or "json".
	Format string `json:"format" yaml:"format" validate:"omitempty,oneof=console json"`
}

// Default returns the configuration of the edge-churn sweep: 1000 nodes
// on a 150×150 plane with radius 10, rates 0.0 to 1.0 in steps of 0.1,
// GMBC and FFG with fanout 4.
func Default() *Config {
	return &Config{
		Protocols: []ProtocolSpec{
			{ID: "GMBC", Fanout: 4},
			{ID: "FFG", Fanout: 4},
		},
		Graph: GraphConfig{
			Nodes:            1000,
			Radius:           10,
			XRange:           150,
			YRange:           150,
			RequireConnected: false,
			MaxAttempts:      100,
		},
		Sweep: SweepConfig{
			Kind:        KindVarying,
			Start:       0,
			Finish:      1,
			Delta:       0.1,
			VaryingRate: 0.2,
			UpdateRate:  1,
			CellsX:      4,
			CellsY:      4,
		},
		Trials:      50,
		GraphTrials: 10,
		TTL:         1,
		MaxHops:     10000,
		Output: OutputConfig{
			Dir: "result",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load resolves a configuration: defaults, then the YAML file at path (if
// path is non-empty), then GOSSIPSIM_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
// Unknown keys are rejected.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks struct tags and the cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if len(c.Sweep.Values) == 0 && c.Sweep.Finish < c.Sweep.Start {
		return fmt.Errorf("%w: sweep finish %g < start %g", ErrInvalidConfig, c.Sweep.Finish, c.Sweep.Start)
	}
	if len(c.Sweep.Values) == 0 {
		if n := c.Sweep.rangeCount(); n > MaxSweepPoints {
			return fmt.Errorf("%w: sweep range spans %g points, more than %d", ErrInvalidConfig, n, MaxSweepPoints)
		}
	}
	if c.Sweep.FixedCount && c.Sweep.Kind != KindVarying {
		return fmt.Errorf("%w: fixed_count applies to the varying sweep only", ErrInvalidConfig)
	}
	for _, v := range c.Sweep.Points() {
		if err := c.Sweep.checkPoint(v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}

	return nil
}

// YAML renders the configuration as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// formatValidationError turns validator errors into one readable message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GOSSIPSIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	if v := os.Getenv("GOSSIPSIM_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Trials = n
		}
	}
	if v := os.Getenv("GOSSIPSIM_GRAPH_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.GraphTrials = n
		}
	}
	if v := os.Getenv("GOSSIPSIM_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("GOSSIPSIM_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
