// Package config loads scenario files for poissoncheck.
// A scenario file is YAML: a defaults block, a list of scenarios that
// inherit every field they leave unset, driver budgets and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/algorithm"
	"github.com/katalvlaran/poisson/harness"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid scenario file")

// Prefill policy names.
const (
	PrefillNone     = "none"
	PrefillNearLast = "near-last"
	PrefillCenter   = "center"
	PrefillOutside  = "outside"
)

// Precision names.
const (
	Float32 = "float32"
	Float64 = "float64"
)

// File is a parsed scenario file.
type File struct {
	// Defaults fills every field a scenario leaves at its zero value.
	Defaults Scenario `json:"defaults" yaml:"defaults"`

	// Scenarios are run in file order.
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`

	Budgets BudgetConfig  `json:"budgets" yaml:"budgets"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// Scenario describes one harness case and the families to run it against.
type Scenario struct {
	Name           string   `json:"name" yaml:"name"`
	Dim            int      `json:"dim" yaml:"dim"`
	Samples        int      `json:"samples" yaml:"samples"`
	RelativeRadius float64  `json:"relative_radius" yaml:"relative_radius"`
	Seeds          uint32   `json:"seeds" yaml:"seeds"`
	Type           string   `json:"type" yaml:"type"`
	Prefill        string   `json:"prefill" yaml:"prefill"`
	Expect         string   `json:"expect" yaml:"expect"`
	Algorithms     []string `json:"algorithms" yaml:"algorithms"`
	Precision      string   `json:"precision" yaml:"precision"`
}

// BudgetConfig bounds every seeded run.
type BudgetConfig struct {
	Pulls      int `json:"pulls" yaml:"pulls"`
	Injections int `json:"injections" yaml:"injections"`
}

// LoggingConfig configures poissoncheck's logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug" or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a File with sensible defaults and no scenarios.
func Default() *File {
	return &File{
		Defaults: Scenario{
			Dim:            2,
			Samples:        100,
			RelativeRadius: 0.8,
			Seeds:          5,
			Type:           poisson.Bounded.String(),
			Prefill:        PrefillNone,
			Expect:         harness.Unchecked.String(),
			Algorithms:     []string{"ebeida", "bridson"},
			Precision:      Float64,
		},
		Budgets: BudgetConfig{
			Pulls:      1_000_000,
			Injections: 10_000,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromFile reads, parses and validates a scenario file, then applies
// environment overrides.
func LoadFromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	ApplyEnvOverrides(f)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Parse decodes YAML over the defaults and fills every scenario from the
// defaults block. It does not validate.
func Parse(data []byte) (*File, error) {
	f := Default()
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	for i := range f.Scenarios {
		f.Scenarios[i] = f.Scenarios[i].inherit(f.Defaults)
		if f.Scenarios[i].Name == "" {
			f.Scenarios[i].Name = "scenario-" + strconv.Itoa(i+1)
		}
	}
	return f, nil
}

// inherit fills zero fields of s from d.
func (s Scenario) inherit(d Scenario) Scenario {
	if s.Dim == 0 {
		s.Dim = d.Dim
	}
	if s.Samples == 0 {
		s.Samples = d.Samples
	}
	if s.RelativeRadius == 0 {
		s.RelativeRadius = d.RelativeRadius
	}
	if s.Seeds == 0 {
		s.Seeds = d.Seeds
	}
	if s.Type == "" {
		s.Type = d.Type
	}
	if s.Prefill == "" {
		s.Prefill = d.Prefill
	}
	if s.Expect == "" {
		s.Expect = d.Expect
	}
	if len(s.Algorithms) == 0 {
		s.Algorithms = append([]string(nil), d.Algorithms...)
	}
	if s.Precision == "" {
		s.Precision = d.Precision
	}
	return s
}

// Validate checks every scenario, the budgets and the log level.
func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios", ErrInvalid)
	}
	for i, s := range f.Scenarios {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scenario %d (%s): %w", i+1, s.Name, err)
		}
	}
	if f.Budgets.Pulls < 1 || f.Budgets.Injections < 1 {
		return fmt.Errorf("%w: budgets must be positive, got pulls=%d injections=%d",
			ErrInvalid, f.Budgets.Pulls, f.Budgets.Injections)
	}
	validLevels := map[string]bool{"error": true, "warn": true, "info": true, "debug": true, "trace": true}
	if f.Logging.Level != "" && !validLevels[f.Logging.Level] {
		return fmt.Errorf("%w: log level %q (valid: error, warn, info, debug, trace)", ErrInvalid, f.Logging.Level)
	}
	return nil
}

// Validate checks one scenario; generator parameters are checked the way
// the generators check them.
func (s Scenario) Validate() error {
	typ, err := poisson.ParseType(s.Type)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := s.Params(typ).Resolve(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if s.Seeds == 0 {
		return fmt.Errorf("%w: seeds must be positive", ErrInvalid)
	}
	switch s.Prefill {
	case PrefillNone, PrefillNearLast, PrefillCenter:
	case PrefillOutside:
		if typ != poisson.Bounded {
			return fmt.Errorf("%w: prefill %q needs a bounded domain", ErrInvalid, s.Prefill)
		}
	default:
		return fmt.Errorf("%w: prefill %q (valid: none, near-last, center, outside)", ErrInvalid, s.Prefill)
	}
	if _, err := harness.ParseExpectation(s.Expect); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := s.Kinds(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if s.Precision != Float32 && s.Precision != Float64 {
		return fmt.Errorf("%w: precision %q (valid: float32, float64)", ErrInvalid, s.Precision)
	}
	return nil
}

// Params returns the generator parameters of s for domain typ.
func (s Scenario) Params(typ poisson.Type) poisson.Params {
	return poisson.WithSamples(s.Dim, s.Samples, s.RelativeRadius, typ)
}

// Kinds resolves the algorithm list; "all" expands to every family. Each
// family appears once, at its first mention.
func (s Scenario) Kinds() ([]algorithm.Kind, error) {
	var kinds []algorithm.Kind
	seen := make(map[algorithm.Kind]bool)
	add := func(k algorithm.Kind) {
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	for _, name := range s.Algorithms {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			for _, k := range algorithm.Kinds() {
				add(k)
			}
			continue
		}
		k, err := algorithm.ParseKind(name)
		if err != nil {
			return nil, err
		}
		add(k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("no algorithms")
	}
	return kinds, nil
}

// ApplyEnvOverrides applies POISSON_LOG_LEVEL, POISSON_SEEDS and
// POISSON_PULL_BUDGET to f. Unparsable values are ignored.
func ApplyEnvOverrides(f *File) {
	if v := os.Getenv("POISSON_LOG_LEVEL"); v != "" {
		f.Logging.Level = v
	}
	if v := os.Getenv("POISSON_SEEDS"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
			for i := range f.Scenarios {
				f.Scenarios[i].Seeds = uint32(n)
			}
		}
	}
	if v := os.Getenv("POISSON_PULL_BUDGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Budgets.Pulls = n
		}
	}
}
