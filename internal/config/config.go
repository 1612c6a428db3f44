package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/polymd/internal/pair"
)

const (
	DefaultModel = string(pair.KindPoly12)
	DefaultType  = "A"

	ModeNone  = "none"
	ModeShift = "shift"
)

// Config describes one pair-potential setup: a model shared by all type
// pairs, one coefficient block per unordered type pair and the global
// cutoff settings.
type Config struct {
	Model string `yaml:"model"`
	// Types fixes the type order; when empty it follows first appearance
	// in Coeffs.
	Types []string `yaml:"types,omitempty"`
	// RCut is the default pre-filter radius. For diameter-scaled models 0
	// means ScaledRcut * DMax.
	RCut float64 `yaml:"r_cut"`
	// DMax is the largest diameter the cutoffs must cover; 0 takes the
	// value handed to Build.
	DMax   float64 `yaml:"d_max"`
	Mode   string  `yaml:"mode"`
	Coeffs []Coeff `yaml:"coeffs"`
}

// Coeff is the parameter record of one type pair. Every key other than
// a, b and r_cut is a model parameter.
type Coeff struct {
	A      string      `yaml:"a"`
	B      string      `yaml:"b"`
	RCut   float64     `yaml:"r_cut,omitempty"`
	Params pair.Record `yaml:",inline"`
}

func DefaultConfig() *Config {
	return &Config{
		Model: DefaultModel,
		Mode:  ModeNone,
		Coeffs: []Coeff{
			{A: DefaultType, B: DefaultType, Params: pair.Record{}},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults. A document with its
// own coeffs replaces the default coefficient list.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Coeffs = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Coeffs == nil {
		cfg.Coeffs = DefaultConfig().Coeffs
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Types = append([]string(nil), c.Types...)
	out.Coeffs = make([]Coeff, len(c.Coeffs))
	for i, co := range c.Coeffs {
		co.Params = co.Params.Clone()
		out.Coeffs[i] = co
	}
	return &out
}

// Validate checks the configuration without a system at hand.
func (c *Config) Validate() error {
	_, err := c.Build(0)
	return err
}
