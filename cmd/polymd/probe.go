package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/san-kum/polymd/internal/analysis"
	"github.com/san-kum/polymd/internal/config"
	"github.com/san-kum/polymd/internal/pair"
)

// resolveConfig picks the configuration in increasing precedence: the
// --model defaults, a preset, a config file, then --set and --shift.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Model = model

	if preset != "" {
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(model))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if cmd.Flags().Changed("model") {
			cfg.Model = model
		}
	}

	if err := applyOverrides(cfg, overrides); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("shift") {
		cfg.Mode = config.ModeNone
		if shift {
			cfg.Mode = config.ModeShift
		}
	}
	return cfg, nil
}

// applyOverrides sets each key=value on every coefficient block. r_cut
// goes to the block's cutoff, anything else is a model parameter.
func applyOverrides(cfg *config.Config, set map[string]string) error {
	for key, raw := range set {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("--set %s: %w", key, err)
		}
		for i := range cfg.Coeffs {
			co := &cfg.Coeffs[i]
			if key == "r_cut" {
				co.RCut = v
				continue
			}
			if co.Params == nil {
				co.Params = pair.Record{}
			}
			co.Params[key] = v
		}
	}
	return nil
}

// resolveProbe builds the configuration and selects one type pair with the
// diameters and charges from the flags.
func resolveProbe(cmd *cobra.Command) (analysis.Probe, string, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return analysis.Probe{}, "", err
	}
	built, err := cfg.Build(math.Max(di, dj))
	if err != nil {
		return analysis.Probe{}, "", err
	}

	a, b := typeA, typeB
	if a == "" {
		a = built.Types[0]
	}
	if b == "" {
		b = a
	}
	ia, ok := built.TypeIndex(a)
	if !ok {
		return analysis.Probe{}, "", fmt.Errorf("unknown type: %s (available: %v)", a, built.Types)
	}
	ib, ok := built.TypeIndex(b)
	if !ok {
		return analysis.Probe{}, "", fmt.Errorf("unknown type: %s (available: %v)", b, built.Types)
	}

	pot, rcutsq := built.Table.Get(ia, ib)
	p := analysis.Probe{
		Pot:   pot,
		RCut:  math.Sqrt(rcutsq),
		Attr:  pair.Attributes{Di: di, Dj: dj, Qi: qi, Qj: qj},
		Shift: built.EnergyShift,
	}
	return p, fmt.Sprintf("%s (%s, %s)", cfg.Model, a, b), nil
}

// sampleRange returns [rmin, rmax], defaulting rmax to just past the cutoff.
func sampleRange(p analysis.Probe) (float64, float64, error) {
	hi := rmax
	if hi <= 0 {
		hi = 1.1 * p.Cutoff()
	}
	if math.IsInf(hi, 0) || math.IsNaN(hi) {
		return 0, 0, errors.New("no finite cutoff, pass --rmax")
	}
	if hi <= rmin {
		return 0, 0, fmt.Errorf("rmax %g must exceed rmin %g", hi, rmin)
	}
	return rmin, hi, nil
}
