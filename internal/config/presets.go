package config

import (
	"sort"

	"github.com/san-kum/polymd/internal/pair"
)

func single(model string, params pair.Record) *Config {
	return &Config{
		Model:  model,
		Mode:   ModeNone,
		Coeffs: []Coeff{{A: DefaultType, B: DefaultType, Params: params}},
	}
}

var Presets = map[string]map[string]*Config{
	string(pair.KindPoly12): {
		"swap":     single(string(pair.KindPoly12), pair.Record{"v0": 1.0, "eps": 0.2, "scaledr_cut": 1.25}),
		"additive": single(string(pair.KindPoly12), pair.Record{"v0": 1.0, "eps": 0.0, "scaledr_cut": 1.25}),
	},
	string(pair.KindPoly18): {
		"default": single(string(pair.KindPoly18), pair.Record{"v0": 1.0, "eps": 0.0, "scaledr_cut": 1.25}),
	},
	string(pair.KindPoly10): {
		"default": single(string(pair.KindPoly10), pair.Record{"v0": 1.0, "eps": 0.0416667, "scaledr_cut": 1.48}),
	},
	string(pair.KindPolyLJ): {
		"swap": single(string(pair.KindPolyLJ), pair.Record{"v0": 1.0, "eps": 0.2, "scaledr_cut": 2.5}),
	},
	string(pair.KindPolyLJ106): {
		"default": single(string(pair.KindPolyLJ106), pair.Record{"v0": 1.0, "eps": 0.1, "scaledr_cut": 2.5}),
	},
	string(pair.KindGeneral): {
		"12-6": single(string(pair.KindGeneral), pair.Record{"v0": 1.0, "rcut": 2.5, "eps": 0.2, "m_expnt": 12, "n_expnt": 6}),
		"18-0": single(string(pair.KindGeneral), pair.Record{"v0": 1.0, "rcut": 1.25, "eps": 0.0, "m_expnt": 18, "n_expnt": 0}),
	},
	string(pair.KindYukawa): {
		"default": single(string(pair.KindYukawa), pair.Record{"v0": 10.0, "eps": 0.0, "scaledr_cut": 3.0, "kappa": 3.0}),
	},
	string(pair.KindLJ): {
		"default": {
			Model: string(pair.KindLJ), Mode: ModeShift, RCut: 2.5,
			Coeffs: []Coeff{{A: "A", B: "A", Params: pair.Record{"epsilon": 1.0, "sigma": 1.0, "alpha": 1.0}}},
		},
		"kob-andersen": {
			Model: string(pair.KindLJ), Mode: ModeShift, Types: []string{"A", "B"},
			Coeffs: []Coeff{
				{A: "A", B: "A", RCut: 2.5, Params: pair.Record{"epsilon": 1.0, "sigma": 1.0, "alpha": 1.0}},
				{A: "A", B: "B", RCut: 2.0, Params: pair.Record{"epsilon": 1.5, "sigma": 0.8, "alpha": 1.0}},
				{A: "B", B: "B", RCut: 2.2, Params: pair.Record{"epsilon": 0.5, "sigma": 0.88, "alpha": 1.0}},
			},
		},
	},
	string(pair.KindForceShiftedLJ): {
		"default": {
			Model: string(pair.KindForceShiftedLJ), Mode: ModeNone, RCut: 2.5,
			Coeffs: []Coeff{{A: "A", B: "A", Params: pair.Record{"epsilon": 1.0, "sigma": 1.0, "alpha": 1.0}}},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ListModels returns the models that have presets.
func ListModels() []string {
	models := make([]string, 0, len(Presets))
	for m := range Presets {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}
