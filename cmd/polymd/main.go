package main

import (
	"fmt"
	"os"

	"github.com/baditaflorin/l"
	"github.com/spf13/cobra"

	"github.com/san-kum/polymd/internal/config"
)

var (
	dataDir    string
	configFile string
	preset     string
	model      string
	overrides  map[string]string
	typeA      string
	typeB      string
	di, dj     float64
	qi, qj     float64
	dmax       float64
	shift      bool

	radii  []float64
	rmin   float64
	rmax   float64
	points int
	clamp  float64
	force  bool
	save   bool

	cells   int
	spacing float64
	jitter  float64
	dmin    float64
	seed    uint64
	workers int

	outFile string

	settings config.Settings
	logger   l.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "polymd",
		Short:         "polydisperse pair potential lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			settings, err = config.LoadSettings()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("data") {
				dataDir = settings.DataDir
			}
			logger, err = createLogger(settings)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".polymd", "data directory")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list pair potential models",
		RunE:  listModels,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate one pair at given distances",
		RunE:  evalPair,
	}
	pairFlags(evalCmd)
	evalCmd.Flags().Float64SliceVar(&radii, "r", []float64{1.0}, "distances to evaluate")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "tabulate and plot V(r) or F(r)",
		RunE:  tabulate,
	}
	pairFlags(tableCmd)
	rangeFlags(tableCmd)
	tableCmd.Flags().Float64Var(&clamp, "clamp", 10, "clamp plotted values to [-clamp, clamp], 0 disables")
	tableCmd.Flags().BoolVar(&force, "force", false, "plot -dV/dr instead of V")
	tableCmd.Flags().BoolVar(&save, "save", false, "store the table")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "check cutoff continuity and force consistency",
		RunE:  checkPair,
	}
	pairFlags(checkCmd)

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "all-pairs force pass on a generated lattice",
		RunE:  computeLattice,
	}
	configFlags(computeCmd)
	computeCmd.Flags().IntVar(&cells, "n", 6, "lattice cells per side")
	computeCmd.Flags().Float64Var(&spacing, "spacing", 1.1, "lattice spacing")
	computeCmd.Flags().Float64Var(&jitter, "jitter", 0.1, "random displacement as a fraction of spacing")
	computeCmd.Flags().Float64Var(&dmin, "dmin", 0.8, "smallest diameter")
	computeCmd.Flags().Float64Var(&dmax, "dmax", 1.2, "largest diameter")
	computeCmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	computeCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 uses POLYMD_WORKERS or all cpus)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored tables",
		RunE:  listTables,
	}

	showCmd := &cobra.Command{
		Use:   "show [table_id]",
		Short: "show a stored table",
		Args:  cobra.ExactArgs(1),
		RunE:  showTable,
	}
	showCmd.Flags().Float64Var(&clamp, "clamp", 10, "clamp plotted values to [-clamp, clamp], 0 disables")
	showCmd.Flags().BoolVar(&force, "force", false, "plot -dV/dr instead of V")

	exportCmd := &cobra.Command{
		Use:   "export [table_id]",
		Short: "export a stored table to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportTable,
	}
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive V(r) and F(r) explorer",
		RunE:  explore,
	}
	pairFlags(exploreCmd)
	rangeFlags(exploreCmd)

	rootCmd.AddCommand(modelsCmd, presetsCmd, evalCmd, tableCmd, checkCmd, computeCmd, listCmd, showCmd, exportCmd, exploreCmd)

	err := rootCmd.Execute()
	if err != nil {
		if logger != nil {
			logger.Error("command failed", "error", err)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	if logger != nil {
		logger.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func configFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&model, "model", config.DefaultModel, "pair potential model")
	cmd.Flags().StringToStringVar(&overrides, "set", nil, "override parameters of every pair, e.g. v0=2,eps=0.1")
	cmd.Flags().BoolVar(&shift, "shift", false, "shift energies to zero at the cutoff")
}

func pairFlags(cmd *cobra.Command) {
	configFlags(cmd)
	cmd.Flags().StringVar(&typeA, "a", "", "first particle type (default: first declared)")
	cmd.Flags().StringVar(&typeB, "b", "", "second particle type (default: --a)")
	cmd.Flags().Float64Var(&di, "di", 1.0, "first particle diameter")
	cmd.Flags().Float64Var(&dj, "dj", 1.0, "second particle diameter")
	cmd.Flags().Float64Var(&qi, "qi", 0, "first particle charge")
	cmd.Flags().Float64Var(&qj, "qj", 0, "second particle charge")
}

func rangeFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&rmin, "rmin", 0.8, "smallest distance")
	cmd.Flags().Float64Var(&rmax, "rmax", 0, "largest distance (default 1.1 x cutoff)")
	cmd.Flags().IntVar(&points, "points", 80, "number of samples")
}
