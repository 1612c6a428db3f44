package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/polymd/internal/analysis"
	"github.com/san-kum/polymd/internal/config"
	"github.com/san-kum/polymd/internal/driver"
	"github.com/san-kum/polymd/internal/pair"
	"github.com/san-kum/polymd/internal/storage"
	"github.com/san-kum/polymd/internal/tui"
)

func listModels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tNAME\tDIAMETER\tCHARGE\tSUMMARY")
	for _, kind := range pair.Kinds() {
		d, err := pair.Lookup(kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%v\t%s\n", d.Kind, d.Name, d.NeedsDiameter, d.NeedsCharge, d.Summary)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, m := range config.ListModels() {
			fmt.Printf("%s: %v\n", m, config.ListPresets(m))
		}
		return nil
	}
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for model: %s\n", args[0])
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	for _, p := range presets {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func evalPair(cmd *cobra.Command, args []string) error {
	p, title, err := resolveProbe(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("pair: %s\n", title)
	fmt.Printf("cutoff: %.6g\n\n", p.Cutoff())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "R\tENERGY\tFORCE_DIVR\tFORCE\tOK")
	for _, r := range radii {
		s := p.At(r)
		fmt.Fprintf(w, "%.6g\t%.10g\t%.10g\t%.10g\t%v\n", s.R, s.Energy, s.ForceDivR, s.Force(), s.OK)
	}
	return w.Flush()
}

func tabulate(cmd *cobra.Command, args []string) error {
	p, title, err := resolveProbe(cmd)
	if err != nil {
		return err
	}
	lo, hi, err := sampleRange(p)
	if err != nil {
		return err
	}

	samples := analysis.Tabulate(p, lo, hi, points)
	printPlot(title, samples)

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	meta := storage.NewMetadata(p, lo, hi, points)
	rep := analysis.Check(p)
	meta.Report = &rep
	id, err := st.Save(meta, samples)
	if err != nil {
		return err
	}
	logger.Info("table saved", "id", id, "model", meta.Model, "points", points)
	fmt.Printf("\ntable id: %s\n", id)
	return nil
}

func printPlot(title string, samples []analysis.Sample) {
	data := analysis.Energies(samples, clamp)
	caption := "V(r) " + title
	if force {
		data = analysis.Forces(samples, clamp)
		caption = "-dV/dr " + title
	}
	if len(data) < 2 {
		fmt.Println("not enough samples to plot")
		return
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Printf("\nr: %.4g .. %.4g (%d samples)\n", samples[0].R, samples[len(samples)-1].R, len(samples))

	lo, hi := analysis.Range(samples)
	fmt.Printf("energy: %.6g .. %.6g\n", lo, hi)
}

func checkPair(cmd *cobra.Command, args []string) error {
	p, title, err := resolveProbe(cmd)
	if err != nil {
		return err
	}
	rep := analysis.Check(p)

	fmt.Printf("pair: %s\n", title)
	fmt.Printf("cutoff: %.6g\n\n", rep.Cutoff)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "EPS\t|V|\t|F|")
	for _, j := range rep.Jumps {
		fmt.Fprintf(w, "%g\t%.3e\t%.3e\n", j.Eps, j.Energy, j.Force)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nenergy continuous: %v\n", rep.EnergyConverges)
	fmt.Printf("force continuous:  %v\n", rep.ForceConverges)
	fmt.Printf("max derivative error: %.3e\n", rep.MaxDerivError)
	return nil
}

func computeLattice(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	built, err := cfg.Build(dmax)
	if err != nil {
		return err
	}

	sys := driver.Lattice(driver.LatticeOptions{
		N:       cells,
		Spacing: spacing,
		Jitter:  jitter,
		NTypes:  len(built.Types),
		DMin:    dmin,
		DMax:    dmax,
		Seed:    seed,
	})

	w := workers
	if !cmd.Flags().Changed("workers") {
		w = settings.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("force pass", "model", cfg.Model, "particles", sys.Len(), "workers", w)
	start := time.Now()

	res, err := driver.Compute(ctx, sys, built.Table, driver.Options{Workers: w, EnergyShift: built.EnergyShift})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var net [3]float64
	var fmax float64
	for _, f := range res.Forces {
		for k := range net {
			net[k] += f[k]
		}
		fmax = math.Max(fmax, math.Sqrt(f[0]*f[0]+f[1]*f[1]+f[2]*f[2]))
	}

	fmt.Printf("model: %s\n", cfg.Model)
	fmt.Printf("particles: %d  box: %.4g\n", sys.Len(), sys.Box)
	fmt.Printf("completed in %v\n\n", elapsed)
	fmt.Printf("  energy:        %.10g\n", res.Energy)
	fmt.Printf("  energy/N:      %.10g\n", res.Energy/float64(sys.Len()))
	fmt.Printf("  virial:        %.10g\n", res.Virial)
	fmt.Printf("  pairs:         %d\n", res.Pairs/2)
	fmt.Printf("  max |F|:       %.6g\n", fmax)
	fmt.Printf("  net force:     (%.3e, %.3e, %.3e)\n", net[0], net[1], net[2])
	return nil
}

func listTables(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tables, err := st.List()
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		fmt.Println("no tables found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tDI\tDJ\tRANGE\tPOINTS")
	for _, t := range tables {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3g\t%.3g\t%.3g-%.3g\t%d\n",
			t.ID,
			t.Model,
			t.Timestamp.Format("2006-01-02 15:04:05"),
			t.Pair.Di,
			t.Pair.Dj,
			t.RMin,
			t.RMax,
			t.Points,
		)
	}
	return w.Flush()
}

func showTable(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("table: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("params: %v\n", meta.Params)
	fmt.Printf("pair: di=%g dj=%g qi=%g qj=%g  shift=%v\n\n", meta.Pair.Di, meta.Pair.Dj, meta.Pair.Qi, meta.Pair.Qj, meta.Shift)

	printPlot(meta.Name, samples)

	if meta.Report != nil {
		fmt.Printf("\nenergy continuous: %v  force continuous: %v  max derivative error: %.3e\n",
			meta.Report.EnergyConverges, meta.Report.ForceConverges, meta.Report.MaxDerivError)
	}
	return nil
}

func exportTable(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadTable(args[0])
	if err != nil {
		return err
	}

	if outFile == "" {
		return storage.EncodeJSON(os.Stdout, *meta, samples)
	}
	if err := storage.ExportJSON(outFile, *meta, samples); err != nil {
		return err
	}
	logger.Info("table exported", "id", meta.ID, "path", outFile)
	fmt.Printf("exported to %s\n", outFile)
	return nil
}

func explore(cmd *cobra.Command, args []string) error {
	p, title, err := resolveProbe(cmd)
	if err != nil {
		return err
	}
	lo, hi, err := sampleRange(p)
	if err != nil {
		return err
	}
	return tui.Run(tui.NewExplorer(title, p, lo, hi))
}
