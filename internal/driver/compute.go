package driver

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Options controls a force pass.
type Options struct {
	// Workers is the number of goroutines; <= 0 means runtime.NumCPU().
	Workers int
	// EnergyShift is handed to every evaluator.
	EnergyShift bool
	// MinChunk is the smallest number of rows given to one worker.
	// Defaults to 16.
	MinChunk int
}

func (o Options) workers(n int) int {
	w := o.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	minChunk := o.MinChunk
	if minChunk <= 0 {
		minChunk = 16
	}
	if limit := (n + minChunk - 1) / minChunk; w > limit {
		w = limit
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Result holds the accumulated output of one force pass.
type Result struct {
	Forces   [][3]float64
	Energies []float64
	Energy   float64
	Virial   float64
	// Pairs counts ordered pairs (i, j) that the evaluator accepted.
	Pairs int
}

// Compute evaluates every ordered pair of sys with the potentials in table.
func Compute(ctx context.Context, sys *System, table *Table, opts Options) (*Result, error) {
	if err := sys.Validate(table); err != nil {
		return nil, err
	}

	n := sys.Len()
	res := &Result{
		Forces:   make([][3]float64, n),
		Energies: make([]float64, n),
	}
	if n == 0 {
		return res, nil
	}

	virials := scratch.Get(n)
	defer scratch.Put(virials)

	workers := opts.workers(n)
	chunkSize := (n + workers - 1) / workers
	pairs := make([]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, n)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()

			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					errs[worker] = err
					return
				}
				pairs[worker] += computeRow(sys, table, i, opts.EnergyShift, res, virials)
			}
		}(w, start, end)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("driver: force pass interrupted: %w", err)
		}
	}

	for i := 0; i < n; i++ {
		res.Energy += res.Energies[i]
		res.Virial += virials[i]
	}
	for _, p := range pairs {
		res.Pairs += p
	}
	return res, nil
}

// computeRow accumulates every interaction of particle i into row i of res
// and virials and returns the number of accepted pairs.
func computeRow(sys *System, table *Table, i int, energyShift bool, res *Result, virials []float64) int {
	ri := sys.Positions[i]
	ti := sys.Types[i]

	var force [3]float64
	var energy, virial float64
	count := 0

	for j, rj := range sys.Positions {
		if j == i {
			continue
		}
		pot, rcutsq := table.Get(ti, sys.Types[j])
		if pot.IsZero() {
			continue
		}

		d := sys.delta(ri, rj)
		rsq := d[0]*d[0] + d[1]*d[1] + d[2]*d[2]
		if rsq > rcutsq {
			continue
		}

		r := pot.Eval(rsq, rcutsq, sys.attributes(pot, i, j), energyShift)
		if !r.OK {
			continue
		}

		force[0] += r.ForceDivR * d[0]
		force[1] += r.ForceDivR * d[1]
		force[2] += r.ForceDivR * d[2]
		energy += 0.5 * r.Energy
		virial += 0.5 * r.ForceDivR * rsq
		count++
	}

	res.Forces[i] = force
	res.Energies[i] = energy
	virials[i] = virial
	return count
}
