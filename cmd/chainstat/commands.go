package main

import (
	"fmt"

	"github.com/homier/chainmap/internal/analysis"
	"github.com/homier/chainmap/internal/store"
)

type Collisions struct {
	Elements int `short:"n" long:"elements" default:"1000" description:"number of keys to insert"`
	Size     int `short:"s" long:"size" default:"100" description:"number of buckets"`
}

func (x *Collisions) Execute(args []string) error {
	log.Infof("inserting %d keys into %d buckets", x.Elements, x.Size)

	s, err := analysis.Collisions(x.Elements, x.Size)
	if err != nil {
		return err
	}

	if err := record("collisions", s); err != nil {
		return err
	}

	if opts.JSON {
		return writeJSON(s)
	}

	printSummary(s)

	return nil
}

type Sizes struct{}

func (x *Sizes) Execute(args []string) error {
	summaries, err := analysis.SizeSweep(analysis.DefaultConfigs)
	if err != nil {
		return err
	}

	if err := record("sizes", summaries); err != nil {
		return err
	}

	if opts.JSON {
		return writeJSON(summaries)
	}

	printSizes(summaries)

	return nil
}

type LoadFactor struct {
	Elements int       `short:"n" long:"elements" default:"1000" description:"number of keys to insert"`
	Alphas   []float64 `short:"a" long:"alpha" description:"load factors to test, repeatable (default: 0.5 1 2 5 10)"`
}

func (x *LoadFactor) Execute(args []string) error {
	alphas := x.Alphas
	if len(alphas) == 0 {
		alphas = analysis.DefaultAlphas
	}

	for _, a := range alphas {
		if a <= 0 {
			return fmt.Errorf("load factor must be positive, got %g", a)
		}
	}

	timings, err := analysis.LoadFactorSweep(ctx, x.Elements, alphas)
	if err != nil {
		return err
	}

	if err := record("loadfactor", timings); err != nil {
		return err
	}

	if opts.JSON {
		return writeJSON(timings)
	}

	printLoadFactor(x.Elements, timings)

	return nil
}

type Ops struct {
	Elements []int `short:"n" long:"elements" description:"element counts to test, repeatable (default: 100 1000 10000 100000)"`
}

func (x *Ops) Execute(args []string) error {
	ns := x.Elements
	if len(ns) == 0 {
		ns = analysis.DefaultOpSizes
	}

	timings, err := analysis.OperationSweep(ctx, ns)
	if err != nil {
		return err
	}

	if err := record("ops", timings); err != nil {
		return err
	}

	if opts.JSON {
		return writeJSON(timings)
	}

	printOps(timings)

	return nil
}

type Runs struct {
	Kind string `short:"k" long:"kind" description:"only list runs of this kind [collisions, sizes, loadfactor, ops]"`
}

func (x *Runs) Execute(args []string) error {
	if opts.DB == "" {
		return fmt.Errorf("runs needs --db")
	}

	st, err := store.Open(ctx, opts.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List(ctx, x.Kind)
	if err != nil {
		return err
	}

	if opts.JSON {
		views, err := runViews(runs)
		if err != nil {
			return err
		}

		return writeJSON(views)
	}

	printRuns(runs)

	return nil
}

// Saves the report when --db is set.
func record(kind string, report any) error {
	if opts.DB == "" {
		return nil
	}

	st, err := store.Open(ctx, opts.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	id, err := st.Save(ctx, kind, report)
	if err != nil {
		return err
	}

	log.Noticef("recorded %s report as run %d", kind, id)

	return nil
}
