package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/homier/chainmap/internal/analysis"
	"github.com/homier/chainmap/internal/store"
	"github.com/sugawarayuuta/sonnet"
)

func writeJSON(v any) error {
	b, err := sonnet.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s\n", b)

	return err
}

func qualityColor(q analysis.Quality) func(a ...any) string {
	switch q {
	case analysis.Excellent:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	case analysis.Good:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func printSummary(s analysis.Summary) {
	fmt.Fprintf(stdout, "elements: %d\nsize: %d\nload factor: %.2f\n\n", s.Count, s.Size, s.LoadFactor)

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTRIES/BUCKET\tBUCKETS\tPERCENT")
	for _, b := range s.Bands {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", b.Label, b.Buckets, b.Percent)
	}
	tw.Flush()

	fmt.Fprintf(stdout, "\nfullest bucket: %d\n", s.Max)
	fmt.Fprintf(stdout, "emptiest bucket: %d\n", s.Min)
	fmt.Fprintf(stdout, "mean: %.2f\n", s.Mean)
	fmt.Fprintf(stdout, "stddev: %.2f (%.1f%% of the mean)\n", s.StdDev, s.Ratio*100)
	fmt.Fprintf(stdout, "empty buckets: %d\n", s.EmptyBuckets)
	fmt.Fprintf(stdout, "within ±50%% of the mean: %.1f%%\n", s.WithinHalfMean)
	fmt.Fprintf(stdout, "quality: %s\n", qualityColor(s.Quality)(s.Quality))
}

func printSizes(summaries []analysis.Summary) {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ELEMENTS\tSIZE\tALPHA\tSTDDEV/MEAN\tQUALITY")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.2f\t%s\n",
			s.Count, s.Size, s.LoadFactor, s.Ratio, qualityColor(s.Quality)(s.Quality))
	}
	tw.Flush()
}

func printLoadFactor(n int, timings []analysis.Timing) {
	fmt.Fprintf(stdout, "elements: %d\n\n", n)

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALPHA\tSIZE\tINSERT (µs)\tSEARCH (µs)\tMEAN CHAIN")
	for _, t := range timings {
		fmt.Fprintf(tw, "%.1f\t%d\t%.4f\t%.4f\t%.2f\n",
			t.Alpha, t.Size, t.InsertMicros, t.SearchMicros, t.MeanChain)
	}
	tw.Flush()
}

func printOps(timings []analysis.OpTiming) {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ELEMENTS\tSIZE\tINSERT (µs)\tSEARCH (µs)\tDELETE (µs)")
	for _, t := range timings {
		fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f\t%.4f\n",
			t.Elements, t.Size, t.InsertMicros, t.SearchMicros, t.DeleteMicros)
	}
	tw.Flush()
}

type runView struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Report    any       `json:"report"`
}

func runViews(runs []store.Run) ([]runView, error) {
	views := make([]runView, 0, len(runs))

	for _, r := range runs {
		v := runView{ID: r.ID, Kind: r.Kind, CreatedAt: r.CreatedAt}
		if err := r.Decode(&v.Report); err != nil {
			return nil, fmt.Errorf("decode run %d: %w", r.ID, err)
		}

		views = append(views, v)
	}

	return views, nil
}

func printRuns(runs []store.Run) {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tCREATED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.ID, r.Kind, r.CreatedAt.Format(time.RFC3339))
	}
	tw.Flush()
}
