package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/homier/chainmap"
)

var (
	DefaultAlphas  = []float64{0.5, 1, 2, 5, 10}
	DefaultN       = 1000
	DefaultOpSizes = []int{100, 1000, 10000, 100000}
)

// Timing is the per-operation cost of a table at a given load factor.
type Timing struct {
	Alpha        float64 `json:"alpha"`
	Size         int     `json:"size"`
	LoadFactor   float64 `json:"load_factor"`
	InsertMicros float64 `json:"insert_us"`
	SearchMicros float64 `json:"search_us"`
	// Mean length of the non-empty chains.
	MeanChain float64 `json:"mean_chain"`
}

// For every alpha, fills a table sized for that load factor with n int
// keys and times inserts and searches.
func LoadFactorSweep(ctx context.Context, n int, alphas []float64) ([]Timing, error) {
	timings := make([]Timing, 0, len(alphas))

	for _, alpha := range alphas {
		if err := ctx.Err(); err != nil {
			return timings, err
		}

		tm, err := chainmap.New[int, int](chainmap.SizeForLoadFactor(n, alpha))
		if err != nil {
			return timings, fmt.Errorf("alpha %g: %w", alpha, err)
		}

		start := time.Now()
		for i := range n {
			tm.Insert(i, i*2)
		}
		insert := time.Since(start)

		start = time.Now()
		for i := range n {
			if _, err := tm.Search(i); err != nil {
				return timings, fmt.Errorf("alpha %g: %w", alpha, err)
			}
		}
		search := time.Since(start)

		t := Timing{
			Alpha:        alpha,
			Size:         tm.Size(),
			LoadFactor:   tm.LoadFactor(),
			InsertMicros: perOp(insert, n),
			SearchMicros: perOp(search, n),
			MeanChain:    meanChain(tm.Distribution()),
		}

		log.Debugf("load factor %g: size=%d insert=%.4fus search=%.4fus chain=%.2f",
			alpha, t.Size, t.InsertMicros, t.SearchMicros, t.MeanChain)

		timings = append(timings, t)
	}

	return timings, nil
}

// OpTiming is the per-operation cost of filling and draining a table
// of n keys.
type OpTiming struct {
	Elements     int     `json:"elements"`
	Size         int     `json:"size"`
	InsertMicros float64 `json:"insert_us"`
	SearchMicros float64 `json:"search_us"`
	DeleteMicros float64 `json:"delete_us"`
}

// For every n, times n inserts, n searches and n deletes on a table
// of chainmap.TimingSize(n) buckets.
func OperationSweep(ctx context.Context, ns []int) ([]OpTiming, error) {
	timings := make([]OpTiming, 0, len(ns))

	for _, n := range ns {
		if err := ctx.Err(); err != nil {
			return timings, err
		}

		tm, err := chainmap.New[int, int](chainmap.TimingSize(n))
		if err != nil {
			return timings, fmt.Errorf("n %d: %w", n, err)
		}

		t := OpTiming{Elements: n, Size: tm.Size()}

		start := time.Now()
		for i := range n {
			tm.Insert(i, i*2)
		}
		t.InsertMicros = perOp(time.Since(start), n)

		start = time.Now()
		for i := range n {
			if _, err := tm.Search(i); err != nil {
				return timings, fmt.Errorf("n %d: %w", n, err)
			}
		}
		t.SearchMicros = perOp(time.Since(start), n)

		start = time.Now()
		for i := range n {
			if _, err := tm.Delete(i); err != nil {
				return timings, fmt.Errorf("n %d: %w", n, err)
			}
		}
		t.DeleteMicros = perOp(time.Since(start), n)

		log.Debugf("ops n=%d: insert=%.4fus search=%.4fus delete=%.4fus",
			n, t.InsertMicros, t.SearchMicros, t.DeleteMicros)

		timings = append(timings, t)
	}

	return timings, nil
}

func perOp(d time.Duration, n int) float64 {
	if n == 0 {
		return 0
	}

	return float64(d.Nanoseconds()) / float64(n) / 1e3
}

func meanChain(dist []int) float64 {
	var total, nonEmpty int
	for _, n := range dist {
		if n > 0 {
			total += n
			nonEmpty++
		}
	}

	if nonEmpty == 0 {
		return 0
	}

	return float64(total) / float64(nonEmpty)
}
