// Package analysis computes the empirical figures of a chained table:
// how evenly keys spread over the buckets, and what the load factor
// costs per operation.
//
// It only uses the read-only diagnostics of the table, never its buckets.
package analysis

import (
	"fmt"
	"math"
	"slices"

	"github.com/homier/chainmap"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("analysis")

// Distributor is what the analysis needs from a table.
type Distributor interface {
	Distribution() []int
	LoadFactor() float64
	Len() int
	Size() int
}

type Quality string

const (
	Excellent Quality = "excellent"
	Good      Quality = "good"
	Irregular Quality = "irregular"
)

// Classifies a distribution by its standard deviation relative to the mean.
func QualityOf(ratio float64) Quality {
	switch {
	case ratio < 0.5:
		return Excellent
	case ratio < 1.0:
		return Good
	default:
		return Irregular
	}
}

// Band counts the buckets holding between Min and Max entries.
// Max < 0 means no upper bound.
type Band struct {
	Label   string  `json:"label"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Buckets int     `json:"buckets"`
	Percent float64 `json:"percent"`
}

func (b Band) contains(n int) bool {
	return n >= b.Min && (b.Max < 0 || n <= b.Max)
}

var defaultBands = []Band{
	{Label: "0", Min: 0, Max: 0},
	{Label: "1-5", Min: 1, Max: 5},
	{Label: "6-10", Min: 6, Max: 10},
	{Label: "11-15", Min: 11, Max: 15},
	{Label: "16-20", Min: 16, Max: 20},
	{Label: ">20", Min: 21, Max: -1},
}

type Summary struct {
	Count        int     `json:"count"`
	Size         int     `json:"size"`
	LoadFactor   float64 `json:"load_factor"`
	Min          int     `json:"min"`
	Max          int     `json:"max"`
	Mean         float64 `json:"mean"`
	StdDev       float64 `json:"stddev"`
	EmptyBuckets int     `json:"empty_buckets"`
	Bands        []Band  `json:"bands"`

	// Percentage of buckets within ±50% of the mean.
	WithinHalfMean float64 `json:"within_half_mean"`
	// StdDev / Mean, 0 for an empty table.
	Ratio   float64 `json:"ratio"`
	Quality Quality `json:"quality"`
}

func (s Summary) String() string {
	return fmt.Sprintf("n=%d size=%d alpha=%.2f mean=%.2f stddev=%.2f ratio=%.2f quality=%s",
		s.Count, s.Size, s.LoadFactor, s.Mean, s.StdDev, s.Ratio, s.Quality)
}

func Summarize(d Distributor) Summary {
	dist := d.Distribution()

	s := Summary{
		Count:      d.Len(),
		Size:       d.Size(),
		LoadFactor: d.LoadFactor(),
		Bands:      slices.Clone(defaultBands),
	}

	if len(dist) == 0 {
		s.Quality = QualityOf(0)
		return s
	}

	s.Min, s.Max = slices.Min(dist), slices.Max(dist)

	var total int
	for _, n := range dist {
		total += n

		if n == 0 {
			s.EmptyBuckets++
		}

		for i := range s.Bands {
			if s.Bands[i].contains(n) {
				s.Bands[i].Buckets++
				break
			}
		}
	}

	s.Mean = float64(total) / float64(len(dist))

	var variance float64
	for _, n := range dist {
		diff := float64(n) - s.Mean
		variance += diff * diff
	}

	s.StdDev = math.Sqrt(variance / float64(len(dist)))

	lo, hi := s.Mean*0.5, s.Mean*1.5

	var within int
	for _, n := range dist {
		if float64(n) >= lo && float64(n) <= hi {
			within++
		}
	}

	s.WithinHalfMean = percent(within, len(dist))

	for i := range s.Bands {
		s.Bands[i].Percent = percent(s.Bands[i].Buckets, len(dist))
	}

	if s.Mean > 0 {
		s.Ratio = s.StdDev / s.Mean
	}

	s.Quality = QualityOf(s.Ratio)

	return s
}

// Config is one table layout of a size sweep.
type Config struct {
	Elements int `json:"elements"`
	Size     int `json:"size"`
}

var DefaultConfigs = []Config{
	{Elements: 100, Size: 10},
	{Elements: 500, Size: 50},
	{Elements: 1000, Size: 100},
	{Elements: 1000, Size: 200},
	{Elements: 1000, Size: 500},
}

// Inserts the keys "key0".."key{n-1}" into a table of the given size
// and summarizes the resulting distribution.
func Collisions(n, size int) (Summary, error) {
	tm, err := chainmap.New[string, int](size)
	if err != nil {
		return Summary{}, err
	}

	for i := range n {
		tm.Insert(fmt.Sprintf("key%d", i), i)
	}

	s := Summarize(tm)
	log.Debugf("collisions: %s", s)

	return s, nil
}

func SizeSweep(configs []Config) ([]Summary, error) {
	summaries := make([]Summary, 0, len(configs))

	for _, c := range configs {
		s, err := Collisions(c.Elements, c.Size)
		if err != nil {
			return nil, fmt.Errorf("config %d/%d: %w", c.Elements, c.Size, err)
		}

		summaries = append(summaries, s)
	}

	return summaries, nil
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return float64(part) / float64(whole) * 100
}
