package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFactorSweep(t *testing.T) {
	timings, err := LoadFactorSweep(context.Background(), DefaultN, DefaultAlphas)
	require.NoError(t, err)
	require.Len(t, timings, len(DefaultAlphas))

	wantSizes := []int{2000, 1000, 500, 200, 100}

	for i, tm := range timings {
		assert.Equal(t, DefaultAlphas[i], tm.Alpha)
		assert.Equal(t, wantSizes[i], tm.Size)
		assert.Equal(t, DefaultAlphas[i], tm.LoadFactor)
		assert.GreaterOrEqual(t, tm.InsertMicros, 0.0)
		assert.GreaterOrEqual(t, tm.SearchMicros, 0.0)

		// Non-empty chains are at least as long as the average one.
		assert.GreaterOrEqual(t, tm.MeanChain, tm.LoadFactor)
	}
}

func TestLoadFactorSweep_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	timings, err := LoadFactorSweep(ctx, DefaultN, DefaultAlphas)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, timings)
}

func TestOperationSweep(t *testing.T) {
	timings, err := OperationSweep(context.Background(), []int{100, 1000})
	require.NoError(t, err)
	require.Len(t, timings, 2)

	assert.Equal(t, 100, timings[0].Elements)
	assert.Equal(t, 10, timings[0].Size)
	assert.Equal(t, 1000, timings[1].Elements)
	assert.Equal(t, 100, timings[1].Size)
}

func TestMeanChain(t *testing.T) {
	assert.Zero(t, meanChain([]int{0, 0}))
	assert.Equal(t, 3.0, meanChain([]int{0, 2, 4, 0}))
}
