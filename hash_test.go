package chainmap

import (
	"hash/maphash"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHash(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestBucketIndex(t *testing.T) {
	tests := []struct {
		name  string
		input uint64
		size  int
		want  int
	}{
		{
			name:  "Zero value",
			input: 0,
			size:  10,
			want:  0,
		},
		{
			name:  "Below size",
			input: 7,
			size:  10,
			want:  7,
		},
		{
			name:  "Wraps",
			input: 23,
			size:  10,
			want:  3,
		},
		{
			name:  "Single bucket",
			input: 0xABCD1234567890EF,
			size:  1,
			want:  0,
		},
		{
			// Would be negative if reduced as a signed integer.
			name:  "Max uint64",
			input: math.MaxUint64,
			size:  10,
			want:  5,
		},
		{
			name:  "High bit set",
			input: 1 << 63,
			size:  7,
			want:  int((uint64(1) << 63) % 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BucketIndex(tt.input, tt.size)

			require.Equal(t, tt.want, got)
			require.GreaterOrEqual(t, got, 0)
			require.Less(t, got, tt.size)
		})
	}
}
