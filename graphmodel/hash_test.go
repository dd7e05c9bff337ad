package graphmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUniversalHash_S2ScenarioPermutation reproduces spec.md §8 scenario
// S2: S=7, smallest prime >= 7 is 7, a=3, b=2. The image of [0,7) under
// 3x+2 mod 7 must be {2,5,1,4,0,3,6}.
func TestUniversalHash_S2ScenarioPermutation(t *testing.T) {
	const p = 7
	const a = 3
	const b = 2

	want := []int64{2, 5, 1, 4, 0, 3, 6}
	got := make([]int64, p)
	for x := int64(0); x < p; x++ {
		got[x] = universalHash(a, x, b, p)
	}
	require.Equal(t, want, got)
}

// TestUniversalHash_IsPermutation is invariant 4 (spec.md §8): for a fixed
// a in [1,p-1], {a*x+b mod p : x in [0,p)} is a permutation of [0,p).
func TestUniversalHash_IsPermutation(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 101, 1009, 99991}
	for _, p := range primes {
		for _, a := range []int64{1, 2, p - 1} {
			if a < 1 || a >= p {
				continue
			}
			seen := make(map[int64]bool, p)
			for x := int64(0); x < p; x++ {
				y := universalHash(a, x, 5, p)
				require.GreaterOrEqual(t, y, int64(0))
				require.Less(t, y, p)
				require.False(t, seen[y], "collision at p=%d a=%d x=%d", p, a, x)
				seen[y] = true
			}
			require.Len(t, seen, int(p))
		}
	}
}

func TestNextPrime(t *testing.T) {
	cases := []struct {
		n, want int64
	}{
		{1, 2}, {2, 2}, {3, 3}, {4, 5}, {7, 7}, {8, 11}, {10, 11}, {11, 11},
	}
	for _, c := range cases {
		require.Equal(t, c.want, nextPrime(c.n), "nextPrime(%d)", c.n)
	}
}
