package ingestmodel_test

import (
	"testing"

	"github.com/katalvlaran/graphgen/ingestmodel"
	"github.com/stretchr/testify/require"
)

// TestHistogram_Buckets_Ordering is scenario S3 from spec.md §8: buckets
// sort by descending degree*count.
func TestHistogram_Buckets_Ordering(t *testing.T) {
	h := ingestmodel.Histogram{
		3: 5,
		1: 3,
		5: 2,
	}

	got := h.Buckets()

	// weight(3,5)=15, weight(5,2)=10, weight(1,3)=3 -> sorted: (3,5),(5,2),(1,3)
	require.Equal(t, []ingestmodel.Bucket{
		{Degree: 3, Count: 5},
		{Degree: 5, Count: 2},
		{Degree: 1, Count: 3},
	}, got)
}
