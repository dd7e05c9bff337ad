package ingestmodel

import "sort"

// stableSortBuckets is the sort.Slice fallback for histograms with enough
// distinct degree values that the insertion sort in Buckets would be
// wasteful; kept in its own file since it is the one place this package
// reaches for the standard sort package.
func stableSortBuckets(b []Bucket) {
	sort.Slice(b, func(i, j int) bool {
		return less(b[i], b[j])
	})
}
