package transform

import "github.com/avetono/jsonbot/pkg/domain"

// MergeStats reports what one file contributed to a deduplicated merge.
type MergeStats struct {
	// Added counts elements whose key was unseen and that were appended.
	Added int

	// Skipped counts elements dropped as duplicates.
	Skipped int
}

// MergeInto appends to dst every element of src whose normalized key is not
// yet in seen, marking keys as it goes. The first occurrence of a key wins,
// so output order is stable by first occurrence across all merged files.
// seen must be non-nil and is mutated in place.
func MergeInto(dst domain.List, seen domain.KeySet, src domain.List) (domain.List, MergeStats) {
	var stats MergeStats
	for _, v := range src {
		if seen.Add(domain.NormalizeKey(v)) {
			dst = append(dst, v)
			stats.Added++
		} else {
			stats.Skipped++
		}
	}
	return dst, stats
}

// Concat appends all of src to dst, keeping duplicates and order. This is
// the named alternative to the deduplicated merge.
func Concat(dst domain.List, src domain.List) domain.List {
	return append(dst, src...)
}
