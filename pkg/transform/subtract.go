package transform

import "github.com/avetono/jsonbot/pkg/domain"

// SubtractStats reports the outcome of a subtraction.
type SubtractStats struct {
	Original  int
	Removed   int
	Remaining int
}

// CollectKeys adds the normalized key of every element of src to set and
// returns the number of elements processed. Filter files are reduced to
// keys immediately; their element order and duplicates don't matter.
func CollectKeys(set domain.KeySet, src domain.List) int {
	for _, v := range src {
		set.Add(domain.NormalizeKey(v))
	}
	return len(src)
}

// Subtract returns the elements of main whose normalized key is not in
// filter, preserving main's order and any duplicates main carries that the
// filter does not name.
func Subtract(main domain.List, filter domain.KeySet) (domain.List, SubtractStats) {
	out := make(domain.List, 0, len(main))
	for _, v := range main {
		if !filter.Has(domain.NormalizeKey(v)) {
			out = append(out, v)
		}
	}
	return out, SubtractStats{
		Original:  len(main),
		Removed:   len(main) - len(out),
		Remaining: len(out),
	}
}
