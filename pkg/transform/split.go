package transform

import "github.com/avetono/jsonbot/pkg/domain"

// Split slices l into consecutive chunks of ceil(len(l)/n) elements.
// Every element lands in exactly one part, parts preserve relative order,
// and no empty part is emitted, so fewer than n parts come back when
// n > len(l). An empty list is domain.ErrEmptyInput, n < 1 is
// domain.ErrInvalidSplitCount.
func Split(l domain.List, n int) ([]domain.List, error) {
	if n < 1 {
		return nil, domain.ErrInvalidSplitCount
	}
	if len(l) == 0 {
		return nil, domain.ErrEmptyInput
	}

	chunk := (len(l) + n - 1) / n
	parts := make([]domain.List, 0, n)
	for start := 0; start < len(l); start += chunk {
		end := start + chunk
		if end > len(l) {
			end = len(l)
		}
		parts = append(parts, l[start:end])
	}
	return parts, nil
}
