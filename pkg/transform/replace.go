package transform

import (
	"encoding/json"
	"strings"

	"github.com/avetono/jsonbot/pkg/domain"
)

// Replace performs a literal (non-regex) substring replacement of find with
// repl across every element of l and returns the new list plus the number
// of elements touched (one per element, however many matches it held).
//
// String elements are replaced on their decoded text. Compound elements are
// serialized to their canonical form, replaced there, and re-parsed; when
// the substituted text no longer parses as JSON the element is kept
// unchanged and not counted. That fallback is deliberate: a bad
// substitution degrades to a no-op for that element, never aborts the
// batch. Callers must validate find upstream; an empty find is a no-op
// here.
func Replace(l domain.List, find, repl string) (domain.List, int) {
	if find == "" {
		return l, 0
	}

	out := make(domain.List, 0, len(l))
	count := 0
	for _, v := range l {
		switch v.Kind() {
		case domain.KindString:
			s, ok := v.AsString()
			if !ok || !strings.Contains(s, find) {
				out = append(out, v)
				continue
			}
			count++
			if replaced := strings.ReplaceAll(s, find, repl); replaced != s {
				out = append(out, domain.StringValue(replaced))
			} else {
				// find == repl: keep the original bytes untouched.
				out = append(out, v)
			}

		case domain.KindArray, domain.KindObject:
			canon, err := domain.Canonical(v)
			if err != nil || !strings.Contains(string(canon), find) {
				out = append(out, v)
				continue
			}
			replaced := strings.ReplaceAll(string(canon), find, repl)
			if replaced == string(canon) {
				out = append(out, v)
				count++
				continue
			}
			if !json.Valid([]byte(replaced)) {
				// Substitution broke the structure; leave the element as it was.
				out = append(out, v)
				continue
			}
			out = append(out, domain.Value(replaced))
			count++

		case domain.KindNull, domain.KindBool, domain.KindNumber:
			out = append(out, v)
		}
	}
	return out, count
}
