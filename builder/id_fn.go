package builder

import (
	"fmt"
	"strconv"
	"strings"
)

// IDFn labels the vertex with zero-based index idx. It must be pure: the same
// idx always yields the same label, and distinct indices distinct labels.
type IDFn func(idx int) string

// DecimalID labels vertices "0", "1", "2", ...
// Note that "10" sorts before "2", so the lowest ID is not always vertex 0.
func DecimalID(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixedID labels vertices prefix+"0", prefix+"1", ...
// Panics if idx < 0.
func PrefixedID(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedID: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// PaddedID labels the vertices of an n-vertex graph with zero-padded indices
// ("n007" for prefix "n", n = 1000, idx = 7), so lexicographic order matches
// index order. Panics if idx < 0.
func PaddedID(prefix string, n int) IDFn {
	width := len(strconv.Itoa(max(n-1, 0)))
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PaddedID: idx must be ≥ 0, got %d", idx))
		}
		s := strconv.Itoa(idx)
		if pad := width - len(s); pad > 0 {
			s = strings.Repeat("0", pad) + s
		}
		return prefix + s
	}
}

// WithDecimalIDs resets the ID scheme to DecimalID.
func WithDecimalIDs() BuilderOption {
	return WithIDScheme(DecimalID)
}

// WithPrefixedIDs sets the ID scheme to PrefixedID(prefix).
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixedID(prefix))
}

// WithPaddedIDs sets the ID scheme to PaddedID(prefix, n).
func WithPaddedIDs(prefix string, n int) BuilderOption {
	return WithIDScheme(PaddedID(prefix, n))
}
