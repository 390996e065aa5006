package reconcile

import (
	"fmt"
	"sort"
)

// CompareCollections reconciles two unordered collections of line items that
// should represent the same multiset of facts.
//
// The cardinality check runs first: if the lengths differ, exactly one
// summary entry is added and no pairing is attempted, because positional
// pairing is meaningless across different lengths. Otherwise both
// collections are sorted by their natural key (product id, lexicographic
// ascending) and zipped positionally; comparePair runs on every pair without
// short-circuiting so the report is complete rather than first-failure.
//
// No order may contain two lines for the same product, so the sort yields a
// unique pairing. A duplicate-key collection is a data-setup bug upstream
// and is not given special treatment here.
//
// Empty collections compare equal. A non-nil error from comparePair means
// malformed input and aborts the whole comparison.
func CompareCollections[E, A any](
	r *Report,
	field string,
	expected []E,
	actual []A,
	expectedKey func(E) string,
	actualKey func(A) string,
	comparePair func(r *Report, field string, expected E, actual A) error,
) error {
	if len(expected) != len(actual) {
		r.Add(field, itemCount(len(expected)), itemCount(len(actual)))
		return nil
	}

	// Sort copies so the caller's snapshots stay untouched.
	se := make([]E, len(expected))
	copy(se, expected)
	sort.SliceStable(se, func(i, j int) bool {
		return expectedKey(se[i]) < expectedKey(se[j])
	})

	sa := make([]A, len(actual))
	copy(sa, actual)
	sort.SliceStable(sa, func(i, j int) bool {
		return actualKey(sa[i]) < actualKey(sa[j])
	})

	for i := range se {
		pairField := fmt.Sprintf("%s[%s]", field, expectedKey(se[i]))
		if err := comparePair(r, pairField, se[i], sa[i]); err != nil {
			return err
		}
	}
	return nil
}

func itemCount(n int) string {
	return fmt.Sprintf("%d item(s)", n)
}
