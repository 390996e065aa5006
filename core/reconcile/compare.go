package reconcile

import (
	"strings"
)

// Field comparators. Each one applies the correct normalizer to both raw
// values and appends a single Mismatch to the report when the canonical
// values differ. Comparators are pure and total: a disagreement never
// produces an error, only input that cannot be normalized does.

// canonicalTimeLayout is the display form for normalized instants in
// mismatch entries.
const canonicalTimeLayout = "2006-01-02T15:04:05.999999Z07:00"

// CompareString compares two string fields after trimming surrounding
// whitespace. There is no implicit coercion.
func CompareString(r *Report, field, expected, actual string) {
	e := strings.TrimSpace(expected)
	a := strings.TrimSpace(actual)
	if e != a {
		r.Add(field, e, a)
	}
}

// CompareInt compares two integer fields directly.
func CompareInt(r *Report, field string, expected, actual int) {
	if expected != actual {
		r.Add(field, expected, actual)
	}
}

// CompareDecimal normalizes both raw decimal strings to the canonical scale
// and compares the resulting values. The report entry carries the canonical
// renderings, so a stored "12.500000" and a presented "13.00" show up as
// "12.50" and "13.00".
func CompareDecimal(r *Report, field, expected, actual string) error {
	e, err := NormalizeDecimal(expected)
	if err != nil {
		return err
	}
	a, err := NormalizeDecimal(actual)
	if err != nil {
		return err
	}
	if !e.Equal(a) {
		r.Add(field, e.StringFixed(canonicalScale), a.StringFixed(canonicalScale))
	}
	return nil
}

// CompareTimestamp normalizes both raw timestamps to UTC instants and
// compares them. Each side declares its own source encoding; a stored
// "2025-09-14 20:01:17.923 +0400" and a presented "2025-09-14T16:01:17.923"
// denote the same instant and compare equal.
func CompareTimestamp(r *Report, field, expected, actual string, expectedSrc, actualSrc Source) error {
	e, err := NormalizeTimestamp(expected, expectedSrc)
	if err != nil {
		return err
	}
	a, err := NormalizeTimestamp(actual, actualSrc)
	if err != nil {
		return err
	}
	if !e.Equal(a) {
		r.Add(field, e.Format(canonicalTimeLayout), a.Format(canonicalTimeLayout))
	}
	return nil
}
