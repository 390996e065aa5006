package reconcile

import (
	"fmt"
	"strings"
)

// Mismatch describes a single field-level disagreement between two shapes of
// an entity. Expected holds the authoritative side of the comparison (the
// stored row, or the original request), Actual the side under scrutiny, both
// already normalized for display.
type Mismatch struct {
	// FieldPath identifies the disagreeing field, e.g. "price" or
	// "products[2].qty".
	FieldPath string `json:"field_path"`

	// Expected is the normalized stored-shape value.
	Expected string `json:"expected"`

	// Actual is the normalized presented-shape value.
	Actual string `json:"actual"`
}

// Report is the ordered accumulation of mismatches produced by one
// reconciliation call. An empty report means the two shapes are equivalent.
// A report is built fresh per comparison and must not be mutated after it
// has been returned to the caller.
type Report struct {
	mismatches []Mismatch
}

// NewReport creates an empty report ready to accumulate mismatches.
func NewReport() *Report {
	return &Report{}
}

// Add appends one mismatch entry to the report.
func (r *Report) Add(fieldPath string, expected, actual any) {
	r.mismatches = append(r.mismatches, Mismatch{
		FieldPath: fieldPath,
		Expected:  fmt.Sprintf("%v", expected),
		Actual:    fmt.Sprintf("%v", actual),
	})
}

// Empty reports whether the two shapes agreed on every compared field.
func (r *Report) Empty() bool {
	return len(r.mismatches) == 0
}

// Len returns the number of accumulated mismatches.
func (r *Report) Len() int {
	return len(r.mismatches)
}

// Mismatches returns the accumulated entries in comparison order.
func (r *Report) Mismatches() []Mismatch {
	return r.mismatches
}

// Lines renders the report as one human-readable line per mismatch.
func (r *Report) Lines() []string {
	lines := make([]string, 0, len(r.mismatches))
	for _, m := range r.mismatches {
		lines = append(lines, fmt.Sprintf("%s: expected=%s, actual=%s", m.FieldPath, m.Expected, m.Actual))
	}
	return lines
}

// String renders the full report, one mismatch per line. It is the failure
// artifact shown to the user verbatim.
func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}
