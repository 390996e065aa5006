package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies which representation a raw value was read from. Each
// source carries its own timestamp encoding.
type Source int

const (
	// SourceDB is the persistence layer: offset-aware timestamps in the form
	// "2025-09-14 20:01:17.923 +0400", decimals of arbitrary scale.
	SourceDB Source = iota

	// SourceAPI is the presentation layer: zone-less timestamps in the form
	// "2025-09-14T16:01:17.923940", decimals serialized at fixed scale.
	SourceAPI
)

// String returns the source name for error messages.
func (s Source) String() string {
	switch s {
	case SourceDB:
		return "db"
	case SourceAPI:
		return "api"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

const (
	// apiTimeLayout matches the API's fixed pattern. The value carries no
	// zone designator; it is interpreted as a naive timestamp attached to UTC.
	apiTimeLayout = "2006-01-02T15:04:05.999999"

	// dbTimeLayout matches the database's native text rendering of an
	// offset-aware timestamp.
	dbTimeLayout = "2006-01-02 15:04:05.999 -0700"

	// canonicalScale is the fixed number of fractional digits every decimal
	// is rescaled to before comparison. Monetary amounts and quantities are
	// both serialized at two digits by the API.
	canonicalScale = 2
)

// MalformedTimestampError reports a timestamp that could not be normalized:
// either an empty value or one that does not match its source's pattern.
// It is a fatal setup error, never a reconciliation mismatch.
type MalformedTimestampError struct {
	Raw    string
	Source Source
	Err    error
}

func (e *MalformedTimestampError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("malformed %s timestamp: value is empty", e.Source)
	}
	return fmt.Sprintf("malformed %s timestamp %q: %v", e.Source, e.Raw, e.Err)
}

func (e *MalformedTimestampError) Unwrap() error {
	return e.Err
}

// MalformedDecimalError reports a decimal value that could not be parsed.
// Like MalformedTimestampError it is fatal and is never folded into a Report.
type MalformedDecimalError struct {
	Raw string
	Err error
}

func (e *MalformedDecimalError) Error() string {
	if e.Raw == "" {
		return "malformed decimal: value is empty"
	}
	return fmt.Sprintf("malformed decimal %q: %v", e.Raw, e.Err)
}

func (e *MalformedDecimalError) Unwrap() error {
	return e.Err
}

// NormalizeTimestamp converts a raw timestamp string from the given source to
// the canonical instant-in-UTC. API values are zone-less and attached to UTC
// as-is; DB values are offset-aware and converted to UTC by instant
// equivalence, not by string rewrite. The canonical instant is truncated to
// millisecond precision: the storage encoding carries milliseconds only, so
// finer API digits are an encoding artifact, not a disagreement.
//
// An empty raw value is a hard error. Every persisted or returned record is
// expected to carry its timestamps, so absence is a setup bug and must never
// be treated as a match.
func NormalizeTimestamp(raw string, src Source) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, &MalformedTimestampError{Raw: raw, Source: src}
	}

	var layout string
	switch src {
	case SourceAPI:
		layout = apiTimeLayout
	case SourceDB:
		layout = dbTimeLayout
	default:
		return time.Time{}, &MalformedTimestampError{Raw: raw, Source: src, Err: fmt.Errorf("unknown source")}
	}

	t, err := time.Parse(layout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, &MalformedTimestampError{Raw: raw, Source: src, Err: err}
	}

	// A zone-less API value parses in UTC already; a DB value parses in its
	// own fixed offset and needs converting.
	return t.UTC().Truncate(time.Millisecond), nil
}

// NormalizeDecimal parses a raw decimal string and rescales it to the
// canonical two fractional digits, rounding half up. Scale differences
// between representations are an encoding artifact and never a mismatch;
// value differences always are.
func NormalizeDecimal(raw string) (decimal.Decimal, error) {
	d, err := parseDecimal(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Round(canonicalScale), nil
}

// SumDecimals adds raw decimal strings exactly, with no intermediate
// rounding, and returns the unrounded sum. Used to derive an order's total
// from its stored line prices.
func SumDecimals(raws []string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, raw := range raws {
		d, err := parseDecimal(raw)
		if err != nil {
			return decimal.Decimal{}, err
		}
		sum = sum.Add(d)
	}
	return sum, nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, &MalformedDecimalError{Raw: raw}
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, &MalformedDecimalError{Raw: raw, Err: err}
	}
	return d, nil
}
