package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTimestamp_Equivalence(t *testing.T) {
	// The same instant encoded by both sources must converge on one
	// canonical UTC value.
	api, err := NormalizeTimestamp("2025-09-14T16:01:17.923940", SourceAPI)
	require.NoError(t, err)

	db, err := NormalizeTimestamp("2025-09-14 20:01:17.923 +0400", SourceDB)
	require.NoError(t, err)

	assert.True(t, api.Equal(db), "api=%s db=%s", api, db)
	assert.Equal(t, time.UTC, api.Location())
	assert.Equal(t, time.UTC, db.Location())
}

func TestNormalizeTimestamp_DBOffsetConversion(t *testing.T) {
	// Conversion is by instant equivalence, not string rewrite: the wall
	// clock moves with the offset.
	got, err := NormalizeTimestamp("2025-01-01 00:30:00.000 +0330", SourceDB)
	require.NoError(t, err)

	want := time.Date(2024, 12, 31, 21, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

func TestNormalizeTimestamp_APINaiveAttachedToUTC(t *testing.T) {
	got, err := NormalizeTimestamp("2025-09-14T16:01:17.923940", SourceAPI)
	require.NoError(t, err)

	want := time.Date(2025, 9, 14, 16, 1, 17, 923_000_000, time.UTC)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

func TestNormalizeTimestamp_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		src  Source
	}{
		{name: "empty api value", raw: "", src: SourceAPI},
		{name: "empty db value", raw: "", src: SourceDB},
		{name: "whitespace only", raw: "   ", src: SourceAPI},
		{name: "db format given to api source", raw: "2025-09-14 20:01:17.923 +0400", src: SourceAPI},
		{name: "api format given to db source", raw: "2025-09-14T16:01:17.923940", src: SourceDB},
		{name: "trailing zone on api value", raw: "2025-09-14T16:01:17.923940+04:00", src: SourceAPI},
		{name: "garbage", raw: "not a timestamp", src: SourceDB},
		{name: "date only", raw: "2025-09-14", src: SourceAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeTimestamp(tt.raw, tt.src)
			require.Error(t, err)

			var malformed *MalformedTimestampError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestNormalizeDecimal_ScaleInvariance(t *testing.T) {
	a, err := NormalizeDecimal("12.5")
	require.NoError(t, err)

	b, err := NormalizeDecimal("12.50000")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, "12.50", a.StringFixed(2))
}

func TestNormalizeDecimal_Idempotent(t *testing.T) {
	for _, raw := range []string{"0", "12.5", "12.505", "999.999", "0.01", "10.00"} {
		once, err := NormalizeDecimal(raw)
		require.NoError(t, err)

		twice, err := NormalizeDecimal(once.String())
		require.NoError(t, err)

		assert.True(t, once.Equal(twice), "raw=%s once=%s twice=%s", raw, once, twice)
	}
}

func TestNormalizeDecimal_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "12.505", want: "12.51"},
		{raw: "12.504", want: "12.50"},
		{raw: "12.500000", want: "12.50"},
		{raw: "0.005", want: "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeDecimal(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestNormalizeDecimal_Malformed(t *testing.T) {
	for _, raw := range []string{"", "  ", "12,50", "abc"} {
		_, err := NormalizeDecimal(raw)
		require.Error(t, err, "raw=%q", raw)

		var malformed *MalformedDecimalError
		assert.ErrorAs(t, err, &malformed)
	}
}

func TestSumDecimals_ExactAddition(t *testing.T) {
	sum, err := SumDecimals([]string{"5.00", "7.50"})
	require.NoError(t, err)
	assert.Equal(t, "12.50", sum.StringFixed(2))

	// No intermediate rounding: sub-cent components must survive the sum.
	sum, err = SumDecimals([]string{"0.004", "0.004"})
	require.NoError(t, err)
	assert.Equal(t, "0.008", sum.String())

	sum, err = SumDecimals(nil)
	require.NoError(t, err)
	assert.True(t, sum.IsZero())
}

func TestSumDecimals_Malformed(t *testing.T) {
	_, err := SumDecimals([]string{"5.00", "oops"})
	require.Error(t, err)

	var malformed *MalformedDecimalError
	assert.ErrorAs(t, err, &malformed)
}
