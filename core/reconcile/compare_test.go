package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareString(t *testing.T) {
	t.Run("equal after trimming", func(t *testing.T) {
		var r Report
		CompareString(&r, "name", "  Sunny Honey ", "Sunny Honey")
		assert.True(t, r.Empty())
	})

	t.Run("mismatch is recorded, not raised", func(t *testing.T) {
		var r Report
		CompareString(&r, "category", "FRUITS", "VEGETABLES")
		require.Equal(t, 1, r.Len())
		assert.Equal(t, Mismatch{FieldPath: "category", Expected: "FRUITS", Actual: "VEGETABLES"}, r.Mismatches()[0])
	})

	t.Run("no implicit coercion", func(t *testing.T) {
		var r Report
		CompareString(&r, "qty", "10", "10.0")
		assert.Equal(t, 1, r.Len())
	})
}

func TestCompareInt(t *testing.T) {
	var r Report
	CompareInt(&r, "qty", 3, 3)
	assert.True(t, r.Empty())

	CompareInt(&r, "qty", 3, 5)
	require.Equal(t, 1, r.Len())
	assert.Equal(t, "qty: expected=3, actual=5", r.String())
}

func TestCompareDecimal(t *testing.T) {
	t.Run("scale difference is not a mismatch", func(t *testing.T) {
		var r Report
		err := CompareDecimal(&r, "price", "12.500000", "12.50")
		require.NoError(t, err)
		assert.True(t, r.Empty())
	})

	t.Run("value difference is a mismatch", func(t *testing.T) {
		var r Report
		err := CompareDecimal(&r, "price", "12.500000", "13.00")
		require.NoError(t, err)
		require.Equal(t, 1, r.Len())
		assert.Equal(t, Mismatch{FieldPath: "price", Expected: "12.50", Actual: "13.00"}, r.Mismatches()[0])
	})

	t.Run("malformed input is fatal", func(t *testing.T) {
		var r Report
		err := CompareDecimal(&r, "price", "twelve", "12.50")
		require.Error(t, err)

		var malformed *MalformedDecimalError
		assert.ErrorAs(t, err, &malformed)
		assert.True(t, r.Empty(), "a fatal error must not leave partial entries")
	})
}

func TestCompareTimestamp(t *testing.T) {
	t.Run("same instant across encodings", func(t *testing.T) {
		var r Report
		err := CompareTimestamp(&r, "insertedAt",
			"2025-09-14 20:01:17.923 +0400", "2025-09-14T16:01:17.923940",
			SourceDB, SourceAPI)
		require.NoError(t, err)
		assert.True(t, r.Empty())
	})

	t.Run("different instants", func(t *testing.T) {
		var r Report
		err := CompareTimestamp(&r, "insertedAt",
			"2025-09-14 20:01:17.923 +0400", "2025-09-14T16:01:18.923940",
			SourceDB, SourceAPI)
		require.NoError(t, err)
		require.Equal(t, 1, r.Len())
		assert.Equal(t, "insertedAt", r.Mismatches()[0].FieldPath)
	})

	t.Run("empty timestamp is fatal, never a silent match", func(t *testing.T) {
		var r Report
		err := CompareTimestamp(&r, "lastQtyChanged", "", "2025-09-14T16:01:17.923940", SourceDB, SourceAPI)
		require.Error(t, err)

		var malformed *MalformedTimestampError
		assert.ErrorAs(t, err, &malformed)
	})
}

func TestReport_Rendering(t *testing.T) {
	var r Report
	r.Add("price", "12.50", "13.00")
	r.Add("qty", 10, 9)

	assert.Equal(t, "price: expected=12.50, actual=13.00\nqty: expected=10, actual=9", r.String())
	assert.Equal(t, 2, r.Len())
}
