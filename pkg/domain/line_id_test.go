package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "crosscall/pkg/domain-errors"
)

// TestParseLineID_Invariants validates the parsing invariant:
// "line IDs must be positive integers"
func TestParseLineID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseLineID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := ParseLineID("not-a-line")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects zero", func(t *testing.T) {
		_, err := ParseLineID("0")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects negative", func(t *testing.T) {
		_, err := ParseLineID("-3")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts positive integer", func(t *testing.T) {
		id, err := ParseLineID("2")
		require.NoError(t, err)
		assert.Equal(t, LineID(2), id)
	})
}

// FuzzParseLineID tests that parsing never panics on arbitrary input and
// that accepted values round-trip through String.
func FuzzParseLineID(f *testing.F) {
	f.Add("")
	f.Add("1")
	f.Add("0")
	f.Add("-1")
	f.Add("2147483647")
	f.Add("not-a-line")
	f.Add("1\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseLineID(input)
		if err == nil {
			roundTrip, err2 := ParseLineID(id.String())
			if err2 != nil {
				t.Errorf("valid ID failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("round-trip changed ID value")
			}
		}
	})
}
