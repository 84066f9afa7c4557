package domain

import (
	"strconv"

	dErrors "crosscall/pkg/domain-errors"
)

// LineID identifies a communication line (a telephony subscription/profile).
// The value is an opaque platform-assigned identifier; the gateway never
// interprets it beyond equality checks.
//
// Usage: construct via ParseLineID at trust boundaries; direct casting
// bypasses validation.
type LineID int

// ParseLineID constructs a LineID from external input.
//
// Errors: returns CodeInvalidInput when the value is not a positive integer;
// no other errors are expected.
func ParseLineID(s string) (LineID, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "line id cannot be empty")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "line id must be an integer")
	}
	id := LineID(n)
	if !id.IsValid() {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "line id must be positive")
	}
	return id, nil
}

// IsValid reports whether the line ID is in the platform-assignable range.
func (id LineID) IsValid() bool {
	return id > 0
}

// String returns the decimal representation of the line ID.
func (id LineID) String() string {
	return strconv.Itoa(int(id))
}
