package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/routekit/routekit/engine/format"
)

func TestFormatError_ErrorIncludesCodeAndMessage(t *testing.T) {
	err := &format.FormatError{Code: format.ErrDeserialize, Message: "boom"}
	assert.Equal(t, "E0000: boom", err.Error())
}

func TestFormatError_CodesAreDistinct(t *testing.T) {
	codes := []string{
		format.ErrDeserialize,
		format.ErrUnknownField,
		format.ErrDuplicateTypeID,
		format.ErrDuplicateVehicleID,
		format.ErrShiftTimeOrdering,
		format.ErrWindowCorrectness,
		format.ErrAreaShape,
		format.ErrDepotUniqueness,
		format.ErrDepotDistinctness,
	}
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate code %q", c)
		seen[c] = true
	}
}
