// Package format loads a minimal YAML problem definition into engine types.
// It is deliberately not a pragmatic/HRE-compliant implementation — those
// remain external collaborators — but it carries the same stable error code
// ranges so downstream reporting has somewhere consistent to point to.
//
// # Reading Guide
//
//   - errors.go: FormatError and the E0000-E1306 code constants
//   - problem_dto.go: YAML DTOs and their conversion to engine types
//   - loader.go: Load(path) and the trivial in-memory MatrixTransport
//   - vehicles_validate.go: ValidateFleet, producing E1300-E1306
package format

import "fmt"

const (
	// ErrDeserialize covers I/O and structural YAML failures.
	ErrDeserialize = "E0000"
	// ErrUnknownField covers strict-decode failures (unexpected keys, type
	// mismatches) caught by yaml.v3's KnownFields(true).
	ErrUnknownField = "E0001"

	ErrDuplicateTypeID    = "E1300"
	ErrDuplicateVehicleID = "E1301"
	ErrShiftTimeOrdering  = "E1302"
	ErrWindowCorrectness  = "E1303"
	ErrAreaShape          = "E1304"
	ErrDepotUniqueness    = "E1305"
	ErrDepotDistinctness  = "E1306"
)

// FormatError is a coded boundary diagnostic: never thrown across the core
// API, always returned as a plain error value.
type FormatError struct {
	Code    string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newFormatError(code, format string, args ...any) *FormatError {
	return &FormatError{Code: code, Message: fmt.Sprintf(format, args...)}
}
