// pkg/sderr/codes.go
//
// Error taxonomy for the compliance engine. Malformed data never becomes a
// Go error; it is collected as ParseError / ValidationError values and
// returned alongside partial results.

package sderr

import "fmt"

// Category classifies engine errors for handling by callers.
type Category int

const (
	// CategoryParse - row/field level data problems, non-fatal
	CategoryParse Category = iota
	// CategoryValidation - structural metadata problems, non-fatal
	CategoryValidation
	// CategoryIdentifier - JMBG/PIB checksum or format failures
	CategoryIdentifier
	// CategoryConfig - bad engine configuration supplied by the caller
	CategoryConfig
	// CategoryInternal - bugs in the engine itself
	CategoryInternal
)

// Parse error codes.
const (
	CodeInvalidJSON   = "Invalid JSON"
	CodeInvalidJMBG   = "INVALID_JMBG"
	CodeInvalidPIB    = "INVALID_PIB"
	CodeInvalidNumber = "INVALID_NUMBER"
	CodeInvalidDate   = "INVALID_DATE"
	CodeRowTruncated  = "ROW_TRUNCATED"
	CodeEmptyInput    = "EMPTY_INPUT"
)

// Validation error codes.
const (
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeUnrecognizedShape    = "UNRECOGNIZED_SHAPE"
	CodeInvalidLanguageTag   = "INVALID_LANGUAGE_TAG"
	CodeCyclicMetadata       = "CYCLIC_METADATA"
	CodeValidatorFailure     = "VALIDATOR_FAILURE"
)

// ParseError describes a non-fatal row/field level problem. Parsing
// continues past the offending value; the value itself becomes nil in the
// returned record.
type ParseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Row     int    `json:"row,omitempty"`
	Field   string `json:"field,omitempty"`
}

func (e ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (row %d, field %q)", e.Code, e.Message, e.Row, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Category returns the handling category for a parse error code.
func (e ParseError) Category() Category {
	switch e.Code {
	case CodeInvalidJMBG, CodeInvalidPIB:
		return CategoryIdentifier
	default:
		return CategoryParse
	}
}

// ValidationError describes a structural metadata problem surfaced in a
// compliance report. Non-fatal to the overall run.
type ValidationError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field %q)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewParseError builds a field-scoped parse error.
func NewParseError(code, message string, row int, field string) ParseError {
	return ParseError{Code: code, Message: message, Row: row, Field: field}
}

// NewValidationError builds a field-scoped validation error.
func NewValidationError(code, field, message string) ValidationError {
	return ValidationError{Code: code, Field: field, Message: message}
}
