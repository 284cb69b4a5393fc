// Package parse ingests Serbian tabular and JSON data into typed records,
// applying script detection, locale-aware date and number coercion and
// national identifier validation. Parsing is non-fatal throughout: invalid
// values become nil and produce one ParseError each, rows are never
// silently dropped.
package parse

import (
	"github.com/datagovrs/standards/pkg/script"
	"github.com/datagovrs/standards/pkg/sderr"
)

// Record maps a column name to a parsed value: string, float64,
// time.Time or nil.
type Record map[string]any

// FieldType is the detected type of a column.
type FieldType string

const (
	FieldString FieldType = "string"
	FieldNumber FieldType = "number"
	FieldDate   FieldType = "date"
)

// Options controls a parse run. The zero value parses with the default
// semicolon delimiter and no coercion.
type Options struct {
	// Delimiter separates CSV cells; empty means ";". Ignored when
	// AutoDetectDelimiter is set.
	Delimiter string
	// AutoDetectDelimiter picks the delimiter by column-count
	// consistency across lines.
	AutoDetectDelimiter bool

	ParseDates     bool
	ParseNumbers   bool
	ValidateJMBG   bool
	ValidatePIB    bool
	DetectScript   bool
	NormalizeText  bool
	SkipEmptyLines bool

	// MaxRows bounds returned data rows; the header does not count.
	// Zero means unbounded.
	MaxRows int

	// BatchSize is the number of rows between context checks on large
	// inputs. Zero means the default of 500.
	BatchSize int
}

func (o Options) delimiter() rune {
	if o.Delimiter == "" {
		return ';'
	}
	return []rune(o.Delimiter)[0]
}

func (o Options) batchSize() int {
	if o.BatchSize <= 0 {
		return 500
	}
	return o.BatchSize
}

// ParseMetadata describes one parse run. Immutable after return.
type ParseMetadata struct {
	Script        script.Script        `json:"script"`
	Encoding      string               `json:"encoding"`
	Columns       []string             `json:"columns"`
	FieldTypes    map[string]FieldType `json:"fieldTypes"`
	TotalRows     int                  `json:"totalRows"`
	ParsedRows    int                  `json:"parsedRows"`
	ErrorRows     int                  `json:"errorRows"`
	RowsPerSecond float64              `json:"rowsPerSecond"`
}

// ParseResult is the complete outcome of a parse call.
type ParseResult struct {
	Data        []Record          `json:"data"`
	Metadata    ParseMetadata     `json:"metadata"`
	ParseErrors []sderr.ParseError `json:"parseErrors"`
}

// CSVStats summarizes batch validation of parsed records.
type CSVStats struct {
	ValidJMBG         int     `json:"validJMBG"`
	InvalidJMBG       int     `json:"invalidJMBG"`
	ValidPIB          int     `json:"validPIB"`
	InvalidPIB        int     `json:"invalidPIB"`
	ScriptConsistency float64 `json:"scriptConsistency"`
}

// CSVValidation is the result of ValidateCSV over already-parsed records.
type CSVValidation struct {
	IsValid  bool               `json:"isValid"`
	Errors   []sderr.ParseError `json:"errors"`
	Warnings []string           `json:"warnings"`
	Stats    CSVStats           `json:"stats"`
}
