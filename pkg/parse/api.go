// pkg/parse/api.go
//
// Package-level conveniences for callers that do not hold a configured
// parser.

package parse

import "context"

// ParseCSV parses raw CSV text with the given options and no logging.
func ParseCSV(ctx context.Context, input string, opts Options) (*ParseResult, error) {
	return NewCSVParser(nil, opts).Parse(ctx, input)
}

// ParseJSON parses JSON input with the given options and no logging.
func ParseJSON(ctx context.Context, input any, opts Options) (*ParseResult, error) {
	return NewJSONParser(nil, opts).Parse(ctx, input)
}

// StringifyCSV renders records to CSV text with the given options.
func StringifyCSV(records []Record, opts StringifyOptions) string {
	return NewCSVParser(nil, Options{}).Stringify(records, opts)
}
