// pkg/parse/json.go

package parse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/datagovrs/standards/pkg/logger"
	"github.com/datagovrs/standards/pkg/sderr"
)

// SerbianJSONParser parses JSON datasets into typed records. Accepted
// shapes, probed in order: an array of records, an envelope object with a
// "data" array, or a single record object (wrapped as one row).
type SerbianJSONParser struct {
	log  *zap.Logger
	opts Options
}

// NewJSONParser builds a parser with explicit options; a nil logger means
// silent operation.
func NewJSONParser(log *zap.Logger, opts Options) *SerbianJSONParser {
	return &SerbianJSONParser{log: logger.OrNop(log), opts: opts}
}

// Parse accepts a JSON string, raw bytes, or an already-decoded Go value
// (map/slice). Malformed JSON yields empty data and exactly one parse
// error, never a Go error.
func (p *SerbianJSONParser) Parse(ctx context.Context, input any) (*ParseResult, error) {
	start := time.Now()
	result := &ParseResult{
		Data:        []Record{},
		ParseErrors: []sderr.ParseError{},
		Metadata: ParseMetadata{
			Encoding:   "utf-8",
			FieldTypes: map[string]FieldType{},
		},
	}

	decoded, perr := decodeInput(input)
	if perr != nil {
		result.ParseErrors = append(result.ParseErrors, *perr)
		return result, nil
	}

	rows, perr := recordShapes(decoded)
	if perr != nil {
		result.ParseErrors = append(result.ParseErrors, *perr)
		return result, nil
	}

	votes := newScriptTally()
	typeVotes := map[string]map[FieldType]int{}
	columns := map[string]bool{}

	batch := p.opts.batchSize()
	for i, raw := range rows {
		if ctx != nil && i%batch == 0 {
			select {
			case <-ctx.Done():
				p.finalize(result, votes, typeVotes, start)
				return result, ctx.Err()
			default:
			}
		}

		row := i + 1
		result.Metadata.TotalRows++
		if p.opts.MaxRows > 0 && len(result.Data) >= p.opts.MaxRows {
			continue
		}

		obj, ok := raw.(map[string]any)
		if !ok {
			result.Metadata.ErrorRows++
			result.ParseErrors = append(result.ParseErrors, sderr.NewParseError(
				sderr.CodeRowTruncated,
				fmt.Sprintf("row %d is %T, not an object", row, raw), row, ""))
			continue
		}

		record := make(Record, len(obj))
		rowHadError := false
		for field, value := range obj {
			columns[field] = true
			coerced, fieldType, cellErr := p.coerceJSONValue(field, value, row)
			record[field] = coerced
			if cellErr != nil {
				rowHadError = true
				result.ParseErrors = append(result.ParseErrors, *cellErr)
			}
			tallyType(typeVotes, field, fieldType, coerced)
			if p.opts.DetectScript {
				if s, ok := coerced.(string); ok {
					votes.add(s)
				}
			}
		}

		result.Data = append(result.Data, record)
		if rowHadError {
			result.Metadata.ErrorRows++
		} else {
			result.Metadata.ParsedRows++
		}
	}

	for c := range columns {
		result.Metadata.Columns = append(result.Metadata.Columns, c)
	}
	p.finalize(result, votes, typeVotes, start)
	p.log.Debug("JSON parse completed",
		zap.Int("rows", result.Metadata.TotalRows),
		zap.Int("errors", len(result.ParseErrors)))
	return result, nil
}

func (p *SerbianJSONParser) finalize(result *ParseResult, votes *scriptTally, typeVotes map[string]map[FieldType]int, start time.Time) {
	if p.opts.DetectScript {
		result.Metadata.Script = votes.winner()
	}
	for field, counts := range typeVotes {
		result.Metadata.FieldTypes[field] = majorityType(counts)
	}
	elapsed := time.Since(start).Seconds()
	if elapsed > 0 {
		result.Metadata.RowsPerSecond = float64(result.Metadata.TotalRows) / elapsed
	}
}

// coerceJSONValue applies the shared cell pipeline to string values and
// passes JSON-native numbers through untouched.
func (p *SerbianJSONParser) coerceJSONValue(field string, value any, row int) (any, FieldType, *sderr.ParseError) {
	switch v := value.(type) {
	case string:
		return coerceCell(field, v, row, p.opts)
	case float64:
		return v, FieldNumber, nil
	case bool:
		return v, FieldString, nil
	case nil:
		return nil, FieldString, nil
	default:
		// Nested objects and arrays pass through untyped.
		return v, FieldString, nil
	}
}

// decodeInput normalizes the accepted input kinds into a decoded value.
func decodeInput(input any) (any, *sderr.ParseError) {
	switch v := input.(type) {
	case string:
		return unmarshalJSON([]byte(v))
	case []byte:
		return unmarshalJSON(v)
	default:
		return v, nil
	}
}

func unmarshalJSON(data []byte) (any, *sderr.ParseError) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		perr := sderr.NewParseError(sderr.CodeInvalidJSON, err.Error(), 0, "")
		return nil, &perr
	}
	return decoded, nil
}

// recordShapes probes the decoded value: array, "data" envelope, then
// single record.
func recordShapes(decoded any) ([]any, *sderr.ParseError) {
	switch v := decoded.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if data, ok := v["data"].([]any); ok {
			return data, nil
		}
		return []any{v}, nil
	case nil:
		perr := sderr.NewParseError(sderr.CodeInvalidJSON, "input is null", 0, "")
		return nil, &perr
	default:
		perr := sderr.NewParseError(sderr.CodeInvalidJSON,
			fmt.Sprintf("unsupported top-level %T", decoded), 0, "")
		return nil, &perr
	}
}
