// pkg/parse/csv.go

package parse

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/datagovrs/standards/pkg/logger"
	"github.com/datagovrs/standards/pkg/script"
	"github.com/datagovrs/standards/pkg/sderr"
)

// SerbianCSVParser parses semicolon-delimited Serbian tabular data. The
// first row is the header; cells are coerced per the configured options.
// Safe for concurrent use on independent inputs.
type SerbianCSVParser struct {
	log  *zap.Logger
	opts Options
}

// NewCSVParser builds a parser with explicit options; a nil logger means
// silent operation.
func NewCSVParser(log *zap.Logger, opts Options) *SerbianCSVParser {
	return &SerbianCSVParser{log: logger.OrNop(log), opts: opts}
}

// Parse ingests raw CSV text. Cancellation is checked between row
// batches; a canceled context returns the partial result so far together
// with ctx.Err(). Data problems never produce a Go error.
func (p *SerbianCSVParser) Parse(ctx context.Context, input string) (*ParseResult, error) {
	start := time.Now()
	result := &ParseResult{
		Data:        []Record{},
		ParseErrors: []sderr.ParseError{},
		Metadata: ParseMetadata{
			Encoding:   "utf-8",
			FieldTypes: map[string]FieldType{},
		},
	}

	delim := p.opts.delimiter()
	if p.opts.AutoDetectDelimiter {
		delim = DetectDelimiter(input)
	}

	reader := csv.NewReader(strings.NewReader(normalizeBlankLines(input)))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		result.ParseErrors = append(result.ParseErrors, sderr.NewParseError(
			sderr.CodeEmptyInput, "input has no header row", 0, ""))
		return result, nil
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	result.Metadata.Columns = header

	votes := newScriptTally()
	typeVotes := map[string]map[FieldType]int{}

	row := 0
	batch := p.opts.batchSize()
	for {
		if ctx != nil && row%batch == 0 {
			select {
			case <-ctx.Done():
				p.finish(result, votes, typeVotes, start)
				return result, ctx.Err()
			default:
			}
		}

		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			row++
			result.Metadata.TotalRows++
			result.Metadata.ErrorRows++
			result.ParseErrors = append(result.ParseErrors, sderr.NewParseError(
				sderr.CodeRowTruncated, err.Error(), row, ""))
			continue
		}

		if isEmptyRow(cells) {
			if p.opts.SkipEmptyLines {
				continue
			}
		}
		row++
		result.Metadata.TotalRows++

		if p.opts.MaxRows > 0 && len(result.Data) >= p.opts.MaxRows {
			continue
		}

		record := make(Record, len(header))
		rowHadError := false
		for i, name := range header {
			raw := ""
			if i < len(cells) {
				raw = cells[i]
			}
			value, fieldType, perr := coerceCell(name, raw, row, p.opts)
			record[name] = value
			if perr != nil {
				rowHadError = true
				result.ParseErrors = append(result.ParseErrors, *perr)
			}
			tallyType(typeVotes, name, fieldType, value)
			if p.opts.DetectScript {
				if s, ok := value.(string); ok {
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

	p.finish(result, votes, typeVotes, start)
	p.log.Debug("CSV parse completed",
		zap.Int("rows", result.Metadata.TotalRows),
		zap.Int("errors", len(result.ParseErrors)),
		zap.String("script", string(result.Metadata.Script)))
	return result, nil
}

func (p *SerbianCSVParser) finish(result *ParseResult, votes *scriptTally, typeVotes map[string]map[FieldType]int, start time.Time) {
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

// normalizeBlankLines rewrites genuinely blank lines into a single empty
// quoted cell. encoding/csv drops blank lines before they reach the row
// loop, which would make SkipEmptyLines=false silently lose rows; after
// rewriting they surface as empty rows and the option decides. Lines
// inside quoted multi-line fields are left alone, as is a trailing
// newline, which is a line terminator and not a row.
func normalizeBlankLines(input string) string {
	lines := strings.Split(input, "\n")
	inQuotes := false
	changed := false
	for i, line := range lines {
		if !inQuotes && i > 0 && i < len(lines)-1 &&
			strings.TrimSpace(strings.TrimSuffix(line, "\r")) == "" {
			lines[i] = `""`
			changed = true
			continue
		}
		if strings.Count(line, `"`)%2 == 1 {
			inQuotes = !inQuotes
		}
	}
	if !changed {
		return input
	}
	return strings.Join(lines, "\n")
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// scriptTally implements the dataset-level majority vote. Only cells that
// carry at least one script-specific character vote; the dataset reads as
// mixed when the minority script still exceeds a tenth of the votes.
type scriptTally struct {
	cyrillic int
	latin    int
}

const mixedVoteThreshold = 0.1

func newScriptTally() *scriptTally { return &scriptTally{} }

func (t *scriptTally) add(text string) {
	switch script.Detect(text) {
	case script.Cyrillic:
		t.cyrillic++
	case script.Mixed:
		t.cyrillic++
		t.latin++
	case script.Latin:
		if script.HasSerbianCharacters(text) || hasASCIILetter(text) {
			t.latin++
		}
	}
}

func (t *scriptTally) winner() script.Script {
	total := t.cyrillic + t.latin
	if total == 0 {
		return script.None
	}
	minority := t.cyrillic
	if t.latin < minority {
		minority = t.latin
	}
	if minority > 0 && float64(minority)/float64(total) > mixedVoteThreshold {
		return script.Mixed
	}
	if t.cyrillic >= t.latin {
		return script.Cyrillic
	}
	return script.Latin
}

func hasASCIILetter(text string) bool {
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

func tallyType(votes map[string]map[FieldType]int, field string, t FieldType, value any) {
	if value == nil {
		return
	}
	if votes[field] == nil {
		votes[field] = map[FieldType]int{}
	}
	votes[field][t]++
}

func majorityType(counts map[FieldType]int) FieldType {
	best, bestCount := FieldString, -1
	// Deterministic order so ties do not flap between runs.
	for _, t := range []FieldType{FieldString, FieldNumber, FieldDate} {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}
