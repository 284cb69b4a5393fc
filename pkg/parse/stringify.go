// pkg/parse/stringify.go

package parse

import (
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/datagovrs/standards/pkg/locale"
	"github.com/datagovrs/standards/pkg/script"
)

// StringifyOptions controls CSV output.
type StringifyOptions struct {
	// Delimiter between cells; empty means ";".
	Delimiter string
	// Columns fixes column order; empty means sorted record keys.
	Columns []string
	// DateStyle for time-valued cells; empty means short (dd.MM.yyyy.).
	DateStyle locale.DateStyle
	// Decimals for number-valued cells.
	Decimals int
	// UseThousands groups integer digits with periods.
	UseThousands bool
	// Script selects the name tables for dates.
	Script script.Script
}

// Stringify renders records back to delimiter-joined text, re-applying
// Serbian date and number formatting by runtime cell type. Cells the
// formatter cannot render become empty; the failures are joined and
// logged, output stays best effort.
func (p *SerbianCSVParser) Stringify(records []Record, opts StringifyOptions) string {
	if len(records) == 0 {
		return ""
	}

	delim := ";"
	if opts.Delimiter != "" {
		delim = opts.Delimiter
	}
	style := opts.DateStyle
	if style == "" {
		style = locale.StyleShort
	}

	columns := opts.Columns
	if len(columns) == 0 {
		seen := map[string]bool{}
		for _, r := range records {
			for k := range r {
				seen[k] = true
			}
		}
		for k := range seen {
			columns = append(columns, k)
		}
		sort.Strings(columns)
	}

	var errs *multierror.Error
	var b strings.Builder
	b.WriteString(strings.Join(columns, delim))
	b.WriteByte('\n')

	for i, record := range records {
		cells := make([]string, len(columns))
		for j, col := range columns {
			cell, err := formatCell(record[col], style, opts)
			if err != nil {
				errs = multierror.Append(errs, err)
			}
			cells[j] = escapeCell(cell, delim)
		}
		b.WriteString(strings.Join(cells, delim))
		if i < len(records)-1 {
			b.WriteByte('\n')
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		p.log.Warn("some cells could not be formatted", zap.Error(err))
	}
	return b.String()
}

func formatCell(value any, style locale.DateStyle, opts StringifyOptions) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case float64:
		return locale.FormatNumber(v, locale.NumberOptions{
			Decimals:     opts.Decimals,
			UseThousands: opts.UseThousands,
			Script:       opts.Script,
		}), nil
	case int:
		return locale.FormatNumber(float64(v), locale.NumberOptions{
			Decimals:     opts.Decimals,
			UseThousands: opts.UseThousands,
			Script:       opts.Script,
		}), nil
	case time.Time:
		return locale.FormatDate(v, style, opts.Script), nil
	case bool:
		if v {
			return "da", nil
		}
		return "ne", nil
	default:
		return "", ErrUnstringifiable{Value: value}
	}
}

// ErrUnstringifiable marks a cell whose runtime type has no Serbian text
// rendering.
type ErrUnstringifiable struct{ Value any }

func (e ErrUnstringifiable) Error() string {
	return "no Serbian rendering for cell type"
}

// escapeCell quotes cells that contain the delimiter, quotes or newlines.
func escapeCell(cell, delim string) string {
	if strings.Contains(cell, delim) || strings.ContainsAny(cell, "\"\n") {
		return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}
