// pkg/parse/coerce.go

package parse

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/datagovrs/standards/pkg/ident"
	"github.com/datagovrs/standards/pkg/locale"
	"github.com/datagovrs/standards/pkg/sderr"
)

// missingTokens are the spellings of "no value" seen in Serbian government
// exports. Cells matching one become nil without a parse error.
var missingTokens = map[string]bool{
	"":          true,
	"-":         true,
	"na":        true,
	"n/a":       true,
	"null":      true,
	"none":      true,
	"nan":       true,
	"nepoznato": true,
	"nema":      true,
}

func isMissing(s string) bool {
	return missingTokens[strings.ToLower(strings.TrimSpace(s))]
}

// isJMBGColumn matches columns that by name carry citizen numbers.
func isJMBGColumn(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "jmbg") ||
		strings.Contains(lower, "matični broj") ||
		strings.Contains(lower, "maticni broj") ||
		strings.Contains(lower, "матични број")
}

// isPIBColumn matches columns that by name carry tax numbers.
func isPIBColumn(name string) bool {
	return strings.Contains(strings.ToLower(name), "pib") ||
		strings.Contains(strings.ToLower(name), "пиб")
}

// codeLike reports strings that look numeric but are identifiers or codes
// (leading zero followed by another digit). Coercing those to numbers
// would destroy them.
func codeLike(s string) bool {
	return len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9'
}

// coerceCell runs the per-cell pipeline and returns the typed value, the
// detected field type vote, and a parse error when the cell claims a type
// it cannot hold. Invalid identifiers keep their raw value by contract.
func coerceCell(field, raw string, row int, opts Options) (any, FieldType, *sderr.ParseError) {
	value := raw
	if opts.NormalizeText {
		value = strings.TrimSpace(norm.NFC.String(value))
	}

	if isMissing(value) {
		return nil, FieldString, nil
	}

	if opts.ValidateJMBG && isJMBGColumn(field) {
		res := ident.ValidateJMBG(value)
		if !res.IsValid {
			err := sderr.NewParseError(sderr.CodeInvalidJMBG,
				fmt.Sprintf("JMBG %q failed validation", value), row, field)
			return value, FieldString, &err
		}
		return res.Formatted, FieldString, nil
	}

	if opts.ValidatePIB && isPIBColumn(field) {
		res := ident.ValidatePIB(value)
		if !res.IsValid {
			err := sderr.NewParseError(sderr.CodeInvalidPIB,
				fmt.Sprintf("PIB %q failed validation", value), row, field)
			return value, FieldString, &err
		}
		return res.Formatted, FieldString, nil
	}

	if opts.ParseNumbers && !codeLike(value) && locale.LooksLikeNumber(value) {
		n, err := locale.ParseNumber(value)
		if err == nil {
			return n, FieldNumber, nil
		}
		perr := sderr.NewParseError(sderr.CodeInvalidNumber,
			fmt.Sprintf("cannot parse %q as a Serbian number", value), row, field)
		return nil, FieldNumber, &perr
	}

	if opts.ParseDates {
		if t, err := locale.ParseDate(value); err == nil {
			return t, FieldDate, nil
		}
	}

	return value, FieldString, nil
}
