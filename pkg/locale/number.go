// pkg/locale/number.go

package locale

import (
	"regexp"
	"strconv"
	"strings"

	cerr "github.com/cockroachdb/errors"

	"github.com/datagovrs/standards/pkg/script"
)

// NumberOptions controls Serbian number rendering.
type NumberOptions struct {
	Decimals     int  // digits after the decimal comma
	UseThousands bool // group integer digits with periods
	Currency     bool // append the dinar suffix
	Script       script.Script
}

// numberPattern matches numbers written by Serbian convention: optional
// sign, digit groups separated by periods (or plain digits), optional
// decimal comma, optional trailing percent sign or dinar suffix.
var numberPattern = regexp.MustCompile(
	`^-?(?:\d{1,3}(?:\.\d{3})+|\d+)(?:,\d+)?\s*(?:%|дин\.|din\.)?$`)

// LooksLikeNumber reports whether s matches the Serbian number convention.
// Parsers must call this before coercing a cell; plain Western-format
// decimals ("12.5") deliberately read as thousands groups here.
func LooksLikeNumber(s string) bool {
	return numberPattern.MatchString(strings.TrimSpace(s))
}

// FormatNumber renders v with a decimal comma, optional period thousands
// grouping and optional currency suffix (дин. / din. by script).
func FormatNumber(v float64, opts NumberOptions) string {
	if opts.Decimals < 0 {
		opts.Decimals = 0
	}
	formatted := strconv.FormatFloat(v, 'f', opts.Decimals, 64)

	neg := strings.HasPrefix(formatted, "-")
	formatted = strings.TrimPrefix(formatted, "-")

	intPart := formatted
	fracPart := ""
	if i := strings.IndexByte(formatted, '.'); i >= 0 {
		intPart, fracPart = formatted[:i], formatted[i+1:]
	}

	if opts.UseThousands {
		intPart = groupThousands(intPart)
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	if opts.Currency {
		if opts.Script == script.Cyrillic {
			b.WriteString(" дин.")
		} else {
			b.WriteString(" din.")
		}
	}
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ParseNumber reads a Serbian-convention number. A trailing percent sign
// converts to the fractional value (12,5% -> 0.125); a dinar suffix is
// stripped. Strings that do not match the convention are rejected so that
// Western-format input is never silently misread.
func ParseNumber(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if !LooksLikeNumber(trimmed) {
		return 0, cerr.Newf("not a Serbian-format number: %q", s)
	}

	percent := strings.HasSuffix(trimmed, "%")
	trimmed = strings.TrimSuffix(trimmed, "%")
	trimmed = strings.TrimSuffix(trimmed, "дин.")
	trimmed = strings.TrimSuffix(trimmed, "din.")
	trimmed = strings.TrimSpace(trimmed)

	trimmed = strings.ReplaceAll(trimmed, ".", "")
	trimmed = strings.Replace(trimmed, ",", ".", 1)

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, cerr.Wrapf(err, "parsing %q", s)
	}
	if percent {
		v /= 100
	}
	return v, nil
}
