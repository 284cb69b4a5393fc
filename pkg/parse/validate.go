// pkg/parse/validate.go

package parse

import (
	"fmt"

	"github.com/datagovrs/standards/pkg/ident"
	"github.com/datagovrs/standards/pkg/script"
	"github.com/datagovrs/standards/pkg/sderr"
)

// ValidateCSV batch-validates already-parsed records: identifier columns
// are re-checked and script consistency is measured across text cells.
// IsValid means no identifier failures; low script consistency only
// warns.
func (p *SerbianCSVParser) ValidateCSV(records []Record) *CSVValidation {
	v := &CSVValidation{
		IsValid:  true,
		Errors:   []sderr.ParseError{},
		Warnings: []string{},
	}

	var texts []string
	for i, record := range records {
		row := i + 1
		for field, value := range record {
			s, ok := value.(string)
			if !ok {
				continue
			}
			switch {
			case isJMBGColumn(field):
				if ident.ValidateJMBG(s).IsValid {
					v.Stats.ValidJMBG++
				} else {
					v.Stats.InvalidJMBG++
					v.IsValid = false
					v.Errors = append(v.Errors, sderr.NewParseError(
						sderr.CodeInvalidJMBG,
						fmt.Sprintf("JMBG %q failed validation", s), row, field))
				}
			case isPIBColumn(field):
				if ident.ValidatePIB(s).IsValid {
					v.Stats.ValidPIB++
				} else {
					v.Stats.InvalidPIB++
					v.IsValid = false
					v.Errors = append(v.Errors, sderr.NewParseError(
						sderr.CodeInvalidPIB,
						fmt.Sprintf("PIB %q failed validation", s), row, field))
				}
			default:
				texts = append(texts, s)
			}
		}
	}

	v.Stats.ScriptConsistency = script.Consistency(texts)
	if len(texts) > 0 && v.Stats.ScriptConsistency < 0.8 {
		v.Warnings = append(v.Warnings,
			fmt.Sprintf("script usage is inconsistent across text fields (%.0f%%)",
				v.Stats.ScriptConsistency*100))
	}
	return v
}
