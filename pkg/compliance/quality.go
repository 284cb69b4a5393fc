// pkg/compliance/quality.go
package compliance

import (
	"context"
	"fmt"
	"strings"

	"github.com/datagovrs/standards/pkg/ident"
	"github.com/datagovrs/standards/pkg/script"
)

// qualityValidator inspects the records themselves: identifier checksum
// validity, script consistency across text cells, and missing-value
// density. With no records supplied every requirement passes vacuously;
// metadata-only validation must not be penalized for data it never saw.
type qualityValidator struct {
	weight float64
}

func (v *qualityValidator) Name() string    { return "data_quality" }
func (v *qualityValidator) Weight() float64 { return v.weight }

func (v *qualityValidator) Validate(_ context.Context, vc *Context) (*CategoryResult, error) {
	if len(vc.Records) == 0 {
		vacuous := func(id, name, desc string) Requirement {
			return Requirement{ID: id, Name: name, Description: desc, Score: 100, Evidence: "no records supplied"}
		}
		reqs := []Requirement{
			vacuous("quality.identifiers", "Identifier validity", "JMBG and PIB values pass checksum validation"),
			vacuous("quality.script_consistency", "Script consistency", "Text cells use one script consistently"),
			vacuous("quality.missing_values", "Missing values", "Cells are predominantly populated"),
		}
		return newCategory(v.Name(), v.weight, reqs), nil
	}

	var idTotal, idValid int
	var cellTotal, cellMissing int
	var texts []string

	for _, record := range vc.Records {
		for field, value := range record {
			cellTotal++
			if value == nil {
				cellMissing++
				continue
			}
			s, isString := value.(string)
			if !isString {
				continue
			}
			switch {
			case identifierColumn(field, "jmbg", "matični broj", "матични број"):
				idTotal++
				if ident.ValidateJMBG(s).IsValid {
					idValid++
				}
			case identifierColumn(field, "pib"):
				idTotal++
				if ident.ValidatePIB(s).IsValid {
					idValid++
				}
			default:
				texts = append(texts, s)
			}
		}
	}

	idScore := 100.0
	idEvidence := "no identifier columns"
	if idTotal > 0 {
		idScore = 100 * float64(idValid) / float64(idTotal)
		idEvidence = fmt.Sprintf("%d of %d identifiers valid", idValid, idTotal)
	}

	consistency := script.Consistency(texts)
	missingRate := float64(cellMissing) / float64(cellTotal)

	reqs := []Requirement{
		{
			ID:          "quality.identifiers",
			Name:        "Identifier validity",
			Description: "JMBG and PIB values pass checksum validation",
			Required:    true,
			Score:       idScore,
			Evidence:    idEvidence,
		},
		{
			ID:          "quality.script_consistency",
			Name:        "Script consistency",
			Description: "Text cells use one script consistently",
			Score:       consistency * 100,
			Evidence:    fmt.Sprintf("consistency %.2f over %d text cell(s)", consistency, len(texts)),
		},
		{
			ID:          "quality.missing_values",
			Name:        "Missing values",
			Description: "Cells are predominantly populated",
			Score:       (1 - missingRate) * 100,
			Evidence:    fmt.Sprintf("%d of %d cells missing", cellMissing, cellTotal),
		},
	}

	return newCategory(v.Name(), v.weight, reqs), nil
}

func identifierColumn(field string, markers ...string) bool {
	lower := strings.ToLower(field)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}
