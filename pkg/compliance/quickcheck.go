// pkg/compliance/quickcheck.go
package compliance

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/datagovrs/standards/pkg/metadata"
)

// structValidator checks the schema's declarative constraints. Shared:
// validator.Validate caches struct metadata and is safe for concurrent
// use.
var structValidator = validator.New()

// perValidatorEstimate feeds the full-validation time estimate returned
// by a quick check.
const perValidatorEstimate = 25 * time.Millisecond

// QuickCheck is the cheap structural pass over metadata alone: required
// fields, Serbian language presence, bilingual coverage. It never looks
// at records, so it runs in microseconds and is safe to call per
// catalog page render.
func (e *Engine) QuickCheck(meta *metadata.SerbianMetadataSchema) *QuickCheckResult {
	if meta == nil {
		meta = &metadata.SerbianMetadataSchema{}
	}

	var missing []string
	if err := structValidator.Struct(meta); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				missing = append(missing, fieldPath(fe.Namespace()))
			}
		}
	}

	type check struct {
		ok       bool
		recID    string
		typ      string
		category string
	}
	checks := []check{
		{ok: meta.Identifier != ""},
		{ok: len(meta.Title) > 0},
		{ok: meta.Publisher.Name != ""},
		{
			ok:       meta.Title.HasSerbian() && meta.HasSerbianLanguage(),
			recID:    "language.serbian_text",
			typ:      TypeCritical,
			category: "language_compliance",
		},
		{
			ok:       meta.Title.HasOther() || hasNonSerbian(meta.Language),
			recID:    "language.international_tag",
			typ:      TypeMajor,
			category: "language_compliance",
		},
		{
			ok:       meta.License != "",
			recID:    "completeness.license",
			typ:      TypeCritical,
			category: "metadata_completeness",
		},
		{
			ok:       len(meta.Description) > 0,
			recID:    "completeness.description",
			typ:      TypeMajor,
			category: "metadata_completeness",
		},
	}

	// Each structural check carries an equal share of the quick score, so
	// fixing one is worth that share.
	perCheckImpact := 100 / float64(len(checks))

	passed := 0
	var recs []Recommendation
	for _, c := range checks {
		if c.ok {
			passed++
			continue
		}
		if c.recID == "" {
			continue
		}
		tpl := recTemplates[c.recID]
		recs = append(recs, Recommendation{
			ID:                       uuid.NewString(),
			Type:                     c.typ,
			Category:                 c.category,
			Title:                    tpl.title,
			Description:              tpl.description,
			ActionSteps:              tpl.steps,
			EstimatedImpact:          perCheckImpact,
			ImplementationComplexity: tpl.complexity,
		})
	}
	score := 100 * float64(passed) / float64(len(checks))

	return &QuickCheckResult{
		Compliant:                   len(missing) == 0 && score >= CompliantThreshold,
		Score:                       score,
		MissingFields:               missing,
		Recommendations:             recs,
		EstimatedFullValidationTime: time.Duration(len(e.validators)) * perValidatorEstimate,
	}
}

// fieldPath turns a validator namespace like
// "SerbianMetadataSchema.Publisher.Name" into "publisher.name".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
