// pkg/compliance/engine.go
package compliance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	"github.com/datagovrs/standards/pkg/logger"
	"github.com/datagovrs/standards/pkg/metadata"
	"github.com/datagovrs/standards/pkg/parse"
	"github.com/datagovrs/standards/pkg/sderr"
)

const (
	engineVersion    = "1.2.0"
	standardsVersion = "dcat-ap-rs-2.0"
)

// Engine runs a validator set against a dataset and aggregates the
// weighted category scores. Safe for concurrent use.
type Engine struct {
	log        *zap.Logger
	validators []Validator
}

// Option configures an Engine.
type Option func(*Engine)

// WithValidators replaces the default validator set.
func WithValidators(vs ...Validator) Option {
	return func(e *Engine) { e.validators = vs }
}

// WithConfig applies weight overrides from a loaded configuration.
func WithConfig(cfg *Config) Option {
	return func(e *Engine) { e.validators = cfg.apply(e.validators) }
}

// New builds an engine with the default validators. A nil logger is
// replaced with a nop logger.
func New(log *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		log:        logger.OrNop(log),
		validators: DefaultValidators(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateDataset runs every registered validator over the records and
// metadata and aggregates the results. Malformed inputs never panic and
// a failing validator never aborts the run; both surface as validation
// errors on the report.
func (e *Engine) ValidateDataset(ctx context.Context, records []parse.Record, meta *metadata.SerbianMetadataSchema) *ComplianceReport {
	start := time.Now()

	var validationErrors []sderr.ValidationError
	if meta == nil {
		meta = &metadata.SerbianMetadataSchema{}
		validationErrors = append(validationErrors, sderr.NewValidationError(sderr.CodeMissingRequiredField, "metadata", "no metadata supplied"))
	}

	otelzap.Ctx(ctx).Info("starting dataset validation",
		zap.String("dataset", meta.Identifier),
		zap.Int("records", len(records)),
		zap.Int("validators", len(e.validators)))

	vc := &Context{Records: records, Meta: meta, Log: e.log}

	var categories []CategoryResult
	weightedSum, weightTotal := 0.0, 0.0
	for _, v := range e.validators {
		result, err := v.Validate(ctx, vc)
		if err != nil {
			e.log.Warn("validator failed",
				zap.String("validator", v.Name()),
				zap.Error(err))
			validationErrors = append(validationErrors,
				sderr.NewValidationError(sderr.CodeValidatorFailure, v.Name(), err.Error()))
			continue
		}
		categories = append(categories, *result)
		weightedSum += result.Score * result.Weight
		weightTotal += result.Weight
	}

	overall := 0.0
	if weightTotal > 0 {
		overall = weightedSum / weightTotal
	}

	report := &ComplianceReport{
		ID:                uuid.NewString(),
		DatasetIdentifier: meta.Identifier,
		GeneratedAt:       start,
		OverallScore:      overall,
		Status:            statusFor(overall),
		IsCompliant:       overall >= CompliantThreshold,
		Categories:        categories,
		Recommendations:   buildRecommendations(categories),
		ValidationErrors:  validationErrors,
		Metadata: ReportMetadata{
			EngineVersion:    engineVersion,
			StandardsVersion: standardsVersion,
			Duration:         time.Since(start),
			DatasetRows:      len(records),
			ProcessingMethod: "in_memory",
		},
	}

	otelzap.Ctx(ctx).Info("dataset validation finished",
		zap.String("report", report.ID),
		zap.Float64("score", report.OverallScore),
		zap.String("status", report.Status),
		zap.Duration("duration", report.Metadata.Duration))

	return report
}

// recTemplate tailors the advice attached to one requirement.
// Requirements without a template fall back to a generic one.
type recTemplate struct {
	title       string
	description string
	steps       []string
	complexity  string
}

var recTemplates = map[string]recTemplate{
	"completeness.identifier": {
		title:       "Assign a dataset identifier",
		description: "The dataset has no unique identifier, so reports and catalogs cannot reference it",
		steps:       []string{"Mint a stable identifier in the institution's namespace", "Record it in the metadata identifier field"},
		complexity:  ComplexityLow,
	},
	"completeness.title": {
		title:       "Add a dataset title",
		description: "The dataset has no title in any language",
		steps:       []string{"Write a descriptive title", "Provide it in Serbian and English"},
		complexity:  ComplexityLow,
	},
	"completeness.description": {
		title:       "Add a dataset description",
		description: "The dataset has no description explaining what the data contains",
		steps:       []string{"Describe the content, collection method and caveats", "Provide the text in Serbian and English"},
		complexity:  ComplexityLow,
	},
	"completeness.publisher": {
		title:       "Name the publishing organization",
		description: "No publishing organization is declared",
		steps:       []string{"Record the responsible institution in the publisher field"},
		complexity:  ComplexityLow,
	},
	"completeness.license": {
		title:       "Declare an open license",
		description: "The dataset declares no license; reusers cannot tell what is permitted. CC BY 4.0 is recommended",
		steps:       []string{"Pick an open license, CC BY 4.0 by default", "Record its URL in the license field"},
		complexity:  ComplexityLow,
	},
	"completeness.keywords": {
		title:       "Add discovery keywords",
		description: "The dataset carries no keywords, which hurts catalog search",
		steps:       []string{"Add at least three keywords in Serbian"},
		complexity:  ComplexityLow,
	},
	"completeness.theme": {
		title:       "Classify the dataset under a data theme",
		description: "The dataset is not classified under an EU data-theme code",
		steps:       []string{"Pick the matching data-theme code", "Record it with bilingual labels"},
		complexity:  ComplexityLow,
	},
	"accessibility.bilingual_title": {
		title:       "Provide the title in Serbian and English",
		description: "The title is available in one language only",
		steps:       []string{"Translate the title", "Store both language variants in the title map"},
		complexity:  ComplexityLow,
	},
	"accessibility.machine_readable": {
		title:       "Publish a machine-readable distribution",
		description: "No distribution uses a machine-readable format such as CSV or JSON",
		steps:       []string{"Export the data as CSV or JSON", "Attach it as a distribution with a download URL"},
		complexity:  ComplexityMedium,
	},
	"accessibility.distribution_links": {
		title:       "Link the distributions",
		description: "Distributions are declared without an access or download URL",
		steps:       []string{"Publish each distribution at a stable URL", "Record the URL on the distribution"},
		complexity:  ComplexityMedium,
	},
	"accessibility.contact_point": {
		title:       "Declare a contact point",
		description: "There is no contact for questions about the dataset",
		steps:       []string{"Designate a responsible contact", "Record a monitored email address"},
		complexity:  ComplexityLow,
	},
	"language.serbian_tag": {
		title:       "Use Serbian language",
		description: "The language list declares no Serbian tag",
		steps:       []string{"Add sr to the language list"},
		complexity:  ComplexityLow,
	},
	"language.international_tag": {
		title:       "Declare a non-Serbian language",
		description: "Only Serbian is declared; international users cannot tell the dataset is usable",
		steps:       []string{"Add en to the language list", "Provide English title and description"},
		complexity:  ComplexityLow,
	},
	"language.serbian_text": {
		title:       "Use Serbian language",
		description: "Neither title nor description carries an actual Serbian value",
		steps:       []string{"Write the title and description in Serbian", "Tag them sr in the multilingual fields"},
		complexity:  ComplexityMedium,
	},
	"language.cyrillic": {
		title:       "Provide Serbian text in Cyrillic",
		description: "Serbian text is available in Latin script only",
		steps:       []string{"Transliterate the Serbian title and description to Cyrillic", "Store them under sr-Cyrl"},
		complexity:  ComplexityMedium,
	},
	"quality.identifiers": {
		title:       "Fix invalid identifiers",
		description: "JMBG or PIB values in the records fail checksum validation",
		steps:       []string{"Re-export the source columns without truncation", "Validate identifiers at the point of entry"},
		complexity:  ComplexityHigh,
	},
	"quality.script_consistency": {
		title:       "Use one script consistently",
		description: "Text cells mix Cyrillic and Latin within the dataset",
		steps:       []string{"Pick one script for the published data", "Transliterate the minority cells"},
		complexity:  ComplexityMedium,
	},
	"quality.missing_values": {
		title:       "Reduce missing values",
		description: "A large share of cells is empty or carries a missing-value token",
		steps:       []string{"Backfill missing cells from the source system where possible"},
		complexity:  ComplexityHigh,
	},
	"geographic.spatial_field": {
		title:       "Declare spatial coverage",
		description: "The metadata does not say what territory the data covers",
		steps:       []string{"Record the covered municipality, region or Republika Srbija in the spatial field"},
		complexity:  ComplexityLow,
	},
	"geographic.place_references": {
		title:       "Name the covered places",
		description: "The descriptive text names no recognizable Serbian municipality or region",
		steps:       []string{"Mention the covered municipalities or regions in the description"},
		complexity:  ComplexityLow,
	},
	"temporal.extent": {
		title:       "Declare the covered period",
		description: "The metadata does not state the period the data applies to",
		steps:       []string{"Record start and end dates in the temporal field"},
		complexity:  ComplexityLow,
	},
	"temporal.freshness": {
		title:       "Update the dataset",
		description: "The dataset has not been published or modified recently",
		steps:       []string{"Publish the current data", "Record the modification date"},
		complexity:  ComplexityMedium,
	},
	"temporal.update_frequency": {
		title:       "Declare the update frequency",
		description: "The update frequency is missing or uses a non-canonical spelling",
		steps:       []string{"Pick a value from the canonical vocabulary, dnevno through godišnje"},
		complexity:  ComplexityLow,
	},
}

func buildRecommendations(categories []CategoryResult) []Recommendation {
	var recs []Recommendation
	for _, cat := range categories {
		for _, req := range cat.Requirements {
			if req.Status == StatusPass {
				continue
			}
			tpl, ok := recTemplates[req.ID]
			if !ok {
				tpl = recTemplate{
					title:       "Improve: " + req.Name,
					description: req.Description,
					steps:       []string{"Review " + req.Name},
					complexity:  ComplexityMedium,
				}
			}
			recType := TypeMinor
			if req.Status == StatusFail {
				recType = TypeMajor
				if req.Required {
					recType = TypeCritical
				}
			}
			// Overall-score points gained by fully resolving this
			// requirement, given equal requirement weighting inside the
			// category.
			impact := (100 - req.Score) / float64(len(cat.Requirements)) * cat.Weight
			recs = append(recs, Recommendation{
				ID:                       uuid.NewString(),
				Type:                     recType,
				Category:                 cat.Name,
				Title:                    tpl.title,
				Description:              tpl.description,
				ActionSteps:              tpl.steps,
				EstimatedImpact:          impact,
				ImplementationComplexity: tpl.complexity,
			})
		}
	}
	return recs
}
