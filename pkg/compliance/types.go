// Package compliance scores datasets against Serbian open data
// standards. Independent validators each score one category; the engine
// aggregates weighted category scores into a report.
package compliance

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/datagovrs/standards/pkg/metadata"
	"github.com/datagovrs/standards/pkg/parse"
	"github.com/datagovrs/standards/pkg/sderr"
)

// Requirement statuses.
const (
	StatusPass    = "pass"
	StatusWarning = "warning"
	StatusFail    = "fail"
)

// Category / report statuses.
const (
	StatusCompliant          = "compliant"
	StatusPartiallyCompliant = "partially_compliant"
	StatusNonCompliant       = "non_compliant"
)

// Score thresholds on the 0-100 scale.
const (
	CompliantThreshold = 80.0
	PartialThreshold   = 60.0
)

// Requirement is the atomic unit of validation. Immutable once produced
// by a validator call.
type Requirement struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Required    bool    `json:"required"`
	Status      string  `json:"status"`
	Score       float64 `json:"score"`
	Evidence    string  `json:"evidence"`
}

// CategoryResult is one validator's scored category. Its score is the
// mean of its requirement scores.
type CategoryResult struct {
	Name         string        `json:"name"`
	Score        float64       `json:"score"`
	Weight       float64       `json:"weight"`
	Requirements []Requirement `json:"requirements"`
	Status       string        `json:"status"`
}

// Recommendation tells the publisher what to fix and what fixing it is
// worth. Advisory only; it never mutates input data. EstimatedImpact is
// the overall-score gain, 0-100, from resolving the finding completely.
type Recommendation struct {
	ID                       string   `json:"id"`
	Type                     string   `json:"type"`
	Category                 string   `json:"category"`
	Title                    string   `json:"title"`
	Description              string   `json:"description"`
	ActionSteps              []string `json:"actionSteps"`
	EstimatedImpact          float64  `json:"estimatedImpact"`
	ImplementationComplexity string   `json:"implementationComplexity"`
}

// Recommendation types. Critical marks a failed required check, major a
// failed optional one, minor a warning.
const (
	TypeMinor    = "minor"
	TypeMajor    = "major"
	TypeCritical = "critical"
)

// Implementation complexities.
const (
	ComplexityLow    = "low"
	ComplexityMedium = "medium"
	ComplexityHigh   = "high"
)

// ReportMetadata records how a report was produced.
type ReportMetadata struct {
	EngineVersion    string        `json:"engineVersion"`
	StandardsVersion string        `json:"standardsVersion"`
	Duration         time.Duration `json:"duration"`
	DatasetRows      int           `json:"datasetRows"`
	ProcessingMethod string        `json:"processingMethod"`
}

// ComplianceReport is the engine's aggregate verdict. Immutable once
// returned; the dataset identifier it references must not change
// afterwards.
type ComplianceReport struct {
	ID                string                  `json:"id"`
	DatasetIdentifier string                  `json:"datasetIdentifier"`
	GeneratedAt       time.Time               `json:"generatedAt"`
	OverallScore      float64                 `json:"overallScore"`
	Status            string                  `json:"status"`
	IsCompliant       bool                    `json:"isCompliant"`
	Categories        []CategoryResult        `json:"categories"`
	Recommendations   []Recommendation        `json:"recommendations"`
	ValidationErrors  []sderr.ValidationError `json:"validationErrors,omitempty"`
	Metadata          ReportMetadata          `json:"metadata"`
}

// QuickCheckResult is the cheap structural verdict. It inspects metadata
// only, never records.
type QuickCheckResult struct {
	Compliant                   bool             `json:"compliant"`
	Score                       float64          `json:"score"`
	MissingFields               []string         `json:"missingFields"`
	Recommendations             []Recommendation `json:"recommendations"`
	EstimatedFullValidationTime time.Duration    `json:"estimatedFullValidationTime"`
}

// Context is the input every validator sees. Records may be empty when
// only metadata is being assessed.
type Context struct {
	Records []parse.Record
	Meta    *metadata.SerbianMetadataSchema
	Log     *zap.Logger
}

// Validator scores one named category. Implementations must be safe for
// concurrent use and must not mutate the context.
type Validator interface {
	Name() string
	Weight() float64
	Validate(ctx context.Context, vc *Context) (*CategoryResult, error)
}

// statusFor maps a 0-100 score onto a compliance status.
func statusFor(score float64) string {
	switch {
	case score >= CompliantThreshold:
		return StatusCompliant
	case score >= PartialThreshold:
		return StatusPartiallyCompliant
	default:
		return StatusNonCompliant
	}
}

// requirementStatus maps a requirement score onto pass/warning/fail.
func requirementStatus(score float64) string {
	switch {
	case score >= CompliantThreshold:
		return StatusPass
	case score >= PartialThreshold-10:
		return StatusWarning
	default:
		return StatusFail
	}
}

// newCategory computes the mean score and statuses over a requirement
// list.
func newCategory(name string, weight float64, reqs []Requirement) *CategoryResult {
	total := 0.0
	for i := range reqs {
		if reqs[i].Status == "" {
			reqs[i].Status = requirementStatus(reqs[i].Score)
		}
		total += reqs[i].Score
	}
	score := 0.0
	if len(reqs) > 0 {
		score = total / float64(len(reqs))
	}
	return &CategoryResult{
		Name:         name,
		Score:        score,
		Weight:       weight,
		Requirements: reqs,
		Status:       statusFor(score),
	}
}

// boolScore is the common pass/fail requirement scoring.
func boolScore(ok bool) float64 {
	if ok {
		return 100
	}
	return 0
}
