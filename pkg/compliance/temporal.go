// pkg/compliance/temporal.go
package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/datagovrs/standards/pkg/metadata"
)

// staleAfter is how old a dataset may grow, counted from its last
// publication or modification, before freshness drops to a warning.
const staleAfter = 2 * 365 * 24 * time.Hour

// canonicalFrequencies is the update-frequency vocabulary temporal
// scoring accepts.
var canonicalFrequencies = map[string]bool{
	"dnevno":     true,
	"nedeljno":   true,
	"mesečno":    true,
	"kvartalno":  true,
	"godišnje":   true,
	"po potrebi": true,
}

// temporalValidator checks when the data applies and how fresh it is.
type temporalValidator struct {
	weight float64
	now    func() time.Time
}

func (v *temporalValidator) Name() string    { return "temporal_coverage" }
func (v *temporalValidator) Weight() float64 { return v.weight }

func (v *temporalValidator) Validate(_ context.Context, vc *Context) (*CategoryResult, error) {
	meta := vc.Meta
	now := time.Now
	if v.now != nil {
		now = v.now
	}

	hasExtent := meta.Temporal != nil && (!meta.Temporal.Start.IsZero() || !meta.Temporal.End.IsZero())

	latest := meta.PublicationDate
	if meta.ModificationDate != nil && meta.ModificationDate.After(latest) {
		latest = *meta.ModificationDate
	}
	freshScore := 0.0
	freshEvidence := "no publication or modification date"
	if !latest.IsZero() {
		age := now().Sub(latest)
		if age <= staleAfter {
			freshScore = 100
		} else {
			freshScore = 50
		}
		freshEvidence = fmt.Sprintf("last updated %s", latest.Format("2006-01-02"))
	}

	freqScore := 50.0
	freqEvidence := "update frequency not declared"
	if meta.UpdateFrequency != "" {
		if canonicalFrequencies[meta.UpdateFrequency] {
			freqScore = 100
			freqEvidence = "frequency " + meta.UpdateFrequency
		} else {
			freqScore = 50
			freqEvidence = fmt.Sprintf("non-canonical frequency %q", meta.UpdateFrequency)
		}
	}

	reqs := []Requirement{
		{
			ID:          "temporal.extent",
			Name:        "Temporal extent declared",
			Description: "Metadata states the period the data covers",
			Score:       boolScore(hasExtent),
			Evidence:    temporalEvidence(meta),
		},
		{
			ID:          "temporal.freshness",
			Name:        "Freshness",
			Description: "Dataset was published or modified recently",
			Score:       freshScore,
			Evidence:    freshEvidence,
		},
		{
			ID:          "temporal.update_frequency",
			Name:        "Update frequency",
			Description: "Update frequency uses the canonical vocabulary",
			Score:       freqScore,
			Evidence:    freqEvidence,
		},
	}

	return newCategory(v.Name(), v.weight, reqs), nil
}

func temporalEvidence(meta *metadata.SerbianMetadataSchema) string {
	if meta.Temporal == nil {
		return "no temporal extent"
	}
	return fmt.Sprintf("%s to %s", evidenceDate(meta.Temporal.Start), evidenceDate(meta.Temporal.End))
}
