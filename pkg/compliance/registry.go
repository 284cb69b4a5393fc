// pkg/compliance/registry.go
package compliance

// Default category weights. They sum to 1.0 so the weighted overall
// score stays on the 0-100 scale.
const (
	WeightCompleteness  = 0.30
	WeightAccessibility = 0.20
	WeightLanguage      = 0.15
	WeightDataQuality   = 0.15
	WeightGeographic    = 0.10
	WeightTemporal      = 0.10
)

// DefaultValidators returns the standard validator set. Adding a
// validator here is the only change needed to grow the engine's
// coverage; the orchestrator never special-cases categories.
func DefaultValidators() []Validator {
	return []Validator{
		&completenessValidator{weight: WeightCompleteness},
		&accessibilityValidator{weight: WeightAccessibility},
		&languageValidator{weight: WeightLanguage},
		&qualityValidator{weight: WeightDataQuality},
		&geographicValidator{weight: WeightGeographic},
		&temporalValidator{weight: WeightTemporal},
	}
}
