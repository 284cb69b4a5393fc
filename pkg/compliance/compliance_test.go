// pkg/compliance/compliance_test.go
package compliance

import (
	"context"
	"strings"
	"testing"
	"time"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagovrs/standards/pkg/metadata"
	"github.com/datagovrs/standards/pkg/parse"
	"github.com/datagovrs/standards/pkg/sderr"
)

// fullMetadata is a bilingual, licensed, completely described dataset.
func fullMetadata(t *testing.T) *metadata.SerbianMetadataSchema {
	t.Helper()
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	return &metadata.SerbianMetadataSchema{
		Identifier: "rs-gov-registar-skola",
		Title: metadata.MultilingualText{
			"sr": "Регистар основних школа",
			"en": "Register of primary schools",
		},
		Description: metadata.MultilingualText{
			"sr": "Списак основних школа у Републици Србији",
			"en": "List of primary schools in the Republic of Serbia",
		},
		Publisher:       metadata.Publisher{Name: "Ministarstvo prosvete"},
		PublicationDate: time.Now().AddDate(0, -3, 0),
		Language:        []string{"sr", "en"},
		Theme:           []metadata.Theme{metadata.ThemeFromCode("EDUC")},
		Keywords:        []string{"škole", "obrazovanje"},
		Format:          []metadata.FormatDescriptor{{MediaType: "text/csv"}},
		License:         metadata.DefaultLicense,
		ContactPoint:    &metadata.ContactPoint{Email: "podaci@mpn.gov.rs"},
		Distribution: []metadata.Distribution{{
			AccessURL: "https://data.gov.rs/sr/datasets/registar-skola",
			Format:    metadata.FormatDescriptor{MediaType: "text/csv"},
		}},
		Spatial:         "Republika Srbija",
		Temporal:        &metadata.TemporalExtent{Start: start, End: end},
		UpdateFrequency: "godišnje",
	}
}

func TestValidateDatasetFullMetadataNoRecords(t *testing.T) {
	t.Parallel()

	report := ValidateDataset(context.Background(), nil, fullMetadata(t))

	assert.GreaterOrEqual(t, report.OverallScore, 80.0)
	assert.True(t, report.IsCompliant)
	assert.Equal(t, StatusCompliant, report.Status)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "rs-gov-registar-skola", report.DatasetIdentifier)
	assert.Len(t, report.Categories, 6)
	assert.Equal(t, 0, report.Metadata.DatasetRows)

	totalWeight := 0.0
	for _, cat := range report.Categories {
		totalWeight += cat.Weight
	}
	assert.InDelta(t, 1.0, totalWeight, 1e-9)
}

func TestValidateDatasetEmptyMetadata(t *testing.T) {
	t.Parallel()

	report := ValidateDataset(context.Background(), nil, &metadata.SerbianMetadataSchema{})

	assert.False(t, report.IsCompliant)
	assert.Equal(t, StatusNonCompliant, report.Status)

	var sawCritical bool
	for _, rec := range report.Recommendations {
		if rec.Type == TypeCritical {
			sawCritical = true
		}
	}
	assert.True(t, sawCritical)
}

func TestRecommendationsCarryFullAdvice(t *testing.T) {
	t.Parallel()

	report := ValidateDataset(context.Background(), nil, &metadata.SerbianMetadataSchema{})
	require.NotEmpty(t, report.Recommendations)

	validTypes := map[string]bool{TypeMinor: true, TypeMajor: true, TypeCritical: true}
	validComplexities := map[string]bool{ComplexityLow: true, ComplexityMedium: true, ComplexityHigh: true}
	seen := map[string]bool{}
	for _, rec := range report.Recommendations {
		assert.NotEmpty(t, rec.ID)
		assert.False(t, seen[rec.ID], "recommendation IDs must be unique")
		seen[rec.ID] = true
		assert.True(t, validTypes[rec.Type], "type %q", rec.Type)
		assert.NotEmpty(t, rec.Category)
		assert.NotEmpty(t, rec.Title)
		assert.NotEmpty(t, rec.Description)
		assert.NotEmpty(t, rec.ActionSteps)
		assert.Greater(t, rec.EstimatedImpact, 0.0)
		assert.LessOrEqual(t, rec.EstimatedImpact, 100.0)
		assert.True(t, validComplexities[rec.ImplementationComplexity], "complexity %q", rec.ImplementationComplexity)
	}

	// A failed required check is critical; the missing license is one.
	var license *Recommendation
	for i := range report.Recommendations {
		if report.Recommendations[i].Title == "Declare an open license" {
			license = &report.Recommendations[i]
		}
	}
	require.NotNil(t, license)
	assert.Equal(t, TypeCritical, license.Type)
	assert.Equal(t, "metadata_completeness", license.Category)
}

func TestValidateDatasetNilMetadata(t *testing.T) {
	t.Parallel()

	report := ValidateDataset(context.Background(), nil, nil)

	assert.False(t, report.IsCompliant)
	require.NotEmpty(t, report.ValidationErrors)
	assert.Equal(t, sderr.CodeMissingRequiredField, report.ValidationErrors[0].Code)
}

func TestValidateDatasetScoresIdentifierQuality(t *testing.T) {
	t.Parallel()

	records := []parse.Record{
		{"ime": "Petar", "jmbg": "0101990710008"},
		{"ime": "Mika", "jmbg": "1234567890123"},
	}
	report := ValidateDataset(context.Background(), records, fullMetadata(t))

	var quality *CategoryResult
	for i := range report.Categories {
		if report.Categories[i].Name == "data_quality" {
			quality = &report.Categories[i]
		}
	}
	require.NotNil(t, quality)

	var idReq *Requirement
	for i := range quality.Requirements {
		if quality.Requirements[i].ID == "quality.identifiers" {
			idReq = &quality.Requirements[i]
		}
	}
	require.NotNil(t, idReq)
	assert.InDelta(t, 50.0, idReq.Score, 1e-9)
	assert.Equal(t, "1 of 2 identifiers valid", idReq.Evidence)
	assert.Equal(t, 2, report.Metadata.DatasetRows)
}

func TestQualityVacuousOnEmptyDataset(t *testing.T) {
	t.Parallel()

	v := &qualityValidator{weight: WeightDataQuality}
	result, err := v.Validate(context.Background(), &Context{Meta: &metadata.SerbianMetadataSchema{}})
	require.NoError(t, err)

	assert.InDelta(t, 100.0, result.Score, 1e-9)
	for _, req := range result.Requirements {
		assert.Equal(t, StatusPass, req.Status)
		assert.Equal(t, "no records supplied", req.Evidence)
	}
}

type failingValidator struct{}

func (failingValidator) Name() string    { return "failing" }
func (failingValidator) Weight() float64 { return 1.0 }
func (failingValidator) Validate(context.Context, *Context) (*CategoryResult, error) {
	return nil, cerr.New("boom")
}

func TestValidatorErrorsAreCollected(t *testing.T) {
	t.Parallel()

	engine := New(nil, WithValidators(failingValidator{}))
	report := engine.ValidateDataset(context.Background(), nil, fullMetadata(t))

	assert.Empty(t, report.Categories)
	require.Len(t, report.ValidationErrors, 1)
	assert.Equal(t, sderr.CodeValidatorFailure, report.ValidationErrors[0].Code)
	assert.Equal(t, "failing", report.ValidationErrors[0].Field)
}

func TestQuickCheckMissingEverything(t *testing.T) {
	t.Parallel()

	result := QuickCheck(&metadata.SerbianMetadataSchema{
		Title: metadata.MultilingualText{"en": "X"},
	})

	assert.False(t, result.Compliant)
	assert.Contains(t, result.MissingFields, "identifier")

	var serbianRec *Recommendation
	for i := range result.Recommendations {
		rec := &result.Recommendations[i]
		if strings.Contains(rec.Title+" "+rec.Description, "Serbian language") {
			serbianRec = rec
		}
	}
	require.NotNil(t, serbianRec)
	assert.Equal(t, TypeCritical, serbianRec.Type)
	assert.NotEmpty(t, serbianRec.ID)
	assert.NotEmpty(t, serbianRec.ActionSteps)
	assert.Greater(t, result.EstimatedFullValidationTime, time.Duration(0))
}

func TestQuickCheckFullMetadata(t *testing.T) {
	t.Parallel()

	result := QuickCheck(fullMetadata(t))

	assert.True(t, result.Compliant)
	assert.Empty(t, result.MissingFields)
	assert.InDelta(t, 100.0, result.Score, 1e-9)
}

func TestQuickCheckNilMetadata(t *testing.T) {
	t.Parallel()

	result := QuickCheck(nil)
	assert.False(t, result.Compliant)
	assert.NotEmpty(t, result.MissingFields)
}

func TestGenerateComplianceReport(t *testing.T) {
	t.Parallel()

	report := ValidateDataset(context.Background(), nil, &metadata.SerbianMetadataSchema{
		Identifier: "rs-prazan",
		Title:      metadata.MultilingualText{"sr": "Naslov"},
	})
	human := GenerateComplianceReport(report)

	assert.Equal(t, "Izveštaj o usklađenosti skupa podataka", human.TitleSr)
	assert.Equal(t, "Dataset Compliance Report", human.TitleEn)
	assert.Equal(t, "rs-prazan", human.DatasetIdentifier)
	assert.Len(t, human.Sections, 6)
	assert.NotEmpty(t, human.NextSteps)
	assert.NotEmpty(t, human.LegalReferences)

	text := human.Render()
	assert.Contains(t, text, "Zakon o elektronskoj upravi")
	assert.Contains(t, text, "Sledeći koraci")
	assert.Contains(t, text, "Potpunost metapodataka")
}

func TestConfigFromYAML(t *testing.T) {
	t.Parallel()

	good := []byte(`
weights:
  metadata_completeness: 0.40
  accessibility: 0.20
  language_compliance: 0.10
  data_quality: 0.10
  geographic_coverage: 0.10
  temporal_coverage: 0.10
`)
	cfg, err := ConfigFromYAML(good)
	require.NoError(t, err)

	engine := New(nil, WithConfig(cfg))
	report := engine.ValidateDataset(context.Background(), nil, fullMetadata(t))
	for _, cat := range report.Categories {
		if cat.Name == "metadata_completeness" {
			assert.InDelta(t, 0.40, cat.Weight, 1e-9)
		}
	}
}

func TestConfigFromYAMLRejectsBadWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"does not sum to one", "weights:\n  metadata_completeness: 0.5\n  accessibility: 0.4\n"},
		{"unknown validator", "weights:\n  nonexistent: 1.0\n"},
		{"negative weight", "weights:\n  metadata_completeness: -0.5\n  accessibility: 1.5\n"},
		{"malformed yaml", "weights: [not a map"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ConfigFromYAML([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestStatusThresholds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusCompliant, statusFor(80))
	assert.Equal(t, StatusCompliant, statusFor(100))
	assert.Equal(t, StatusPartiallyCompliant, statusFor(79.9))
	assert.Equal(t, StatusPartiallyCompliant, statusFor(60))
	assert.Equal(t, StatusNonCompliant, statusFor(59.9))
	assert.Equal(t, StatusNonCompliant, statusFor(0))
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	t.Parallel()

	sum := 0.0
	for _, v := range DefaultValidators() {
		sum += v.Weight()
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
