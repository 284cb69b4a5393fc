// pkg/compliance/completeness.go
package compliance

import (
	"context"
	"fmt"
)

// completenessValidator checks that the descriptive metadata fields the
// national portal requires are actually filled in.
type completenessValidator struct {
	weight float64
}

func (v *completenessValidator) Name() string    { return "metadata_completeness" }
func (v *completenessValidator) Weight() float64 { return v.weight }

func (v *completenessValidator) Validate(_ context.Context, vc *Context) (*CategoryResult, error) {
	meta := vc.Meta

	reqs := []Requirement{
		{
			ID:          "completeness.identifier",
			Name:        "Dataset identifier",
			Description: "Dataset declares a unique identifier",
			Required:    true,
			Score:       boolScore(meta.Identifier != ""),
			Evidence:    fmt.Sprintf("identifier=%q", meta.Identifier),
		},
		{
			ID:          "completeness.title",
			Name:        "Title",
			Description: "Dataset has a title in at least one language",
			Required:    true,
			Score:       boolScore(len(meta.Title) > 0),
			Evidence:    fmt.Sprintf("%d title language(s)", len(meta.Title)),
		},
		{
			ID:          "completeness.description",
			Name:        "Description",
			Description: "Dataset has a description",
			Score:       boolScore(len(meta.Description) > 0),
			Evidence:    fmt.Sprintf("%d description language(s)", len(meta.Description)),
		},
		{
			ID:          "completeness.publisher",
			Name:        "Publisher",
			Description: "Publishing organization is named",
			Required:    true,
			Score:       boolScore(meta.Publisher.Name != ""),
			Evidence:    fmt.Sprintf("publisher=%q", meta.Publisher.Name),
		},
		{
			ID:          "completeness.publication_date",
			Name:        "Publication date",
			Description: "Dataset declares when it was published",
			Score:       boolScore(!meta.PublicationDate.IsZero()),
			Evidence:    evidenceDate(meta.PublicationDate),
		},
		{
			ID:          "completeness.license",
			Name:        "License",
			Description: "Dataset declares a license",
			Required:    true,
			Score:       boolScore(meta.License != ""),
			Evidence:    fmt.Sprintf("license=%q", meta.License),
		},
		{
			ID:          "completeness.keywords",
			Name:        "Keywords",
			Description: "Dataset carries discovery keywords",
			Score:       boolScore(len(meta.Keywords) > 0),
			Evidence:    fmt.Sprintf("%d keyword(s)", len(meta.Keywords)),
		},
		{
			ID:          "completeness.theme",
			Name:        "Theme",
			Description: "Dataset is classified under a data theme",
			Score:       boolScore(len(meta.Theme) > 0),
			Evidence:    fmt.Sprintf("%d theme(s)", len(meta.Theme)),
		},
	}

	return newCategory(v.Name(), v.weight, reqs), nil
}
