// pkg/compliance/geographic.go
package compliance

import (
	"context"
	"fmt"
	"strings"

	"github.com/datagovrs/standards/pkg/gazetteer"
)

// geographicValidator checks whether the dataset says where its data
// applies: a spatial field, and recognizable Serbian place references in
// the descriptive text.
type geographicValidator struct {
	weight float64
}

func (v *geographicValidator) Name() string    { return "geographic_coverage" }
func (v *geographicValidator) Weight() float64 { return v.weight }

func (v *geographicValidator) Validate(_ context.Context, vc *Context) (*CategoryResult, error) {
	meta := vc.Meta
	text := metaText(meta)

	mentions := gazetteer.MunicipalityMentions(text)
	placeScore := 0.0
	placeEvidence := "no recognizable place references"
	switch {
	case len(mentions) > 0:
		placeScore = 100
		placeEvidence = "municipalities: " + strings.Join(mentions, ", ")
	case gazetteer.MentionsRegion(text):
		placeScore = 100
		placeEvidence = "national or regional coverage stated"
	}

	reqs := []Requirement{
		{
			ID:          "geographic.spatial_field",
			Name:        "Spatial coverage declared",
			Description: "Metadata carries a spatial coverage value",
			Score:       boolScore(meta.Spatial != ""),
			Evidence:    fmt.Sprintf("spatial=%q", meta.Spatial),
		},
		{
			ID:          "geographic.place_references",
			Name:        "Recognizable place references",
			Description: "Descriptive text names a Serbian municipality or region",
			Score:       placeScore,
			Evidence:    placeEvidence,
		},
	}

	return newCategory(v.Name(), v.weight, reqs), nil
}
