// pkg/compliance/accessibility.go
package compliance

import (
	"context"
	"fmt"
	"strings"
)

// machineReadable lists the MIME types that count as machine-readable
// for accessibility scoring.
var machineReadable = map[string]bool{
	"text/csv":                 true,
	"application/json":         true,
	"application/xml":          true,
	"application/geo+json":     true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.oasis.opendocument.spreadsheet":                    true,
}

// accessibilityValidator checks that the dataset can actually be found,
// read and asked about: bilingual titling, machine-readable formats,
// working distribution links, a contact point.
type accessibilityValidator struct {
	weight float64
}

func (v *accessibilityValidator) Name() string    { return "accessibility" }
func (v *accessibilityValidator) Weight() float64 { return v.weight }

func (v *accessibilityValidator) Validate(_ context.Context, vc *Context) (*CategoryResult, error) {
	meta := vc.Meta

	bilingual := meta.Title.HasSerbian() && meta.Title.HasOther()

	readable := false
	var mimes []string
	for _, f := range meta.Format {
		mimes = append(mimes, f.MediaType)
		if machineReadable[f.MediaType] {
			readable = true
		}
	}
	for _, d := range meta.Distribution {
		if machineReadable[d.Format.MediaType] {
			readable = true
		}
	}

	linked := len(meta.Distribution) == 0
	for _, d := range meta.Distribution {
		if d.AccessURL != "" || d.DownloadURL != "" {
			linked = true
			break
		}
	}
	linkScore := boolScore(linked)
	linkEvidence := fmt.Sprintf("%d distribution(s)", len(meta.Distribution))
	if len(meta.Distribution) == 0 {
		// No distributions is a discoverability warning, not a hard
		// failure; catalogs may link at the dataset level.
		linkScore = 50
		linkEvidence = "no distributions declared"
	}

	contact := meta.ContactPoint != nil && (meta.ContactPoint.Email != "" || meta.ContactPoint.Name != "")

	reqs := []Requirement{
		{
			ID:          "accessibility.bilingual_title",
			Name:        "Bilingual title",
			Description: "Title is available in Serbian and at least one other language",
			Score:       boolScore(bilingual),
			Evidence:    fmt.Sprintf("title languages: %s", titleLanguages(meta)),
		},
		{
			ID:          "accessibility.machine_readable",
			Name:        "Machine-readable format",
			Description: "At least one distribution format is machine readable",
			Required:    true,
			Score:       boolScore(readable),
			Evidence:    fmt.Sprintf("formats: %s", strings.Join(mimes, ", ")),
		},
		{
			ID:          "accessibility.distribution_links",
			Name:        "Distribution links",
			Description: "Distributions expose an access or download URL",
			Score:       linkScore,
			Evidence:    linkEvidence,
		},
		{
			ID:          "accessibility.contact_point",
			Name:        "Contact point",
			Description: "A contact point for questions is declared",
			Score:       boolScore(contact),
			Evidence:    contactEvidence(meta),
		},
	}

	return newCategory(v.Name(), v.weight, reqs), nil
}
