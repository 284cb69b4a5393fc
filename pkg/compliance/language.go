// pkg/compliance/language.go
package compliance

import (
	"context"
	"fmt"
	"strings"

	"github.com/datagovrs/standards/pkg/script"
)

// languageValidator scores how well a dataset serves both domestic and
// international users: Serbian tags and text on one side, a non-Serbian
// language on the other, and Cyrillic availability.
type languageValidator struct {
	weight float64
}

func (v *languageValidator) Name() string    { return "language_compliance" }
func (v *languageValidator) Weight() float64 { return v.weight }

func (v *languageValidator) Validate(_ context.Context, vc *Context) (*CategoryResult, error) {
	meta := vc.Meta

	serbianText := meta.Title.HasSerbian() || meta.Description.HasSerbian()

	// Cyrillic counts when any Serbian title or description value is
	// written in it. Latin-only Serbian scores a warning, not a failure.
	cyrillicScore := 50.0
	cyrillicEvidence := "Serbian text in Latin script only"
	for _, text := range []string{meta.Title.Serbian(), meta.Description.Serbian(), meta.Title["sr-Cyrl"], meta.Description["sr-Cyrl"]} {
		if script.Detect(text) == script.Cyrillic {
			cyrillicScore = 100
			cyrillicEvidence = "Cyrillic text present"
			break
		}
	}
	if !serbianText {
		cyrillicScore = 0
		cyrillicEvidence = "no Serbian text to assess"
	}

	reqs := []Requirement{
		{
			ID:          "language.serbian_tag",
			Name:        "Serbian language declared",
			Description: "Language list includes a Serbian tag (sr, sr-Latn or sr-Cyrl)",
			Required:    true,
			Score:       boolScore(meta.HasSerbianLanguage()),
			Evidence:    fmt.Sprintf("languages: %s", strings.Join(meta.Language, ", ")),
		},
		{
			ID:          "language.international_tag",
			Name:        "Non-Serbian language declared",
			Description: "Language list includes a non-Serbian tag for international users",
			Score:       boolScore(hasNonSerbian(meta.Language)),
			Evidence:    fmt.Sprintf("languages: %s", strings.Join(meta.Language, ", ")),
		},
		{
			ID:          "language.serbian_text",
			Name:        "Serbian text present",
			Description: "Title or description carries an actual Serbian value",
			Required:    true,
			Score:       boolScore(serbianText),
			Evidence:    fmt.Sprintf("title languages: %s", titleLanguages(meta)),
		},
		{
			ID:          "language.cyrillic",
			Name:        "Cyrillic availability",
			Description: "Serbian text is available in Cyrillic script",
			Score:       cyrillicScore,
			Evidence:    cyrillicEvidence,
		},
	}

	return newCategory(v.Name(), v.weight, reqs), nil
}

func hasNonSerbian(tags []string) bool {
	for _, tag := range tags {
		if tag != "sr" && tag != "sr-Latn" && tag != "sr-Cyrl" {
			return true
		}
	}
	return false
}
