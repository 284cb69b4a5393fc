// pkg/metadata/enhance.go
package metadata

import "strings"

// DefaultLicense is applied when a dataset declares none. The national
// portal recommends CC BY 4.0 for open data.
const DefaultLicense = "https://creativecommons.org/licenses/by/4.0/"

// updateFrequencies maps the frequency spellings seen in the wild onto a
// canonical vocabulary. Both scripts and common typos of the diacritics
// are covered.
var updateFrequencies = map[string]string{
	"dnevno":     "dnevno",
	"дневно":     "dnevno",
	"daily":      "dnevno",
	"nedeljno":   "nedeljno",
	"недељно":    "nedeljno",
	"weekly":     "nedeljno",
	"mesecno":    "mesečno",
	"mesečno":    "mesečno",
	"месечно":    "mesečno",
	"monthly":    "mesečno",
	"kvartalno":  "kvartalno",
	"квартално":  "kvartalno",
	"quarterly":  "kvartalno",
	"godisnje":   "godišnje",
	"godišnje":   "godišnje",
	"годишње":    "godišnje",
	"annual":     "godišnje",
	"annually":   "godišnje",
	"yearly":     "godišnje",
	"po potrebi": "po potrebi",
	"по потреби": "po potrebi",
	"irregular":  "po potrebi",
}

// EnhanceSerbianMetadata fills the gaps a minimally described dataset
// leaves open: declares Serbian as a language, applies the default
// license, infers a theme from the text, normalizes formats and the
// update frequency. The input is never mutated and the operation is
// idempotent, so pipelines can run it on every ingest.
func EnhanceSerbianMetadata(meta *SerbianMetadataSchema) *SerbianMetadataSchema {
	if meta == nil {
		return nil
	}
	out := meta.Clone()

	if !out.HasLanguage("sr") {
		out.Language = append(out.Language, "sr")
	}
	if out.License == "" {
		out.License = DefaultLicense
	}
	if len(out.Theme) == 0 {
		text := strings.Join(append([]string{out.Title.Preferred(), out.Description.Preferred()}, out.Keywords...), " ")
		if th, ok := InferTheme(text); ok {
			out.Theme = []Theme{th}
		}
	}
	for i, f := range out.Format {
		out.Format[i].MediaType = NormalizeFormat(f.MediaType)
	}
	for i, d := range out.Distribution {
		out.Distribution[i].Format.MediaType = NormalizeFormat(d.Format.MediaType)
	}
	if out.UpdateFrequency != "" {
		key := strings.ToLower(strings.TrimSpace(out.UpdateFrequency))
		if canonical, ok := updateFrequencies[key]; ok {
			out.UpdateFrequency = canonical
		}
	}
	return out
}
