// pkg/metadata/convert.go
package metadata

import (
	"strings"
	"time"

	"github.com/datagovrs/standards/pkg/script"
)

// wrapText tags a bare string with a language inferred from its script.
// Text carrying Serbian-specific characters is tagged sr, everything
// else en, which is what portal exports overwhelmingly contain.
func wrapText(s string) MultilingualText {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if script.HasSerbianCharacters(s) || script.Detect(s) == script.Cyrillic {
		return MultilingualText{"sr": s}
	}
	return MultilingualText{"en": s}
}

// asMultilingual converts a raw adapter value into MultilingualText. A
// plain string is script-tagged via wrapText; a language map is carried
// over verbatim, non-string entries skipped.
func asMultilingual(v any) MultilingualText {
	switch val := v.(type) {
	case string:
		return wrapText(val)
	case map[string]any:
		out := MultilingualText{}
		for tag, raw := range val {
			if s, ok := raw.(string); ok && s != "" {
				out[tag] = s
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case MultilingualText:
		return val.Clone()
	default:
		return nil
	}
}

// asString extracts a string from a raw value, unwrapping the JSON-LD
// {"@id": ...} and {"@value": ...} shapes.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]any:
		for _, key := range []string{"@id", "@value", "rdfs:label", "skos:prefLabel", "foaf:name", "name"} {
			if s, ok := val[key].(string); ok && s != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// asSlice normalizes a raw value that may be a scalar or an array into a
// slice of raw values.
func asSlice(v any) []any {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		return val
	default:
		return []any{v}
	}
}

// dateLayouts are tried in order when adapters parse timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"02.01.2006.",
	"02.01.2006",
}

// parseAdapterDate parses the timestamp shapes catalog exports use.
// Returns the zero time when nothing matches.
func parseAdapterDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// normalizeLanguageTag maps catalog language spellings onto BCP 47 tags.
func normalizeLanguageTag(raw string) string {
	s := strings.TrimSpace(raw)
	const euLangPrefix = "http://publications.europa.eu/resource/authority/language/"
	s = strings.TrimPrefix(s, euLangPrefix)
	switch strings.ToLower(s) {
	case "srp", "sr", "serbian", "srpski", "српски":
		return "sr"
	case "sr-latn":
		return "sr-Latn"
	case "sr-cyrl":
		return "sr-Cyrl"
	case "eng", "en", "english":
		return "en"
	case "":
		return ""
	default:
		return strings.ToLower(s)
	}
}
