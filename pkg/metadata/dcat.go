// pkg/metadata/dcat.go
//
// DCAT-AP adapter. Accepts the JSON-LD-flavored dataset maps national
// catalogs export (dct:/dcat:/foaf:/vcard: keys) and produces the same
// shape on the way out. Language maps pass through verbatim; single
// strings get script-tagged.
package metadata

import (
	"strings"
	"time"

	"github.com/datagovrs/standards/pkg/sderr"
)

// AdaptFromDCAT converts a DCAT-AP dataset map into the internal schema.
// Like the Dublin Core adapter it fails soft: every recoverable problem
// becomes a validation error on a partial schema.
func AdaptFromDCAT(raw map[string]any) (*SerbianMetadataSchema, []sderr.ValidationError) {
	var errs []sderr.ValidationError
	clean, cyclic := sanitize(raw)
	if cyclic {
		errs = append(errs, sderr.NewValidationError(sderr.CodeCyclicMetadata, "", "cyclic reference in DCAT record"))
	}
	record, ok := clean.(map[string]any)
	if !ok || len(record) == 0 {
		errs = append(errs, sderr.NewValidationError(sderr.CodeUnrecognizedShape, "", "DCAT record is empty"))
		return &SerbianMetadataSchema{}, errs
	}

	meta := &SerbianMetadataSchema{
		Identifier:  asString(dcField(record, "dct:identifier", "@id", "identifier")),
		Title:       asMultilingual(dcField(record, "dct:title", "title")),
		Description: asMultilingual(dcField(record, "dct:description", "description")),
		License:     asString(dcField(record, "dct:license", "license")),
		Spatial:     asString(dcField(record, "dct:spatial", "spatial")),
	}

	if pub := dcField(record, "dct:publisher", "publisher"); pub != nil {
		meta.Publisher = adaptDCATPublisher(pub)
	}

	if issued := asString(dcField(record, "dct:issued", "issued")); issued != "" {
		meta.PublicationDate = parseAdapterDate(issued)
		if meta.PublicationDate.IsZero() {
			errs = append(errs, sderr.NewValidationError(sderr.CodeUnrecognizedShape, "dct:issued", "unparseable issue date "+issued))
		}
	}
	if modified := asString(dcField(record, "dct:modified", "modified")); modified != "" {
		if t := parseAdapterDate(modified); !t.IsZero() {
			meta.ModificationDate = &t
		}
	}

	for _, v := range asSlice(dcField(record, "dct:language", "language")) {
		if tag := normalizeLanguageTag(asString(v)); tag != "" && !meta.HasLanguage(tag) {
			meta.Language = append(meta.Language, tag)
		}
	}

	for _, v := range asSlice(dcField(record, "dcat:keyword", "keyword")) {
		switch kw := v.(type) {
		case string:
			if kw = strings.TrimSpace(kw); kw != "" {
				meta.Keywords = append(meta.Keywords, kw)
			}
		case map[string]any:
			// Language-tagged keyword maps contribute every value.
			for _, tagged := range asMultilingual(kw) {
				meta.Keywords = append(meta.Keywords, tagged)
			}
		}
	}

	for _, v := range asSlice(dcField(record, "dcat:theme", "theme")) {
		th := adaptDCATTheme(v)
		if th.Code != "" {
			meta.Theme = append(meta.Theme, th)
		}
	}

	if cp, ok := dcField(record, "dcat:contactPoint", "contactPoint").(map[string]any); ok {
		meta.ContactPoint = &ContactPoint{
			Name:  asString(dcField(cp, "vcard:fn", "fn", "name")),
			Email: strings.TrimPrefix(asString(dcField(cp, "vcard:hasEmail", "hasEmail", "email")), "mailto:"),
		}
	}

	if temporal, ok := dcField(record, "dct:temporal", "temporal").(map[string]any); ok {
		start := parseAdapterDate(asString(dcField(temporal, "schema:startDate", "dcat:startDate", "startDate")))
		end := parseAdapterDate(asString(dcField(temporal, "schema:endDate", "dcat:endDate", "endDate")))
		if !start.IsZero() || !end.IsZero() {
			meta.Temporal = &TemporalExtent{Start: start, End: end}
		}
	}

	for _, v := range asSlice(dcField(record, "dcat:distribution", "distribution")) {
		distMap, ok := v.(map[string]any)
		if !ok {
			errs = append(errs, sderr.NewValidationError(sderr.CodeUnrecognizedShape, "dcat:distribution", "distribution entry is not an object"))
			continue
		}
		dist := Distribution{
			Title:       asMultilingual(dcField(distMap, "dct:title", "title")),
			AccessURL:   asString(dcField(distMap, "dcat:accessURL", "accessURL")),
			DownloadURL: asString(dcField(distMap, "dcat:downloadURL", "downloadURL")),
		}
		if mime := NormalizeFormat(asString(dcField(distMap, "dct:format", "dcat:mediaType", "format"))); mime != "" {
			dist.Format = FormatDescriptor{MediaType: mime}
			if !hasFormat(meta.Format, mime) {
				meta.Format = append(meta.Format, dist.Format)
			}
		}
		if size, ok := dcField(distMap, "dcat:byteSize", "byteSize").(float64); ok {
			dist.ByteSize = int64(size)
		}
		if dist.AccessURL == "" && dist.DownloadURL == "" {
			errs = append(errs, sderr.NewValidationError(sderr.CodeMissingRequiredField, "dcat:distribution", "distribution without access or download URL"))
		}
		meta.Distribution = append(meta.Distribution, dist)
	}

	if meta.Identifier == "" {
		errs = append(errs, sderr.NewValidationError(sderr.CodeMissingRequiredField, "dct:identifier", "identifier is required"))
	}
	if len(meta.Title) == 0 {
		errs = append(errs, sderr.NewValidationError(sderr.CodeMissingRequiredField, "dct:title", "title is required"))
	}
	for _, tag := range meta.Title.InvalidTags() {
		errs = append(errs, sderr.NewValidationError(sderr.CodeInvalidLanguageTag, "dct:title", "invalid language tag "+tag))
	}
	return meta, errs
}

func adaptDCATPublisher(v any) Publisher {
	switch pub := v.(type) {
	case string:
		return Publisher{Name: strings.TrimSpace(pub)}
	case map[string]any:
		return Publisher{
			Name: asString(dcField(pub, "foaf:name", "name")),
			Type: asString(dcField(pub, "dct:type", "type")),
		}
	}
	return Publisher{}
}

func adaptDCATTheme(v any) Theme {
	switch th := v.(type) {
	case string:
		return ThemeFromCode(th)
	case map[string]any:
		code := asString(dcField(th, "skos:notation", "@id", "notation"))
		theme := ThemeFromCode(code)
		if label := asMultilingual(dcField(th, "skos:prefLabel", "prefLabel")); len(label) > 0 && len(theme.Name) == 0 {
			theme.Name = label
		}
		return theme
	}
	return Theme{}
}

func hasFormat(formats []FormatDescriptor, mime string) bool {
	for _, f := range formats {
		if f.MediaType == mime {
			return true
		}
	}
	return false
}

// AdaptToDCAT renders the internal schema as a DCAT-AP dataset map with
// ISO 8601 dates and vCard contact details.
func AdaptToDCAT(meta *SerbianMetadataSchema) map[string]any {
	out := map[string]any{"@type": "dcat:Dataset"}
	if meta == nil {
		return out
	}
	if meta.Identifier != "" {
		out["dct:identifier"] = meta.Identifier
	}
	if len(meta.Title) > 0 {
		out["dct:title"] = langMap(meta.Title)
	}
	if len(meta.Description) > 0 {
		out["dct:description"] = langMap(meta.Description)
	}
	if meta.Publisher.Name != "" {
		pub := map[string]any{"@type": "foaf:Agent", "foaf:name": meta.Publisher.Name}
		if meta.Publisher.Type != "" {
			pub["dct:type"] = meta.Publisher.Type
		}
		out["dct:publisher"] = pub
	}
	if !meta.PublicationDate.IsZero() {
		out["dct:issued"] = meta.PublicationDate.Format(time.RFC3339)
	}
	if meta.ModificationDate != nil && !meta.ModificationDate.IsZero() {
		out["dct:modified"] = meta.ModificationDate.Format(time.RFC3339)
	}
	if len(meta.Language) > 0 {
		langs := make([]any, len(meta.Language))
		for i, l := range meta.Language {
			langs[i] = l
		}
		out["dct:language"] = langs
	}
	if len(meta.Keywords) > 0 {
		kws := make([]any, len(meta.Keywords))
		for i, kw := range meta.Keywords {
			kws[i] = kw
		}
		out["dcat:keyword"] = kws
	}
	if len(meta.Theme) > 0 {
		themes := make([]any, len(meta.Theme))
		for i, th := range meta.Theme {
			entry := map[string]any{"@id": euThemePrefix + th.Code, "skos:notation": th.Code}
			if len(th.Name) > 0 {
				entry["skos:prefLabel"] = langMap(th.Name)
			}
			themes[i] = entry
		}
		out["dcat:theme"] = themes
	}
	if meta.License != "" {
		out["dct:license"] = meta.License
	}
	if meta.Spatial != "" {
		out["dct:spatial"] = meta.Spatial
	}
	if meta.ContactPoint != nil {
		cp := map[string]any{"@type": "vcard:Organization"}
		if meta.ContactPoint.Name != "" {
			cp["vcard:fn"] = meta.ContactPoint.Name
		}
		if meta.ContactPoint.Email != "" {
			cp["vcard:hasEmail"] = "mailto:" + meta.ContactPoint.Email
		}
		out["dcat:contactPoint"] = cp
	}
	if meta.Temporal != nil {
		temporal := map[string]any{"@type": "dct:PeriodOfTime"}
		if !meta.Temporal.Start.IsZero() {
			temporal["schema:startDate"] = meta.Temporal.Start.Format("2006-01-02")
		}
		if !meta.Temporal.End.IsZero() {
			temporal["schema:endDate"] = meta.Temporal.End.Format("2006-01-02")
		}
		out["dct:temporal"] = temporal
	}
	if len(meta.Distribution) > 0 {
		dists := make([]any, len(meta.Distribution))
		for i, d := range meta.Distribution {
			entry := map[string]any{"@type": "dcat:Distribution"}
			if len(d.Title) > 0 {
				entry["dct:title"] = langMap(d.Title)
			}
			if d.AccessURL != "" {
				entry["dcat:accessURL"] = d.AccessURL
			}
			if d.DownloadURL != "" {
				entry["dcat:downloadURL"] = d.DownloadURL
			}
			if d.Format.MediaType != "" {
				entry["dcat:mediaType"] = d.Format.MediaType
			}
			if d.ByteSize > 0 {
				entry["dcat:byteSize"] = float64(d.ByteSize)
			}
			dists[i] = entry
		}
		out["dcat:distribution"] = dists
	}
	return out
}

func langMap(m MultilingualText) map[string]any {
	out := make(map[string]any, len(m))
	for tag, v := range m {
		out[tag] = v
	}
	return out
}
