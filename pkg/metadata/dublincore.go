// pkg/metadata/dublincore.go
//
// Dublin Core adapter. Dublin Core records on the Serbian portal come as
// flat key/value maps with dc: and dct: prefixes mixed freely; the
// adapter accepts both and never fails hard on a malformed record.
package metadata

import (
	"strings"

	"github.com/datagovrs/standards/pkg/sderr"
)

// dcField returns the first non-empty value under any of the given keys.
func dcField(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// AdaptFromDublinCore converts a flat Dublin Core record into the internal
// schema. Missing required fields and unrecognized shapes are reported as
// validation errors on a best-effort partial schema.
func AdaptFromDublinCore(raw map[string]any) (*SerbianMetadataSchema, []sderr.ValidationError) {
	var errs []sderr.ValidationError
	clean, cyclic := sanitize(raw)
	if cyclic {
		errs = append(errs, sderr.NewValidationError(sderr.CodeCyclicMetadata, "", "cyclic reference in Dublin Core record"))
	}
	record, ok := clean.(map[string]any)
	if !ok || len(record) == 0 {
		errs = append(errs, sderr.NewValidationError(sderr.CodeUnrecognizedShape, "", "Dublin Core record is empty"))
		return &SerbianMetadataSchema{}, errs
	}

	meta := &SerbianMetadataSchema{
		Identifier:  asString(dcField(record, "dc:identifier", "dct:identifier", "identifier")),
		Title:       asMultilingual(dcField(record, "dc:title", "dct:title", "title")),
		Description: asMultilingual(dcField(record, "dc:description", "dct:description", "description")),
		License:     asString(dcField(record, "dct:license", "dc:rights", "license")),
		Spatial:     asString(dcField(record, "dct:spatial", "dc:coverage")),
	}

	if name := asString(dcField(record, "dc:publisher", "dct:publisher", "publisher")); name != "" {
		meta.Publisher = Publisher{Name: name}
	}

	if issued := asString(dcField(record, "dct:issued", "dc:date", "issued")); issued != "" {
		meta.PublicationDate = parseAdapterDate(issued)
		if meta.PublicationDate.IsZero() {
			errs = append(errs, sderr.NewValidationError(sderr.CodeUnrecognizedShape, "dct:issued", "unparseable publication date "+issued))
		}
	}
	if modified := asString(dcField(record, "dct:modified", "modified")); modified != "" {
		if t := parseAdapterDate(modified); !t.IsZero() {
			meta.ModificationDate = &t
		}
	}

	for _, v := range asSlice(dcField(record, "dc:language", "dct:language", "language")) {
		for _, part := range strings.Split(asString(v), ",") {
			if tag := normalizeLanguageTag(part); tag != "" && !meta.HasLanguage(tag) {
				meta.Language = append(meta.Language, tag)
			}
		}
	}

	// dc:subject is conventionally a single semicolon-separated string,
	// but arrays occur too.
	for _, v := range asSlice(dcField(record, "dc:subject", "dct:subject", "subject")) {
		for _, part := range strings.Split(asString(v), ";") {
			if kw := strings.TrimSpace(part); kw != "" {
				meta.Keywords = append(meta.Keywords, kw)
			}
		}
	}

	for _, v := range asSlice(dcField(record, "dc:format", "dct:format", "format")) {
		if mime := NormalizeFormat(asString(v)); mime != "" {
			meta.Format = append(meta.Format, FormatDescriptor{MediaType: mime})
		}
	}

	if meta.Identifier == "" {
		errs = append(errs, sderr.NewValidationError(sderr.CodeMissingRequiredField, "dc:identifier", "identifier is required"))
	}
	if len(meta.Title) == 0 {
		errs = append(errs, sderr.NewValidationError(sderr.CodeMissingRequiredField, "dc:title", "title is required"))
	}
	for _, tag := range meta.Title.InvalidTags() {
		errs = append(errs, sderr.NewValidationError(sderr.CodeInvalidLanguageTag, "dc:title", "invalid language tag "+tag))
	}
	return meta, errs
}

// AdaptToDublinCore flattens the internal schema into a Dublin Core
// key/value map. Multilingual fields collapse to their Serbian value when
// present, and list fields join per Dublin Core convention.
func AdaptToDublinCore(meta *SerbianMetadataSchema) map[string]string {
	out := map[string]string{}
	if meta == nil {
		return out
	}
	put := func(key, val string) {
		if val != "" {
			out[key] = val
		}
	}
	put("dc:identifier", meta.Identifier)
	put("dc:title", meta.Title.Preferred())
	put("dc:description", meta.Description.Preferred())
	put("dc:publisher", meta.Publisher.Name)
	put("dct:license", meta.License)
	put("dct:spatial", meta.Spatial)
	put("dc:language", strings.Join(meta.Language, ","))
	put("dc:subject", strings.Join(meta.Keywords, "; "))
	if !meta.PublicationDate.IsZero() {
		put("dct:issued", meta.PublicationDate.Format("2006-01-02"))
	}
	if meta.ModificationDate != nil && !meta.ModificationDate.IsZero() {
		put("dct:modified", meta.ModificationDate.Format("2006-01-02"))
	}
	if len(meta.Format) > 0 {
		formats := make([]string, 0, len(meta.Format))
		for _, f := range meta.Format {
			formats = append(formats, f.MediaType)
		}
		put("dc:format", strings.Join(formats, ", "))
	}
	return out
}
