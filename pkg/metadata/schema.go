// Package metadata defines the internal bilingual dataset metadata schema
// and adapters to and from Dublin Core and DCAT. Adapters fail soft:
// unrecognized shapes yield a best-effort partial schema plus validation
// errors, never a panic or a Go error for bad data.
package metadata

import (
	"sort"
	"time"

	"golang.org/x/text/language"
)

// MultilingualText maps a language tag (sr, sr-Latn, en, ...) onto text in
// that language. At least one key must be present when the field is
// required.
type MultilingualText map[string]string

// Serbian returns the Serbian value, trying sr, sr-Cyrl, sr-Latn in that
// order.
func (m MultilingualText) Serbian() string {
	for _, tag := range []string{"sr", "sr-Cyrl", "sr-Latn"} {
		if v, ok := m[tag]; ok && v != "" {
			return v
		}
	}
	return ""
}

// Preferred returns the Serbian value when present, otherwise the first
// available language in deterministic (sorted-tag) order.
func (m MultilingualText) Preferred() string {
	if v := m.Serbian(); v != "" {
		return v
	}
	tags := make([]string, 0, len(m))
	for tag := range m {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		if m[tag] != "" {
			return m[tag]
		}
	}
	return ""
}

// HasSerbian reports whether any Serbian variant is present.
func (m MultilingualText) HasSerbian() bool {
	return m.Serbian() != ""
}

// HasOther reports whether a non-Serbian language is present.
func (m MultilingualText) HasOther() bool {
	for tag, v := range m {
		if v == "" {
			continue
		}
		if tag != "sr" && tag != "sr-Cyrl" && tag != "sr-Latn" {
			return true
		}
	}
	return false
}

// InvalidTags returns the keys that are not well-formed BCP 47 tags.
// Invalid keys are preserved in the map regardless; callers decide how
// loud to be about them.
func (m MultilingualText) InvalidTags() []string {
	var bad []string
	for tag := range m {
		if _, err := language.Parse(tag); err != nil {
			bad = append(bad, tag)
		}
	}
	sort.Strings(bad)
	return bad
}

// Clone returns an independent copy.
func (m MultilingualText) Clone() MultilingualText {
	if m == nil {
		return nil
	}
	out := make(MultilingualText, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Publisher identifies the organization responsible for a dataset.
type Publisher struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type,omitempty"`
}

// Theme classifies a dataset by EU data-theme authority code.
type Theme struct {
	Code string           `json:"code"`
	Name MultilingualText `json:"name,omitempty"`
}

// FormatDescriptor names a distribution format by canonical MIME type.
type FormatDescriptor struct {
	MediaType string `json:"mediaType"`
}

// Distribution is one downloadable representation of a dataset.
type Distribution struct {
	Title       MultilingualText `json:"title,omitempty"`
	AccessURL   string           `json:"accessURL,omitempty"`
	DownloadURL string           `json:"downloadURL,omitempty"`
	Format      FormatDescriptor `json:"format"`
	ByteSize    int64            `json:"byteSize,omitempty"`
}

// ContactPoint is where questions about the dataset go.
type ContactPoint struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// TemporalExtent is the period the data covers.
type TemporalExtent struct {
	Start time.Time `json:"start,omitempty"`
	End   time.Time `json:"end,omitempty"`
}

// SerbianMetadataSchema is the internal bilingual metadata shape. The
// identifier is globally unique and immutable once a compliance report
// references it.
type SerbianMetadataSchema struct {
	Identifier       string             `json:"identifier" validate:"required"`
	Title            MultilingualText   `json:"title" validate:"required,min=1"`
	Description      MultilingualText   `json:"description,omitempty"`
	Publisher        Publisher          `json:"publisher"`
	PublicationDate  time.Time          `json:"publicationDate,omitempty"`
	ModificationDate *time.Time         `json:"modificationDate,omitempty"`
	Language         []string           `json:"language,omitempty"`
	Theme            []Theme            `json:"theme,omitempty"`
	Keywords         []string           `json:"keywords,omitempty"`
	Format           []FormatDescriptor `json:"format,omitempty"`
	License          string             `json:"license,omitempty"`
	ContactPoint     *ContactPoint      `json:"contactPoint,omitempty"`
	Distribution     []Distribution     `json:"distribution,omitempty"`
	Spatial          string             `json:"spatial,omitempty"`
	Temporal         *TemporalExtent    `json:"temporal,omitempty"`
	UpdateFrequency  string             `json:"updateFrequency,omitempty"`
}

// HasLanguage reports whether the language list carries the given tag.
func (s *SerbianMetadataSchema) HasLanguage(tag string) bool {
	for _, l := range s.Language {
		if l == tag {
			return true
		}
	}
	return false
}

// HasSerbianLanguage reports whether any Serbian variant is declared.
func (s *SerbianMetadataSchema) HasSerbianLanguage() bool {
	return s.HasLanguage("sr") || s.HasLanguage("sr-Latn") || s.HasLanguage("sr-Cyrl")
}

// Clone returns a deep copy so that enhancement never mutates caller
// state.
func (s *SerbianMetadataSchema) Clone() *SerbianMetadataSchema {
	if s == nil {
		return nil
	}
	out := *s
	out.Title = s.Title.Clone()
	out.Description = s.Description.Clone()
	out.Language = append([]string(nil), s.Language...)
	out.Keywords = append([]string(nil), s.Keywords...)
	out.Format = append([]FormatDescriptor(nil), s.Format...)
	out.Theme = make([]Theme, len(s.Theme))
	for i, th := range s.Theme {
		out.Theme[i] = Theme{Code: th.Code, Name: th.Name.Clone()}
	}
	out.Distribution = make([]Distribution, len(s.Distribution))
	for i, d := range s.Distribution {
		d.Title = d.Title.Clone()
		out.Distribution[i] = d
	}
	if s.ModificationDate != nil {
		mod := *s.ModificationDate
		out.ModificationDate = &mod
	}
	if s.ContactPoint != nil {
		cp := *s.ContactPoint
		out.ContactPoint = &cp
	}
	if s.Temporal != nil {
		te := *s.Temporal
		out.Temporal = &te
	}
	return &out
}
