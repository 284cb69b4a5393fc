// pkg/metadata/metadata_test.go
package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagovrs/standards/pkg/sderr"
)

func TestAdaptFromDublinCore(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"dc:identifier":  "rs-gov-budzet-2024",
		"dc:title":       "Budžet opštine Novi Sad za 2024. godinu",
		"dc:description": "Municipal budget allocations by department",
		"dc:publisher":   "Gradska uprava Novi Sad",
		"dct:issued":     "2024-03-15",
		"dc:language":    "srp,eng",
		"dc:subject":     "budžet; finansije; opština",
		"dc:format":      "csv",
	}

	meta, errs := AdaptFromDublinCore(raw)
	require.Empty(t, errs)

	// Serbian diacritics gate the title into sr, the plain ASCII
	// description into en.
	assert.Equal(t, MultilingualText{"sr": "Budžet opštine Novi Sad za 2024. godinu"}, meta.Title)
	assert.Equal(t, MultilingualText{"en": "Municipal budget allocations by department"}, meta.Description)
	assert.Equal(t, "Gradska uprava Novi Sad", meta.Publisher.Name)
	assert.Equal(t, []string{"sr", "en"}, meta.Language)
	assert.Equal(t, []string{"budžet", "finansije", "opština"}, meta.Keywords)
	assert.Equal(t, []FormatDescriptor{{MediaType: "text/csv"}}, meta.Format)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), meta.PublicationDate)
}

func TestAdaptFromDublinCoreMissingRequired(t *testing.T) {
	t.Parallel()

	meta, errs := AdaptFromDublinCore(map[string]any{
		"dc:description": "no title, no identifier",
	})
	require.NotNil(t, meta)

	codes := map[string]bool{}
	fields := map[string]bool{}
	for _, e := range errs {
		codes[e.Code] = true
		fields[e.Field] = true
	}
	assert.True(t, codes[sderr.CodeMissingRequiredField])
	assert.True(t, fields["dc:identifier"])
	assert.True(t, fields["dc:title"])
}

func TestAdaptFromDCATPreservesLanguageMap(t *testing.T) {
	t.Parallel()

	title := map[string]any{
		"sr": "Registar javnih ustanova",
		"en": "Register of public institutions",
	}
	raw := map[string]any{
		"dct:identifier": "rs-gov-registar-ustanova",
		"dct:title":      title,
		"dct:publisher": map[string]any{
			"foaf:name": "Ministarstvo državne uprave",
		},
		"dct:language": []any{"srp", "eng"},
		"dcat:theme": []any{
			map[string]any{"skos:notation": "GOVE"},
		},
		"dcat:contactPoint": map[string]any{
			"vcard:fn":       "Otvoreni podaci",
			"vcard:hasEmail": "mailto:podaci@gov.rs",
		},
		"dct:temporal": map[string]any{
			"schema:startDate": "2020-01-01",
			"schema:endDate":   "2024-12-31",
		},
		"dcat:distribution": []any{
			map[string]any{
				"dcat:accessURL": "https://data.gov.rs/sr/datasets/registar",
				"dct:format":     "http://publications.europa.eu/resource/authority/file-type/CSV",
				"dcat:byteSize":  float64(18234),
			},
		},
	}

	meta, errs := AdaptFromDCAT(raw)
	require.Empty(t, errs)

	// The language map passes through unchanged.
	assert.Equal(t, MultilingualText{
		"sr": "Registar javnih ustanova",
		"en": "Register of public institutions",
	}, meta.Title)

	assert.Equal(t, "Ministarstvo državne uprave", meta.Publisher.Name)
	assert.Equal(t, []string{"sr", "en"}, meta.Language)
	require.Len(t, meta.Theme, 1)
	assert.Equal(t, "GOVE", meta.Theme[0].Code)
	assert.Equal(t, "Vlada i javni sektor", meta.Theme[0].Name["sr"])
	require.NotNil(t, meta.ContactPoint)
	assert.Equal(t, "podaci@gov.rs", meta.ContactPoint.Email)
	require.NotNil(t, meta.Temporal)
	assert.Equal(t, 2020, meta.Temporal.Start.Year())
	require.Len(t, meta.Distribution, 1)
	assert.Equal(t, "text/csv", meta.Distribution[0].Format.MediaType)
	assert.Equal(t, int64(18234), meta.Distribution[0].ByteSize)
}

func TestAdaptFromDCATUnrecognizedShapes(t *testing.T) {
	t.Parallel()

	meta, errs := AdaptFromDCAT(map[string]any{
		"dct:identifier":    "x",
		"dct:title":         "Naslov skupa podataka",
		"dct:issued":        "once upon a time",
		"dcat:distribution": []any{"not an object"},
	})
	require.NotNil(t, meta)
	assert.Equal(t, "x", meta.Identifier)

	codes := map[string]int{}
	for _, e := range errs {
		codes[e.Code]++
	}
	assert.Equal(t, 2, codes[sderr.CodeUnrecognizedShape])
}

func TestAdaptFromDCATCyclicInput(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"dct:identifier": "cyclic",
		"dct:title":      "Ciklični zapis",
	}
	raw["self"] = raw

	meta, errs := AdaptFromDCAT(raw)
	require.NotNil(t, meta)
	assert.Equal(t, "cyclic", meta.Identifier)

	var sawCycle bool
	for _, e := range errs {
		if e.Code == sderr.CodeCyclicMetadata {
			sawCycle = true
		}
	}
	assert.True(t, sawCycle)
}

func TestAdaptToDublinCore(t *testing.T) {
	t.Parallel()

	mod := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	meta := &SerbianMetadataSchema{
		Identifier:       "rs-skup-1",
		Title:            MultilingualText{"sr": "Naslov", "en": "Title"},
		Description:      MultilingualText{"en": "English only"},
		Publisher:        Publisher{Name: "Zavod za statistiku"},
		PublicationDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		ModificationDate: &mod,
		Language:         []string{"sr", "en"},
		Keywords:         []string{"statistika", "popis"},
		Format:           []FormatDescriptor{{MediaType: "text/csv"}},
	}

	flat := AdaptToDublinCore(meta)
	assert.Equal(t, "Naslov", flat["dc:title"])
	assert.Equal(t, "English only", flat["dc:description"])
	assert.Equal(t, "sr,en", flat["dc:language"])
	assert.Equal(t, "statistika; popis", flat["dc:subject"])
	assert.Equal(t, "2024-03-15", flat["dct:issued"])
	assert.Equal(t, "2024-06-01", flat["dct:modified"])
}

func TestAdaptToDCAT(t *testing.T) {
	t.Parallel()

	meta := &SerbianMetadataSchema{
		Identifier:      "rs-skup-2",
		Title:           MultilingualText{"sr": "Naslov"},
		Publisher:       Publisher{Name: "Grad Beograd"},
		PublicationDate: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		ContactPoint:    &ContactPoint{Name: "Podrška", Email: "podrska@beograd.rs"},
		Theme:           []Theme{ThemeFromCode("TRAN")},
	}

	out := AdaptToDCAT(meta)
	assert.Equal(t, "2024-03-15T10:30:00Z", out["dct:issued"])

	cp, ok := out["dcat:contactPoint"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Podrška", cp["vcard:fn"])
	assert.Equal(t, "mailto:podrska@beograd.rs", cp["vcard:hasEmail"])

	pub, ok := out["dct:publisher"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Grad Beograd", pub["foaf:name"])
}

func TestDCATRoundTrip(t *testing.T) {
	t.Parallel()

	meta := &SerbianMetadataSchema{
		Identifier: "rs-krug",
		Title:      MultilingualText{"sr": "Kružni test", "en": "Round trip"},
		Publisher:  Publisher{Name: "Republički zavod"},
		Language:   []string{"sr", "en"},
		Keywords:   []string{"test"},
	}

	back, errs := AdaptFromDCAT(AdaptToDCAT(meta))
	require.Empty(t, errs)
	assert.Equal(t, meta.Identifier, back.Identifier)
	assert.Equal(t, meta.Title, back.Title)
	assert.Equal(t, meta.Publisher.Name, back.Publisher.Name)
	assert.Equal(t, meta.Language, back.Language)
	assert.Equal(t, meta.Keywords, back.Keywords)
}

func TestEnhanceSerbianMetadata(t *testing.T) {
	t.Parallel()

	meta := &SerbianMetadataSchema{
		Identifier:      "rs-skole",
		Title:           MultilingualText{"sr": "Rezultati završnog ispita u osnovnim školama"},
		Language:        []string{"en"},
		Format:          []FormatDescriptor{{MediaType: "xlsx"}},
		UpdateFrequency: "Godisnje",
	}

	out := EnhanceSerbianMetadata(meta)

	assert.Contains(t, out.Language, "sr")
	assert.Equal(t, DefaultLicense, out.License)
	require.Len(t, out.Theme, 1)
	assert.Equal(t, "EDUC", out.Theme[0].Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out.Format[0].MediaType)
	assert.Equal(t, "godišnje", out.UpdateFrequency)

	// Input stays untouched.
	assert.Equal(t, []string{"en"}, meta.Language)
	assert.Empty(t, meta.License)
}

func TestEnhanceIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []*SerbianMetadataSchema{
		{
			Identifier: "rs-a",
			Title:      MultilingualText{"sr": "Budžet i finansije grada"},
			Language:   []string{"en"},
			Format:     []FormatDescriptor{{MediaType: "csv"}},
		},
		{
			Identifier: "rs-b",
			Title:      MultilingualText{"sr": "Наслов", "en": "Title"},
			Language:   []string{"sr", "en"},
			License:    DefaultLicense,
			Theme:      []Theme{ThemeFromCode("HEAL")},
		},
		{},
	}

	for _, in := range inputs {
		once := EnhanceSerbianMetadata(in)
		twice := EnhanceSerbianMetadata(once)
		assert.Equal(t, once, twice)
	}
}

func TestMultilingualText(t *testing.T) {
	t.Parallel()

	m := MultilingualText{"en": "Title", "sr-Latn": "Naslov"}
	assert.Equal(t, "Naslov", m.Serbian())
	assert.Equal(t, "Naslov", m.Preferred())
	assert.True(t, m.HasSerbian())
	assert.True(t, m.HasOther())

	onlyEnglish := MultilingualText{"en": "Title"}
	assert.Equal(t, "Title", onlyEnglish.Preferred())
	assert.False(t, onlyEnglish.HasSerbian())

	bad := MultilingualText{"sr": "Naslov", "!!": "x"}
	assert.Equal(t, []string{"!!"}, bad.InvalidTags())
}

func TestNormalizeFormat(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"csv":      "text/csv",
		".json":    "application/json",
		"Text/CSV": "text/csv",
		"http://publications.europa.eu/resource/authority/file-type/XLSX": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"weird": "weird",
		"":      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeFormat(in), "input %q", in)
	}
}

func TestInferTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		code string
		ok   bool
	}{
		{"Kvalitet vazduha i upravljanje otpadom", "ENVI", true},
		{"Ред вожње градског превоза", "TRAN", true},
		{"Broj pacijenata po domu zdravlja", "HEAL", true},
		{"nothing relevant here", "", false},
	}
	for _, tt := range tests {
		th, ok := InferTheme(tt.text)
		assert.Equal(t, tt.ok, ok, tt.text)
		assert.Equal(t, tt.code, th.Code, tt.text)
	}
}
