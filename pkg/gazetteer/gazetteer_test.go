package gazetteer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMunicipality(t *testing.T) {
	t.Parallel()
	assert.True(t, IsMunicipality("Novi Sad"))
	assert.True(t, IsMunicipality("  Čačak  "))
	assert.True(t, IsMunicipality("Odžaci"))
	assert.False(t, IsMunicipality("Atlantida"))
	assert.False(t, IsMunicipality(""))
}

func TestMunicipalityMentions(t *testing.T) {
	t.Parallel()
	found := MunicipalityMentions("Podaci za opštine Niš i Leskovac za 2023. godinu")
	assert.Contains(t, found, "Niš")
	assert.Contains(t, found, "Leskovac")
	assert.Empty(t, MunicipalityMentions(""))
}

func TestMentionsRegion(t *testing.T) {
	t.Parallel()
	assert.True(t, MentionsRegion("celokupna teritorija Republike Srbije"))
	assert.True(t, MentionsRegion("AP Vojvodina"))
	assert.False(t, MentionsRegion("global coverage"))
}

func TestDetectInstitutions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "official_name",
			text: "Izvor: Republički zavod za statistiku, 2024",
			want: []string{"Republički zavod za statistiku"},
		},
		{
			name: "keyword_only",
			text: "objavila nadležna agencija",
			want: []string{"Government Institution Detected"},
		},
		{name: "nothing", text: "weather data", want: nil},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DetectInstitutions(tt.text))
		})
	}
}

func TestScoreAddress(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		address string
		want    float64
	}{
		{name: "street_and_number", address: "Nemanjina 11", want: 1.0},
		{name: "multiword_street", address: "Bulevar Kralja Aleksandra 73A", want: 1.0},
		{name: "bez_broja", address: "Partizanska bb", want: 1.0},
		{name: "cyrillic", address: "Немањина 11", want: 1.0},
		{name: "keyword_without_pattern", address: "stanuje u ulici blizu centra", want: 0.7},
		{name: "just_a_number", address: "telefon 0113216547", want: 0.5},
		{name: "free_text", address: "nepoznato mesto", want: 0.2},
		{name: "empty", address: "", want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, ScoreAddress(tt.address), 1e-9)
		})
	}
}
