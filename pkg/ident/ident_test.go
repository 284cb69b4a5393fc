package ident

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Checksum-correct fixtures, control digits computed from the weighted
// sums by hand.
const (
	validJMBGBelgrade = "0101990710008" // 01.01.1990, Beograd, sequence 000
	validJMBGMale     = "0101990710016" // same date, odd sequence digit
	validJMBGNoviSad  = "0202005800007" // 02.02.2005, Novi Sad
)

func TestValidateJMBG(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		raw        string
		wantValid  bool
		wantGender Gender
		wantRegion string
		wantBirth  time.Time
	}{
		{
			name:       "valid_belgrade_female",
			raw:        validJMBGBelgrade,
			wantValid:  true,
			wantGender: Female,
			wantRegion: "Beograd",
			wantBirth:  time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "valid_male_sequence",
			raw:        validJMBGMale,
			wantValid:  true,
			wantGender: Male,
			wantRegion: "Beograd",
			wantBirth:  time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "valid_two_thousands_birth",
			raw:        validJMBGNoviSad,
			wantValid:  true,
			wantGender: Female,
			wantRegion: "Novi Sad",
			wantBirth:  time.Date(2005, time.February, 2, 0, 0, 0, 0, time.UTC),
		},
		{name: "bad_checksum", raw: "0101990710009", wantValid: false},
		{name: "impossible_date", raw: "3102990710005", wantValid: false},
		{name: "too_short", raw: "123456789012", wantValid: false},
		{name: "too_long", raw: "01019907100081", wantValid: false},
		{name: "non_digits", raw: "0101990x10008", wantValid: false},
		{name: "empty", raw: "", wantValid: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ValidateJMBG(tt.raw)
			assert.Equal(t, tt.wantValid, got.IsValid)
			if !tt.wantValid {
				return
			}
			assert.Equal(t, tt.wantGender, got.Gender)
			assert.Equal(t, tt.wantRegion, got.Region)
			assert.True(t, got.BirthDate.Equal(tt.wantBirth))
		})
	}
}

func TestValidateJMBGSeparatorsStripped(t *testing.T) {
	t.Parallel()
	got := ValidateJMBG("0101990-71000-8")
	require.True(t, got.IsValid)
	assert.Equal(t, validJMBGBelgrade, got.Formatted)
}

// Flipping any single digit of a valid JMBG must break the mod-11
// checksum (or the calendar date, for the date digits).
func TestValidateJMBGSingleDigitFlip(t *testing.T) {
	t.Parallel()
	for i := 0; i < len(validJMBGBelgrade); i++ {
		flipped := []byte(validJMBGBelgrade)
		flipped[i] = byte('0' + (int(flipped[i]-'0')+1)%10)
		res := ValidateJMBG(string(flipped))
		assert.False(t, res.IsValid, "flip at position %d produced valid JMBG %s", i, flipped)
	}
}

func TestValidatePIB(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		raw       string
		wantValid bool
	}{
		{name: "valid", raw: "123456781", wantValid: true},
		{name: "valid_zero_control", raw: "120000000", wantValid: true},
		{name: "bad_control", raw: "123456789", wantValid: false},
		{name: "remainder_one_always_invalid", raw: "100010000", wantValid: false},
		{name: "too_short", raw: "12345678", wantValid: false},
		{name: "too_long", raw: "1234567811", wantValid: false},
		{name: "non_digits", raw: "12345678a", wantValid: false},
		{name: "empty", raw: "", wantValid: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantValid, ValidatePIB(tt.raw).IsValid)
		})
	}
}

func TestValidatePIBSingleDigitFlip(t *testing.T) {
	t.Parallel()
	const valid = "123456781"
	for i := 0; i < len(valid); i++ {
		flipped := []byte(valid)
		flipped[i] = byte('0' + (int(flipped[i]-'0')+1)%10)
		res := ValidatePIB(string(flipped))
		assert.False(t, res.IsValid, "flip at position %d produced valid PIB %s", i, flipped)
	}
}

func TestRegionName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Beograd", regionName(71))
	assert.Equal(t, "Sremska Mitrovica", regionName(89))
	assert.Equal(t, "Priština", regionName(90))
	assert.Equal(t, "Crna Gora", regionName(25))
	assert.Equal(t, "Nepoznat region", regionName(99))
}
