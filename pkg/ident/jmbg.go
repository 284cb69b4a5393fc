// Package ident validates the two Serbian national identifiers: JMBG
// (unique master citizen number, 13 digits) and PIB (tax identification
// number, 9 digits). Both validators are pure functions that never return
// Go errors for bad input; they report validity in the result and always
// produce a best-effort formatted string.
package ident

import (
	"strings"
	"time"
)

// Gender derived from a JMBG sequence digit.
type Gender string

const (
	Male    Gender = "male"
	Female  Gender = "female"
	Unknown Gender = ""
)

// JMBGResult carries validation outcome and the fields a valid JMBG
// encodes.
type JMBGResult struct {
	Formatted string    `json:"formatted"`
	IsValid   bool      `json:"isValid"`
	BirthDate time.Time `json:"birthDate,omitempty"`
	Gender    Gender    `json:"gender,omitempty"`
	Region    string    `json:"region,omitempty"`
}

var jmbgWeights = [12]int{7, 6, 5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// ValidateJMBG checks a 13-digit JMBG: real calendar birth date, mod-11
// control digit, and on success derives birth date, gender and region.
//
// Century detection is a best-effort heuristic: the three year digits are
// placed in the 1800s/1900s when >= 800, otherwise in the 2000s. The
// historical scheme is ambiguous for some pre-1900 records and the rule is
// intentionally not stricter than that.
func ValidateJMBG(raw string) JMBGResult {
	cleaned := cleanDigits(raw)
	res := JMBGResult{Formatted: cleaned}

	if len(cleaned) != 13 {
		return res
	}

	digits := make([]int, 13)
	for i, r := range cleaned {
		digits[i] = int(r - '0')
	}

	day := digits[0]*10 + digits[1]
	month := digits[2]*10 + digits[3]
	yearDigits := digits[4]*100 + digits[5]*10 + digits[6]

	year := 2000 + yearDigits
	if yearDigits >= 800 {
		year = 1000 + yearDigits
	}

	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if birth.Day() != day || int(birth.Month()) != month || birth.Year() != year {
		return res
	}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += digits[i] * jmbgWeights[i]
	}
	control := (11 - sum%11) % 10
	if control != digits[12] {
		return res
	}

	res.IsValid = true
	res.BirthDate = birth
	res.Region = regionName(digits[7]*10 + digits[8])
	if digits[11]%2 == 1 {
		res.Gender = Male
	} else {
		res.Gender = Female
	}
	return res
}

// cleanDigits strips the separators commonly seen in source data
// (periods, dashes, spaces) and keeps everything else so non-digit
// garbage still fails the length check.
func cleanDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case '.', '-', ' ':
			continue
		}
		if r < '0' || r > '9' {
			return strings.TrimSpace(raw)
		}
		b.WriteRune(r)
	}
	return b.String()
}
