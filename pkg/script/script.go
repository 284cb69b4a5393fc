// Package script classifies and converts the two Serbian writing systems.
//
// Serbian is officially bi-scriptal; government datasets mix Cyrillic and
// Latin freely, sometimes within a single column. Detection is by counting
// characters of each class: any character in the Serbian Cyrillic block
// establishes Cyrillic presence, ASCII letters and the five Serbian Latin
// diacritics (č ć ž š đ) establish Latin presence. A single character of a
// class is enough — the threshold is presence, not proportion.
package script

import "unicode"

// Script identifies the writing system of a piece of text.
type Script string

const (
	Cyrillic Script = "cyrillic"
	Latin    Script = "latin"
	Mixed    Script = "mixed"
	None     Script = "none"
)

// serbianLatinDiacritics are the Latin letters specific to Serbian.
var serbianLatinDiacritics = map[rune]bool{
	'č': true, 'ć': true, 'ž': true, 'š': true, 'đ': true,
	'Č': true, 'Ć': true, 'Ž': true, 'Š': true, 'Đ': true,
}

// IsCyrillic reports whether r belongs to the Serbian Cyrillic repertoire.
func IsCyrillic(r rune) bool {
	// А..ш plus the Serbian-specific letters outside that contiguous run.
	if r >= 'А' && r <= 'ш' {
		return true
	}
	switch r {
	case 'Ђ', 'Ј', 'Љ', 'Њ', 'Ћ', 'Џ', 'ђ', 'ј', 'љ', 'њ', 'ћ', 'џ':
		return true
	}
	return false
}

// IsLatin reports whether r counts toward Latin presence. Plain ASCII
// letters count; the Serbian diacritics count and additionally mark the
// text as Serbian rather than generic Latin.
func IsLatin(r rune) bool {
	if r <= unicode.MaxASCII && unicode.IsLetter(r) {
		return true
	}
	return serbianLatinDiacritics[r]
}

// IsSerbianLatin reports whether r is one of č ć ž š đ (either case).
func IsSerbianLatin(r rune) bool {
	return serbianLatinDiacritics[r]
}

// Detect classifies text by script.
func Detect(text string) Script {
	var cyr, lat int
	for _, r := range text {
		switch {
		case IsCyrillic(r):
			cyr++
		case IsLatin(r):
			lat++
		}
	}
	switch {
	case cyr > 0 && lat > 0:
		return Mixed
	case cyr > 0:
		return Cyrillic
	case lat > 0:
		return Latin
	default:
		return None
	}
}

// HasSerbianCharacters reports whether text contains any script-specific
// Serbian character (Cyrillic or Latin diacritic). Used to decide whether
// bare metadata strings should be tagged "sr" rather than "en".
func HasSerbianCharacters(text string) bool {
	for _, r := range text {
		if IsCyrillic(r) || IsSerbianLatin(r) {
			return true
		}
	}
	return false
}

// Consistency returns the fraction of pure-script samples that match the
// dominant script across the given texts. Samples that are mixed or carry
// no readable letters are excluded; if nothing pure remains the dataset is
// judged half-consistent. An empty input is vacuously consistent.
func Consistency(texts []string) float64 {
	var cyr, lat int
	for _, t := range texts {
		switch Detect(t) {
		case Cyrillic:
			cyr++
		case Latin:
			lat++
		}
	}
	total := cyr + lat
	if total == 0 {
		if len(texts) == 0 {
			return 1.0
		}
		return 0.5
	}
	dominant := cyr
	if lat > dominant {
		dominant = lat
	}
	return float64(dominant) / float64(total)
}
