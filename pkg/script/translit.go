// pkg/script/translit.go

package script

import (
	"strings"
	"unicode"
)

// cyrToLat is the fixed transliteration table for the 30 letters of the
// Serbian Cyrillic alphabet. Љ Њ Џ expand to two Latin characters; the
// case of the first character follows the source letter.
var cyrToLat = map[rune]string{
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Ђ': "Đ",
	'Е': "E", 'Ж': "Ž", 'З': "Z", 'И': "I", 'Ј': "J", 'К': "K",
	'Л': "L", 'Љ': "Lj", 'М': "M", 'Н': "N", 'Њ': "Nj", 'О': "O",
	'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'Ћ': "Ć", 'У': "U",
	'Ф': "F", 'Х': "H", 'Ц': "C", 'Ч': "Č", 'Џ': "Dž", 'Ш': "Š",
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'ђ': "đ",
	'е': "e", 'ж': "ž", 'з': "z", 'и': "i", 'ј': "j", 'к': "k",
	'л': "l", 'љ': "lj", 'м': "m", 'н': "n", 'њ': "nj", 'о': "o",
	'п': "p", 'р': "r", 'с': "s", 'т': "t", 'ћ': "ć", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "c", 'ч': "č", 'џ': "dž", 'ш': "š",
}

var latToCyr = map[rune]rune{
	'A': 'А', 'B': 'Б', 'V': 'В', 'G': 'Г', 'D': 'Д', 'Đ': 'Ђ',
	'E': 'Е', 'Ž': 'Ж', 'Z': 'З', 'I': 'И', 'J': 'Ј', 'K': 'К',
	'L': 'Л', 'M': 'М', 'N': 'Н', 'O': 'О', 'P': 'П', 'R': 'Р',
	'S': 'С', 'T': 'Т', 'Ć': 'Ћ', 'U': 'У', 'F': 'Ф', 'H': 'Х',
	'C': 'Ц', 'Č': 'Ч', 'Š': 'Ш',
	'a': 'а', 'b': 'б', 'v': 'в', 'g': 'г', 'd': 'д', 'đ': 'ђ',
	'e': 'е', 'ž': 'ж', 'z': 'з', 'i': 'и', 'j': 'ј', 'k': 'к',
	'l': 'л', 'm': 'м', 'n': 'н', 'o': 'о', 'p': 'п', 'r': 'р',
	's': 'с', 't': 'т', 'ć': 'ћ', 'u': 'у', 'f': 'ф', 'h': 'х',
	'c': 'ц', 'č': 'ч', 'š': 'ш',
}

// digraphExceptions lists words in which an apparent digraph is really two
// separate letters (nad+živeti, in+jekcija). Folding lj/nj/dž inside these
// words would corrupt them, so they are transliterated letter by letter.
// The reverse direction is inherently lossy for such pairs; the dictionary
// is maintained, not inferred.
var digraphExceptions = map[string]bool{
	"injekcija":   true,
	"injekcije":   true,
	"injekciju":   true,
	"konjunkcija": true,
	"konjunktura": true,
	"konjugacija": true,
	"nadživeti":   true,
	"nadživi":     true,
	"nadžive":     true,
	"odžalovati":  true,
	"podžanr":     true,
	"vanjezički":  true,
	"vanjezičkog": true,
}

// Convert transliterates text into the target script using the fixed
// bidirectional table. Characters outside the table pass through verbatim,
// so digits, punctuation and foreign letters survive round trips.
func Convert(text string, target Script) string {
	switch target {
	case Latin:
		return toLatin(text)
	case Cyrillic:
		return toCyrillic(text)
	default:
		return text
	}
}

func toLatin(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if lat, ok := cyrToLat[r]; ok {
			b.WriteString(lat)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func toCyrillic(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, word := range splitKeepingSeparators(text) {
		if word.sep {
			b.WriteString(word.text)
			continue
		}
		b.WriteString(wordToCyrillic(word.text))
	}
	return b.String()
}

type segment struct {
	text string
	sep  bool
}

func splitKeepingSeparators(text string) []segment {
	var segs []segment
	var cur strings.Builder
	curSep := false
	flush := func() {
		if cur.Len() > 0 {
			segs = append(segs, segment{text: cur.String(), sep: curSep})
			cur.Reset()
		}
	}
	for _, r := range text {
		isSep := !unicode.IsLetter(r)
		if cur.Len() > 0 && isSep != curSep {
			flush()
		}
		curSep = isSep
		cur.WriteRune(r)
	}
	flush()
	return segs
}

func wordToCyrillic(word string) string {
	runes := []rune(word)
	foldDigraphs := !digraphExceptions[strings.ToLower(word)]

	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		if foldDigraphs && i+1 < len(runes) {
			if c, ok := digraph(runes[i], runes[i+1]); ok {
				b.WriteRune(c)
				i++
				continue
			}
		}
		if c, ok := latToCyr[runes[i]]; ok {
			b.WriteRune(c)
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// digraph maps a Latin letter pair onto the single Cyrillic letter it
// represents. Case follows the first character (Lj and LJ both fold to Љ).
func digraph(a, b rune) (rune, bool) {
	second := unicode.ToLower(b)
	switch {
	case (a == 'l' && second == 'j'):
		return 'љ', true
	case (a == 'L' && second == 'j'):
		return 'Љ', true
	case (a == 'n' && second == 'j'):
		return 'њ', true
	case (a == 'N' && second == 'j'):
		return 'Њ', true
	case (a == 'd' && second == 'ž'):
		return 'џ', true
	case (a == 'D' && second == 'ž'):
		return 'Џ', true
	}
	return 0, false
}
