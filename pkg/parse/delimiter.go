// pkg/parse/delimiter.go

package parse

import "strings"

// candidate delimiters in preference order; semicolon first because it is
// the Serbian convention (comma is the decimal separator).
var delimiterCandidates = []rune{';', ',', '\t', '|'}

// DetectDelimiter picks the delimiter whose column count stays most
// consistent across lines. Falls back to the semicolon default when no
// candidate reaches the consistency bar.
func DetectDelimiter(input string) rune {
	lines := strings.Split(input, "\n")

	best := ';'
	bestScore := 0.0
	for _, delim := range delimiterCandidates {
		score := delimiterConsistency(lines, delim)
		if score > bestScore {
			bestScore = score
			best = delim
		}
	}
	if bestScore < 0.5 {
		return ';'
	}
	return best
}

// delimiterConsistency scores how consistently lines split into the same
// number of columns on delim. Lines one column short still count, to
// allow trailing optional fields.
func delimiterConsistency(lines []string, delim rune) float64 {
	if len(lines) < 2 {
		return 0
	}

	firstColumns := strings.Count(lines[0], string(delim)) + 1
	if firstColumns < 2 {
		return 0
	}

	consistent, total := 0, 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		total++
		columns := strings.Count(line, string(delim)) + 1
		if columns == firstColumns || columns == firstColumns-1 {
			consistent++
		}
	}
	if total == 0 {
		return 0
	}

	consistency := float64(consistent) / float64(total)
	if consistency >= 0.8 {
		return 0.7 + (consistency-0.8)*0.3
	}
	return 0
}
