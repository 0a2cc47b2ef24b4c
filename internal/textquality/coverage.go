package textquality

import (
	"math"
	"strings"
	"unicode"
)

// MatchCoverage reports which expected key points appear in the answer. A
// point is covered when its first CoveragePrefixWords words occur as a
// case- and punctuation-insensitive substring of the answer. Covered plus
// missed always partitions the expected points; no expected points means
// zero percent.
func (a *Analyzer) MatchCoverage(answer string, expectedPoints []string) CoverageResult {
	result := CoverageResult{
		Covered: []string{},
		Missed:  []string{},
	}
	if len(expectedPoints) == 0 {
		return result
	}

	normalized := normalizeForMatch(answer)
	for _, point := range expectedPoints {
		prefix := pointPrefix(point, a.cfg.CoveragePrefixWords)
		if prefix != "" && strings.Contains(normalized, prefix) {
			result.Covered = append(result.Covered, point)
		} else {
			result.Missed = append(result.Missed, point)
		}
	}
	result.Percentage = int(math.Round(float64(len(result.Covered)) / float64(len(expectedPoints)) * 100))
	return result
}

func pointPrefix(point string, words int) string {
	fields := strings.Fields(normalizeForMatch(point))
	if len(fields) > words {
		fields = fields[:words]
	}
	return strings.Join(fields, " ")
}

// normalizeForMatch lowercases, strips punctuation, and collapses
// whitespace so multi-word prefixes match across commas and casing.
func normalizeForMatch(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
