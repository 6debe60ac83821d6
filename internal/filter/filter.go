package filter

import (
	"strings"
	"unicode/utf8"
)

// Verdict is the outcome of evaluating one candidate document.
type Verdict int

const (
	Accept Verdict = iota
	RejectShort
	RejectHiragana
	RejectRepetition
)

func (v Verdict) String() string {
	switch v {
	case Accept:
		return "accept"
	case RejectShort:
		return "reject-short"
	case RejectHiragana:
		return "reject-hiragana-ratio"
	case RejectRepetition:
		return "reject-line-repetition"
	default:
		return "unknown"
	}
}

// Thresholds holds the accept/reject boundaries for the three checks.
type Thresholds struct {
	// MinDocLength is the minimum character count of the joined document.
	MinDocLength int
	// MinHiraganaRatio is the minimum fraction of hiragana characters.
	MinHiraganaRatio float64
	// MaxLineRepetition rejects documents whose repetition ratio reaches it.
	MaxLineRepetition float64
}

// DefaultThresholds returns the standard CC-100 cleaning thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinDocLength:      200,
		MinHiraganaRatio:  0.10,
		MaxLineRepetition: 0.30,
	}
}

// Evaluate runs the three checks in order and returns the first failure, or
// Accept. Lines are joined with single line breaks for the character-level
// checks.
func Evaluate(lines []string, t Thresholds) Verdict {
	text := strings.Join(lines, "\n")
	if utf8.RuneCountInString(text) < t.MinDocLength {
		return RejectShort
	}
	if HiraganaRatio(text) < t.MinHiraganaRatio {
		return RejectHiragana
	}
	if LineRepetitionRatio(lines) >= t.MaxLineRepetition {
		return RejectRepetition
	}
	return Accept
}

// HiraganaRatio returns the fraction of characters in text whose code point
// lies in the Hiragana block (U+3040–U+309F). The ratio of an empty string
// is 0.
func HiraganaRatio(text string) float64 {
	if text == "" {
		return 0
	}
	var total, hiragana int
	for _, r := range text {
		total++
		if r >= 0x3040 && r <= 0x309F {
			hiragana++
		}
	}
	return float64(hiragana) / float64(total)
}

// LineRepetitionRatio returns the fraction of lines that duplicate an
// earlier occurrence of the same line. Documents of one line or fewer
// always score 0.
func LineRepetitionRatio(lines []string) float64 {
	if len(lines) <= 1 {
		return 0
	}
	counts := make(map[string]int, len(lines))
	for _, line := range lines {
		counts[line]++
	}
	var repeated int
	for _, c := range counts {
		if c > 1 {
			repeated += c - 1
		}
	}
	return float64(repeated) / float64(len(lines))
}
