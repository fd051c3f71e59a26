package grid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SpecKind discriminates the shape of a width specification.
type SpecKind int

const (
	SpecNumeric SpecKind = iota // plain column count
	SpecKeyword                 // symbolic word like "half"
	SpecPhrase                  // free-form two-number phrase like "1 out of 3"
)

// String returns the human readable name of the spec shape.
func (k SpecKind) String() string {
	switch k {
	case SpecNumeric:
		return "numeric"
	case SpecKeyword:
		return "keyword"
	case SpecPhrase:
		return "phrase"
	default:
		return fmt.Sprintf("SpecKind(%d)", int(k))
	}
}

// WidthSpec is a width specification of one of three shapes. It is immutable
// and has no identity beyond its value - construct one per call site.
type WidthSpec struct {
	Kind   SpecKind
	Number float64 // valid for SpecNumeric
	Text   string  // valid for SpecKeyword and SpecPhrase
}

// Columns builds a numeric width specification - a span of n grid columns.
func Columns(n float64) WidthSpec {
	return WidthSpec{Kind: SpecNumeric, Number: n}
}

// Keyword builds a symbolic width specification ("half", "two-thirds", ...).
func Keyword(name string) WidthSpec {
	return WidthSpec{Kind: SpecKeyword, Text: name}
}

// Phrase builds a free-form width specification ("1 out of 3", "2/5", ...).
func Phrase(text string) WidthSpec {
	return WidthSpec{Kind: SpecPhrase, Text: text}
}

// String returns the original author-facing form of the specification.
func (s WidthSpec) String() string {
	if s.Kind == SpecNumeric {
		return strconv.FormatFloat(s.Number, 'f', -1, 64)
	}
	return s.Text
}

// ParseSpec classifies raw width specification text into one of the three
// spec shapes. A parseable number is numeric, a single bare word is a
// keyword, everything else is treated as a phrase.
func ParseSpec(raw string) WidthSpec {
	raw = strings.TrimSpace(raw)
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Columns(f)
	}
	if raw != "" && !strings.ContainsFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	}) {
		return Keyword(raw)
	}
	return Phrase(raw)
}

// InvalidSpecError reports a width specification that cannot be resolved to
// a ratio. This is an authoring mistake and must fail the build loudly.
type InvalidSpecError struct {
	Spec   string
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return fmt.Sprintf("invalid width specification %q: %s", e.Spec, e.Reason)
}

// wordRatios maps width keywords to their ratios. Lookup is case-sensitive
// and exact - no fuzzy matching.
var wordRatios = map[string]float64{
	"half":           1.0 / 2.0,
	"one-half":       1.0 / 2.0,
	"third":          1.0 / 3.0,
	"one-third":      1.0 / 3.0,
	"two-thirds":     2.0 / 3.0,
	"quarter":        1.0 / 4.0,
	"one-quarter":    1.0 / 4.0,
	"one-fourth":     1.0 / 4.0,
	"three-quarters": 3.0 / 4.0,
	"three-fourths":  3.0 / 4.0,
	"full":           1.0,
	"whole":          1.0,
}

// Resolve turns a width specification into a ratio in [0, 1].
//
// Numeric specifications are taken as a column count out of totalColumns,
// saturating at full width when the count meets or exceeds the total - old
// stylesheets rely on this leniency, over-wide columns never error.
// Keywords resolve through the word table independently of totalColumns.
// Phrases are scanned for a numeric pair "part ... whole" with arbitrary
// separators and resolve like a numeric specification against the phrase's
// own total.
func Resolve(spec WidthSpec, totalColumns int) (float64, error) {
	switch spec.Kind {
	case SpecNumeric:
		return resolveFraction(spec, spec.Number, float64(totalColumns))
	case SpecKeyword:
		if ratio, ok := wordRatios[spec.Text]; ok {
			return ratio, nil
		}
		return 0, &InvalidSpecError{Spec: spec.Text, Reason: "unknown width keyword"}
	case SpecPhrase:
		nums := scanNumbers(spec.Text)
		if len(nums) < 2 {
			return 0, &InvalidSpecError{Spec: spec.Text, Reason: "no usable numeric pair"}
		}
		return resolveFraction(spec, nums[0], nums[1])
	default:
		return 0, &InvalidSpecError{Spec: spec.String(), Reason: "unrecognized specification shape"}
	}
}

// resolveFraction applies the numeric rule: part of whole, saturating at 1.
func resolveFraction(spec WidthSpec, part, whole float64) (float64, error) {
	if whole <= 0 {
		return 0, &InvalidSpecError{Spec: spec.String(), Reason: "total column count must be positive"}
	}
	if part < 0 {
		return 0, &InvalidSpecError{Spec: spec.String(), Reason: "column count cannot be negative"}
	}
	if part >= whole {
		return 1, nil
	}
	return part / whole, nil
}

// scanNumbers extracts unsigned numeric runs from free-form text in order of
// appearance. Separators of any shape are skipped, so "1 out of 3", "1/3"
// and "1-3" all yield the same pair. Runs that do not parse as a number
// (e.g. "1.2.3") are dropped.
func scanNumbers(text string) []float64 {
	var nums []float64

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		if f, err := strconv.ParseFloat(text[start:end], 64); err == nil {
			nums = append(nums, f)
		}
		start = -1
	}

	for i, r := range text {
		if unicode.IsDigit(r) || r == '.' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(text))

	return nums
}
