package css

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Value represents a single CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "20px", "33.33333%", "auto")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "px", "%", "em", etc.
	Keyword string  // Keyword if applicable: "auto", "left", "relative", etc.
}

// IsNumeric returns true if the value has a numeric component.
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	return v.Keyword == "" && v.Raw != ""
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// formatNumber prints a float the way stylesheets expect - no exponent, no
// trailing zeros, at most 5 digits after the decimal point.
func formatNumber(f float64) string {
	f = math.Round(f*1e5) / 1e5
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Percent builds a percentage value.
func Percent(f float64) Value {
	return Value{Raw: formatNumber(f) + "%", Value: f, Unit: "%"}
}

// Px builds a pixel dimension value.
func Px(f float64) Value {
	return Value{Raw: formatNumber(f) + "px", Value: f, Unit: "px"}
}

// Dim builds a dimension value with an arbitrary unit.
func Dim(f float64, unit string) Value {
	return Value{Raw: formatNumber(f) + unit, Value: f, Unit: unit}
}

// Keyword builds a keyword value.
func Keyword(s string) Value {
	return Value{Raw: s, Keyword: s}
}

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Selector   string           // Selector as it will appear on the output
	Properties map[string]Value // Property name -> value
}

// NewRule creates an empty rule for the given selector.
func NewRule(selector string) Rule {
	return Rule{Selector: selector, Properties: make(map[string]Value)}
}

// Set assigns a property value, overwriting previous assignment if any.
func (r Rule) Set(name string, val Value) Rule {
	r.Properties[name] = val
	return r
}

// GetProperty returns the value for a property, or empty Value if not found.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// MediaQuery represents a @media query condition. Generated queries are
// always of the "(min-width: ...)" form, parsed ones keep whatever was in
// the source.
type MediaQuery struct {
	Raw      string // Original media query string
	MinWidth Value  // Minimum viewport width when recognized
}

// MinWidthQuery builds a canonical min-width media query.
func MinWidthQuery(width Value) MediaQuery {
	return MediaQuery{
		Raw:      fmt.Sprintf("(min-width: %s)", width.Raw),
		MinWidth: width,
	}
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query MediaQuery
	Rules []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of the pointers is non-nil.
type StylesheetItem struct {
	Comment    *string     // A top level comment
	Import     *string     // An @import URL
	Rule       *Rule       // A plain rule (selector + properties)
	MediaBlock *MediaBlock // A @media block containing nested rules
}

// Stylesheet represents a stylesheet - either generated or parsed.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings for unsupported features
}

// AddComment appends a top level comment to the stylesheet.
func (s *Stylesheet) AddComment(text string) {
	s.Items = append(s.Items, StylesheetItem{Comment: &text})
}

// AddImport appends an @import to the stylesheet.
func (s *Stylesheet) AddImport(url string) {
	s.Items = append(s.Items, StylesheetItem{Import: &url})
}

// AddRule appends a rule to the stylesheet.
func (s *Stylesheet) AddRule(rule Rule) {
	s.Items = append(s.Items, StylesheetItem{Rule: &rule})
}

// AddMediaBlock appends a @media block to the stylesheet.
func (s *Stylesheet) AddMediaBlock(block MediaBlock) {
	s.Items = append(s.Items, StylesheetItem{MediaBlock: &block})
}

// Append merges all items and warnings of other into s keeping order.
func (s *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	s.Items = append(s.Items, other.Items...)
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// Imports returns all @import URLs from the stylesheet in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// RulesBySelector returns all top-level rules matching the given selector.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.Comment != nil:
			n, err = fmt.Fprintf(w, "/* %s */\n", *item.Comment)
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(\"%s\");\n", escapeDoubleQuoted(*item.Import))
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, item.Rule, "")
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w with the given indent.
func writeRule(w io.Writer, rule *Rule, indent string) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}

	// Sort property names for deterministic output
	names := make([]string, 0, len(rule.Properties))
	for name := range rule.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		val := rule.Properties[name]
		n, err = fmt.Fprintf(w, "%s  %s: %s;\n", indent, name, val.Raw)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query.Raw)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, &mb.Rules[i], "  ")
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// escapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
func escapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
