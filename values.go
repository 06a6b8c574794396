package sqlfql

import (
	"strconv"
	"time"

	"github.com/freeeve/machparse/ast"
)

// isoLayouts are tried in order against a quoted string literal before
// it is accepted as plain text. time.Parse returns a naive timestamp
// (zero UTC offset) for the layouts with no zone, which is then
// normalized to UTC like every other parsed timestamp.
var isoLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ExtractValue normalizes a parsed literal token to a typed Go scalar:
// nil, bool, int64, float64, time.Time, or string.
func ExtractValue(lit *ast.Literal) (any, error) {
	switch lit.Type {
	case ast.LiteralNull:
		return nil, nil
	case ast.LiteralBool:
		return lit.Value == "TRUE" || lit.Value == "true", nil
	case ast.LiteralInt:
		n, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			return nil, internalf("ExtractValue", err)
		}
		return n, nil
	case ast.LiteralFloat:
		f, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return nil, internalf("ExtractValue", err)
		}
		return f, nil
	case ast.LiteralString:
		s := unquote(lit.Value)
		if t, ok := parseISODateTime(s); ok {
			return t, nil
		}
		return s, nil
	default:
		return unquote(lit.Value), nil
	}
}

// unquote strips only the first and last character of a quoted string
// literal, preserving any apostrophes in between verbatim.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseISODateTime reports whether s is an ISO-8601 date or date-time,
// returning it as a timezone-aware time.Time in UTC: a string with no
// offset of its own is taken as UTC, and one with an offset is
// converted to the same instant in UTC.
func parseISODateTime(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return t.UTC(), true
	}
	return time.Time{}, false
}
