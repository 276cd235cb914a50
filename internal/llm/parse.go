package llm

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// Status classifies what came back from a completion call that was asked for
// a JSON object. Anything other than StatusOK is a tier miss for the caller.
type Status int

const (
	StatusOK Status = iota
	StatusEmpty
	StatusMalformed
)

// Object holds the parsed fields of a model response. Fields are optional by
// nature; accessors report presence instead of panicking on shape surprises.
type Object struct {
	fields map[string]any
}

var objectSpan = regexp.MustCompile(`\{[\s\S]*\}`)

// ParseObject extracts a JSON object from a raw model response. Models ignore
// formatting instructions often enough that this strips markdown code fences
// and isolates the first {...} span before unmarshalling.
func ParseObject(raw string) (Object, Status) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Object{}, StatusEmpty
	}

	s = stripFences(s)

	if span := objectSpan.FindString(s); span != "" {
		s = span
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return Object{}, StatusMalformed
	}

	return Object{fields: fields}, StatusOK
}

// stripFences removes ```json ... ``` or ``` ... ``` wrappers.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	idx := strings.Index(s, "\n")
	if idx == -1 {
		return s
	}

	s = strings.TrimSpace(s[idx+1:])

	if end := strings.LastIndex(s, "```"); end != -1 {
		s = s[:end]
	}

	return strings.TrimSpace(s)
}

// String returns the named field as a trimmed string. Missing, null, or
// empty values report absent.
func (o Object) String(key string) (string, bool) {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return "", false
	}

	s, ok := v.(string)
	if !ok {
		return "", false
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	return s, true
}

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// Float returns the named field as a float64. String-typed numbers are
// cleaned of currency symbols and separators before parsing, since models
// occasionally return amounts like "Rs. 1,234.50".
func (o Object) Float(key string) (float64, bool) {
	v, ok := o.fields[key]
	if !ok || v == nil {
		return 0, false
	}

	switch val := v.(type) {
	case float64:
		return val, true
	case string:
		clean := nonNumeric.ReplaceAllString(val, "")
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}
