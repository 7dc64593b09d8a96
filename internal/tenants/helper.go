package tenants

import (
	"regexp"
	"strconv"
	"strings"
)

var reLeadingInt = regexp.MustCompile(`^[0-9]+`)

// str reads a field as display text. Numbers come back from the
// spreadsheet API as float64 and are rendered without a decimal tail.
// Absent fields and shapes with no sensible text form map to "".
func str(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// yearText keeps only values that read as a year: a number, or a string
// of digits. Anything else is "".
func yearText(v any) string {
	switch y := v.(type) {
	case float64:
		return strconv.FormatFloat(y, 'f', -1, 64)
	case string:
		s := strings.TrimSpace(y)
		if _, err := strconv.Atoi(s); err == nil {
			return s
		}
	}
	return ""
}

// locationCount pulls the leading number out of a count cell such as
// "6,711 locations". Unparsable input counts as zero.
func locationCount(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	m := reLeadingInt.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
