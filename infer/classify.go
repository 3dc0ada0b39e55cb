package infer

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"

	"github.com/furnace-io/furnace-go/schema"
)

// TypeOf maps a decoded JSON value to its primitive type tag. Booleans are
// checked before numeric kinds so they are never misreported as integers.
// Values with no JSON representation map to TypeUnknown, which contributes
// no type information downstream.
func TypeOf(value any) schema.TypeTag {
	switch v := value.(type) {
	case nil:
		return schema.TypeNull
	case bool:
		return schema.TypeBoolean
	case string:
		return schema.TypeString
	case map[string]any:
		return schema.TypeObject
	case []any:
		return schema.TypeArray
	case json.Number:
		if _, err := v.Int64(); err == nil {
			return schema.TypeInteger
		}
		return schema.TypeNumber
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return schema.TypeInteger
	case float64:
		// encoding/json decodes every number as float64 by default, so an
		// integral float64 is reported as integer to match the wire value.
		if v == math.Trunc(v) && !math.IsInf(v, 0) && !math.IsNaN(v) {
			return schema.TypeInteger
		}
		return schema.TypeNumber
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return schema.TypeInteger
		}
		return schema.TypeNumber
	default:
		return schema.TypeUnknown
	}
}

// Pre-compiled patterns for format detection.
var (
	isoDateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(.\d+)?(Z|[+-]\d{2}:\d{2})?$`)
	isoDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoTimeRe     = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(.\d+)?$`)
	emailRe       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	uuidRe        = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	ipv4Re        = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	ipv6Re        = regexp.MustCompile(`^(([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}|([0-9a-fA-F]{1,4}:){1,7}:|([0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4})$`)
)

// DetectFormat classifies a string against the recognized formats. The
// checks run in a fixed priority order which doubles as the tie-break when a
// string could satisfy more than one pattern. The match is purely
// syntactic; "2024-02-30" still counts as a date.
func DetectFormat(s string) (schema.Format, bool) {
	if s == "" {
		return "", false
	}

	// URI prefixes are cheap and unambiguous.
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "ftp://") || strings.HasPrefix(s, "file://") {
		return schema.FormatURI, true
	}

	length := len(s)

	if strings.Contains(s, "@") && length > 5 && emailRe.MatchString(s) {
		return schema.FormatEmail, true
	}

	if length == 36 && strings.Contains(s, "-") && uuidRe.MatchString(s) {
		return schema.FormatUUID, true
	}

	switch {
	case length == 10 && isoDateRe.MatchString(s):
		return schema.FormatDate, true
	case length >= 19 && isoDateTimeRe.MatchString(s):
		return schema.FormatDateTime, true
	case length >= 8 && strings.Contains(s, ":") && isoTimeRe.MatchString(s):
		return schema.FormatTime, true
	}

	if strings.Contains(s, ".") && isIPv4(s) {
		return schema.FormatIPv4, true
	}
	if strings.Contains(s, ":") && ipv6Re.MatchString(s) {
		return schema.FormatIPv6, true
	}

	return "", false
}

// isIPv4 reports whether s is four dot-separated groups each in 0..255.
func isIPv4(s string) bool {
	if !ipv4Re.MatchString(s) {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		n := 0
		for _, c := range part {
			n = n*10 + int(c-'0')
		}
		if n > 255 {
			return false
		}
	}
	return true
}
