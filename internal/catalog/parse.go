package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/sharath018/travel-agency-backend/config"
)

// AsString renders a scalar payload value as a string. Numbers lose no
// precision for the integer ids the upstream sends.
func AsString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", s))
	}
}

// ParsePrice accepts numeric or string-with-symbols input ("$1,299", "1299 per
// night", 1299) and returns the first numeric run as a float. No match → 0.
// Negative inputs are clamped to 0; canonical prices are never negative.
func ParsePrice(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if n < 0 {
			return 0
		}
		return n
	case int:
		if n < 0 {
			return 0
		}
		return float64(n)
	case string:
		run := firstNumericRun(n)
		if run == "" {
			return 0
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(run, ",", ""), 64)
		if err != nil || f < 0 {
			return 0
		}
		return f
	default:
		return 0
	}
}

// firstNumericRun extracts the first contiguous run of digits, commas and a
// decimal point from a price-ish string.
func firstNumericRun(s string) string {
	start := -1
	for i, r := range s {
		isNumeric := (r >= '0' && r <= '9') || r == ',' || r == '.'
		if isNumeric && start < 0 {
			start = i
		}
		if !isNumeric && start >= 0 {
			return strings.Trim(s[start:i], ",.")
		}
	}
	if start >= 0 {
		return strings.Trim(s[start:], ",.")
	}
	return ""
}

// FirstInt extracts the first integer found in free text ("7 days" → 7).
// Returns 0 when the text carries no digits.
func FirstInt(s string) int {
	start := -1
	for i, r := range s {
		isDigit := r >= '0' && r <= '9'
		if isDigit && start < 0 {
			start = i
		}
		if !isDigit && start >= 0 {
			n, _ := strconv.Atoi(s[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(s[start:])
		return n
	}
	return 0
}

// ParseListField reconciles fields that arrive either as a sequence or as a
// delimited string. Strings are first tried as a JSON array, then split on
// comma/newline. Empty tokens are dropped, order preserved.
func ParseListField(v any) []string {
	switch seq := v.(type) {
	case nil:
		return []string{}
	case []string:
		out := make([]string, 0, len(seq))
		for _, item := range seq {
			if t := strings.TrimSpace(item); t != "" {
				out = append(out, t)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(seq))
		for _, item := range seq {
			if t := AsString(item); t != "" {
				out = append(out, t)
			}
		}
		return out
	case string:
		trimmed := strings.TrimSpace(seq)
		if trimmed == "" {
			return []string{}
		}
		if strings.HasPrefix(trimmed, "[") {
			var arr []any
			if err := json.Unmarshal([]byte(trimmed), &arr); err == nil {
				return ParseListField(arr)
			}
		}
		tokens := strings.FieldsFunc(trimmed, func(r rune) bool {
			return r == ',' || r == '\n'
		})
		out := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if t := strings.TrimSpace(tok); t != "" {
				out = append(out, t)
			}
		}
		return out
	default:
		return []string{}
	}
}

// CollectImages composes [primary, gallery...], drops falsy entries, dedupes
// preserving order and guarantees at least one element by substituting the
// placeholder. Listing cards always have something to render.
func CollectImages(primary string, gallery []string) []string {
	seen := make(map[string]bool, len(gallery)+1)
	out := make([]string, 0, len(gallery)+1)
	for _, img := range append([]string{primary}, gallery...) {
		img = strings.TrimSpace(img)
		if img == "" || seen[img] {
			continue
		}
		seen[img] = true
		out = append(out, img)
	}
	if len(out) == 0 {
		out = append(out, config.PlaceholderImage)
	}
	return out
}
