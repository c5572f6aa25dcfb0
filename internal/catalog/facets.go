package catalog

import (
	"strconv"
	"strings"
)

// FacetAll is the sentinel value that disables a facet predicate.
const FacetAll = "All"

// MatchesSearch reports whether the query is a case-insensitive substring of
// any of the given fields. An empty query always passes.
func MatchesSearch(query string, fields ...string) bool {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// MatchesFacet applies an exact-label facet, passing through on "" or "All".
func MatchesFacet(facet, label string) bool {
	if facet == "" || facet == FacetAll {
		return true
	}
	return facet == label
}

// InPriceRange checks bucket membership for labels like "$300 - $500",
// "Under $1500" or "Over $3500". Both bounds are inclusive, so adjacent
// buckets share their boundary values; that mirrors how the buckets were
// shipped and is not a defect.
func InPriceRange(price float64, label string) bool {
	if label == "" || label == FacetAll {
		return true
	}
	lo, hi, ok := rangeBounds(label)
	if !ok {
		return true
	}
	return price >= lo && price <= hi
}

// InDurationRange checks bucket membership for labels like "1-3 Days",
// "4-7 Days" or "8+ Days" against a free-text duration ("7 days" → 7).
func InDurationRange(durationLabel, facetLabel string) bool {
	if facetLabel == "" || facetLabel == FacetAll {
		return true
	}
	days := FirstInt(durationLabel)
	lo, hi, ok := rangeBounds(facetLabel)
	if !ok {
		return true
	}
	return float64(days) >= lo && float64(days) <= hi
}

// rangeBounds parses a bucket label into inclusive bounds. Supported shapes:
// two numeric runs ("$300-$500"), "Under/Below N", "Over/Above N" or "N+".
func rangeBounds(label string) (float64, float64, bool) {
	nums := numericRuns(label)
	lower := strings.ToLower(label)

	switch len(nums) {
	case 0:
		return 0, 0, false
	case 1:
		n := nums[0]
		if strings.Contains(lower, "under") || strings.Contains(lower, "below") || strings.Contains(lower, "less") {
			return 0, n, true
		}
		if strings.Contains(lower, "over") || strings.Contains(lower, "above") || strings.Contains(label, "+") || strings.Contains(lower, "more") {
			return n, maxBound, true
		}
		return n, n, true
	default:
		lo, hi := nums[0], nums[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi, true
	}
}

const maxBound = 1e12

func numericRuns(s string) []float64 {
	var runs []float64
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		raw := strings.Trim(strings.ReplaceAll(s[start:end], ",", ""), ".")
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			runs = append(runs, f)
		}
		start = -1
	}
	for i, r := range s {
		isNumeric := (r >= '0' && r <= '9') || r == ',' || r == '.'
		if isNumeric && start < 0 {
			start = i
		}
		if !isNumeric {
			flush(i)
		}
	}
	flush(len(s))
	return runs
}
