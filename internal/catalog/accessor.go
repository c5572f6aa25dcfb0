package catalog

// ======================
// 🔹 Fallback Accessor
// ======================
//
// Upstream payloads drift between naming conventions (mainimage vs mainImage vs
// main_image). Each field is resolved through one ordered candidate list here
// instead of ad hoc chains at every call site.

// Pick returns the first value among candidate keys that is present and non-nil.
func Pick(raw map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// PickDefault is Pick with an explicit fallback value.
func PickDefault(raw map[string]any, def any, keys ...string) any {
	if v := Pick(raw, keys...); v != nil {
		return v
	}
	return def
}

// PickString resolves a string field, tolerating non-string scalars.
func PickString(raw map[string]any, keys ...string) string {
	return AsString(Pick(raw, keys...))
}

// PickStringDefault resolves a string field with a fallback for empty results.
func PickStringDefault(raw map[string]any, def string, keys ...string) string {
	if s := PickString(raw, keys...); s != "" {
		return s
	}
	return def
}

// PickFloat resolves a numeric field, accepting numbers or numeric strings
// carrying currency symbols.
func PickFloat(raw map[string]any, keys ...string) float64 {
	return ParsePrice(Pick(raw, keys...))
}

// PickInt truncates PickFloat.
func PickInt(raw map[string]any, keys ...string) int {
	return int(PickFloat(raw, keys...))
}

// PickBool resolves a boolean field, defaulting to false.
func PickBool(raw map[string]any, keys ...string) bool {
	if b, ok := Pick(raw, keys...).(bool); ok {
		return b
	}
	return false
}

// PickMap resolves a nested object field.
func PickMap(raw map[string]any, keys ...string) map[string]any {
	if m, ok := Pick(raw, keys...).(map[string]any); ok {
		return m
	}
	return nil
}

// PickSlice resolves a sequence field without element conversion.
func PickSlice(raw map[string]any, keys ...string) []any {
	if s, ok := Pick(raw, keys...).([]any); ok {
		return s
	}
	return nil
}

// PickList resolves an array-or-string field into a clean string slice.
func PickList(raw map[string]any, keys ...string) []string {
	return ParseListField(Pick(raw, keys...))
}
