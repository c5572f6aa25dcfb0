package catalog

import "github.com/tidwall/gjson"

// ======================
// 🔹 Envelope Unwrapping
// ======================
//
// List payloads arrive as a bare array, {data: [...]}, {data: {<plural>: [...]}}
// or {<plural>: [...]}; detail payloads as a bare object or {data: {...}}.
// The shapes are probed in that fixed order so a payload matching several
// shapes unwraps deterministically.

// UnwrapList extracts the raw entity objects of a list payload.
// Unknown shapes yield an empty slice, never an error.
func UnwrapList(body []byte, pluralKey string) []map[string]any {
	root := gjson.ParseBytes(body)

	if root.IsArray() {
		return resultsToMaps(root.Array())
	}

	if data := root.Get("data"); data.Exists() {
		if data.IsArray() {
			return resultsToMaps(data.Array())
		}
		if inner := data.Get(pluralKey); inner.IsArray() {
			return resultsToMaps(inner.Array())
		}
	}

	if inner := root.Get(pluralKey); inner.IsArray() {
		return resultsToMaps(inner.Array())
	}

	return []map[string]any{}
}

// UnwrapItem extracts the raw entity object of a detail payload.
func UnwrapItem(body []byte) map[string]any {
	root := gjson.ParseBytes(body)

	if data := root.Get("data"); data.Exists() && data.IsObject() {
		return resultToMap(data)
	}
	if root.IsObject() {
		return resultToMap(root)
	}
	return map[string]any{}
}

func resultsToMaps(results []gjson.Result) []map[string]any {
	out := make([]map[string]any, 0, len(results))
	for _, r := range results {
		if r.IsObject() {
			out = append(out, resultToMap(r))
		}
	}
	return out
}

func resultToMap(r gjson.Result) map[string]any {
	if m, ok := r.Value().(map[string]any); ok {
		return m
	}
	return map[string]any{}
}
