package sanitizer

// Tree applies fn to every string found in v, descending into maps and
// slices as produced by JSON decoding. Other values are returned unchanged.
// The input is not modified.
func Tree(v any, fn func(string) string) any {
	switch val := v.(type) {
	case string:
		return fn(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = Tree(child, fn)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = Tree(child, fn)
		}
		return out
	}
	return v
}

// Fields applies a per-key pipeline to the string values of m, leaving other
// keys untouched. It returns a new map.
func Fields(m map[string]any, rules map[string]func(string) string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if fn, ok := rules[k]; ok {
			if s, isString := v.(string); isString {
				out[k] = fn(s)
				continue
			}
		}
		out[k] = v
	}
	return out
}
