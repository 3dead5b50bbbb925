package chord

// PruneNulls removes every property whose value is exactly nil from a
// JSON-like value, recursing into nested maps and slices. Slice removals
// compact the slice; survivor order is preserved. Non-container values pass
// through unchanged. The root value is returned.
//
// Maps are mutated in place. Apply this only to freshly built payload
// trees, never to caller-owned state.
func PruneNulls(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for key, elem := range val {
			pruned := PruneNulls(elem)
			if pruned == nil {
				delete(val, key)
				continue
			}
			val[key] = pruned
		}
		return val
	case []any:
		out := val[:0]
		for _, elem := range val {
			if pruned := PruneNulls(elem); pruned != nil {
				out = append(out, pruned)
			}
		}
		return out
	default:
		return v
	}
}
