// pkg/metadata/cycle.go
package metadata

import "reflect"

// maxSanitizeDepth caps traversal of raw metadata maps. Real catalog
// records are a handful of levels deep; anything past this is treated
// the same as a cycle.
const maxSanitizeDepth = 32

// sanitize walks a raw decoded metadata value and returns a copy with
// every cyclic or over-deep branch replaced by nil. cyclic reports
// whether any branch was cut, so adapters can record a validation error
// instead of looping forever.
func sanitize(v any) (out any, cyclic bool) {
	return sanitizeValue(v, map[uintptr]bool{}, 0)
}

func sanitizeValue(v any, seen map[uintptr]bool, depth int) (any, bool) {
	if depth > maxSanitizeDepth {
		return nil, true
	}
	switch val := v.(type) {
	case map[string]any:
		ptr := reflect.ValueOf(val).Pointer()
		if seen[ptr] {
			return nil, true
		}
		seen[ptr] = true
		defer delete(seen, ptr)
		out := make(map[string]any, len(val))
		cut := false
		for k, child := range val {
			clean, c := sanitizeValue(child, seen, depth+1)
			out[k] = clean
			cut = cut || c
		}
		return out, cut
	case []any:
		if len(val) == 0 {
			return []any{}, false
		}
		ptr := reflect.ValueOf(val).Pointer()
		if seen[ptr] {
			return nil, true
		}
		seen[ptr] = true
		defer delete(seen, ptr)
		out := make([]any, len(val))
		cut := false
		for i, child := range val {
			clean, c := sanitizeValue(child, seen, depth+1)
			out[i] = clean
			cut = cut || c
		}
		return out, cut
	default:
		return v, false
	}
}
