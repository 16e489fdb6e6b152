package arr

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Writing through dot-notation paths
//
// Reads go through [Lookup], which understands any nested value. The helpers
// below write, so they are limited to map[string]any trees.
// ─────────────────────────────────────────────────────────────────────────────

// Dot flattens nested map[string]any values into one level keyed by dot
// paths. Empty nested maps are kept as values so that [Undot] restores them.
//
//	Dot(map[string]any{"a": map[string]any{"b": 1}, "c": map[string]any{}})
//	// → map[string]any{"a.b": 1, "c": map[string]any{}}
func Dot(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	dotInto("", m, out)
	return out
}

func dotInto(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok && len(nested) > 0 {
			dotInto(key, nested, out)
			continue
		}
		out[key] = v
	}
}

// Undot expands a flat dot-notation map into nested maps.
//
//	Undot(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
func Undot(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, val := range m {
		Set(out, key, val)
	}
	return out
}

// Set writes value at path, creating or replacing intermediate maps as
// needed.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path string, value any) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		m[path] = value
		return
	}
	child, ok := m[head].(map[string]any)
	if !ok {
		child = make(map[string]any)
		m[head] = child
	}
	Set(child, rest, value)
}

// Forget removes the value at path. Intermediate maps are left in place.
func Forget(m map[string]any, path string) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		delete(m, path)
		return
	}
	if child, ok := m[head].(map[string]any); ok {
		Forget(child, rest)
	}
}
