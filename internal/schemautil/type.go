// Package schemautil provides helpers for reading and widening the "type"
// keyword of generic schema nodes.
//
// A schema's type is either a single string ({"type": "string"}) or, once
// widened, a list of strings ({"type": ["string", "null"]}). The helpers here
// treat both forms uniformly.
package schemautil

// TypeKey is the schema keyword holding a node's type.
const TypeKey = "type"

// SchemaTypes returns the type(s) of a node, handling both the single string
// and the list representation.
//
// Examples:
//   - {"type": "string"} returns ["string"]
//   - {"type": ["string", "null"]} returns ["string", "null"]
//
// Non-string list members are skipped.
func SchemaTypes(node map[string]any) []string {
	if node == nil {
		return nil
	}
	switch t := node[TypeKey].(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		result := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case []string:
		return t
	}
	return nil
}

// HasType checks if the node's type includes targetType.
func HasType(node map[string]any, targetType string) bool {
	for _, t := range SchemaTypes(node) {
		if t == targetType {
			return true
		}
	}
	return false
}

// AddType widens the node's type to include extra and reports whether the
// node was changed.
//
// A single string type t (t != extra) becomes the list [t, extra]. A list
// type gets extra appended unless already present. A missing type, or a type
// of any other shape, is left untouched.
func AddType(node map[string]any, extra string) bool {
	switch t := node[TypeKey].(type) {
	case string:
		if t == extra {
			return false
		}
		node[TypeKey] = []any{t, extra}
		return true
	case []any:
		for _, v := range t {
			if v == extra {
				return false
			}
		}
		node[TypeKey] = append(t, extra)
		return true
	case []string:
		widened := make([]any, 0, len(t)+1)
		for _, v := range t {
			if v == extra {
				return false
			}
			widened = append(widened, v)
		}
		node[TypeKey] = append(widened, extra)
		return true
	}
	return false
}
