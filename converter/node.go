package converter

import (
	"sort"

	"github.com/goccy/go-json"
)

// Node is one fragment of a schema tree: a mapping from keyword to value.
//
// Values are themselves a Node, a []any list, a string, a number, a bool, or
// nil. This is the shape produced by decoding JSON or YAML into an any, so
// trees from the parser package (or encoding/json, or goccy/go-json) can be
// passed in directly.
type Node = map[string]any

// Kind classifies a node value.
type Kind int

const (
	// KindInvalid is any Go value outside the node value space.
	KindInvalid Kind = iota
	// KindNull is a nil value.
	KindNull
	// KindBool is a boolean.
	KindBool
	// KindNumber is any integer or floating point kind, or a json.Number.
	KindNumber
	// KindString is a string.
	KindString
	// KindArray is an ordered list ([]any).
	KindArray
	// KindObject is a nested Node.
	KindObject
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "boolean",
	KindNumber:  "number",
	KindString:  "string",
	KindArray:   "array",
	KindObject:  "object",
}

// String returns the JSON name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindInvalid]
	}
	return kindNames[k]
}

// KindOf classifies v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindInvalid
	}
}

// sortedKeys returns the keys of n in lexical order so that traversal, and
// therefore error reporting and logging, is deterministic.
func sortedKeys(n Node) []string {
	keys := make([]string, 0, len(n))
	for k := range n {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
