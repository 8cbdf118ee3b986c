package converter

import "github.com/erraggy/oas2jsonschema/internal/schemautil"

// applyExceptions runs the opt-in widening passes over a converted
// properties map. Each pass is independent of the others.
func (c *Converter) applyExceptions(props Node) {
	if c.opts.EnumToInteger {
		walkPropertyNodes(props, enumToInteger)
	}
	if c.opts.NullableEverywhere {
		walkPropertyNodes(props, nullableType)
	}
	if c.opts.StringAcceptsInteger {
		walkPropertyNodes(props, stringAcceptsInteger)
	}
}

// walkPropertyNodes applies rule to every object reachable from obj through
// object values, children first. Objects inside lists are descended into,
// but rule is not applied to the list items themselves.
func walkPropertyNodes(obj Node, rule func(Node)) {
	for _, key := range sortedKeys(obj) {
		switch v := obj[key].(type) {
		case map[string]any:
			walkPropertyNodes(v, rule)
			rule(v)
		case []any:
			for _, item := range v {
				if child, ok := item.(map[string]any); ok {
					walkPropertyNodes(child, rule)
				}
			}
		}
	}
}

// enumToInteger drops an "enum" list and widens the type with "integer".
func enumToInteger(n Node) {
	if _, ok := n["enum"].([]any); !ok {
		return
	}
	delete(n, "enum")
	schemautil.AddType(n, "integer")
}

func nullableType(n Node) {
	schemautil.AddType(n, "null")
}

func stringAcceptsInteger(n Node) {
	if schemautil.HasType(n, "string") {
		schemautil.AddType(n, "integer")
	}
}
