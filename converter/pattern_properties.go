package converter

import "reflect"

// TranslatePatternProperties moves the x-patternProperties extension to the
// standard patternProperties keyword.
//
// If additionalProperties holds the very same schema object as one of the
// pattern properties (the same map, not merely an equal one), it is set to
// false: only names matching a pattern are then allowed. Any other
// additionalProperties value is left as it was.
//
// Nodes without the extension are returned unchanged.
func TranslatePatternProperties(node Node) Node {
	ext, ok := node[PatternPropertiesExtension]
	if !ok {
		return node
	}
	node["patternProperties"] = ext
	delete(node, PatternPropertiesExtension)

	patterns, ok := ext.(map[string]any)
	if !ok {
		return node
	}
	additional, ok := node["additionalProperties"].(map[string]any)
	if !ok {
		return node
	}
	for _, pattern := range sortedKeys(patterns) {
		if schema, ok := patterns[pattern].(map[string]any); ok && sameMap(schema, additional) {
			node["additionalProperties"] = false
			break
		}
	}
	return node
}

// sameMap reports whether a and b are the same map instance.
func sameMap(a, b map[string]any) bool {
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}
