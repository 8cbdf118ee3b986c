package converter

import (
	"fmt"
	"slices"

	"github.com/erraggy/oas2jsonschema/internal/pathutil"
	"github.com/erraggy/oas2jsonschema/internal/schemautil"
	"github.com/erraggy/oas2jsonschema/oaserrors"
)

// enumSentinelType is a legacy marker for integer-backed enumerations.
const enumSentinelType = "enum"

// ValidTypes returns the type names accepted by ValidateType.
func ValidTypes() []string {
	return []string{"integer", "number", "string", "boolean", "object", "array"}
}

// IsValidType reports whether t is one of ValidTypes.
func IsValidType(t string) bool {
	return slices.Contains(ValidTypes(), t)
}

// ValidateType checks the value of a node's "type" keyword.
//
// A nil value (no type declared) is valid. A string must be one of
// ValidTypes. A list is valid when every member is a valid type or "null".
// Invalid names yield an *oaserrors.InvalidTypeError; values of any other
// kind yield an *oaserrors.ShapeError.
func ValidateType(value any) error {
	return validateType(value, "")
}

func validateType(value any, path string) error {
	switch KindOf(value) {
	case KindNull:
		return nil
	case KindString:
		t := value.(string)
		if !IsValidType(t) {
			return &oaserrors.InvalidTypeError{Type: t, Path: path}
		}
		return nil
	case KindArray:
		for _, member := range value.([]any) {
			s, ok := member.(string)
			if !ok {
				return &oaserrors.InvalidTypeError{Type: fmt.Sprint(member), Path: path}
			}
			if s != "null" && !IsValidType(s) {
				return &oaserrors.InvalidTypeError{Type: s, Path: path}
			}
		}
		return nil
	default:
		return &oaserrors.ShapeError{
			Path:     path,
			Key:      schemautil.TypeKey,
			Expected: "string or array",
			Actual:   KindOf(value).String(),
		}
	}
}

// NormalizeTypes rewrites a single node's type, format and nullability in
// place, without recursing:
//
//   - nullable: true appends {"type": "null"} to oneOf and anyOf lists
//   - format "date" on a string becomes "date-time" when DateToDateTime is set
//   - nullable: true widens the type with "null"
//   - the legacy type "enum" becomes ["enum", "integer"]
//
// Nodes without "type" and without nullable: true are returned unchanged.
// The "nullable" keyword itself is left in place; it is stripped later as an
// unsupported keyword.
func (c *Converter) NormalizeTypes(node Node) (Node, error) {
	path := pathutil.Get()
	defer pathutil.Put(path)
	if err := c.normalizeTypes(node, path); err != nil {
		return nil, err
	}
	return node, nil
}

func (c *Converter) normalizeTypes(node Node, path *pathutil.PathBuilder) error {
	nullable, err := nullableFlag(node, path)
	if err != nil {
		return err
	}
	if _, hasType := node[schemautil.TypeKey]; !hasType && !nullable {
		return nil
	}

	if nullable {
		for _, key := range []string{"oneOf", "anyOf"} {
			if alternatives, ok := node[key].([]any); ok {
				node[key] = append(alternatives, Node{schemautil.TypeKey: "null"})
			}
		}
	}

	if c.opts.DateToDateTime && node[schemautil.TypeKey] == "string" && node["format"] == "date" {
		node["format"] = "date-time"
	}

	if nullable {
		schemautil.AddType(node, "null")
	}

	// A nullable sentinel is already a list by now and keeps ["enum", "null"].
	if node[schemautil.TypeKey] == enumSentinelType {
		node[schemautil.TypeKey] = []any{enumSentinelType, "integer"}
	}
	return nil
}

// nullableFlag reads the "nullable" keyword. Absent means false.
func nullableFlag(node Node, path *pathutil.PathBuilder) (bool, error) {
	raw, ok := node["nullable"]
	if !ok {
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, &oaserrors.ShapeError{
			Path:     path.String(),
			Key:      "nullable",
			Expected: "boolean",
			Actual:   KindOf(raw).String(),
		}
	}
	return b, nil
}
