package converter

import (
	"github.com/erraggy/oas2jsonschema/internal/pathutil"
	"github.com/erraggy/oas2jsonschema/oaserrors"
)

// ConvertProperties converts every schema in a properties map and returns a
// new map holding the results. Properties carrying one of the RemoveProps
// keywords set to true are left out entirely.
func (c *Converter) ConvertProperties(props Node) (Node, error) {
	path := pathutil.Get()
	defer pathutil.Put(path)
	return c.convertProperties(props, path)
}

func (c *Converter) convertProperties(props Node, path *pathutil.PathBuilder) (Node, error) {
	out := make(Node, len(props))
	for _, name := range sortedKeys(props) {
		prop, ok := props[name].(map[string]any)
		if !ok {
			return nil, &oaserrors.ShapeError{
				Path:     path.String(),
				Key:      name,
				Expected: "object",
				Actual:   KindOf(props[name]).String(),
			}
		}
		if flag, drop := c.removalFlag(prop); drop {
			c.log.Debug("dropped property", "path", path.String(), "name", name, "flag", flag)
			continue
		}
		path.Push(name)
		converted, err := c.convert(prop, path)
		if err != nil {
			return nil, err
		}
		path.Pop()
		out[name] = converted
	}
	return out, nil
}

// removalFlag returns the first RemoveProps keyword set to boolean true on
// prop.
func (c *Converter) removalFlag(prop Node) (string, bool) {
	for _, flag := range c.removeProps {
		if set, ok := prop[flag].(bool); ok && set {
			return flag, true
		}
	}
	return "", false
}

// convertNodeProperties converts node's "properties", then cleans
// "required" against what is left. Empty "required" and "properties" are
// removed.
func (c *Converter) convertNodeProperties(node Node, path *pathutil.PathBuilder) error {
	raw, ok := node["properties"]
	if !ok {
		return nil
	}
	props, ok := raw.(map[string]any)
	if !ok {
		return &oaserrors.ShapeError{
			Path:     path.String(),
			Key:      "properties",
			Expected: "object",
			Actual:   KindOf(raw).String(),
		}
	}

	path.Push("properties")
	converted, err := c.convertProperties(props, path)
	if err != nil {
		return err
	}
	path.Pop()

	node["properties"] = converted
	if err := cleanRequired(node, converted, path); err != nil {
		return err
	}
	if len(converted) == 0 {
		delete(node, "properties")
	}
	return nil
}

// cleanRequired drops names from node's "required" list that are not keys
// of props, removing the list when nothing is left.
func cleanRequired(node, props Node, path *pathutil.PathBuilder) error {
	raw, ok := node["required"]
	if !ok {
		return nil
	}

	var names []string
	switch req := raw.(type) {
	case []string:
		names = req
	case []any:
		names = make([]string, 0, len(req))
		for _, v := range req {
			s, ok := v.(string)
			if !ok {
				return &oaserrors.ShapeError{
					Path:     path.String(),
					Key:      "required",
					Expected: "array of strings",
					Actual:   "array containing " + KindOf(v).String(),
				}
			}
			names = append(names, s)
		}
	default:
		return &oaserrors.ShapeError{
			Path:     path.String(),
			Key:      "required",
			Expected: "array of strings",
			Actual:   KindOf(raw).String(),
		}
	}

	kept := make([]any, 0, len(names))
	for _, name := range names {
		if _, ok := props[name]; ok {
			kept = append(kept, name)
		}
	}
	if len(kept) == 0 {
		delete(node, "required")
		return nil
	}
	node["required"] = kept
	return nil
}
