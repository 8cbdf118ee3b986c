package converter

import (
	"github.com/erraggy/oas2jsonschema/internal/pathutil"
	"github.com/erraggy/oas2jsonschema/oaserrors"
)

// Convert converts node in place and returns it.
//
// Convert neither clones node nor adds "$schema"; use ConvertSchema for a
// top-level schema. On error the tree may be partially converted and should
// be discarded.
func (c *Converter) Convert(node Node) (Node, error) {
	if node == nil {
		return nil, &oaserrors.ConversionError{Path: "#", Message: "schema is nil"}
	}
	path := pathutil.Get()
	defer pathutil.Put(path)
	return c.convert(node, path)
}

// convert is the recursive step. Nested combinators and properties are
// finished before the node's own type rules run.
func (c *Converter) convert(node Node, path *pathutil.PathBuilder) (Node, error) {
	if err := c.convertStructures(node, path); err != nil {
		return nil, err
	}
	if err := c.convertNodeProperties(node, path); err != nil {
		return nil, err
	}
	if props, ok := node["properties"].(map[string]any); ok {
		c.applyExceptions(props)
	}
	if err := validateType(node["type"], path.String()); err != nil {
		return nil, err
	}
	if err := c.normalizeTypes(node, path); err != nil {
		return nil, err
	}
	if c.opts.SupportPatternProperties {
		if _, ok := node[PatternPropertiesExtension].(map[string]any); ok {
			TranslatePatternProperties(node)
			c.log.Debug("translated pattern properties", "path", path.String())
		}
	}
	for _, key := range c.notSupported {
		delete(node, key)
	}
	return node, nil
}

// convertStructures converts the node and list-of-node values of the
// structural keywords. Boolean values such as additionalProperties: false are
// left alone.
func (c *Converter) convertStructures(node Node, path *pathutil.PathBuilder) error {
	for _, key := range c.opts.StructuralKeys {
		value, ok := node[key]
		if !ok {
			continue
		}
		switch kind := KindOf(value); kind {
		case KindObject:
			path.Push(key)
			if _, err := c.convert(value.(map[string]any), path); err != nil {
				return err
			}
			path.Pop()
		case KindArray:
			path.Push(key)
			for i, item := range value.([]any) {
				child, ok := item.(map[string]any)
				if !ok {
					continue
				}
				path.PushIndex(i)
				if _, err := c.convert(child, path); err != nil {
					return err
				}
				path.Pop()
			}
			path.Pop()
		case KindBool:
		case KindNull, KindNumber, KindString, KindInvalid:
			return &oaserrors.ShapeError{
				Path:     path.String(),
				Key:      key,
				Expected: "object, array or boolean",
				Actual:   kind.String(),
			}
		}
	}
	return nil
}
