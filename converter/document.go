package converter

import (
	"github.com/erraggy/oas2jsonschema/internal/pathutil"
	"github.com/erraggy/oas2jsonschema/oaserrors"
)

// ConvertDocument converts every schema in an OpenAPI 3.0 document: each
// entry of components.schemas, and every object found under a "schema" key
// below paths. The result is marked with the draft-04 "$schema" URI.
//
// No other part of the document is checked or changed. Unless CloneSchema is
// disabled, doc is not modified.
func (c *Converter) ConvertDocument(doc Node) (Node, error) {
	prepared, err := c.prepare(doc)
	if err != nil {
		return nil, err
	}

	path := pathutil.Get()
	defer pathutil.Put(path)

	schemas, err := componentSchemas(prepared)
	if err != nil {
		return nil, err
	}
	if schemas != nil {
		path.Push("components")
		path.Push("schemas")
		if err := c.convertNamedSchemas(schemas, path, false); err != nil {
			return nil, err
		}
		path.Pop()
		path.Pop()
	}

	if paths, ok := prepared["paths"].(map[string]any); ok {
		path.Push("paths")
		if err := c.processTree(paths, path); err != nil {
			return nil, err
		}
		path.Pop()
	}

	prepared["$schema"] = DraftSchemaURI
	c.log.Debug("converted document", "schemas", len(schemas))
	return prepared, nil
}

// ConvertDocument is a convenience function that builds a Converter from
// opts and converts a whole document.
//
// Example:
//
//	result, _ := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	doc, err := converter.ConvertDocument(result.Data, converter.WithRemoveReadOnly(true))
func ConvertDocument(doc Node, opts ...Option) (Node, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.ConvertDocument(doc)
}

// ProcessTree walks tree in place, converting every object stored under a
// key named "schema" and descending into all other objects and lists.
// The tree is not cloned.
func (c *Converter) ProcessTree(tree Node) (Node, error) {
	if tree == nil {
		return nil, nil
	}
	path := pathutil.Get()
	defer pathutil.Put(path)
	if err := c.processTree(tree, path); err != nil {
		return nil, err
	}
	return tree, nil
}

// ProcessTree is a convenience function that builds a Converter from opts
// and walks tree in place. See Converter.ProcessTree.
func ProcessTree(tree Node, opts ...Option) (Node, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.ProcessTree(tree)
}

func (c *Converter) processTree(tree Node, path *pathutil.PathBuilder) error {
	for _, key := range sortedKeys(tree) {
		value := tree[key]
		switch KindOf(value) {
		case KindObject:
			path.Push(key)
			var err error
			if key == "schema" {
				_, err = c.convert(value.(map[string]any), path)
			} else {
				err = c.processTree(value.(map[string]any), path)
			}
			if err != nil {
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
				if err := c.processTree(child, path); err != nil {
					return err
				}
				path.Pop()
			}
			path.Pop()
		case KindNull, KindBool, KindNumber, KindString, KindInvalid:
		}
	}
	return nil
}

// componentSchemas returns doc's components.schemas map, or nil when the
// document has none.
func componentSchemas(doc Node) (Node, error) {
	components, ok := doc["components"].(map[string]any)
	if !ok {
		return nil, nil
	}
	raw, ok := components["schemas"]
	if !ok {
		return nil, nil
	}
	schemas, ok := raw.(map[string]any)
	if !ok {
		return nil, &oaserrors.ShapeError{
			Path:     "#/components",
			Key:      "schemas",
			Expected: "object",
			Actual:   KindOf(raw).String(),
		}
	}
	return schemas, nil
}

// convertNamedSchemas converts each entry of schemas in place. When
// markDialect is set each converted schema also gets "$schema".
func (c *Converter) convertNamedSchemas(schemas Node, path *pathutil.PathBuilder, markDialect bool) error {
	for _, name := range sortedKeys(schemas) {
		schema, ok := schemas[name].(map[string]any)
		if !ok {
			return &oaserrors.ShapeError{
				Path:     path.String(),
				Key:      name,
				Expected: "object",
				Actual:   KindOf(schemas[name]).String(),
			}
		}
		path.Push(name)
		if _, err := c.convert(schema, path); err != nil {
			return err
		}
		path.Pop()
		if markDialect {
			schema["$schema"] = DraftSchemaURI
		}
	}
	return nil
}
