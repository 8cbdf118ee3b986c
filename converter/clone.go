package converter

import (
	"fmt"

	"github.com/mitchellh/copystructure"

	"github.com/erraggy/oas2jsonschema/oaserrors"
)

// cloneNode returns a deep copy of n. Shared subtrees in n become distinct
// copies in the result.
func cloneNode(n Node) (Node, error) {
	if n == nil {
		return nil, nil
	}
	copied, err := copystructure.Copy(n)
	if err != nil {
		return nil, &oaserrors.ConversionError{Path: "#", Message: "cloning schema", Cause: err}
	}
	out, ok := copied.(map[string]any)
	if !ok {
		return nil, &oaserrors.ConversionError{
			Path:    "#",
			Message: fmt.Sprintf("cloning schema produced %T", copied),
		}
	}
	return out, nil
}
