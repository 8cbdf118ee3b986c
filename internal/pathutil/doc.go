// Package pathutil builds JSON Pointer locations for schema tree traversal
// and validates CLI output paths.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// paths incrementally without allocating intermediate strings. The converter
// pushes a segment on every recursive call but only materializes the path
// when it reports an error.
//
// # PathBuilder Usage
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("properties")
//	path.Push(propName)
//	// ... recurse ...
//	path.Pop()
//	path.Pop()
//
//	if hasError {
//	    return fmt.Errorf("error at %s", path.String()) // "#/properties/name"
//	}
//
// Array indices are supported via [PathBuilder.PushIndex]:
//
//	path.Push("allOf")
//	path.PushIndex(0)  // produces "#/allOf/0"
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths for security.
// It rejects symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err
//	}
package pathutil
