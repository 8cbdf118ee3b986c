package pathutil

// RefPrefixSchemas is the reference prefix for reusable component schemas.
const RefPrefixSchemas = "#/components/schemas/"

// SchemaRef builds "#/components/schemas/{name}".
func SchemaRef(name string) string {
	return RefPrefixSchemas + EscapePointer(name)
}
