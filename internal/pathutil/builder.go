package pathutil

import (
	"strconv"
	"strings"
)

// PathBuilder provides efficient incremental construction of JSON Pointer
// fragments such as "#/properties/name/items".
// Uses push/pop semantics to avoid allocations during traversal.
// The full string is only materialized when String() is called.
type PathBuilder struct {
	segments []string
	length   int // Pre-calculated length for String() allocation
}

// Push adds a key segment to the path. The segment is escaped per RFC 6901,
// so "~" becomes "~0" and "/" becomes "~1".
func (p *PathBuilder) Push(segment string) {
	seg := EscapePointer(segment)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1 // For slash separator
}

// PushIndex adds an array index segment: "/0", "/1", etc.
func (p *PathBuilder) PushIndex(i int) {
	seg := strconv.Itoa(i)
	p.segments = append(p.segments, seg)
	p.length += len(seg) + 1
}

// Pop removes the last segment.
func (p *PathBuilder) Pop() {
	if len(p.segments) == 0 {
		return
	}
	last := p.segments[len(p.segments)-1]
	p.segments = p.segments[:len(p.segments)-1]
	p.length -= len(last) + 1
}

// Reset clears the builder for reuse.
func (p *PathBuilder) Reset() {
	p.segments = p.segments[:0]
	p.length = 0
}

// Depth returns the number of segments currently on the path.
func (p *PathBuilder) Depth() int {
	return len(p.segments)
}

// String materializes the full path. The root is "#".
// Only call when the path is needed.
func (p *PathBuilder) String() string {
	var b strings.Builder
	b.Grow(p.length + 1)
	b.WriteByte('#')
	for _, seg := range p.segments {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

// EscapePointer escapes a single JSON Pointer reference token.
func EscapePointer(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
