package hir

import "fmt"

// Span is a [Start,End) byte range in the source file a node came from.
// The front end guarantees that spans of distinct expression nodes are
// either disjoint or strictly nested; synthesized nodes carry the zero Span.
type Span struct {
	Start int
	End   int
}

// IsZero reports whether the span belongs to a synthesized node.
func (s Span) IsZero() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}
