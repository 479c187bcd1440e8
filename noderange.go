package maplecode

// NodeRange is a half-open interval [begin,end) of offsets within a
// document's node table, iterable as a sequence of sibling nodes. It is
// returned by Document.AllNodes and Node.Children.
type NodeRange struct {
	doc        *Document
	begin, end int
}

// Empty reports whether the range contains no nodes.
func (r NodeRange) Empty() bool {
	return r.begin >= r.end
}

// Nodes materializes the range as a slice, in sibling order. Mirrors
// glint's "decode to a materialized slice" accessors (e.g. ReadStringSlice).
func (r NodeRange) Nodes() ([]Node, error) {
	var result []Node
	it := r.Iter()
	for {
		n, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, n)
	}
}

// Iter returns a forward iterator over the range that does not allocate a
// backing slice, mirroring the incremental-consumption style of glint's
// Reader/Walker rather than eagerly materializing.
func (r NodeRange) Iter() *NodeIterator {
	return &NodeIterator{doc: r.doc, offset: r.begin, end: r.end}
}

// NodeIterator walks a NodeRange one sibling at a time.
type NodeIterator struct {
	doc         *Document
	offset, end int
}

// Next returns the next node in the range. ok is false once the range is
// exhausted, at which point n and err are both zero.
func (it *NodeIterator) Next() (n Node, ok bool, err error) {
	if it.offset >= it.end {
		return Node{}, false, nil
	}

	n = Node{doc: it.doc, offset: it.offset}
	next, err := nextSiblingOffset(it.doc, it.offset)
	if err != nil {
		return Node{}, false, err
	}
	it.offset = next
	return n, true, nil
}
