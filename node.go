package maplecode

// Node is a non-owning cursor into a Document's node table: a pair
// (document, offset) where offset is measured from the start of the node
// table. Node views are cheap to copy and comparable by value; they mirror
// glint's Reader in spirit (a lightweight cursor type) but are immutable
// once constructed, since MapleCode documents never mutate.
//
// The zero value Node{} is the null node: a null node has a nil document,
// resolving spec.md §9's IsNull naming ambiguity in the direction the method
// name implies (IsNull true iff there is no document).
type Node struct {
	doc    *Document
	offset int
}

// IsNull reports whether n is the null node (no parent, or no document at all).
func (n Node) IsNull() bool {
	return n.doc == nil
}

// Equal reports whether n and o refer to the same node of the same document.
func (n Node) Equal(o Node) bool {
	return n.doc == o.doc && n.offset == o.offset
}

// Document returns the Document this node belongs to, or nil for the null node.
func (n Node) Document() *Document {
	return n.doc
}

// Offset returns the node's offset within its document's node table.
func (n Node) Offset() int {
	return n.offset
}

var errNullNode = newErr(InvalidNodeData, -1, "operation on the null node")

// resolve validates n's declared extent and returns its type plus the three
// offsets needed by every other Node method: the end of its fixed prefix, the
// start of its children block (equal to prefixEnd when childless), and the
// offset of its next sibling (equal to childrenStart when childless). This
// single validated computation backs Type, GenericArguments, Arguments,
// Children, and the sibling-stepping used by NodeRange and FindParent.
func (n Node) resolve() (t NodeType, prefixEnd, childrenStart, next int, err error) {
	if n.doc == nil {
		return NodeType{}, 0, 0, 0, errNullNode
	}
	return resolveNode(n.doc, n.offset)
}

func resolveNode(doc *Document, offset int) (t NodeType, prefixEnd, childrenStart, next int, err error) {
	length := doc.node.length()
	if offset < 0 || offset+int(doc.widths.typ) > length {
		return NodeType{}, 0, 0, 0, newErr(InvalidNodeData, offset, "node offset exceeds node table")
	}

	typeIdx := int(readWidthAt(doc.body, doc.nodeAbs(offset), doc.widths.typ))
	if typeIdx >= len(doc.typeList) {
		return NodeType{}, 0, 0, 0, newErr(InvalidNodeType, offset, "type index %d >= type list size %d", typeIdx, len(doc.typeList))
	}
	t = doc.typeList[typeIdx]

	prefixEnd = offset + t.TotalLen
	if prefixEnd > length {
		return NodeType{}, 0, 0, 0, newErr(InvalidNodeData, offset, "node prefix extends past the node table")
	}

	if !t.HasChildren {
		return t, prefixEnd, prefixEnd, prefixEnd, nil
	}

	if prefixEnd+int(doc.widths.node) > length {
		return NodeType{}, 0, 0, 0, newErr(InvalidNodeData, offset, "children-length field extends past the node table")
	}
	childrenLen := int(readWidthAt(doc.body, doc.nodeAbs(prefixEnd), doc.widths.node))
	childrenStart = prefixEnd + int(doc.widths.node)
	next = childrenStart + childrenLen
	if next > length {
		return NodeType{}, 0, 0, 0, newErr(InvalidNodeData, offset, "children block extends past the node table")
	}

	return t, prefixEnd, childrenStart, next, nil
}

func nextSiblingOffset(doc *Document, offset int) (int, error) {
	_, _, _, next, err := resolveNode(doc, offset)
	return next, err
}

// Type returns the node's declared NodeType.
func (n Node) Type() (NodeType, error) {
	t, _, _, _, err := n.resolve()
	return t, err
}

// GenericArguments returns the node's generic string parameters, in
// declaration order.
func (n Node) GenericArguments() ([]string, error) {
	t, _, _, _, err := n.resolve()
	if err != nil {
		return nil, err
	}

	pos := n.offset + int(n.doc.widths.typ)
	result := make([]string, t.GenericCount)
	for i := 0; i < t.GenericCount; i++ {
		idx := int(readWidthAt(n.doc.body, n.doc.nodeAbs(pos), n.doc.widths.str))
		if idx >= len(n.doc.strList) {
			return nil, newErr(InvalidStringIndex, pos, "generic argument %d: string index %d >= string table size %d", i, idx, len(n.doc.strList))
		}
		result[i] = n.doc.strList[idx]
		pos += int(n.doc.widths.str)
	}
	return result, nil
}

// Arguments returns Argument views for the node's positional arguments, in
// declaration order. The views point at validated offsets but do not decode
// their contents; call the Argument's typed getter to do that.
func (n Node) Arguments() ([]Argument, error) {
	t, _, _, _, err := n.resolve()
	if err != nil {
		return nil, err
	}

	pos := n.offset + int(n.doc.widths.typ) + t.GenericCount*int(n.doc.widths.str)
	args := make([]Argument, len(t.Args))
	for i, kind := range t.Args {
		args[i] = Argument{doc: n.doc, kind: kind, offset: pos}
		pos += n.doc.argWidth[kind]
	}
	return args, nil
}

// Children returns the range of this node's child nodes. For childless types
// the range is empty.
func (n Node) Children() (NodeRange, error) {
	_, _, childrenStart, next, err := n.resolve()
	if err != nil {
		return NodeRange{}, err
	}
	return NodeRange{doc: n.doc, begin: childrenStart, end: next}, nil
}

// FindParent performs the recursive top-down scan of spec.md §4.5: the
// format stores no parent pointers, so locating n's parent means walking
// sibling spans from the top level down until one is found whose subtree
// contains n's offset. Returns the null node if n is itself top-level.
func (n Node) FindParent() (Node, error) {
	if n.doc == nil {
		return Node{}, errNullNode
	}
	if n.offset > n.doc.node.length() {
		return Node{}, newErr(InvalidNodeData, n.offset, "node offset exceeds node table")
	}

	begin := 0
	end, err := nextSiblingOffset(n.doc, 0)
	if err != nil {
		return Node{}, err
	}

	for {
		if n.offset == begin {
			return Node{}, nil
		}
		if begin < n.offset && n.offset < end {
			return findParentWithin(n.doc, n.offset, begin)
		}
		begin = end
		end, err = nextSiblingOffset(n.doc, begin)
		if err != nil {
			return Node{}, err
		}
	}
}

// findParentWithin searches for target inside the subtree rooted at start,
// which is known to contain it. Mirrors MapleCodeReader.cpp's
// FindParentInternal.
func findParentWithin(doc *Document, target, start int) (Node, error) {
	t, _, childrenStart, _, err := resolveNode(doc, start)
	if err != nil {
		return Node{}, err
	}
	if !t.HasChildren {
		return Node{}, newErr(InvalidHierarchy, start, "search descended into a childless node")
	}

	child := childrenStart
	if target < child {
		return Node{}, newErr(InvalidHierarchy, start, "target precedes the node's first child")
	}

	childEnd, err := nextSiblingOffset(doc, child)
	if err != nil {
		return Node{}, err
	}

	for {
		if child == target {
			return Node{doc: doc, offset: start}, nil
		}
		if child < target && target < childEnd {
			return findParentWithin(doc, target, child)
		}
		child = childEnd
		childEnd, err = nextSiblingOffset(doc, child)
		if err != nil {
			return Node{}, err
		}
	}
}
