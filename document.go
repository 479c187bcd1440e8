package maplecode

// Document is an immutable, fully-decoded MapleCode payload: the owned body
// bytes, the four table widths and ranges, the resolved string table, and the
// resolved type dictionary. It is constructed only by ReadFromData or
// ReadFromDataWithTypes and is never mutated afterwards.
//
// A *Document is safe for concurrent use by multiple goroutines: since
// construction fully resolves every table before returning and nothing
// mutates it afterward, any number of Node and Argument views may be created
// and read concurrently, mirroring glint's documented guarantee that a
// decoderImpl is "safe for concurrent use" once built.
type Document struct {
	body []byte // the payload body, header stripped; node offsets are relative to node.start within this slice

	widths tableWidths
	str    tableRange
	typ    tableRange
	node   tableRange
	data   tableRange

	strList  []string
	typeList []NodeType
	argWidth [numArgumentKinds]int
}

// ReadFromData decodes a MapleCode payload that carries its own inline type
// dictionary. It fails with MissingTypeList if the payload declares nodes
// but no inline type dictionary.
func ReadFromData(raw []byte) (*Document, error) {
	return readFromData(nil, raw)
}

// ReadFromDataWithTypes decodes a MapleCode payload that borrows its type
// dictionary from types, an already-decoded Document. It fails with
// DuplicateTypeList if the payload also declares an inline type dictionary.
//
// types and the resulting Document must use identical table widths: this is
// a documented precondition (spec.md §9's open question, resolved in
// SPEC_FULL.md §4.4/§9.2) and is re-verified here rather than silently
// trusted, failing with ErrWidthMismatch rather than producing a Document
// whose precomputed NodeType.TotalLen values are wrong for its own widths.
func ReadFromDataWithTypes(types *Document, raw []byte) (*Document, error) {
	if types == nil {
		return readFromData(nil, raw)
	}
	return readFromData(types, raw)
}

func readFromData(types *Document, raw []byte) (*Document, error) {
	lay, err := decodeLayout(raw)
	if err != nil {
		return nil, err
	}
	body := raw[lay.headerSize:]

	haveInline := lay.typ.length() > 0
	if types != nil && haveInline {
		return nil, newErr(DuplicateTypeList, lay.typ.start, "external type list supplied alongside inline type list")
	}
	if types == nil && !haveInline && lay.node.length() > 0 {
		return nil, newErr(MissingTypeList, lay.node.start, "nodes declared but no type dictionary available")
	}
	if types != nil && types.widths != lay.widths {
		return nil, newErr(WidthMismatch, 0, "inherited type dictionary's widths %+v differ from this document's %+v", types.widths, lay.widths)
	}

	strList, err := decodeStringTable(body, lay.str, lay.data, lay.widths.data)
	if err != nil {
		return nil, err
	}

	aw := argWidths(lay.widths.str, lay.widths.node, lay.widths.data)

	var typeList []NodeType
	if types != nil {
		typeList = cloneTypeDict(types.typeList)
	} else {
		typeList, err = decodeTypeDict(body, lay.typ, lay.data, lay.widths, strList, aw)
		if err != nil {
			return nil, err
		}
	}

	bodyCopy := make([]byte, len(body))
	copy(bodyCopy, body)

	return &Document{
		body:     bodyCopy,
		widths:   lay.widths,
		str:      lay.str,
		typ:      lay.typ,
		node:     lay.node,
		data:     lay.data,
		strList:  strList,
		typeList: typeList,
		argWidth: aw,
	}, nil
}

// AllNodes returns the top-level sibling sequence, covering [0, length of the
// node table) with no gaps or overlaps.
func (d *Document) AllNodes() NodeRange {
	return NodeRange{doc: d, begin: 0, end: d.node.length()}
}

// Strings returns the document's decoded string table, in encounter order.
func (d *Document) Strings() []string {
	return d.strList
}

// Types returns the document's resolved type dictionary, in encounter order
// (or in the order copied from an inherited dictionary).
func (d *Document) Types() []NodeType {
	return d.typeList
}

// TypeByName looks up a NodeType by name. This is a convenience index over
// data spec.md already requires decoding (SPEC_FULL.md §6.4) — it adds no new
// wire semantics.
func (d *Document) TypeByName(name string) (NodeType, bool) {
	for _, t := range d.typeList {
		if t.Name == name {
			return t, true
		}
	}
	return NodeType{}, false
}

func (d *Document) nodeAbs(offset int) int {
	return d.node.start + offset
}
