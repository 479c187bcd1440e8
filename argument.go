package maplecode

import "unsafe"

// Argument is a non-owning cursor pointing at the on-wire bytes of one
// positional argument slot: a triple (document, kind, offset), where offset
// is measured from the start of the node table (the same coordinate space
// as Node.offset). Like Node, it is cheap to copy and carries no decoded
// value until one of the typed getters below is called.
type Argument struct {
	doc    *Document
	kind   ArgumentKind
	offset int
}

// Kind returns the argument's declared wire kind.
func (a Argument) Kind() ArgumentKind {
	return a.kind
}

func (a Argument) abs() int {
	return a.doc.nodeAbs(a.offset)
}

func wrongKind(a Argument, want string) error {
	return newErr(WrongArgumentKind, a.offset, "expected %s argument, got %s", want, a.kind)
}

// GetUnsigned reads an unsigned integer argument. Requires kind ∈ {U8,U16,U32}.
func (a Argument) GetUnsigned() (uint32, error) {
	var w width
	switch a.kind {
	case KindU8:
		w = 1
	case KindU16:
		w = 2
	case KindU32:
		w = 4
	default:
		return 0, wrongKind(a, "unsigned")
	}
	return readWidthAt(a.doc.body, a.abs(), w), nil
}

// GetSigned reads a two's-complement signed integer argument, sign-extended
// to int32. Requires kind ∈ {S8,S16,S32}.
func (a Argument) GetSigned() (int32, error) {
	var w width
	switch a.kind {
	case KindS8:
		w = 1
	case KindS16:
		w = 2
	case KindS32:
		w = 4
	default:
		return 0, wrongKind(a, "signed")
	}
	raw := readWidthAt(a.doc.body, a.abs(), w)
	return signExtend(raw, w), nil
}

// GetFloat reads an IEEE-754 single-precision argument. Requires kind = F32.
func (a Argument) GetFloat() (float32, error) {
	if a.kind != KindF32 {
		return 0, wrongKind(a, "F32")
	}
	raw := readWidthAt(a.doc.body, a.abs(), 4)
	return float32FromBits(raw), nil
}

// GetString reads a string-table index argument and resolves it. Requires kind = STR.
func (a Argument) GetString() (string, error) {
	if a.kind != KindStr {
		return "", wrongKind(a, "STR")
	}
	idx := int(readWidthAt(a.doc.body, a.abs(), a.doc.widths.str))
	if idx >= len(a.doc.strList) {
		return "", newErr(InvalidStringIndex, a.offset, "string index %d >= string table size %d", idx, len(a.doc.strList))
	}
	return a.doc.strList[idx], nil
}

// GetNode reads a node-reference argument and validates that it points at a
// valid node in the same document. Requires kind = REF.
func (a Argument) GetNode() (Node, error) {
	if a.kind != KindRef {
		return Node{}, wrongKind(a, "REF")
	}
	offset := int(readWidthAt(a.doc.body, a.abs(), a.doc.widths.node))
	if _, _, _, _, err := resolveNode(a.doc, offset); err != nil {
		return Node{}, err
	}
	return Node{doc: a.doc, offset: offset}, nil
}

// GetField reads a (node-reference, field-name) pair argument, validating
// both sub-fields. Requires kind = REFFIELD.
func (a Argument) GetField() (Node, string, error) {
	if a.kind != KindRefField {
		return Node{}, "", wrongKind(a, "REFFIELD")
	}

	nodeOffset := int(readWidthAt(a.doc.body, a.abs(), a.doc.widths.node))
	if _, _, _, _, err := resolveNode(a.doc, nodeOffset); err != nil {
		return Node{}, "", err
	}

	fieldIdx := int(readWidthAt(a.doc.body, a.abs()+int(a.doc.widths.node), a.doc.widths.str))
	if fieldIdx >= len(a.doc.strList) {
		return Node{}, "", newErr(InvalidStringIndex, a.offset, "field name index %d >= string table size %d", fieldIdx, len(a.doc.strList))
	}

	return Node{doc: a.doc, offset: nodeOffset}, a.doc.strList[fieldIdx], nil
}

// GetData reads a data-blob argument as a byte slice sliced directly from the
// document's owned body (no copy, consistent with the zero-copy accessor
// style the corpus uses for raw byte regions). Requires kind = DAT.
func (a Argument) GetData() ([]byte, error) {
	if a.kind != KindDat {
		return nil, wrongKind(a, "DAT")
	}

	dw := a.doc.widths.data
	begin := int(readWidthAt(a.doc.body, a.abs(), dw))
	end := int(readWidthAt(a.doc.body, a.abs()+int(dw), dw))
	if begin < 0 || end < begin || end > a.doc.data.length() {
		return nil, newErr(InvalidNodeData, a.offset, "data blob range [%d,%d) out of bounds [0,%d)", begin, end, a.doc.data.length())
	}

	return a.doc.body[a.doc.data.start+begin : a.doc.data.start+end], nil
}

// GetDataAs reinterprets a DAT argument's blob as a slice of T, failing with
// DataAlignment if the blob length is not a multiple of sizeof(T). Grounded
// on glint's unsafe-reinterpret idiom (e.g. Reader.ReadFloat32) but
// parameterized with Go generics rather than per-type methods, matching
// glint's own Decoder[T]/Encoder[T] generic style.
func GetDataAs[T any](a Argument) ([]T, error) {
	data, err := a.GetData()
	if err != nil {
		return nil, err
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(data) == 0 {
		return nil, nil
	}
	if size == 0 || len(data)%size != 0 {
		return nil, newErr(DataAlignment, a.offset, "data length %d is not a multiple of element size %d", len(data), size)
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/size), nil
}
