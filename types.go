package maplecode

// ArgumentKind is the wire tag of one positional argument slot. Modeled as a
// sum type via a small uint8-based enum, following glint's WireType pattern
// (const block + String method) rather than an interface hierarchy, since
// the kind set is closed and fixed by the wire format.
type ArgumentKind uint8

const (
	KindU8 ArgumentKind = iota
	KindU16
	KindU32
	KindS8
	KindS16
	KindS32
	KindF32
	KindStr
	KindDat
	KindRef
	KindRefField

	numArgumentKinds = KindRefField + 1
)

func (k ArgumentKind) String() string {
	switch k {
	case KindU8:
		return "U8"
	case KindU16:
		return "U16"
	case KindU32:
		return "U32"
	case KindS8:
		return "S8"
	case KindS16:
		return "S16"
	case KindS32:
		return "S32"
	case KindF32:
		return "F32"
	case KindStr:
		return "STR"
	case KindDat:
		return "DAT"
	case KindRef:
		return "REF"
	case KindRefField:
		return "REFFIELD"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether k is one of the 11 wire-defined argument kinds.
func (k ArgumentKind) Valid() bool {
	return k < numArgumentKinds
}

// argWidths computes the on-wire byte width of every argument kind for a
// document with the given widths, per spec.md §3's NodeArgumentKind table.
// Resolved once at load time and cached on the Document, per spec.md §9's
// "resolve argWidth[] once at load time" note.
func argWidths(strW, nodeW, dataW width) [numArgumentKinds]int {
	return [numArgumentKinds]int{
		KindU8:       1,
		KindU16:      2,
		KindU32:      4,
		KindS8:       1,
		KindS16:      2,
		KindS32:      4,
		KindF32:      4,
		KindStr:      int(strW),
		KindDat:      2 * int(dataW),
		KindRef:      int(nodeW),
		KindRefField: int(nodeW) + int(strW),
	}
}

// NodeType describes one declared node type: its name, the number of
// generic string parameters it carries, the ordered kinds of its positional
// arguments, whether it has a children block, and the precomputed fixed
// on-wire length of any node of this type excluding its children block.
type NodeType struct {
	Name         string
	GenericCount int
	Args         []ArgumentKind
	HasChildren  bool
	TotalLen     int
}

// totalLen computes typeWidth + genericCount*strWidth + sum(argWidth[kind]),
// per spec.md §3/§4.2.
func totalLen(typeW, strW width, genericCount int, args []ArgumentKind, aw [numArgumentKinds]int) int {
	n := int(typeW) + genericCount*int(strW)
	for _, a := range args {
		n += aw[a]
	}
	return n
}
