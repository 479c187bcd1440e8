// Package mcbuild is test-only support for constructing MapleCode payload
// fixtures. spec.md treats the writer/encoder as an external collaborator
// outside the CORE decoder's scope, so this package is never imported by
// non-test code; it exists purely so the decoder's own tests (and the CLI's)
// have something other than hand-typed hex literals to build larger fixtures
// from. It mirrors glint's Buffer/DocumentBuilder append-as-you-go idiom
// (buffer.go, documentbuilder.go), adapted to MapleCode's fixed-width wire
// format instead of glint's varint schema+body format.
package mcbuild

import (
	"fmt"
	"math"

	"github.com/mcreader/maplecode"
)

// Width is a table width choice: 1, 2, or 4 bytes.
type Width = uint8

// TypeDef describes one node type to be written into the inline TYPE table.
type TypeDef struct {
	Name         string
	GenericCount int
	Args         []maplecode.ArgumentKind
	HasChildren  bool
}

// Arg is one positional argument value to encode onto a node. Use the
// constructor functions below (U8, Str, Ref, ...) rather than building one
// directly.
type Arg struct {
	kind    maplecode.ArgumentKind
	uval    uint32
	sval    int32
	fval    float32
	strval  string
	data    []byte
	ref     *Node
	refName string
}

func U8(v uint8) Arg   { return Arg{kind: maplecode.KindU8, uval: uint32(v)} }
func U16(v uint16) Arg { return Arg{kind: maplecode.KindU16, uval: uint32(v)} }
func U32(v uint32) Arg { return Arg{kind: maplecode.KindU32, uval: v} }
func S8(v int8) Arg    { return Arg{kind: maplecode.KindS8, sval: int32(v)} }
func S16(v int16) Arg  { return Arg{kind: maplecode.KindS16, sval: int32(v)} }
func S32(v int32) Arg  { return Arg{kind: maplecode.KindS32, sval: v} }
func F32(v float32) Arg { return Arg{kind: maplecode.KindF32, fval: v} }
func Str(v string) Arg { return Arg{kind: maplecode.KindStr, strval: v} }
func Dat(v []byte) Arg { return Arg{kind: maplecode.KindDat, data: v} }
func Ref(n *Node) Arg  { return Arg{kind: maplecode.KindRef, ref: n} }
func Field(n *Node, field string) Arg {
	return Arg{kind: maplecode.KindRefField, ref: n, refName: field}
}

// Node describes one node to be written into the NODE table. Children form
// a tree; REF/REFFIELD arguments point at other *Node values by identity,
// resolved to byte offsets during Build.
type Node struct {
	Type     string
	Generics []string
	Args     []Arg
	Children []*Node

	offset int // resolved during layout
}

// Builder accumulates a type dictionary and a forest of nodes, then encodes
// them into a complete MapleCode payload.
type Builder struct {
	StrWidth, TypeWidth, NodeWidth, DataWidth Width

	Types []TypeDef
	Roots []*Node
}

// argWidth mirrors maplecode's own argWidths table (types.go), recomputed
// here since that table is keyed on the package's unexported width type.
func (w Builder) argWidth(k maplecode.ArgumentKind) int {
	switch k {
	case maplecode.KindU8, maplecode.KindS8:
		return 1
	case maplecode.KindU16, maplecode.KindS16:
		return 2
	case maplecode.KindU32, maplecode.KindS32, maplecode.KindF32:
		return 4
	case maplecode.KindStr:
		return int(w.StrWidth)
	case maplecode.KindDat:
		return 2 * int(w.DataWidth)
	case maplecode.KindRef:
		return int(w.NodeWidth)
	case maplecode.KindRefField:
		return int(w.NodeWidth) + int(w.StrWidth)
	default:
		panic(fmt.Sprintf("mcbuild: unknown argument kind %v", k))
	}
}

func (w Builder) typeTotalLen(t TypeDef) int {
	n := int(w.TypeWidth) + t.GenericCount*int(w.StrWidth)
	for _, a := range t.Args {
		n += w.argWidth(a)
	}
	return n
}

func (w Builder) typeByName(name string) (int, TypeDef, error) {
	for i, t := range w.Types {
		if t.Name == name {
			return i, t, nil
		}
	}
	return 0, TypeDef{}, fmt.Errorf("mcbuild: unknown type %q", name)
}

// stringTable dedupes and orders every string literal the payload needs:
// type names, generic arguments, STR arguments, and REFFIELD field names.
type stringTable struct {
	order []string
	index map[string]int
}

func newStringTable() *stringTable {
	return &stringTable{index: map[string]int{}}
}

func (s *stringTable) intern(v string) int {
	if i, ok := s.index[v]; ok {
		return i
	}
	i := len(s.order)
	s.order = append(s.order, v)
	s.index[v] = i
	return i
}

func appendWidth(buf []byte, v uint32, w Width) []byte {
	for i := Width(0); i < w; i++ {
		buf = append(buf, byte(v>>(8*i)))
	}
	return buf
}

// nodeSize computes the encoded byte size of n (prefix plus, if the type has
// children, the nodeWidth length field and the encoded size of every child).
func (w Builder) nodeSize(n *Node) (int, error) {
	_, t, err := w.typeByName(n.Type)
	if err != nil {
		return 0, err
	}
	size := w.typeTotalLen(t)
	if t.HasChildren {
		size += int(w.NodeWidth)
		for _, c := range n.Children {
			cs, err := w.nodeSize(c)
			if err != nil {
				return 0, err
			}
			size += cs
		}
	}
	return size, nil
}

// layout assigns each node its offset within the node table (pre-order,
// matching the wire format's sibling-then-descend layout).
func (w Builder) layout(nodes []*Node, offset int) (int, error) {
	for _, n := range nodes {
		n.offset = offset
		size, err := w.nodeSize(n)
		if err != nil {
			return 0, err
		}
		_, t, _ := w.typeByName(n.Type)
		childStart := offset + w.typeTotalLen(t) + int(w.NodeWidth)
		if t.HasChildren {
			if _, err := w.layout(n.Children, childStart); err != nil {
				return 0, err
			}
		}
		offset += size
	}
	return offset, nil
}

// Build encodes the builder's types and node forest into a complete
// MapleCode payload with an inline type dictionary.
func (w Builder) Build() ([]byte, error) {
	strs := newStringTable()
	for _, t := range w.Types {
		strs.intern(t.Name)
	}
	var walkStrings func(n *Node) error
	walkStrings = func(n *Node) error {
		for _, g := range n.Generics {
			strs.intern(g)
		}
		for _, a := range n.Args {
			switch a.kind {
			case maplecode.KindStr:
				strs.intern(a.strval)
			case maplecode.KindRefField:
				strs.intern(a.refName)
			}
		}
		for _, c := range n.Children {
			if err := walkStrings(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, n := range w.Roots {
		if err := walkStrings(n); err != nil {
			return nil, err
		}
	}

	if _, err := w.layout(w.Roots, 0); err != nil {
		return nil, err
	}

	// data region: per-type argument-kind lists, then string bodies.
	var data []byte
	typeArgOffset := make([]int, len(w.Types))
	for i, t := range w.Types {
		typeArgOffset[i] = len(data)
		data = append(data, byte(len(t.Args)))
		for _, a := range t.Args {
			data = append(data, byte(a))
		}
	}
	strDataOffset := make([]int, len(strs.order))
	for i, s := range strs.order {
		strDataOffset[i] = len(data)
		data = append(data, []byte(s)...)
		data = append(data, 0)
	}

	var strTable []byte
	for _, off := range strDataOffset {
		strTable = appendWidth(strTable, uint32(off), w.DataWidth)
	}

	var typeTable []byte
	for i, t := range w.Types {
		nameIdx := strs.index[t.Name]
		typeTable = appendWidth(typeTable, uint32(nameIdx), w.StrWidth)
		typeTable = appendWidth(typeTable, uint32(typeArgOffset[i]), w.DataWidth)
		typeTable = append(typeTable, byte(t.GenericCount))
		if t.HasChildren {
			typeTable = append(typeTable, 1)
		} else {
			typeTable = append(typeTable, 0)
		}
	}

	var nodeTable []byte
	var encodeNode func(n *Node) error
	encodeNode = func(n *Node) error {
		typeIdx, t, err := w.typeByName(n.Type)
		if err != nil {
			return err
		}
		if len(n.Generics) != t.GenericCount {
			return fmt.Errorf("mcbuild: node of type %q needs %d generics, got %d", n.Type, t.GenericCount, len(n.Generics))
		}
		if len(n.Args) != len(t.Args) {
			return fmt.Errorf("mcbuild: node of type %q needs %d args, got %d", n.Type, len(t.Args), len(n.Args))
		}

		nodeTable = appendWidth(nodeTable, uint32(typeIdx), w.TypeWidth)
		for _, g := range n.Generics {
			nodeTable = appendWidth(nodeTable, uint32(strs.index[g]), w.StrWidth)
		}
		for i, a := range n.Args {
			if a.kind != t.Args[i] {
				return fmt.Errorf("mcbuild: node of type %q arg %d kind mismatch", n.Type, i)
			}
			switch a.kind {
			case maplecode.KindU8, maplecode.KindU16, maplecode.KindU32:
				nodeTable = appendWidth(nodeTable, a.uval, Width(w.argWidth(a.kind)))
			case maplecode.KindS8, maplecode.KindS16, maplecode.KindS32:
				nodeTable = appendWidth(nodeTable, uint32(a.sval), Width(w.argWidth(a.kind)))
			case maplecode.KindF32:
				nodeTable = appendWidth(nodeTable, float32Bits(a.fval), 4)
			case maplecode.KindStr:
				nodeTable = appendWidth(nodeTable, uint32(strs.index[a.strval]), w.StrWidth)
			case maplecode.KindDat:
				begin := len(data)
				data = append(data, a.data...)
				end := len(data)
				nodeTable = appendWidth(nodeTable, uint32(begin), w.DataWidth)
				nodeTable = appendWidth(nodeTable, uint32(end), w.DataWidth)
			case maplecode.KindRef:
				nodeTable = appendWidth(nodeTable, uint32(a.ref.offset), w.NodeWidth)
			case maplecode.KindRefField:
				nodeTable = appendWidth(nodeTable, uint32(a.ref.offset), w.NodeWidth)
				nodeTable = appendWidth(nodeTable, uint32(strs.index[a.refName]), w.StrWidth)
			}
		}

		if t.HasChildren {
			lenPos := len(nodeTable)
			nodeTable = appendWidth(nodeTable, 0, w.NodeWidth) // placeholder, patched below
			before := len(nodeTable)
			for _, c := range n.Children {
				if err := encodeNode(c); err != nil {
					return err
				}
			}
			childrenLen := len(nodeTable) - before
			patched := appendWidth(nil, uint32(childrenLen), w.NodeWidth)
			copy(nodeTable[lenPos:lenPos+int(w.NodeWidth)], patched)
		}
		return nil
	}
	for _, n := range w.Roots {
		if err := encodeNode(n); err != nil {
			return nil, err
		}
	}

	out := []byte{packSizeMode(w.StrWidth, w.TypeWidth, w.NodeWidth, w.DataWidth)}
	out = appendWidth(out, uint32(len(strTable)), w.StrWidth)
	out = appendWidth(out, uint32(len(typeTable)), w.TypeWidth)
	out = appendWidth(out, uint32(len(nodeTable)), w.NodeWidth)
	out = appendWidth(out, uint32(len(data)), w.DataWidth)
	out = append(out, strTable...)
	out = append(out, typeTable...)
	out = append(out, nodeTable...)
	out = append(out, data...)
	return out, nil
}

func widthCode(w Width) byte {
	switch w {
	case 0:
		return 0
	case 1:
		return 1
	case 2:
		return 2
	case 4:
		return 3
	default:
		panic(fmt.Sprintf("mcbuild: invalid width %d", w))
	}
}

func packSizeMode(str, typ, node, data Width) byte {
	return widthCode(str) | widthCode(typ)<<2 | widthCode(node)<<4 | widthCode(data)<<6
}

func float32Bits(f float32) uint32 {
	return math.Float32bits(f)
}
