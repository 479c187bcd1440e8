package maplecode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcreader/maplecode"
)

// s1Payload is spec scenario S1: two nodes of type "n", each with a REF and
// a REFFIELD argument. node0's REF is a self-reference (offset 0) and its
// REFFIELD points at node1's field "x"; node1's REF points back at node0
// and its REFFIELD is a self-reference, field "y".
var s1Payload = []byte{
	0x55, 0x03, 0x04, 0x08, 0x09,
	0x00, 0x05, 0x07,
	0x00, 0x02, 0x00, 0x00,
	0x00, 0x00, 0x04, 0x01, 0x00, 0x00, 0x04, 0x02,
	0x6E, 0x00, 0x02, 0x09, 0x0A, 0x78, 0x00, 0x79, 0x00,
}

func TestReadFromData_S1(t *testing.T) {
	doc, err := maplecode.ReadFromData(s1Payload)
	require.NoError(t, err)

	require.Equal(t, []string{"n", "x", "y"}, doc.Strings())

	nodes, err := doc.AllNodes().Nodes()
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	for _, n := range nodes {
		typ, err := n.Type()
		require.NoError(t, err)
		assert.Equal(t, "n", typ.Name)
		assert.False(t, typ.HasChildren)
	}

	node0, node1 := nodes[0], nodes[1]

	args0, err := node0.Arguments()
	require.NoError(t, err)
	require.Len(t, args0, 2)
	assert.Equal(t, maplecode.KindRef, args0[0].Kind())
	assert.Equal(t, maplecode.KindRefField, args0[1].Kind())

	refNode, err := args0[0].GetNode()
	require.NoError(t, err)
	assert.True(t, refNode.Equal(node0))

	fieldNode, fieldName, err := args0[1].GetField()
	require.NoError(t, err)
	assert.True(t, fieldNode.Equal(node1))
	assert.Equal(t, "x", fieldName)

	args1, err := node1.Arguments()
	require.NoError(t, err)
	refNode1, err := args1[0].GetNode()
	require.NoError(t, err)
	assert.True(t, refNode1.Equal(node0))

	fieldNode1, fieldName1, err := args1[1].GetField()
	require.NoError(t, err)
	assert.True(t, fieldNode1.Equal(node1))
	assert.Equal(t, "y", fieldName1)
}

func TestReadFromData_AllNodesCoversWholeTable(t *testing.T) {
	doc, err := maplecode.ReadFromData(s1Payload)
	require.NoError(t, err)

	r := doc.AllNodes()
	nodes, err := r.Nodes()
	require.NoError(t, err)

	it := r.Iter()
	var offsets []int
	for {
		n, ok, err := it.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		offsets = append(offsets, n.Offset())
	}
	require.Len(t, offsets, len(nodes))
	for i, n := range nodes {
		assert.Equal(t, offsets[i], n.Offset())
	}

	// S1 declares an 8-byte node table holding two childless 4-byte nodes,
	// so the sibling sequence must start at 0 and step to 4, ending at 8.
	assert.Equal(t, []int{0, 4}, offsets)
	for _, n := range nodes {
		typ, err := n.Type()
		require.NoError(t, err)
		assert.Equal(t, 4, typ.TotalLen)
	}
}

func TestReadFromData_Idempotent(t *testing.T) {
	doc1, err := maplecode.ReadFromData(s1Payload)
	require.NoError(t, err)
	doc2, err := maplecode.ReadFromData(s1Payload)
	require.NoError(t, err)

	assert.Equal(t, doc1.Strings(), doc2.Strings())
	assert.Equal(t, doc1.Types(), doc2.Types())

	nodes1, err := doc1.AllNodes().Nodes()
	require.NoError(t, err)
	nodes2, err := doc2.AllNodes().Nodes()
	require.NoError(t, err)
	require.Len(t, nodes2, len(nodes1))
	for i := range nodes1 {
		assert.Equal(t, nodes1[i].Offset(), nodes2[i].Offset())
	}
}

func TestReadFromData_Truncation(t *testing.T) {
	for k := 0; k < len(s1Payload); k++ {
		_, err := maplecode.ReadFromData(s1Payload[:k])
		assert.Error(t, err, "truncating to %d bytes should fail", k)
	}
}

func TestReadFromData_MissingTypeList(t *testing.T) {
	// sizeMode: all widths 1 (code 1 => 1,1,1,1 packed as 0b01_01_01_01 = 0x55).
	// lengths: str=0, type=0, node=1, data=0 -- nodes declared, no type list.
	payload := []byte{0x55, 0x00, 0x00, 0x01, 0x00, 0x00}
	_, err := maplecode.ReadFromData(payload)
	require.Error(t, err)
	assert.ErrorIs(t, err, maplecode.ErrMissingTypeList)
}

func TestReadFromData_DuplicateTypeList(t *testing.T) {
	types, err := maplecode.ReadFromData(s1Payload)
	require.NoError(t, err)

	_, err = maplecode.ReadFromDataWithTypes(types, s1Payload)
	require.Error(t, err)
	assert.ErrorIs(t, err, maplecode.ErrDuplicateTypeList)
}

func TestReadFromDataWithTypes_WidthMismatch(t *testing.T) {
	types, err := maplecode.ReadFromData(s1Payload)
	require.NoError(t, err)

	// A payload with no inline type list (Ltype=0) but different widths
	// (sizeMode 0xFF => all widths 4) than the donor document (all widths 1).
	payload := []byte{
		0xFF,
		0x00, 0x00, 0x00, 0x00, // Lstr
		0x00, 0x00, 0x00, 0x00, // Ltype
		0x00, 0x00, 0x00, 0x00, // Lnode
		0x00, 0x00, 0x00, 0x00, // Ldata
	}
	_, err = maplecode.ReadFromDataWithTypes(types, payload)
	require.Error(t, err)
	assert.ErrorIs(t, err, maplecode.ErrWidthMismatch)
}

func TestDocument_TypeByName(t *testing.T) {
	doc, err := maplecode.ReadFromData(s1Payload)
	require.NoError(t, err)

	typ, ok := doc.TypeByName("n")
	require.True(t, ok)
	assert.Equal(t, 2, len(typ.Args))

	_, ok = doc.TypeByName("missing")
	assert.False(t, ok)
}
