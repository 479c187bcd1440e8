package maplecode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcreader/maplecode"
	"github.com/mcreader/maplecode/internal/mcbuild"
)

func TestArgument_WrongKindFailsEveryOtherGetter(t *testing.T) {
	b := newBuilder()
	b.Types = []mcbuild.TypeDef{
		{Name: "allkinds", Args: []maplecode.ArgumentKind{maplecode.KindU32}},
	}
	b.Roots = []*mcbuild.Node{{Type: "allkinds", Args: []mcbuild.Arg{mcbuild.U32(42)}}}

	raw, err := b.Build()
	require.NoError(t, err)
	doc, err := maplecode.ReadFromData(raw)
	require.NoError(t, err)

	nodes, err := doc.AllNodes().Nodes()
	require.NoError(t, err)
	args, err := nodes[0].Arguments()
	require.NoError(t, err)
	require.Len(t, args, 1)
	arg := args[0]

	v, err := arg.GetUnsigned()
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)

	_, err = arg.GetSigned()
	assert.ErrorIs(t, err, maplecode.ErrWrongArgumentKind)
	_, err = arg.GetFloat()
	assert.ErrorIs(t, err, maplecode.ErrWrongArgumentKind)
	_, err = arg.GetString()
	assert.ErrorIs(t, err, maplecode.ErrWrongArgumentKind)
	_, err = arg.GetNode()
	assert.ErrorIs(t, err, maplecode.ErrWrongArgumentKind)
	_, _, err = arg.GetField()
	assert.ErrorIs(t, err, maplecode.ErrWrongArgumentKind)
	_, err = arg.GetData()
	assert.ErrorIs(t, err, maplecode.ErrWrongArgumentKind)
}

func TestArgument_GetDataAs(t *testing.T) {
	b := newBuilder()
	b.Types = []mcbuild.TypeDef{
		{Name: "blob", Args: []maplecode.ArgumentKind{maplecode.KindDat}},
	}
	b.Roots = []*mcbuild.Node{{Type: "blob", Args: []mcbuild.Arg{mcbuild.Dat([]byte{1, 0, 2, 0, 3, 0})}}}

	raw, err := b.Build()
	require.NoError(t, err)
	doc, err := maplecode.ReadFromData(raw)
	require.NoError(t, err)

	nodes, err := doc.AllNodes().Nodes()
	require.NoError(t, err)
	args, err := nodes[0].Arguments()
	require.NoError(t, err)

	u16s, err := maplecode.GetDataAs[uint16](args[0])
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2, 3}, u16s)
}

func TestArgument_GetDataAs_MisalignedFails(t *testing.T) {
	b := newBuilder()
	b.Types = []mcbuild.TypeDef{
		{Name: "blob", Args: []maplecode.ArgumentKind{maplecode.KindDat}},
	}
	b.Roots = []*mcbuild.Node{{Type: "blob", Args: []mcbuild.Arg{mcbuild.Dat([]byte{1, 2, 3})}}}

	raw, err := b.Build()
	require.NoError(t, err)
	doc, err := maplecode.ReadFromData(raw)
	require.NoError(t, err)

	nodes, err := doc.AllNodes().Nodes()
	require.NoError(t, err)
	args, err := nodes[0].Arguments()
	require.NoError(t, err)

	_, err = maplecode.GetDataAs[uint16](args[0])
	assert.ErrorIs(t, err, maplecode.ErrDataAlignment)
}

func TestArgument_RefAndRefField(t *testing.T) {
	b := newBuilder()
	b.Types = []mcbuild.TypeDef{
		{Name: "n", Args: []maplecode.ArgumentKind{maplecode.KindRef, maplecode.KindRefField}},
	}

	node1 := &mcbuild.Node{Type: "n"}
	node0 := &mcbuild.Node{Type: "n"}
	node1.Args = []mcbuild.Arg{mcbuild.Ref(node1), mcbuild.Field(node1, "y")}
	node0.Args = []mcbuild.Arg{mcbuild.Ref(node1), mcbuild.Field(node1, "x")}

	b.Roots = []*mcbuild.Node{node0, node1}

	raw, err := b.Build()
	require.NoError(t, err)
	doc, err := maplecode.ReadFromData(raw)
	require.NoError(t, err)

	nodes, err := doc.AllNodes().Nodes()
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	args0, err := nodes[0].Arguments()
	require.NoError(t, err)
	refNode, err := args0[0].GetNode()
	require.NoError(t, err)
	assert.True(t, refNode.Equal(nodes[1]))

	fn, name, err := args0[1].GetField()
	require.NoError(t, err)
	assert.True(t, fn.Equal(nodes[1]))
	assert.Equal(t, "x", name)
}
