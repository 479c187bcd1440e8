package mcbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcreader/maplecode"
	"github.com/mcreader/maplecode/internal/mcbuild"
)

func TestBuilder_RoundTripsThroughDecoder(t *testing.T) {
	b := mcbuild.Builder{StrWidth: 1, TypeWidth: 1, NodeWidth: 2, DataWidth: 2}
	b.Types = []mcbuild.TypeDef{
		{Name: "pair", Args: []maplecode.ArgumentKind{maplecode.KindU16, maplecode.KindStr}},
	}
	b.Roots = []*mcbuild.Node{
		{Type: "pair", Args: []mcbuild.Arg{mcbuild.U16(1000), mcbuild.Str("hello")}},
		{Type: "pair", Args: []mcbuild.Arg{mcbuild.U16(2000), mcbuild.Str("world")}},
	}

	raw, err := b.Build()
	require.NoError(t, err)

	doc, err := maplecode.ReadFromData(raw)
	require.NoError(t, err)

	nodes, err := doc.AllNodes().Nodes()
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	args0, err := nodes[0].Arguments()
	require.NoError(t, err)
	v, err := args0[0].GetUnsigned()
	require.NoError(t, err)
	assert.EqualValues(t, 1000, v)
	s, err := args0[1].GetString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	args1, err := nodes[1].Arguments()
	require.NoError(t, err)
	v1, err := args1[0].GetUnsigned()
	require.NoError(t, err)
	assert.EqualValues(t, 2000, v1)
}

func TestBuilder_UnknownTypeFails(t *testing.T) {
	b := mcbuild.Builder{StrWidth: 1, TypeWidth: 1, NodeWidth: 1, DataWidth: 1}
	b.Roots = []*mcbuild.Node{{Type: "missing"}}

	_, err := b.Build()
	assert.Error(t, err)
}
