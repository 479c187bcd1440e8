package maplecode_test

import (
	"testing"

	"github.com/mcreader/maplecode"
	"github.com/mcreader/maplecode/internal/mcbuild"
)

// FuzzReadFromData mirrors glint's glint_fuzz_test.go structure (seeded
// corpus plus a property function) but fuzzes the decoder directly with raw
// bytes, since there is no encoder to round-trip through: the only
// property that must hold is "never panics", decode either succeeds with a
// fully navigable Document or fails with a typed error.
func FuzzReadFromData(f *testing.F) {
	f.Add(s1Payload)
	for k := 0; k < len(s1Payload); k++ {
		f.Add(s1Payload[:k])
	}

	if raw, err := buildFlatScenario(); err == nil {
		f.Add(raw)
		for k := 0; k < len(raw); k++ {
			f.Add(raw[:k])
		}
	}

	f.Fuzz(func(t *testing.T, raw []byte) {
		doc, err := maplecode.ReadFromData(raw)
		if err != nil {
			return
		}

		nodes, err := doc.AllNodes().Nodes()
		if err != nil {
			t.Fatalf("AllNodes().Nodes() failed on a successfully decoded document: %v", err)
		}
		for _, n := range nodes {
			typ, err := n.Type()
			if err != nil {
				t.Fatalf("Type() failed for a node returned by AllNodes: %v", err)
			}
			if _, err := n.GenericArguments(); err != nil {
				t.Fatalf("GenericArguments() failed: %v", err)
			}
			args, err := n.Arguments()
			if err != nil {
				t.Fatalf("Arguments() failed: %v", err)
			}
			if len(args) != len(typ.Args) {
				t.Fatalf("Arguments() length %d != declared %d", len(args), len(typ.Args))
			}
		}
	})
}

func buildFlatScenario() ([]byte, error) {
	b := mcbuild.Builder{StrWidth: 1, TypeWidth: 1, NodeWidth: 1, DataWidth: 1}
	b.Types = []mcbuild.TypeDef{
		{Name: "node_a", Args: []maplecode.ArgumentKind{maplecode.KindU8}},
		{Name: "node_b", Args: []maplecode.ArgumentKind{maplecode.KindS8, maplecode.KindStr, maplecode.KindF32}},
	}
	b.Roots = []*mcbuild.Node{
		{Type: "node_a", Args: []mcbuild.Arg{mcbuild.U8(10)}},
		{Type: "node_b", Args: []mcbuild.Arg{mcbuild.S8(-1), mcbuild.Str("string"), mcbuild.F32(0.1)}},
	}
	return b.Build()
}
