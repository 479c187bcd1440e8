// Package maplefmt renders decoded MapleCode documents for tooling: an
// indented tree view in the box-drawing style of glint's printer.go, and a
// JSON tree for machine consumption. None of it is on the hot decode path;
// like printer.go it trades allocation for readability.
package maplefmt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcreader/maplecode"
)

// SPrint returns an indented tree representation of every node reachable
// from doc.AllNodes(), mirroring glint's SPrintStruct box-drawing style.
func SPrint(doc *maplecode.Document) (string, error) {
	var buf strings.Builder
	buf.WriteString("MapleCode Document\n")

	v := &treePrinter{buf: &buf}
	if err := maplecode.Walk(doc, v); err != nil {
		return buf.String(), err
	}
	return buf.String(), nil
}

// Print writes SPrint's output to stdout.
func Print(doc *maplecode.Document) error {
	s, err := SPrint(doc)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

type treePrinter struct {
	buf *strings.Builder
}

func (p *treePrinter) VisitNode(n maplecode.Node, t maplecode.NodeType, depth int) error {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(p.buf, "%v├─ %v", indent, t.Name)

	generics, err := n.GenericArguments()
	if err != nil {
		return err
	}
	if len(generics) > 0 {
		fmt.Fprintf(p.buf, "<%v>", strings.Join(generics, ","))
	}

	args, err := n.Arguments()
	if err != nil {
		return err
	}
	parts := make([]string, 0, len(args))
	for _, a := range args {
		s, err := argString(a)
		if err != nil {
			return err
		}
		parts = append(parts, s)
	}
	if len(parts) > 0 {
		fmt.Fprintf(p.buf, "(%v)", strings.Join(parts, ", "))
	}
	p.buf.WriteString("\n")
	return nil
}

func (p *treePrinter) VisitChildrenDone(n maplecode.Node, depth int) error {
	return nil
}

func argString(a maplecode.Argument) (string, error) {
	switch a.Kind() {
	case maplecode.KindU8, maplecode.KindU16, maplecode.KindU32:
		v, err := a.GetUnsigned()
		return fmt.Sprintf("%v", v), err
	case maplecode.KindS8, maplecode.KindS16, maplecode.KindS32:
		v, err := a.GetSigned()
		return fmt.Sprintf("%v", v), err
	case maplecode.KindF32:
		v, err := a.GetFloat()
		return fmt.Sprintf("%v", v), err
	case maplecode.KindStr:
		v, err := a.GetString()
		return fmt.Sprintf("%q", v), err
	case maplecode.KindDat:
		v, err := a.GetData()
		return fmt.Sprintf("%d bytes", len(v)), err
	case maplecode.KindRef:
		n, err := a.GetNode()
		if err != nil {
			return "", err
		}
		t, err := n.Type()
		return fmt.Sprintf("->%v@%d", t.Name, n.Offset()), err
	case maplecode.KindRefField:
		n, field, err := a.GetField()
		if err != nil {
			return "", err
		}
		t, err := n.Type()
		return fmt.Sprintf("->%v@%d.%v", t.Name, n.Offset(), field), err
	default:
		return "", fmt.Errorf("maplefmt: unknown argument kind %v", a.Kind())
	}
}

// Node is a JSON-serializable snapshot of one node and its subtree.
type Node struct {
	Type      string   `json:"type"`
	Generics  []string `json:"generics,omitempty"`
	Arguments []string `json:"arguments,omitempty"`
	Children  []Node   `json:"children,omitempty"`
}

// Tree materializes a Document's node forest as a JSON-serializable tree of
// Node snapshots, one entry per top-level node.
func Tree(doc *maplecode.Document) ([]Node, error) {
	return treeRange(doc.AllNodes())
}

func treeRange(r maplecode.NodeRange) ([]Node, error) {
	nodes, err := r.Nodes()
	if err != nil {
		return nil, err
	}

	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		jn, err := treeNode(n)
		if err != nil {
			return nil, err
		}
		out = append(out, jn)
	}
	return out, nil
}

func treeNode(n maplecode.Node) (Node, error) {
	t, err := n.Type()
	if err != nil {
		return Node{}, err
	}

	generics, err := n.GenericArguments()
	if err != nil {
		return Node{}, err
	}

	args, err := n.Arguments()
	if err != nil {
		return Node{}, err
	}
	argStrs := make([]string, len(args))
	for i, a := range args {
		s, err := argString(a)
		if err != nil {
			return Node{}, err
		}
		argStrs[i] = s
	}

	jn := Node{Type: t.Name, Generics: generics, Arguments: argStrs}

	if t.HasChildren {
		children, err := n.Children()
		if err != nil {
			return Node{}, err
		}
		jn.Children, err = treeRange(children)
		if err != nil {
			return Node{}, err
		}
	}
	return jn, nil
}

// MarshalJSON renders a Document's full node forest as indented JSON.
func MarshalJSON(doc *maplecode.Document) ([]byte, error) {
	tree, err := Tree(doc)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(tree, "", "  ")
}

// TypeDef is a JSON-serializable snapshot of one declared type.
type TypeDef struct {
	Name         string   `json:"name"`
	GenericCount int      `json:"genericCount"`
	Args         []string `json:"args,omitempty"`
	HasChildren  bool     `json:"hasChildren"`
}

// Schema materializes a Document's type dictionary for tooling.
func Schema(doc *maplecode.Document) []TypeDef {
	types := doc.Types()
	out := make([]TypeDef, len(types))
	for i, t := range types {
		argStrs := make([]string, len(t.Args))
		for j, a := range t.Args {
			argStrs[j] = a.String()
		}
		out[i] = TypeDef{
			Name:         t.Name,
			GenericCount: t.GenericCount,
			Args:         argStrs,
			HasChildren:  t.HasChildren,
		}
	}
	return out
}
