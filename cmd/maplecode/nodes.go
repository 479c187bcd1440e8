package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcreader/maplecode"
)

var (
	nodesAll  bool
	nodesType string
)

func init() {
	cmd := newNodesCmd()
	cmd.Flags().BoolVar(&nodesAll, "all", false, "Visit every node, not just top-level ones")
	cmd.Flags().StringVar(&nodesType, "type", "", "List only nodes of this type name")
	rootCmd.AddCommand(cmd)
}

func newNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes <file>",
		Short: "List node offsets and types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNodes(args[0])
		},
	}
}

type nodeRow struct {
	Offset   int    `json:"offset"`
	Type     string `json:"type"`
	Depth    int    `json:"depth"`
	Children bool   `json:"hasChildren"`
}

func runNodes(path string) error {
	raw, err := readDocFile(path)
	if err != nil {
		return err
	}

	doc, err := maplecode.ReadFromData(raw)
	if err != nil {
		return err
	}

	var rows []nodeRow
	collect := func(n maplecode.Node, t maplecode.NodeType, depth int) error {
		if nodesType != "" && t.Name != nodesType {
			return nil
		}
		rows = append(rows, nodeRow{Offset: n.Offset(), Type: t.Name, Depth: depth, Children: t.HasChildren})
		return nil
	}

	if nodesAll {
		v := &collectVisitor{visit: collect}
		if err := maplecode.Walk(doc, v); err != nil {
			return err
		}
	} else {
		top, err := doc.AllNodes().Nodes()
		if err != nil {
			return err
		}
		for _, n := range top {
			t, err := n.Type()
			if err != nil {
				return err
			}
			if err := collect(n, t, 0); err != nil {
				return err
			}
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	for _, r := range rows {
		indent := ""
		for i := 0; i < r.Depth; i++ {
			indent += "  "
		}
		fmt.Printf("%soffset=%-6d %s\n", indent, r.Offset, r.Type)
	}
	return nil
}

type collectVisitor struct {
	visit func(n maplecode.Node, t maplecode.NodeType, depth int) error
}

func (v *collectVisitor) VisitNode(n maplecode.Node, t maplecode.NodeType, depth int) error {
	return v.visit(n, t, depth)
}

func (v *collectVisitor) VisitChildrenDone(n maplecode.Node, depth int) error {
	return nil
}
