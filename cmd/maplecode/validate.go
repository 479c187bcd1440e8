package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcreader/maplecode"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Decode a document and walk every node, reporting the first error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

type noopVisitor struct{ count int }

func (v *noopVisitor) VisitNode(n maplecode.Node, t maplecode.NodeType, depth int) error {
	v.count++
	return nil
}

func (v *noopVisitor) VisitChildrenDone(n maplecode.Node, depth int) error { return nil }

func runValidate(path string) error {
	raw, err := readDocFile(path)
	if err != nil {
		return err
	}

	doc, err := maplecode.ReadFromData(raw)
	if err != nil {
		if jsonOut {
			return printJSON(map[string]any{"valid": false, "error": err.Error()})
		}
		return err
	}

	v := &noopVisitor{}
	if err := maplecode.Walk(doc, v); err != nil {
		if jsonOut {
			return printJSON(map[string]any{"valid": false, "error": err.Error()})
		}
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"valid": true, "nodes": v.count, "types": len(doc.Types()), "strings": len(doc.Strings())})
	}
	fmt.Printf("ok: %d nodes, %d types, %d strings\n", v.count, len(doc.Types()), len(doc.Strings()))
	return nil
}
