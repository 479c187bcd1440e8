package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcreader/maplecode"
	"github.com/mcreader/maplecode/maplefmt"
)

func init() {
	rootCmd.AddCommand(newSchemaCmd())
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <file>",
		Short: "Print a document's type dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(args[0])
		},
	}
}

func runSchema(path string) error {
	raw, err := readDocFile(path)
	if err != nil {
		return err
	}

	doc, err := maplecode.ReadFromData(raw)
	if err != nil {
		return err
	}

	types := maplefmt.Schema(doc)
	if jsonOut {
		return printJSON(types)
	}

	for _, t := range types {
		children := ""
		if t.HasChildren {
			children = " +children"
		}
		fmt.Printf("%s<%d>(%s)%s\n", t.Name, t.GenericCount, strings.Join(t.Args, ", "), children)
	}
	return nil
}
