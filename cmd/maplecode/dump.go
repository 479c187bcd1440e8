package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcreader/maplecode"
	"github.com/mcreader/maplecode/internal/mclog"
	"github.com/mcreader/maplecode/maplefmt"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of a document's node tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	raw, err := readDocFile(path)
	if err != nil {
		return err
	}

	mclog.Debug("decoding document", "path", path, "bytes", len(raw))
	doc, err := maplecode.ReadFromData(raw)
	if err != nil {
		return err
	}

	if jsonOut {
		out, err := maplefmt.MarshalJSON(doc)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	return maplefmt.Print(doc)
}
