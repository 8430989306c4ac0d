package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-pixelgeom/pixel"
)

var treeCmd = &cobra.Command{
	Use:   "tree FILE",
	Short: "List every group and dataset in the file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n\n", args[0])
		return printTree(cmd.OutOrStdout(), s.paths)
	},
}

// printTree writes one line per path, indented by depth.
func printTree(w io.Writer, paths pixel.PathMap) error {
	groups, datasets := 0, 0
	err := paths.Walk(func(path string, typ pixel.NodeType, depth int) error {
		indent := strings.Repeat("  ", depth-1)
		switch typ {
		case pixel.NodeGroup:
			groups++
			fmt.Fprintf(w, "%sGroup %q\n", indent, pixel.BaseName(path))
		default:
			datasets++
			fmt.Fprintf(w, "%sDataset %q\n", indent, pixel.BaseName(path))
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d groups, %d datasets\n", groups, datasets)
	return nil
}
