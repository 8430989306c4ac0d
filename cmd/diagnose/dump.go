package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-pixelgeom/pixel"
)

var (
	dumpBank      string
	dumpAttribute string
	dumpNI        int
	dumpNJ        int
	dumpWorkers   int
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print one attribute over a bank's pixel grid as TSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		inst, err := s.bind()
		if err != nil {
			return err
		}
		c, ok := inst.Attributes[dumpAttribute]
		if !ok {
			return fmt.Errorf("%w: %q", pixel.ErrUnknownAttribute, dumpAttribute)
		}

		vals, err := pixel.ResolveGrid(cmd.Context(), c, dumpBank, dumpNI, dumpNJ, dumpWorkers)
		if err != nil {
			return err
		}
		return writeGrid(cmd.OutOrStdout(), dumpNJ, vals)
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpBank, "bank", "b", "", "bank key (required)")
	dumpCmd.Flags().StringVarP(&dumpAttribute, "attribute", "a", "", "attribute name (required)")
	dumpCmd.Flags().IntVar(&dumpNI, "ni", 1, "number of slow-index positions")
	dumpCmd.Flags().IntVar(&dumpNJ, "nj", 1, "number of fast-index positions")
	dumpCmd.Flags().IntVarP(&dumpWorkers, "workers", "w", 0, "parallel workers (0 = GOMAXPROCS)")
	_ = dumpCmd.MarkFlagRequired("bank")
	_ = dumpCmd.MarkFlagRequired("attribute")
}

// writeGrid writes "i j value variance" rows for a row-major grid.
func writeGrid(w io.Writer, nj int, vals []pixel.Value) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "i\tj\tvalue\tvariance")
	for k, v := range vals {
		fmt.Fprintf(bw, "%d\t%d\t%g\t%g\n", k/nj, k%nj, v.Value, v.Variance)
	}
	return bw.Flush()
}
