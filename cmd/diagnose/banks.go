package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-pixelgeom/pixel"
)

var banksCmd = &cobra.Command{
	Use:   "banks FILE",
	Short: "List the banks bound by the instrument description",
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
		return printBanks(cmd.OutOrStdout(), inst)
	},
}

func printBanks(w io.Writer, inst *pixel.Instrument) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BANK\tPATH\tGEOMETRY\tATTRIBUTES")
	for _, bank := range inst.Banks() {
		g, _ := inst.Geometry.Provider(bank)
		var attrs []string
		for _, name := range inst.AttributeNames() {
			if p, ok := inst.Attributes[name].Provider(bank); ok {
				if r, ok := p.(*pixel.Record); ok {
					attrs = append(attrs, fmt.Sprintf("%s[%d %s]", name, r.Len(), r.Selector().Kind()))
					continue
				}
				attrs = append(attrs, name)
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", bank, inst.BankPaths[bank], pixel.Describe(g), attrs)
	}
	return tw.Flush()
}
