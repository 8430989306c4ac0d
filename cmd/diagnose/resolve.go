package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-pixelgeom/pixel"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve FILE PIXEL...",
	Short: "Resolve geometry and attributes for one or more pixels",
	Long: `Resolve geometry and attributes for pixels given as "(bank, (i, j))"
or "[bank, i, j]". Each pixel may be quoted as one argument or spread
over three.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parsePixelArgs(args[1:])
		if err != nil {
			return err
		}

		s, err := openSession(cmd, args[0])
		if err != nil {
			return err
		}
		defer s.Close()

		inst, err := s.bind()
		if err != nil {
			return err
		}
		for _, id := range ids {
			printPixel(cmd.OutOrStdout(), inst, id)
		}
		return nil
	},
}

// parsePixelArgs groups the whitespace-separated tokens of args into
// pixel IDs, three tokens each.
func parsePixelArgs(args []string) ([]pixel.ID, error) {
	tokens := strings.Fields(strings.Join(args, " "))
	if len(tokens) == 0 || len(tokens)%3 != 0 {
		return nil, fmt.Errorf("%w: %d tokens do not form whole pixel ids", pixel.ErrFormat, len(tokens))
	}
	ids := make([]pixel.ID, 0, len(tokens)/3)
	for i := 0; i < len(tokens); i += 3 {
		id, err := pixel.Parse(tokens[i : i+3])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// printPixel writes every geometry quantity and attribute of id. Per-value
// failures are printed in place so one undefined quantity does not hide
// the rest.
func printPixel(w io.Writer, inst *pixel.Instrument, id pixel.ID) {
	fmt.Fprintf(w, "%s\n", id)
	for _, q := range pixel.Quantities() {
		unit := pixel.UnitOf(q)
		m, err := inst.ResolveGeometry(q, id, unit)
		switch {
		case errors.Is(err, pixel.ErrUndefinedQuantity):
			fmt.Fprintf(w, "  %-22s undefined\n", q)
		case err != nil:
			fmt.Fprintf(w, "  %-22s ERROR: %v\n", q, err)
		default:
			fmt.Fprintf(w, "  %-22s %g ± %g %s\n", q, m.Value, m.Uncertainty, unit)
		}
	}
	for _, name := range inst.AttributeNames() {
		v, err := inst.ResolveAttribute(name, id)
		if err != nil {
			fmt.Fprintf(w, "  %-22s ERROR: %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "  %-22s %g (variance %g)\n", name, v.Value, v.Variance)
	}
}
