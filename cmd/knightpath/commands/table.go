package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func tableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "table <from>",
		Short: "Print the number of moves from a square to every square",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sq, dist, err := a.svc.Distances(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), r.Distances(sq, dist))
			return nil
		},
	}
}
