package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func movesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "moves [square]",
		Short: "List knight moves from one square, or from every square",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), r.Adjacency(a.svc.Graph()))
				return nil
			}

			sq, nbrs, err := a.svc.Neighbors(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), r.Neighbors(sq, nbrs))
			return nil
		},
	}
}
