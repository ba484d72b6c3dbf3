package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func reachCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reach <from> <to>",
		Short: "Report whether two squares are one knight move apart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.svc.CanReach(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}
