package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pathCmd(a *app) *cobra.Command {
	var showBoard bool

	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Print a shortest knight path between two squares",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.svc.ShortestPath(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, r.Path(p))
			if showBoard && p.Found() {
				fmt.Fprintln(out)
				fmt.Fprint(out, r.Board(p))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showBoard, "board", false, "also draw the path on a board diagram")

	return cmd
}
