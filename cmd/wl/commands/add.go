package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"watchlist/internal/domain"
)

func addCmd(c *cli) *cobra.Command {
	var ignoreDuplicate bool
	cmd := &cobra.Command{
		Use:     "add <list> <item>...",
		Aliases: []string{"a"},
		Short:   "Add items to a list",
		Long: "Add one or more items to a list. Multiple items are given as separate\n" +
			"arguments and are appended in order.",
		Args: validArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.wire.Lists.Add(args[0], domain.Items(args[1:]...), ignoreDuplicate)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added %d item(s)", res.Added)
			if res.Skipped > 0 {
				fmt.Fprintf(out, " (skipped %d duplicate(s))", res.Skipped)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&ignoreDuplicate, "ignore-duplicate", "i", false, "skip items already in the list (exact, case-sensitive)")
	return cmd
}
