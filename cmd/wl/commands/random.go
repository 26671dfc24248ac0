package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"watchlist/internal/domain"
)

// randomCmd prints one item. Without a list name it picks a non-empty list
// first and then an item from it.
func randomCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "random [list]",
		Aliases: []string{"r", "rand"},
		Short:   "Get a random item",
		Args:    validArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				item domain.Item
				err  error
			)
			if len(args) == 1 {
				item, err = c.wire.Lists.RandomFrom(args[0])
			} else {
				item, err = c.wire.Lists.Random()
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), item)
			return nil
		},
	}
}
