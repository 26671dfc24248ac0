package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"watchlist/internal/domain"
)

func searchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "search <list> <prompt>",
		Aliases: []string{"se"},
		Short:   "Search for items in a list",
		Long:    "Print the items of a list that contain the prompt, ignoring case.",
		Args:    validArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := c.wire.Lists.Search(args[0], args[1])
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matches")
				return nil
			}
			renderList(cmd.OutOrStdout(), "Matches", domain.Strings(matches))
			return nil
		},
	}
}
