package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "new <list>",
		Aliases: []string{"n"},
		Short:   "Create a new list",
		Args:    validArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.wire.Lists.Create(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "List %q created\n", args[0])
			return nil
		},
	}
}
