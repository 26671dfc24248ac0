package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"watchlist/internal/domain"
)

func showCmd(c *cli) *cobra.Command {
	var allItems bool
	cmd := &cobra.Command{
		Use:     "show [list]",
		Aliases: []string{"s"},
		Short:   "Display lists and items",
		Long: "With a list name, print its items. With --all-items, print every list\n" +
			"that has items. With neither, print the names of all lists.",
		Args: validArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case allItems && len(args) > 0:
				return fmt.Errorf("%w: a list name and --all-items cannot be combined", domain.ErrInvalidArgument)

			case allItems:
				lists := c.wire.Lists.ShowAll()
				if len(lists) == 0 {
					fmt.Fprintln(out, "No items in any list")
					return nil
				}
				for i, wl := range lists {
					if i > 0 {
						fmt.Fprintln(out)
					}
					renderList(out, wl.Name, domain.Strings(wl.Items))
				}

			case len(args) == 1:
				items, err := c.wire.Lists.Show(args[0])
				if err != nil {
					return err
				}
				if len(items) == 0 {
					fmt.Fprintf(out, "List %q is empty\n", args[0])
					return nil
				}
				renderList(out, args[0], domain.Strings(items))

			default:
				names := c.wire.Lists.Lists()
				if len(names) == 0 {
					fmt.Fprintln(out, "No lists found. Create one with `wl new <list>`")
					return nil
				}
				renderList(out, "All Lists", names)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&allItems, "all-items", "a", false, "show all items from all lists, excluding empty lists")
	return cmd
}
