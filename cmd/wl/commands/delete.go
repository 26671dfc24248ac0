package commands

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"watchlist/internal/domain"
)

func deleteCmd(c *cli) *cobra.Command {
	var (
		yes  bool
		pick bool
	)
	cmd := &cobra.Command{
		Use:     "delete <list> [prompt]",
		Aliases: []string{"d", "del"},
		Short:   "Delete lists or items",
		Long: "Without a prompt, delete the whole list after confirmation. With a prompt,\n" +
			"delete every item containing it (ignoring case), or with --pick choose\n" +
			"a single matching item interactively.",
		Args: validArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			out := cmd.OutOrStdout()
			in := bufio.NewReader(cmd.InOrStdin())

			if len(args) == 1 {
				if pick {
					return fmt.Errorf("%w: --pick needs a search prompt", domain.ErrInvalidArgument)
				}
				// Fail on a missing list before asking anything.
				if _, err := c.wire.Lists.Show(name); err != nil {
					return err
				}
				if !yes {
					ok, err := confirm(in, out, fmt.Sprintf("Are you sure you want to delete the list '%s'? (y/N): ", name))
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintln(out, "Deleting cancelled")
						return nil
					}
				}
				if err := c.wire.Lists.Delete(name); err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted list %q\n", name)
				return nil
			}

			prompt := args[1]
			if !pick {
				n, err := c.wire.Lists.DeleteMatching(name, prompt)
				if err != nil {
					return err
				}
				if n == 0 {
					fmt.Fprintln(out, "No matches")
					return nil
				}
				fmt.Fprintf(out, "Deleted %d item(s)\n", n)
				return nil
			}

			matches, err := c.wire.Lists.Search(name, prompt)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				fmt.Fprintln(out, "No matches")
				return nil
			}
			renderList(out, "Matched Items", domain.Strings(matches))
			idx, ok, err := pickIndex(in, out, len(matches))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Deleting cancelled")
				return nil
			}
			if err := c.wire.Lists.RemoveItem(name, matches[idx-1]); err != nil {
				return err
			}
			fmt.Fprintf(out, "Deleted %q\n", matches[idx-1])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete a whole list without asking for confirmation")
	cmd.Flags().BoolVar(&pick, "pick", false, "choose a single matching item to delete")
	return cmd
}
