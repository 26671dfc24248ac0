package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"watchlist/internal/domain"
)

// validArgs wraps a cobra arity check so that arity failures and blank
// arguments both surface as domain.ErrInvalidArgument.
func validArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
		}
		for _, a := range args {
			if strings.TrimSpace(a) == "" {
				return fmt.Errorf("%w: arguments must not be empty", domain.ErrInvalidArgument)
			}
		}
		return nil
	}
}
