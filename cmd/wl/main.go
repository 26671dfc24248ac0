package main

import (
	"fmt"
	"os"

	"watchlist/cmd/wl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, commands.Message(err))
		os.Exit(commands.ExitCode(err))
	}
}
