package commands

import (
	"errors"

	"watchlist/internal/domain"
)

// Process exit codes, one per error kind.
const (
	ExitOK           = 0
	ExitError        = 1
	ExitUsage        = 2
	ExitListNotFound = 3
	ExitListExists   = 4
	ExitEmptyList    = 5
	ExitIO           = 6
	ExitItemNotFound = 7
)

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrInvalidArgument):
		return ExitUsage
	case errors.Is(err, domain.ErrListNotFound):
		return ExitListNotFound
	case errors.Is(err, domain.ErrListAlreadyExists):
		return ExitListExists
	case errors.Is(err, domain.ErrEmptyList):
		return ExitEmptyList
	case errors.Is(err, domain.ErrIO):
		return ExitIO
	case errors.Is(err, domain.ErrItemNotFound):
		return ExitItemNotFound
	default:
		return ExitError
	}
}

// Message renders err for the user, with a hint for the kinds that have one.
func Message(err error) string {
	msg := "error: " + err.Error()
	switch {
	case errors.Is(err, domain.ErrListNotFound):
		return msg + "\nhint: `wl show` lists every list"
	case errors.Is(err, domain.ErrListAlreadyExists):
		return msg + "\nhint: pick another name or add items with `wl add`"
	case errors.Is(err, domain.ErrEmptyList):
		return msg + "\nhint: add items with `wl add <list> <item>...`"
	case errors.Is(err, domain.ErrWrongPassphrase):
		return msg + "\nhint: check WATCHLIST_PASSPHRASE"
	case errors.Is(err, domain.ErrInvalidArgument):
		return msg + "\nhint: see `wl --help`"
	default:
		return msg
	}
}
