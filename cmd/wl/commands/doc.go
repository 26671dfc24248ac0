// Package commands defines the wl CLI and wires dependencies for subcommands.
//
// Commands
//
//   - new (n)               Create an empty list
//   - add (a)               Append items to a list, optionally skipping duplicates
//   - show (s)              Print one list, all non-empty lists, or all list names
//   - random (r, rand)      Print a random item from one list or from any list
//   - delete (d, del)       Delete a list, or the items in it matching a prompt
//   - search (se)           Print the items of a list matching a prompt
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph (file
// store, registry, watch list service) before any subcommand runs. Each
// invocation performs exactly one operation; mutating operations persist the
// file once. Errors are returned to main, which prints Message and exits with
// ExitCode.
package commands
