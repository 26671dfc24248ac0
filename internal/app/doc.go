// Package app wires application dependencies for the CLI.
//
// It builds the file store from config, loads the registry once and exposes
// the watch list service via the Wire struct for commands to use.
package app
