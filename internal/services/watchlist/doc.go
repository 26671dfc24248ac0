// Package watchlist implements the watch list operations: create, add, show,
// random, delete and search.
//
// Each operation reads or mutates the in-memory registry and, when it mutates,
// persists the whole registry exactly once after the change has fully
// succeeded. A failing operation never reaches the store, so the file on disk
// keeps its previous contents.
//
// Matching policy:
//
//   - Add's duplicate check compares item text exactly (case-sensitive).
//   - Search and DeleteMatching share Matches: case-insensitive substring.
//
// Random without a list name draws in two stages: first a list uniformly from
// the lists that have items, then an item uniformly from that list. Items in
// short lists are therefore more likely than items in long ones; this is not a
// single uniform draw over every item.
package watchlist
