package domain

import (
	interfaces "watchlist/internal/domain/interfaces"
	types "watchlist/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Item      = types.Item
	WatchList = types.WatchList
	AddResult = types.AddResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	WatchListService = interfaces.WatchListService
)

// Items converts raw texts into Items.
func Items(texts ...string) []Item { return types.Items(texts...) }

// Strings converts Items back into raw texts.
func Strings(items []Item) []string { return types.Strings(items) }
