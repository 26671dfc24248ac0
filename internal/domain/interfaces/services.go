package interfaces

import domaintypes "watchlist/internal/domain/types"

// WatchListService exposes the list operations the CLI drives. Mutating
// methods persist the whole collection once, after the in-memory change has
// fully succeeded.
type WatchListService interface {
	// Create adds a new empty list.
	Create(name string) error
	// Add appends items to a list in order. With ignoreDuplicates set, items
	// whose exact text is already in the list are skipped.
	Add(name string, items []domaintypes.Item, ignoreDuplicates bool) (domaintypes.AddResult, error)

	// Show returns the items of one list; an empty slice is a valid result.
	Show(name string) ([]domaintypes.Item, error)
	// ShowAll returns every non-empty list, ordered by name.
	ShowAll() []domaintypes.WatchList
	// Lists returns the names of all lists, ordered.
	Lists() []string

	// RandomFrom picks one item uniformly from the named list.
	RandomFrom(name string) (domaintypes.Item, error)
	// Random picks a non-empty list uniformly, then an item uniformly from it.
	Random() (domaintypes.Item, error)

	// Delete removes a whole list.
	Delete(name string) error
	// DeleteMatching removes every item matching prompt and reports how many
	// were removed.
	DeleteMatching(name, prompt string) (int, error)
	// RemoveItem removes the first item with exactly the given text.
	RemoveItem(name string, item domaintypes.Item) error

	// Search returns the items matching prompt in list order.
	Search(name, prompt string) ([]domaintypes.Item, error)
}
