package types

// Item is a single text entry within a watch list. It has no identity beyond
// its text.
type Item string

// String returns the text of the item.
func (i Item) String() string { return string(i) }

// Items converts raw texts into Items, preserving order.
func Items(texts ...string) []Item {
	out := make([]Item, len(texts))
	for i, t := range texts {
		out[i] = Item(t)
	}
	return out
}

// Strings converts items back into their texts, preserving order.
func Strings(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = string(it)
	}
	return out
}

// WatchList is a named, ordered sequence of items. Insertion order is
// preserved and duplicates are permitted.
type WatchList struct {
	Name  string
	Items []Item
}

// Len reports the number of items in the list.
func (w WatchList) Len() int { return len(w.Items) }

// Empty reports whether the list has no items.
func (w WatchList) Empty() bool { return len(w.Items) == 0 }

// Contains reports whether an item with exactly the given text is present.
// The comparison is case-sensitive.
func (w WatchList) Contains(item Item) bool {
	for _, it := range w.Items {
		if it == item {
			return true
		}
	}
	return false
}

// Clone returns a deep copy with a non-nil item slice.
func (w WatchList) Clone() WatchList {
	items := make([]Item, len(w.Items))
	copy(items, w.Items)
	return WatchList{Name: w.Name, Items: items}
}

// AddResult reports the outcome of appending items to a list.
type AddResult struct {
	Added   int
	Skipped int
}
