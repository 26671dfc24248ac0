package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrListNotFound is returned when an operation names a list that does not exist.
	ErrListNotFound = errors.New("list not found")
	// ErrListAlreadyExists is returned when creating a list whose name is taken.
	ErrListAlreadyExists = errors.New("list already exists")
	// ErrEmptyList is returned when a random draw has nothing to choose from.
	ErrEmptyList = errors.New("list is empty")
	// ErrItemNotFound is returned when removing an item that is not in the list.
	ErrItemNotFound = errors.New("item not found")
	// ErrIO covers unreadable, unwritable or corrupt persisted state.
	ErrIO = errors.New("watch list storage error")
	// ErrWrongPassphrase is returned when a sealed file cannot be opened.
	ErrWrongPassphrase = fmt.Errorf("%w: wrong passphrase or corrupted file", ErrIO)
	// ErrInvalidArgument is returned for empty names, items or prompts.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ListNotFoundError names the missing list and, when one is close enough, an
// existing list the caller may have meant.
type ListNotFoundError struct {
	Name       string
	Suggestion string
}

func (e *ListNotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("no such list %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("no such list %q", e.Name)
}

// Unwrap lets errors.Is match ErrListNotFound.
func (e *ListNotFoundError) Unwrap() error { return ErrListNotFound }

// EmptyListError reports which list had nothing to draw from. Name is empty
// when no list in the collection has items.
type EmptyListError struct {
	Name string
}

func (e *EmptyListError) Error() string {
	if e.Name == "" {
		return "no list has any items"
	}
	return fmt.Sprintf("list %q has no items", e.Name)
}

// Unwrap lets errors.Is match ErrEmptyList.
func (e *EmptyListError) Unwrap() error { return ErrEmptyList }
