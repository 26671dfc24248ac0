package watchlist

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"watchlist/internal/domain"
	"watchlist/internal/registry"
)

// Store is the persistence the service needs.
type Store interface {
	Save(r *registry.Registry) error
}

// Service runs watch list operations against a loaded registry.
type Service struct {
	store Store
	reg   *registry.Registry
	rng   *rand.Rand
	log   logrus.FieldLogger
}

// Option configures a Service.
type Option func(*Service)

// WithRand sets the random source used by Random and RandomFrom.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

// WithLogger sets the logger used for mutation diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Service) { s.log = log }
}

// New returns a service over reg that persists through store.
func New(store Store, reg *registry.Registry, opts ...Option) *Service {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	s := &Service{
		store: store,
		reg:   reg,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:   discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create adds a new empty list called name.
func (s *Service) Create(name string) error {
	if _, err := s.reg.Create(name); err != nil {
		return err
	}
	s.log.WithField("list", name).Debug("created list")
	return s.store.Save(s.reg)
}

// Add appends items to the named list in the order given. With
// ignoreDuplicates set, an item is skipped when the list already holds the
// exact same text, including items appended earlier in the same call.
func (s *Service) Add(name string, items []domain.Item, ignoreDuplicates bool) (domain.AddResult, error) {
	for _, it := range items {
		if it == "" {
			return domain.AddResult{}, fmt.Errorf("%w: item must not be empty", domain.ErrInvalidArgument)
		}
	}
	wl, err := s.get(name)
	if err != nil {
		return domain.AddResult{}, err
	}

	var res domain.AddResult
	for _, it := range items {
		if ignoreDuplicates && wl.Contains(it) {
			res.Skipped++
			continue
		}
		wl.Items = append(wl.Items, it)
		res.Added++
	}
	s.log.WithFields(logrus.Fields{"list": name, "added": res.Added, "skipped": res.Skipped}).Debug("added items")
	if err := s.store.Save(s.reg); err != nil {
		return domain.AddResult{}, err
	}
	return res, nil
}

// Show returns a copy of the named list's items.
func (s *Service) Show(name string) ([]domain.Item, error) {
	wl, err := s.get(name)
	if err != nil {
		return nil, err
	}
	return wl.Clone().Items, nil
}

// ShowAll returns every list with at least one item, ordered by name.
func (s *Service) ShowAll() []domain.WatchList {
	return s.reg.NonEmpty()
}

// Lists returns all list names, ordered.
func (s *Service) Lists() []string {
	return s.reg.Names()
}

// RandomFrom returns one item drawn uniformly from the named list.
func (s *Service) RandomFrom(name string) (domain.Item, error) {
	wl, err := s.get(name)
	if err != nil {
		return "", err
	}
	if wl.Empty() {
		return "", &domain.EmptyListError{Name: name}
	}
	return wl.Items[s.rng.IntN(wl.Len())], nil
}

// Random draws a list uniformly among the non-empty lists, then an item
// uniformly within it.
func (s *Service) Random() (domain.Item, error) {
	lists := s.reg.NonEmpty()
	if len(lists) == 0 {
		return "", &domain.EmptyListError{}
	}
	wl := lists[s.rng.IntN(len(lists))]
	return wl.Items[s.rng.IntN(wl.Len())], nil
}

// Delete removes the named list.
func (s *Service) Delete(name string) error {
	if err := s.reg.Delete(name); err != nil {
		return s.suggest(err)
	}
	s.log.WithField("list", name).Debug("deleted list")
	return s.store.Save(s.reg)
}

// DeleteMatching removes every item in the named list that Matches prompt and
// returns how many were removed. Nothing is persisted when nothing matched.
func (s *Service) DeleteMatching(name, prompt string) (int, error) {
	if err := checkPrompt(prompt); err != nil {
		return 0, err
	}
	wl, err := s.get(name)
	if err != nil {
		return 0, err
	}

	kept := make([]domain.Item, 0, wl.Len())
	for _, it := range wl.Items {
		if !Matches(it, prompt) {
			kept = append(kept, it)
		}
	}
	removed := wl.Len() - len(kept)
	if removed == 0 {
		return 0, nil
	}
	wl.Items = kept
	s.log.WithFields(logrus.Fields{"list": name, "prompt": prompt, "removed": removed}).Debug("deleted matching items")
	if err := s.store.Save(s.reg); err != nil {
		return 0, err
	}
	return removed, nil
}

// RemoveItem removes the first item whose text equals item exactly.
func (s *Service) RemoveItem(name string, item domain.Item) error {
	wl, err := s.get(name)
	if err != nil {
		return err
	}
	for i, it := range wl.Items {
		if it == item {
			wl.Items = slices.Delete(wl.Items, i, i+1)
			s.log.WithFields(logrus.Fields{"list": name, "item": item}).Debug("removed item")
			return s.store.Save(s.reg)
		}
	}
	return fmt.Errorf("%w: %q in list %q", domain.ErrItemNotFound, item, name)
}

// Search returns the items of the named list that Match prompt, in list order.
func (s *Service) Search(name, prompt string) ([]domain.Item, error) {
	if err := checkPrompt(prompt); err != nil {
		return nil, err
	}
	wl, err := s.get(name)
	if err != nil {
		return nil, err
	}
	out := []domain.Item{}
	for _, it := range wl.Items {
		if Matches(it, prompt) {
			out = append(out, it)
		}
	}
	return out, nil
}

// Matches reports whether item contains prompt, ignoring case.
func Matches(item domain.Item, prompt string) bool {
	return strings.Contains(strings.ToLower(string(item)), strings.ToLower(prompt))
}

func checkPrompt(prompt string) error {
	if prompt == "" {
		return fmt.Errorf("%w: search prompt must not be empty", domain.ErrInvalidArgument)
	}
	return nil
}

// get looks up a list and attaches a name suggestion when it is missing.
func (s *Service) get(name string) (*domain.WatchList, error) {
	wl, err := s.reg.Get(name)
	if err != nil {
		return nil, s.suggest(err)
	}
	return wl, nil
}

// Compile-time assertion that Service implements domain.WatchListService.
var _ domain.WatchListService = (*Service)(nil)
