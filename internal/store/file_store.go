package store

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"watchlist/internal/domain"
	"watchlist/internal/registry"
)

const fileMode os.FileMode = 0o600

// FileStore persists the registry to a single JSON file.
type FileStore struct {
	path       string
	passphrase string
	log        logrus.FieldLogger
	mu         sync.Mutex
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithPassphrase seals saved files with a key derived from passphrase and
// allows sealed files to be opened.
func WithPassphrase(passphrase string) Option {
	return func(s *FileStore) { s.passphrase = passphrase }
}

// WithLogger sets the logger used for load and save diagnostics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *FileStore) { s.log = log }
}

// NewFileStore returns a FileStore backed by the file at path.
func NewFileStore(path string, opts ...Option) *FileStore {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	s := &FileStore{path: path, log: discard}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the registry from disk. A missing file yields an empty registry.
func (s *FileStore) Load() (*registry.Registry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrIO, s.path, err)
	}
	if data == nil {
		s.log.WithField("path", s.path).Debug("no watch list file yet, starting empty")
		return registry.New(), nil
	}

	sealed := isSealed(data)
	if sealed {
		if s.passphrase == "" {
			return nil, fmt.Errorf("%w: %s is sealed; a passphrase is required", domain.ErrIO, s.path)
		}
		if data, err = open(s.passphrase, data); err != nil {
			return nil, err
		}
	}

	lists, err := decodeLists(data)
	if err != nil {
		return nil, fmt.Errorf("%w: corrupt watch list file %s: %w", domain.ErrIO, s.path, err)
	}
	s.log.WithFields(logrus.Fields{"path": s.path, "lists": len(lists), "sealed": sealed}).Debug("loaded watch lists")
	return registry.FromLists(lists), nil
}

// Save writes the full registry, replacing the previous contents atomically.
func (s *FileStore) Save(r *registry.Registry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := encodeLists(r.Lists())
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrIO, err)
	}
	sealed := s.passphrase != ""
	if sealed {
		N, rr, p := scryptParamsDefault()
		if b, err = seal(s.passphrase, b, N, rr, p); err != nil {
			return fmt.Errorf("%w: seal: %w", domain.ErrIO, err)
		}
	}
	if err := writeFile(s.path, b, fileMode); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrIO, s.path, err)
	}
	s.log.WithFields(logrus.Fields{"path": s.path, "lists": r.Len(), "sealed": sealed}).Debug("saved watch lists")
	return nil
}
