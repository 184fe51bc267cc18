package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// Collection names one of the three persisted JSON documents.
type Collection string

const (
	CollectionUsers  Collection = "users"
	CollectionBooks  Collection = "books"
	CollectionQuotes Collection = "quotes"
)

// Store reads and writes the three whole-file JSON documents. Every
// mutation rewrites the full document; there is no partial update. A
// per-collection mutex serializes all file access within this process:
// writers hold it across load-modify-save, readers while loading, so a
// read never observes a half-written file. Other processes still race:
// last write wins, and a crash mid-write can leave a truncated file
// behind.
type Store struct {
	dir    string
	logger *logrus.Logger
	mu     map[Collection]*sync.Mutex
}

// New creates the data directory if needed and seeds empty documents for
// any collection file that does not exist yet.
func New(dir string, logger *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{
		dir:    dir,
		logger: logger,
		mu: map[Collection]*sync.Mutex{
			CollectionUsers:  {},
			CollectionBooks:  {},
			CollectionQuotes: {},
		},
	}
	for c := range s.mu {
		path := s.path(c)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *Store) path(c Collection) string {
	return filepath.Join(s.dir, string(c)+".json")
}

// Lock acquires the collection mutex and returns the unlock func.
// Mutating repositories hold it across a full load-modify-save cycle;
// read-only paths hold it for the load.
func (s *Store) Lock(c Collection) func() {
	m := s.mu[c]
	m.Lock()
	return m.Unlock
}

// Load decodes the collection document into dest. A missing or unparsable
// file leaves dest untouched (the caller starts from an empty mapping);
// the condition is logged but never surfaced, which also means a corrupt
// document reads as empty data.
func (s *Store) Load(c Collection, dest any) {
	b, err := os.ReadFile(s.path(c))
	if err != nil {
		if !os.IsNotExist(err) && s.logger != nil {
			s.logger.WithError(err).WithField("collection", c).Warn("collection unreadable, treating as empty")
		}
		return
	}
	if err := json.Unmarshal(b, dest); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("collection", c).Warn("collection unparsable, treating as empty")
		}
	}
}

// Save serializes v and rewrites the whole collection file.
func (s *Store) Save(c Collection, v any) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(c), b, 0o644)
}
