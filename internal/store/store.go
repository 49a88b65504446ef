package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const (
	CollectionGallery     = "gallery"
	CollectionCommissions = "commissions"
	CollectionEnquiries   = "enquiries"
)

var (
	ErrNotFound    = errors.New("record not found")
	ErrWriteFailed = errors.New("collection write failed")
)

// Store keeps one JSON array file per collection under dir. Every mutation is
// a whole-file read-modify-write, so each collection carries its own mutex;
// that lock is the single concurrency guarantee in the system and is enough
// for a single-instance deployment.
type Store struct {
	dir string
	log zerolog.Logger
	mu  map[string]*sync.Mutex
}

func Open(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		dir: dir,
		log: log,
		mu:  make(map[string]*sync.Mutex),
	}

	for _, name := range []string{CollectionGallery, CollectionCommissions, CollectionEnquiries} {
		s.mu[name] = &sync.Mutex{}
		file := s.path(name)
		if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
			if err := os.WriteFile(file, []byte("[]"), 0o644); err != nil {
				return nil, fmt.Errorf("seed collection %s: %w", name, err)
			}
		}
	}

	return s, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) lock(name string) *sync.Mutex {
	return s.mu[name]
}

// readCollection self-heals: a missing or unparsable file reads as an empty
// collection and is never surfaced to the caller.
func readCollection[T any](s *Store, name string) []T {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn().Err(err).Str("collection", name).Msg("collection read failed, treating as empty")
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.Warn().Err(err).Str("collection", name).Msg("collection unparsable, treating as empty")
		return nil
	}
	return items
}

// writeCollection replaces the whole file via temp file + rename so a crash
// mid-write never leaves a torn collection behind.
func writeCollection[T any](s *Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrWriteFailed, name, err)
	}

	tmp, err := os.CreateTemp(s.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
