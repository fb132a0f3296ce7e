// Package store persists past calculations to a JSON history file.
// Writes are serialized with a file lock and land via atomic rename,
// so concurrent CLI invocations cannot corrupt the history.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/alexiusacademia/goaci/internal/beam"
)

// Record is one saved calculation: the input as entered and the full
// result derived from it
type Record struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Input     beam.SectionInput  `json:"input"`
	Result    beam.SectionResult `json:"result"`
}

// Store reads and writes the calculation history file
type Store struct {
	path string
}

// New creates a store backed by the given history file path.
// The file and its directory are created on first save.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the default history file location under the
// user's home directory
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "goaci_history.json"
	}
	return filepath.Join(home, ".goaci", "history.json")
}

func (s *Store) lock() (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	fl := flock.New(s.path + ".lock")
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("locking history file: %w", err)
	}
	return fl, nil
}

func (s *Store) readAll() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	return records, nil
}

// writeAll replaces the history file atomically (write temp, rename)
func (s *Store) writeAll(records []Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing history: %w", err)
	}
	return nil
}

// Save appends a calculation to the history and returns the stored record
func (s *Store) Save(input beam.SectionInput, result beam.SectionResult) (*Record, error) {
	fl, err := s.lock()
	if err != nil {
		return nil, err
	}
	defer fl.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	record := Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Input:     input,
		Result:    result,
	}
	records = append(records, record)

	if err := s.writeAll(records); err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns the most recent records, newest first.
// A limit <= 0 returns everything.
func (s *Store) List(limit int) ([]Record, error) {
	fl, err := s.lock()
	if err != nil {
		return nil, err
	}
	defer fl.Unlock()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}

	// Reverse to newest-first
	out := make([]Record, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Get returns a record by ID, or an error when no record matches
func (s *Store) Get(id string) (*Record, error) {
	records, err := s.List(0)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("no calculation with id %s", id)
}

// Clear removes all saved calculations
func (s *Store) Clear() error {
	fl, err := s.lock()
	if err != nil {
		return err
	}
	defer fl.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
