// Package history records completed machine runs in a line-delimited JSON
// file under the user state directory. The file is shared between
// invocations, so access goes through an advisory file lock.
package history

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Record is one completed run.
type Record struct {
	ID         string        `json:"id"`
	RuleFile   string        `json:"rule_file"`
	Input      string        `json:"input"`
	Output     string        `json:"output"`
	FinalState string        `json:"final_state"`
	Steps      int           `json:"steps"`
	HeadMoves  int           `json:"head_moves"`
	Duration   time.Duration `json:"duration"`
	When       time.Time     `json:"when"`
}

// Store appends and reads run records.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the history file location, honoring XDG_STATE_HOME.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "tm", "history.jsonl"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "tm", "history.jsonl"), nil
}

// Append records rec, assigning it an ID and timestamp if unset.
func (s *Store) Append(rec Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.When.IsZero() {
		rec.When = time.Now()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking history: %w", err)
	}
	defer lock.Unlock() //nolint:errcheck

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("writing history record: %w", err)
	}
	return nil
}

// Recent returns up to n records, most recent first. A missing history file
// yields no records. Lines that fail to decode are skipped so one corrupt
// entry cannot hide the rest.
func (s *Store) Recent(n int) ([]Record, error) {
	// Taking the lock would create its file, which needs the state
	// directory to exist; with no history file there is nothing to read
	// and nothing worth creating.
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.RLock(); err != nil {
		return nil, fmt.Errorf("locking history: %w", err)
	}
	defer lock.Unlock() //nolint:errcheck

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history: %w", err)
	}

	if n > 0 && len(records) > n {
		records = records[len(records)-n:]
	}
	// File order is oldest first; callers want most recent first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
