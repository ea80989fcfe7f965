package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/plant-hub/internal/modules/formatter"
	"github.com/reusedev/plant-hub/internal/modules/logs"
	"github.com/reusedev/plant-hub/internal/modules/metrics"
	"github.com/reusedev/plant-hub/internal/modules/observer"
)

var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var GStore *Store

func Init(path string) {
	GStore = NewStore(path)
}

// Store keeps the history as a JSON array in a single file. Every
// operation reads and rewrites the whole file under one lock.
// Attached observers are notified after each successful write, while the
// lock is still held, so they must not call back into the store.
type Store struct {
	observer.Observers
	path      string
	lock      sync.Mutex
	lastID    int
	seqLoaded bool
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}
	entries := make([]Entry, 0)
	if err = json.Unmarshal(data, &entries); err != nil {
		logs.Logger.Warn().Err(err).Str("path", s.path).Msg("history file is malformed, starting empty")
		return []Entry{}, nil
	}
	return entries, nil
}

// seqPath holds the highest id ever handed out, so deleting the newest
// entry does not free its id across restarts.
func (s *Store) seqPath() string {
	return s.path + ".seq"
}

func (s *Store) loadSeq() {
	if s.seqLoaded {
		return
	}
	s.seqLoaded = true
	data, err := os.ReadFile(s.seqPath())
	if err != nil {
		if !os.IsNotExist(err) {
			logs.Logger.Warn().Err(err).Str("path", s.seqPath()).Msg("read history sequence")
		}
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		logs.Logger.Warn().Err(err).Str("path", s.seqPath()).Msg("history sequence is malformed")
		return
	}
	if n > s.lastID {
		s.lastID = n
	}
}

func (s *Store) saveSeq() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0770); err != nil {
			return err
		}
	}
	if err := os.WriteFile(s.seqPath(), []byte(strconv.Itoa(s.lastID)), 0644); err != nil {
		return fmt.Errorf("write history sequence: %w", err)
	}
	return nil
}

func (s *Store) save(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0770); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace history: %w", err)
	}
	metrics.HistoryEntries.Set(float64(len(entries)))
	return nil
}

// NextID reserves an identifier larger than any stored or previously
// reserved one, including ids reserved before a restart.
func (s *Store) NextID() (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	entries, err := s.load()
	if err != nil {
		return 0, err
	}
	s.loadSeq()
	for _, v := range entries {
		if v.Id > s.lastID {
			s.lastID = v.Id
		}
	}
	s.lastID++
	if err = s.saveSeq(); err != nil {
		return 0, err
	}
	return s.lastID, nil
}

func (s *Store) Append(entry Entry) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	entries, err := s.load()
	if err != nil {
		return err
	}
	if entry.Id > s.lastID {
		s.lastID = entry.Id
	}
	if err = s.save(append(entries, entry)); err != nil {
		return err
	}
	s.Notify(observer.EventAppend, entry)
	return nil
}

// List returns all entries in insertion order. Entries stored without a
// formatted analysis get one rendered from the raw text.
func (s *Store) List() ([]Entry, error) {
	s.lock.Lock()
	entries, err := s.load()
	s.lock.Unlock()
	if err != nil {
		return nil, err
	}
	for i := range entries {
		if entries[i].FormattedAnalysis == "" {
			entries[i].FormattedAnalysis = formatter.Format(entries[i].Analysis)
		}
	}
	return entries, nil
}

// Delete removes every entry with id and returns them. Files written by
// older releases may hold duplicate ids.
func (s *Store) Delete(id int) ([]Entry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	var removed []Entry
	kept := make([]Entry, 0, len(entries))
	for _, v := range entries {
		if v.Id == id {
			removed = append(removed, v)
			continue
		}
		kept = append(kept, v)
	}
	if len(removed) == 0 {
		return nil, ErrNotFound
	}
	if err = s.save(kept); err != nil {
		return nil, err
	}
	s.Notify(observer.EventDelete, removed)
	return removed, nil
}

// Clear empties the history and returns what it held.
func (s *Store) Clear() ([]Entry, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	if err = s.save([]Entry{}); err != nil {
		return nil, err
	}
	s.Notify(observer.EventClear, entries)
	return entries, nil
}
