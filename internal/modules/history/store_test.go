package history

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/reusedev/plant-hub/internal/consts"
	"github.com/reusedev/plant-hub/internal/modules/observer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data", "analysis_history.json"))
}

func strPtr(s string) *string { return &s }

func TestStoreMissingFile(t *testing.T) {
	s := newTestStore(t)
	entries, err := s.List()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis_history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	s := NewStore(path)
	entries, err := s.List()
	require.NoError(t, err)
	require.Empty(t, entries)

	id, err := s.NextID()
	require.NoError(t, err)
	require.Equal(t, 1, id)
}

func TestStoreAppendList(t *testing.T) {
	s := newTestStore(t)
	at := time.Date(2025, 3, 14, 9, 26, 53, 589793000, time.Local)

	id, err := s.NextID()
	require.NoError(t, err)
	require.NoError(t, s.Append(NewEntry(id, consts.Diagnosis, "HEALTH STATUS:", "<div>x</div>", strPtr("/static/uploads/a.jpg"), at)))
	id, err = s.NextID()
	require.NoError(t, err)
	require.NoError(t, s.Append(NewEntry(id, consts.Identification, "Light: Full sun", "<div>y</div>", nil, at)))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, 1, entries[0].Id)
	require.Equal(t, "2025-03-14T09:26:53.589793", entries[0].Timestamp)
	require.Equal(t, "diagnosis", entries[0].Type)
	require.Equal(t, "/static/uploads/a.jpg", *entries[0].ImagePath)
	require.Equal(t, 2, entries[1].Id)
	require.Equal(t, "identification", entries[1].Type)
	require.Nil(t, entries[1].ImagePath)

	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  {\n    \"id\": 1,")
	require.Contains(t, string(data), `"image_path": null`)
	require.Contains(t, string(data), `"formatted_analysis": "<div>x</div>"`)
}

func TestStoreListFormatsLegacyEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis_history.json")
	legacy := `[{"id": 7, "timestamp": "2024-01-01T10:00:00.000000", "analysis": "Light: Full sun", "type": "identification"}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	entries, err := NewStore(path).List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, `<div class="response-subheader"><span class="label">Light:</span> <span class="value"> Full sun</span></div>`, entries[0].FormattedAnalysis)
	require.Nil(t, entries[0].ImagePath)
}

func TestStoreIDsStayUniqueAfterDelete(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 3; i++ {
		id, err := s.NextID()
		require.NoError(t, err)
		require.NoError(t, s.Append(NewEntry(id, consts.Diagnosis, "x", "", nil, time.Now())))
	}
	_, err := s.Delete(3)
	require.NoError(t, err)
	_, err = s.Delete(1)
	require.NoError(t, err)

	id, err := s.NextID()
	require.NoError(t, err)
	require.Equal(t, 4, id)

	// a restarted store does not hand out 4 again, though it never reached the file
	id, err = NewStore(s.path).NextID()
	require.NoError(t, err)
	require.Equal(t, 5, id)
}

func TestStoreIDsSurviveRestartAfterClear(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 2; i++ {
		id, err := s.NextID()
		require.NoError(t, err)
		require.NoError(t, s.Append(NewEntry(id, consts.Diagnosis, "x", "", nil, time.Now())))
	}
	_, err := s.Clear()
	require.NoError(t, err)

	id, err := NewStore(s.path).NextID()
	require.NoError(t, err)
	require.Equal(t, 3, id)
}

func TestStoreMalformedSequence(t *testing.T) {
	s := newTestStore(t)
	id, err := s.NextID()
	require.NoError(t, err)
	require.NoError(t, s.Append(NewEntry(id, consts.Diagnosis, "x", "", nil, time.Now())))
	require.NoError(t, os.WriteFile(s.seqPath(), []byte("many"), 0644))

	id, err = NewStore(s.path).NextID()
	require.NoError(t, err)
	require.Equal(t, 2, id)
}

func TestStoreConcurrentNextID(t *testing.T) {
	s := newTestStore(t)
	const n = 50
	ids := make(chan int, n)
	wg := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := s.NextID()
			assert.NoError(t, err)
			assert.NoError(t, s.Append(NewEntry(id, consts.Diagnosis, "x", "", nil, time.Now())))
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)
	seen := make(map[int]bool)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, n)
}

func TestStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis_history.json")
	dup := `[{"id": 1, "analysis": "a", "type": "diagnosis", "image_path": "/static/uploads/a.jpg"},
{"id": 1, "analysis": "b", "type": "diagnosis", "image_path": null},
{"id": 2, "analysis": "c", "type": "identification", "image_path": null}]`
	require.NoError(t, os.WriteFile(path, []byte(dup), 0644))
	s := NewStore(path)

	removed, err := s.Delete(1)
	require.NoError(t, err)
	require.Len(t, removed, 2)
	require.Equal(t, "/static/uploads/a.jpg", *removed[0].ImagePath)

	_, err = s.Delete(1)
	require.ErrorIs(t, err, ErrNotFound)

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 2, entries[0].Id)
}

func TestStoreClear(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(NewEntry(1, consts.Diagnosis, "a", "", nil, time.Now())))
	require.NoError(t, s.Append(NewEntry(2, consts.Diagnosis, "b", "", nil, time.Now())))

	removed, err := s.Clear()
	require.NoError(t, err)
	require.Len(t, removed, 2)

	entries, err := s.List()
	require.NoError(t, err)
	require.Empty(t, entries)
	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

type eventLog struct {
	events []string
	data   []interface{}
}

func (l *eventLog) Update(event string, data interface{}) {
	l.events = append(l.events, event)
	l.data = append(l.data, data)
}

func TestStoreNotifiesObservers(t *testing.T) {
	s := newTestStore(t)
	l := &eventLog{}
	s.Attach(l)

	id, err := s.NextID()
	require.NoError(t, err)
	entry := NewEntry(id, consts.Diagnosis, "HEALTH STATUS:", "", nil, time.Now())
	require.NoError(t, s.Append(entry))
	_, err = s.Delete(42)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Delete(id)
	require.NoError(t, err)
	_, err = s.Clear()
	require.NoError(t, err)

	require.Equal(t, []string{observer.EventAppend, observer.EventDelete, observer.EventClear}, l.events)
	require.Equal(t, entry, l.data[0])
	require.Equal(t, []Entry{entry}, l.data[1])
}
