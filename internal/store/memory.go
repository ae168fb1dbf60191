package store

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is an in-memory Store used by tests. Documents survive a
// JSON round-trip on every write and read so callers never share state
// with the store, and each kind keeps its insertion order so paginated
// reads are stable.
type MemoryStore struct {
	mu    sync.RWMutex
	kinds map[string][]memoryEntry
}

type memoryEntry struct {
	id  string
	doc map[string]any
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{kinds: make(map[string][]memoryEntry)}
}

func (s *MemoryStore) Get(ctx context.Context, kind, id string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.kinds[kind] {
		if e.id == id {
			return decode(e.doc, out)
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Insert(ctx context.Context, kind, id string, doc any) error {
	m, err := toMap(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.kinds[kind] {
		if e.id == id {
			return ErrExists
		}
	}
	s.kinds[kind] = append(s.kinds[kind], memoryEntry{id: id, doc: m})
	return nil
}

func (s *MemoryStore) Upsert(ctx context.Context, kind, id string, doc any) error {
	m, err := toMap(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.kinds[kind]
	for i, e := range entries {
		if e.id == id {
			entries[i].doc = m
			return nil
		}
	}
	s.kinds[kind] = append(entries, memoryEntry{id: id, doc: m})
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.kinds[kind]
	for i, e := range entries {
		if e.id == id {
			s.kinds[kind] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) Query(ctx context.Context, kind string, filter map[string]any, limit, offset int, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]map[string]any, 0)
	for _, e := range s.kinds[kind] {
		if matches(e.doc, filter) {
			matched = append(matched, e.doc)
		}
	}

	if offset >= len(matched) {
		matched = matched[:0]
	} else {
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return decode(matched, out)
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func matches(doc map[string]any, filter map[string]any) bool {
	for field, want := range filter {
		got, ok := doc[field]
		if !ok || !jsonEqual(got, want) {
			return false
		}
	}
	return true
}

// jsonEqual compares values through their JSON forms, so an int filter
// matches the float64 the round-trip leaves behind.
func jsonEqual(a, b any) bool {
	ja, err := json.Marshal(a)
	if err != nil {
		return false
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}

func toMap(doc any) (map[string]any, error) {
	var m map[string]any
	if err := decode(doc, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decode(in, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
