package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/localshop/localshop/pkg/logger"
)

// Persisted keys. The cart survives restarts; the pending order is written
// only when a checkout could not reach the server, for manual recovery.
const (
	CartKey         = "localshop_cart"
	PendingOrderKey = "localshop_pending_order"
)

const stateFile = "localshop_state.json"

// LocalStore is the client-side persistence namespace: a small key→JSON map
// written through to a single file, mirroring what the browser storefront
// keeps in localStorage. Everything is best-effort — a missing or corrupt
// state file is an empty store, and failed writes are logged diagnostics.
type LocalStore struct {
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

// OpenLocalStore loads the persisted state from dir.
func OpenLocalStore(dir string) *LocalStore {
	s := &LocalStore{
		path:   filepath.Join(dir, stateFile),
		values: map[string]json.RawMessage{},
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s.values); err != nil {
		logger.Debug("client state unreadable, starting empty", "path", s.path, "error", err)
		s.values = map[string]json.RawMessage{}
	}
	return s
}

// Get unmarshals the value under key into dest.
// Returns false when the key is absent or unreadable.
func (s *LocalStore) Get(key string, dest interface{}) bool {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()

	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores v under key and writes the whole store through to disk.
func (s *LocalStore) Set(key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warn("client state encode failed", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()

	s.flush()
}

// Delete removes key and writes through.
func (s *LocalStore) Delete(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()

	s.flush()
}

func (s *LocalStore) flush() {
	s.mu.Lock()
	data, err := json.MarshalIndent(s.values, "", "  ")
	s.mu.Unlock()
	if err != nil {
		logger.Warn("client state encode failed", "error", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logger.Warn("client state dir failed", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logger.Warn("client state write failed", "path", s.path, "error", err)
	}
}
