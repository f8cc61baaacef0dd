// Package uistate is the persisted key/value store shared by the navigation
// and sidebar controllers. Readers treat any value that fails to decode as
// absent; the store never returns an error to its callers.
package uistate

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Persisted state keys. Values are JSON-serializable and independent;
// writes are last-write-wins and never require cross-key atomicity.
const (
	KeySidebarCollapsed  = "sidebarCollapsed"
	KeySidebarOpenGroups = "sidebarOpenGroups"
	KeyActiveSection     = "activeSection"
	KeyAuthSession       = "authSession"
	KeyDemoMode          = "demoModeFlag"
)

type Store interface {
	// Get decodes the value under key into the given pointer. It reports
	// false when the key is absent or the stored value does not decode.
	Get(key string, into interface{}) bool
	Set(key string, value interface{})
	Delete(key string)
}

// NewMemoryStore returns a store backed by an in-process map. Used in tests
// and for sessions that opted out of persistence.
func NewMemoryStore() Store {
	return &memoryStore{values: make(map[string]json.RawMessage)}
}

type memoryStore struct {
	values map[string]json.RawMessage
}

func (s *memoryStore) Get(key string, into interface{}) bool {
	raw, ok := s.values[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, into) == nil
}

func (s *memoryStore) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.values[key] = raw
}

func (s *memoryStore) Delete(key string) {
	delete(s.values, key)
}

// Seed writes a raw, possibly malformed value under key. Exposed for tests
// exercising corrupt-storage recovery.
func Seed(s Store, key, raw string) {
	switch st := s.(type) {
	case *memoryStore:
		st.values[key] = json.RawMessage(raw)
	case *fileStore:
		st.values[key] = json.RawMessage(raw)
		st.flush()
	}
}

// documentVersion guards the on-disk layout. A document written by an
// incompatible build is discarded wholesale rather than half-decoded.
const documentVersion = 1

type document struct {
	Version int                        `json:"version"`
	Values  map[string]json.RawMessage `json:"values"`
}

// NewFileStore returns a store persisted as a single versioned JSON document
// at path. A missing, corrupt or version-mismatched document yields an empty
// store; decode failures are logged for diagnostics only.
func NewFileStore(path string, log *logrus.Logger) Store {
	s := &fileStore{path: path, log: log, values: make(map[string]json.RawMessage)}
	s.load()
	return s
}

type fileStore struct {
	path   string
	log    *logrus.Logger
	values map[string]json.RawMessage
}

func (s *fileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		if s.log != nil {
			s.log.WithError(err).WithField("path", s.path).Debug("uistate: corrupt state document, starting from defaults")
		}
		return
	}
	if doc.Version != documentVersion || doc.Values == nil {
		if s.log != nil {
			s.log.WithField("path", s.path).WithField("version", doc.Version).Debug("uistate: unsupported document version, starting from defaults")
		}
		return
	}
	s.values = doc.Values
}

// flush writes the whole document to a sibling temp file and renames it into
// place, so a crash mid-write leaves the previous document intact.
func (s *fileStore) flush() {
	data, err := json.Marshal(document{Version: documentVersion, Values: s.values})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		if s.log != nil {
			s.log.WithError(err).Debug("uistate: cannot create state directory")
		}
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		if s.log != nil {
			s.log.WithError(err).WithField("path", tmp).Debug("uistate: write failed")
		}
		return
	}
	if err := os.Rename(tmp, s.path); err != nil && s.log != nil {
		s.log.WithError(err).WithField("path", s.path).Debug("uistate: rename failed")
	}
}

func (s *fileStore) Get(key string, into interface{}) bool {
	raw, ok := s.values[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, into); err != nil {
		if s.log != nil {
			s.log.WithError(err).WithField("key", key).Debug("uistate: undecodable value treated as absent")
		}
		return false
	}
	return true
}

func (s *fileStore) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.values[key] = raw
	s.flush()
}

func (s *fileStore) Delete(key string) {
	delete(s.values, key)
	s.flush()
}
