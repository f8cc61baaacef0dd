package uistate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldsuite/fieldsuite/pkg/logging"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	s.Set(KeyActiveSection, "invoices")

	var got string
	require.True(t, s.Get(KeyActiveSection, &got))
	assert.Equal(t, "invoices", got)

	s.Delete(KeyActiveSection)
	assert.False(t, s.Get(KeyActiveSection, &got))
}

func TestMemoryStore_MissingKey(t *testing.T) {
	s := NewMemoryStore()

	var got bool
	assert.False(t, s.Get(KeySidebarCollapsed, &got))
}

func TestMemoryStore_UndecodableValueIsAbsent(t *testing.T) {
	s := NewMemoryStore()
	Seed(s, KeySidebarOpenGroups, "not json")

	var got []string
	assert.False(t, s.Get(KeySidebarOpenGroups, &got))
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	log := logging.ConsoleLogger(logrus.PanicLevel)

	s := NewFileStore(path, log)
	s.Set(KeySidebarCollapsed, true)
	s.Set(KeySidebarOpenGroups, []string{"financial", "jobs"})

	// A fresh store over the same file sees the persisted values.
	reopened := NewFileStore(path, log)

	var collapsed bool
	require.True(t, reopened.Get(KeySidebarCollapsed, &collapsed))
	assert.True(t, collapsed)

	var groups []string
	require.True(t, reopened.Get(KeySidebarOpenGroups, &groups))
	assert.Equal(t, []string{"financial", "jobs"}, groups)
}

func TestFileStore_DocumentIsVersionedAndRenamedIntoPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s := NewFileStore(path, logging.ConsoleLogger(logrus.PanicLevel))

	s.Set(KeyActiveSection, "team")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc struct {
		Version int                        `json:"version"`
		Values  map[string]json.RawMessage `json:"values"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 1, doc.Version)
	assert.Contains(t, doc.Values, KeyActiveSection)

	// The temp file is renamed away, never left behind.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_VersionMismatchStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	stale := `{"version":99,"values":{"activeSection":"\"jobs\""}}`
	require.NoError(t, os.WriteFile(path, []byte(stale), 0o644))

	s := NewFileStore(path, logging.ConsoleLogger(logrus.PanicLevel))

	var got string
	assert.False(t, s.Get(KeyActiveSection, &got))
}

func TestFileStore_CorruptDocumentStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{{"), 0o644))

	s := NewFileStore(path, logging.ConsoleLogger(logrus.PanicLevel))

	var got string
	assert.False(t, s.Get(KeyActiveSection, &got))

	// The store stays usable after recovery.
	s.Set(KeyActiveSection, "jobs")
	require.True(t, s.Get(KeyActiveSection, &got))
	assert.Equal(t, "jobs", got)
}

func TestFileStore_MissingDocumentStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "state.json")

	s := NewFileStore(path, logging.ConsoleLogger(logrus.PanicLevel))

	var got string
	assert.False(t, s.Get(KeyActiveSection, &got))

	s.Set(KeyActiveSection, "customers")
	require.True(t, s.Get(KeyActiveSection, &got))
	assert.Equal(t, "customers", got)
}
