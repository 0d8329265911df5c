package sessions

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
)

// Store manages the sessions under a workspace root.
type Store struct {
	root string
}

// Info pairs a session id with its lifecycle record.
type Info struct {
	ID   string
	Meta Meta
}

// NewStore creates the workspace root if needed and returns a store for it.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create workspace %s", root)
	}
	return &Store{root: root}, nil
}

// Create opens a new session named after the task, with a date-prefixed id.
func (st *Store) Create(name string) (*Session, error) {
	id := time.Now().Format("2006-01-02") + "-" + name
	session, err := Open(filepath.Join(st.root, id))
	if err != nil {
		return nil, err
	}
	session.meta.Name = name
	return session, nil
}

// Get opens an existing session by id.
func (st *Store) Get(id string) (*Session, error) {
	if _, err := os.Stat(filepath.Join(st.root, id)); err != nil {
		return nil, errors.Wrapf(err, "session %q not found", id)
	}
	return Open(filepath.Join(st.root, id))
}

// List returns every session in the workspace, most recent id first.
// Directories without a readable meta.json are skipped.
func (st *Store) List() ([]Info, error) {
	entries, err := os.ReadDir(st.root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read workspace %s", st.root)
	}

	var infos []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(st.root, entry.Name(), metaFileName))
		if err != nil {
			continue
		}
		var meta Meta
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		infos = append(infos, Info{ID: entry.Name(), Meta: meta})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID > infos[j].ID })
	return infos, nil
}
