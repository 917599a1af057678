package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/parisxmas/qanda/internal/models"
)

// AnswerRepo persists entries as one indented JSON array on disk.
//
// Append serialises read-modify-write inside this process only. Another
// process writing the same file can still lose an append.
type AnswerRepo struct {
	path string
	mu   sync.Mutex
}

func NewAnswerRepo(path string) *AnswerRepo {
	return &AnswerRepo{path: path}
}

func (r *AnswerRepo) Path() string {
	return r.path
}

// List returns every stored element as raw JSON, including elements that do
// not decode as an Entry. A missing or unreadable file, or one that is not a
// JSON array, is an empty store.
func (r *AnswerRepo) List() []json.RawMessage {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return []json.RawMessage{}
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return []json.RawMessage{}
	}
	return raw
}

// Entries decodes the stored elements that fit an Entry and skips the rest,
// null included.
func (r *AnswerRepo) Entries() []models.Entry {
	raw := r.List()
	entries := make([]models.Entry, 0, len(raw))
	for _, el := range raw {
		if string(bytes.TrimSpace(el)) == "null" {
			continue
		}
		var e models.Entry
		if err := json.Unmarshal(el, &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

// Append adds entry to the end of the store and rewrites the file. Existing
// elements are kept as they are, unknown fields included.
func (r *AnswerRepo) Append(entry models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	el, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	return r.save(append(r.List(), el))
}

func (r *AnswerRepo) save(entries []json.RawMessage) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal entries: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
