// Package file implements the shared key-value store as a single JSON
// document on disk, the layout a host application writes when it shares a
// preferences suite through a common directory.
//
// The document is an object keyed by store key. Values may be inline JSON or
// a JSON string holding encoded JSON; both decode to the same bytes.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

// Store reads keys from a JSON document. The file is re-read on every Get so
// writes by the host are visible immediately.
type Store struct {
	path string
}

// New creates a store backed by the JSON document at path.
// The file does not need to exist yet.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("file store: path cannot be empty")
	}

	return &Store{path: path}, nil
}

// Get implements ports.KeyValueStore.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	raw, ok := doc[key]
	if !ok || string(raw) == "null" {
		return nil, domain.NewNotFoundError("key", key)
	}

	if len(raw) > 0 && raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, domain.NewValidationError(key, err.Error())
		}

		return []byte(encoded), nil
	}

	return raw, nil
}

// Write stores value under key, replacing the document atomically.
// Only local tooling and tests write; the quote resolver never does.
func (s *Store) Write(key string, value []byte) error {
	doc, err := s.load()
	if err != nil && !domain.IsValidation(err) {
		return err
	}

	if doc == nil {
		doc = make(map[string]json.RawMessage)
	}

	if !json.Valid(value) {
		encoded, err := json.Marshal(string(value))
		if err != nil {
			return fmt.Errorf("encoding value for %s: %w", key, err)
		}

		value = encoded
	}

	doc[key] = value

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".store-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(out); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	return os.Rename(tmp.Name(), s.path)
}

// load returns the parsed document. A missing file is an empty document.
func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}

	if err != nil {
		return nil, domain.NewUnavailableError(s.Name(), err.Error())
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewValidationError(s.path, err.Error())
	}

	return doc, nil
}

// Name returns the health check name for this store.
func (s *Store) Name() string {
	return "store:file"
}

// Check reports whether the document can be read and parsed.
func (s *Store) Check(_ context.Context) error {
	_, err := s.load()
	return err
}

// Close is a no-op; the file is opened per read.
func (s *Store) Close() error {
	return nil
}
