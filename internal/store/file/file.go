// Package file persists registry state as a YAML snapshot on disk. It
// is the default backend in development: human-readable and trivially
// inspectable.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nulzo/model-registry-api/internal/registry"
	"github.com/nulzo/model-registry-api/internal/store"
	"gopkg.in/yaml.v3"
)

type FileStore struct {
	path string
}

func NewFileStore(path string) store.Store {
	return &FileStore{path: path}
}

type snapshot struct {
	Namespace string         `yaml:"namespace"`
	State     registry.State `yaml:"state"`
}

func (s *FileStore) Load(ctx context.Context) (*registry.State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var snap snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return &snap.State, nil
}

func (s *FileStore) Save(ctx context.Context, state registry.State) error {
	data, err := yaml.Marshal(snapshot{
		Namespace: store.Namespace,
		State:     state,
	})
	if err != nil {
		return err
	}

	// write-then-rename so a crash mid-save never truncates the snapshot
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Close() error { return nil }
