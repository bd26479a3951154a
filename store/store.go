// Package store persists the single "tutorial seen" flag in a small YAML file.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const fileName = "state.yaml"

type state struct {
	TutorialSeen bool `yaml:"tutorial_seen"`
}

// FileStore reads the flag once and writes it back when it changes. Any storage failure
// leaves the game behaving as if the tutorial was never seen.
type FileStore struct {
	mu    sync.Mutex
	path  string
	state state
}

// DefaultPath is state.yaml under the user's config directory.
func DefaultPath(app string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(dir, app, fileName), nil
}

// Open loads the flag file at path. An empty path gives a memory-only store.
func Open(path string) *FileStore {
	s := &FileStore{path: path}
	if path == "" {
		return s
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("reading %s: %v", path, err)
		}
		return s
	}
	if err := yaml.Unmarshal(data, &s.state); err != nil {
		log.Warnf("decoding %s: %v", path, err)
		s.state = state{}
	}
	return s
}

func (s *FileStore) TutorialSeen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TutorialSeen
}

// MarkTutorialSeen sets the flag and persists it; write errors are logged only.
func (s *FileStore) MarkTutorialSeen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.TutorialSeen {
		return
	}
	s.state.TutorialSeen = true
	if err := s.save(); err != nil {
		log.Warnf("saving tutorial flag: %v", err)
	}
}

func (s *FileStore) save() error {
	if s.path == "" {
		return nil
	}
	data, err := yaml.Marshal(&s.state)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
