package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const manifestFile = "manifest.json"

type artifactStore struct {
	dir     string
	logger  *logrus.Logger
	mu      sync.Mutex
	records []entities.Screenshot
}

// NewArtifactStore - creates a file-backed artifact store rooted at dir
func NewArtifactStore(dir string, logger *logrus.Logger) (interfaces.ArtifactStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}

	store := &artifactStore{dir: dir, logger: logger}

	// Pick up records from a previous run, if any.
	data, err := os.ReadFile(filepath.Join(dir, manifestFile))
	if err == nil {
		if err := json.Unmarshal(data, &store.records); err != nil {
			logger.WithError(err).WithField("file", filepath.Join(dir, manifestFile)).
				Warn("ignoring corrupt artifact manifest")
			store.records = nil
		}
	}

	return store, nil
}

// SaveScreenshot - writes screenshot data to disk and records it in the manifest
func (s *artifactStore) SaveScreenshot(name, scenario string, data []byte) (entities.Screenshot, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return entities.Screenshot{}, fmt.Errorf("invalid artifact name: %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, name+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return entities.Screenshot{}, fmt.Errorf("failed to write screenshot: %w", err)
	}

	record := entities.Screenshot{
		Name:     name,
		Path:     path,
		Scenario: scenario,
		TakenAt:  time.Now(),
	}
	s.records = append(s.records, record)

	if err := s.writeManifest(); err != nil {
		return entities.Screenshot{}, err
	}

	return record, nil
}

// Manifest - returns all recorded artifacts
func (s *artifactStore) Manifest() ([]entities.Screenshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Screenshot, len(s.records))
	copy(out, s.records)
	return out, nil
}

// writeManifest - persists the manifest file; caller holds the lock
func (s *artifactStore) writeManifest() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, manifestFile), data, 0644)
}
