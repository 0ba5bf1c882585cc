package locators

import (
	"fmt"
	"os"
	"sync"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// locatorFile mirrors the on-disk YAML layout: a single `locators` section
// mapping symbolic keys to data-testid values.
type locatorFile struct {
	Locators map[string]string `yaml:"locators"`
}

type registry struct {
	logger *logrus.Logger
	mu     sync.Mutex
	cache  map[string]entities.LocatorMap
}

// NewRegistry - creates a locator registry with an empty cache
func NewRegistry(logger *logrus.Logger) interfaces.LocatorSource {
	return &registry{
		logger: logger,
		cache:  make(map[string]entities.LocatorMap),
	}
}

// Load - parses a locator YAML file, caching the result per path
func (r *registry) Load(path string) (entities.LocatorMap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[path]; ok {
		return cached.Clone(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &entities.NotFoundError{Path: path}
		}
		return nil, &entities.NotFoundError{Path: path, Err: err}
	}

	var parsed locatorFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, &entities.NotFoundError{Path: path, Err: err}
	}
	if len(parsed.Locators) == 0 {
		return nil, &entities.NotFoundError{Path: path, Err: fmt.Errorf("no locators section")}
	}

	m := entities.LocatorMap(parsed.Locators)
	r.cache[path] = m

	r.logger.WithFields(logrus.Fields{
		"file": path,
		"keys": len(m),
	}).Debug("loaded locator file")

	return m.Clone(), nil
}
