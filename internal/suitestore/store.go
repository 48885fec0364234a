// Package suitestore persists expectation suites as YAML files under the
// validation project directory.
package suitestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/dqgate/internal/expect"
)

// ErrNotFound reports a suite name with no stored definition.
var ErrNotFound = errors.New("expectation suite not found")

// Store reads and writes suites below <dir>/expectations.
type Store struct {
	dir string
}

// New returns a store rooted at the given project directory. Nothing is
// created until the first write.
func New(projectDir string) *Store {
	return &Store{dir: filepath.Join(projectDir, "expectations")}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}

// AddOrUpdate writes the suite, replacing any existing suite of the same
// name. The write is atomic (temp file + rename) so a crashed run never
// leaves a half-written suite behind.
func (s *Store) AddOrUpdate(suite expect.Suite) error {
	if err := suite.Validate(); err != nil {
		return fmt.Errorf("invalid suite: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create expectations dir: %w", err)
	}

	data, err := yaml.Marshal(suite)
	if err != nil {
		return fmt.Errorf("marshal suite: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+suite.Name+"-*")
	if err != nil {
		return fmt.Errorf("create temp suite file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write suite: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close suite file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path(suite.Name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace suite file: %w", err)
	}
	return nil
}

// Get loads a suite by name. Returns ErrNotFound if it was never defined.
func (s *Store) Get(name string) (expect.Suite, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return expect.Suite{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return expect.Suite{}, fmt.Errorf("read suite %s: %w", name, err)
	}

	var suite expect.Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return expect.Suite{}, fmt.Errorf("parse suite %s: %w", name, err)
	}
	if err := suite.Validate(); err != nil {
		return expect.Suite{}, fmt.Errorf("stored suite %s: %w", name, err)
	}
	return suite, nil
}

// List returns the names of all stored suites, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read expectations dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}
