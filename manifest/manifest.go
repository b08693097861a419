package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"ebs-image-builder/collection"

	yaml "gopkg.in/yaml.v2"
)

// AllTests selects every test case of a manifest
const AllTests = "all"

var testNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// TestCase is one installer run. Payload is the path of the user data file,
// relative to the manifest unless absolute.
type TestCase struct {
	Name         string `yaml:"name"`
	Payload      string `yaml:"payload"`
	DiskSizeGB   int64  `yaml:"disk_size_gb,omitempty"`
	InstanceType string `yaml:"instance_type,omitempty"`

	PayloadBytes []byte `yaml:"-"`
}

type Manifest struct {
	Tests []TestCase `yaml:"tests"`
}

func NewFromReader(r io.Reader) (*Manifest, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("parsing test manifest: %w", err)
	}

	if err := m.validate(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manifest) validate() error {
	if len(m.Tests) == 0 {
		return errors.New("tests must contain at least one test case")
	}

	seen := map[string]bool{}
	for i, t := range m.Tests {
		if t.Name == "" {
			return fmt.Errorf("name must be specified for test %d", i)
		}
		if t.Name == AllTests {
			return fmt.Errorf("name %q is reserved", AllTests)
		}
		if !testNamePattern.MatchString(t.Name) {
			return fmt.Errorf("name %q may only contain letters, digits, '.', '_' and '-'", t.Name)
		}
		if seen[t.Name] {
			return fmt.Errorf("name %q is used by more than one test", t.Name)
		}
		seen[t.Name] = true

		if t.Payload == "" {
			return fmt.Errorf("payload must be specified for test %s", t.Name)
		}
		if t.DiskSizeGB < 0 {
			return fmt.Errorf("disk_size_gb must be positive for test %s", t.Name)
		}
	}

	return nil
}

// Select returns the test case called name, or every test case for AllTests
// and the empty name
func (m *Manifest) Select(name string) ([]TestCase, error) {
	if name == "" || name == AllTests {
		return m.Tests, nil
	}

	for _, t := range m.Tests {
		if t.Name == name {
			return []TestCase{t}, nil
		}
	}

	return nil, fmt.Errorf("no test named %q", name)
}

// LoadPayloads reads the payload of every test case, resolving relative paths against baseDir
func (m *Manifest) LoadPayloads(baseDir string) error {
	for i := range m.Tests {
		path := m.Tests[i].Payload
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		payload, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading payload of test %s: %w", m.Tests[i].Name, err)
		}
		m.Tests[i].PayloadBytes = payload
	}

	return nil
}

// Report summarises a test suite run against one seed image
type Report struct {
	SeedImageID string              `yaml:"seed_image_id"`
	Passed      int                 `yaml:"passed"`
	Failed      int                 `yaml:"failed"`
	Results     []collection.Result `yaml:"results"`
}

func (r Report) Write(w io.Writer) error {
	b, err := yaml.Marshal(r)
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
