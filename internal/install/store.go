package install

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// MetaDir is the directory under the skills dir holding skillet metadata.
	MetaDir = ".skillet"

	// LockfileName is the installed-skills lockfile name within MetaDir.
	LockfileName = "installed.yaml"
)

// InstalledSkill tracks one installed skill in the lockfile.
type InstalledSkill struct {
	// Source is the raw install source string the user supplied.
	Source string `yaml:"source"`

	// Kind is how the source was classified (local, git, github).
	Kind string `yaml:"kind"`

	// RepoURL is the resolved clone URL for remote installs.
	RepoURL string `yaml:"repo_url,omitempty"`

	// Subpath is the skill's path within the repository, if any.
	Subpath string `yaml:"subpath,omitempty"`

	// Path is where the skill is installed.
	Path string `yaml:"path"`

	// InstalledAt is when the skill was installed.
	InstalledAt time.Time `yaml:"installed_at"`
}

// Lockfile is the on-disk structure of installed.yaml.
type Lockfile struct {
	// Skills maps skill names to their installation info.
	Skills map[string]InstalledSkill `yaml:"skills"`
}

// Store manages the installed-skills lockfile for a skills directory.
type Store struct {
	path string
}

// NewStore creates a store for the lockfile under skillsDir.
func NewStore(skillsDir string) *Store {
	return &Store{path: filepath.Join(skillsDir, MetaDir, LockfileName)}
}

// NewStoreWithPath creates a store at a custom path (for testing).
func NewStoreWithPath(path string) *Store {
	return &Store{path: path}
}

// Load reads the lockfile, returning an empty one if it does not exist.
func (s *Store) Load() (*Lockfile, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &Lockfile{Skills: make(map[string]InstalledSkill)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading lockfile: %w", err)
	}

	var f Lockfile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing lockfile: %w", err)
	}

	if f.Skills == nil {
		f.Skills = make(map[string]InstalledSkill)
	}

	return &f, nil
}

// Save writes the lockfile.
func (s *Store) Save(f *Lockfile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating lockfile dir: %w", err)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling lockfile: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing lockfile: %w", err)
	}

	return nil
}

// Add tracks a newly installed skill.
func (s *Store) Add(name string, info InstalledSkill) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	info.InstalledAt = time.Now()
	f.Skills[name] = info

	return s.Save(f)
}

// Remove untracks an installed skill.
func (s *Store) Remove(name string) error {
	f, err := s.Load()
	if err != nil {
		return err
	}

	if _, exists := f.Skills[name]; !exists {
		return fmt.Errorf("skill %q not installed", name)
	}

	delete(f.Skills, name)
	return s.Save(f)
}

// Get returns info about an installed skill, nil if not installed.
func (s *Store) Get(name string) (*InstalledSkill, error) {
	f, err := s.Load()
	if err != nil {
		return nil, err
	}

	sk, exists := f.Skills[name]
	if !exists {
		return nil, nil
	}

	return &sk, nil
}

// List returns all installed skills.
func (s *Store) List() (map[string]InstalledSkill, error) {
	f, err := s.Load()
	if err != nil {
		return nil, err
	}
	return f.Skills, nil
}
