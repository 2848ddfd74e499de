// Package favorites persists the set of user-marked session names as a
// sorted, newline-delimited text file. Durability is best effort: callers
// log failures and carry on with what they have.
package favorites

import (
	"os"
	"sort"
	"strings"
)

// Set holds session names marked as favorites.
type Set map[string]struct{}

// Has reports membership of a session name.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members sorted lexicographically.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Store reads and writes the favorites file.
type Store struct {
	path string
}

// NewStore returns a store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted set. A missing file yields an empty set with no
// error; any other read failure yields an empty set and the error so the
// caller can log it.
func (s *Store) Load() (Set, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return Set{}, err
	}
	set := Set{}
	for _, line := range strings.Split(string(data), "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set, nil
}

// Save writes the set sorted, one name per line with a trailing newline.
// An empty set truncates the file.
func (s *Store) Save(set Set) error {
	var content string
	if len(set) > 0 {
		content = strings.Join(set.Names(), "\n") + "\n"
	}
	return os.WriteFile(s.path, []byte(content), 0o644)
}

// Toggle flips membership of name and persists the result. It returns the
// new membership state; load and save errors are reported alongside it
// rather than rolling the in-memory flip back, since an unreadable store
// behaves as an empty set.
func (s *Store) Toggle(name string) (bool, error) {
	set, loadErr := s.Load()
	var favorite bool
	if set.Has(name) {
		delete(set, name)
	} else {
		set[name] = struct{}{}
		favorite = true
	}
	if err := s.Save(set); err != nil {
		return favorite, err
	}
	return favorite, loadErr
}
