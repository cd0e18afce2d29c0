package story

import (
	"fmt"
	"sort"
	"sync"
)

// Info contains metadata about a registered story.
type Info struct {
	ID     string
	Title  string
	Author string
	Rooms  int
}

var (
	mu      sync.RWMutex
	stories = make(map[string]*Story)
)

// Register adds a story to the registry. Built-in stories register
// themselves at init time. Panics if the ID is already taken.
func Register(s *Story) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := stories[s.ID]; exists {
		panic(fmt.Sprintf("story: %q already registered", s.ID))
	}
	stories[s.ID] = s
}

// List returns information about all registered stories, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(stories))
	for _, s := range stories {
		result = append(result, Info{
			ID:     s.ID,
			Title:  s.Title,
			Author: s.Author,
			Rooms:  len(s.Rooms),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered story by ID.
func Get(id string) (*Story, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := stories[id]
	if !ok {
		return nil, fmt.Errorf("story: unknown story %q", id)
	}
	return s, nil
}

// Exists reports whether a story with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := stories[id]
	return ok
}
