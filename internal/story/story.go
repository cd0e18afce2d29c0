// Package story defines the YAML adventure format: rooms connected by
// exits, items to pick up, and a victory condition. Stories are static
// data; all mutable play state lives in the game package.
package story

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Story is a complete adventure definition.
type Story struct {
	ID      string  `yaml:"id"`
	Title   string  `yaml:"title"`
	Author  string  `yaml:"author,omitempty"`
	Intro   string  `yaml:"intro"`
	Start   string  `yaml:"start"`
	Victory Victory `yaml:"victory"`
	Rooms   []Room  `yaml:"rooms"`
}

// Room is a single location.
type Room struct {
	ID          string            `yaml:"id"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Exits       map[string]string `yaml:"exits,omitempty"`
	Items       []Item            `yaml:"items,omitempty"`
}

// Item is an object found in a room. Portable items can be picked up.
type Item struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Portable    bool   `yaml:"portable,omitempty"`
}

// Victory describes the winning condition: reaching Room, optionally while
// carrying Item. Text is shown when the player wins.
type Victory struct {
	Room string `yaml:"room"`
	Item string `yaml:"item,omitempty"`
	Text string `yaml:"text"`
}

// Parse decodes a story from YAML and validates it.
func Parse(data []byte) (*Story, error) {
	var s Story
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("story: cannot parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a story file from disk.
func Load(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("story: cannot read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("story: %s: %w", path, err)
	}
	return s, nil
}

// Validate checks structural integrity: IDs present and unique, the start
// room exists, every exit leads to a defined room, and the victory room
// and item (if any) exist.
func (s *Story) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("story: missing id")
	}
	if s.Title == "" {
		return fmt.Errorf("story %s: missing title", s.ID)
	}
	if len(s.Rooms) == 0 {
		return fmt.Errorf("story %s: no rooms", s.ID)
	}

	rooms := make(map[string]bool, len(s.Rooms))
	items := make(map[string]bool)
	for _, r := range s.Rooms {
		if r.ID == "" {
			return fmt.Errorf("story %s: room with empty id", s.ID)
		}
		if rooms[r.ID] {
			return fmt.Errorf("story %s: duplicate room id %q", s.ID, r.ID)
		}
		rooms[r.ID] = true
		for _, it := range r.Items {
			if it.ID == "" {
				return fmt.Errorf("story %s: room %s: item with empty id", s.ID, r.ID)
			}
			if items[it.ID] {
				return fmt.Errorf("story %s: duplicate item id %q", s.ID, it.ID)
			}
			items[it.ID] = true
		}
	}

	if !rooms[s.Start] {
		return fmt.Errorf("story %s: start room %q not defined", s.ID, s.Start)
	}
	for _, r := range s.Rooms {
		for dir, dest := range r.Exits {
			if !rooms[dest] {
				return fmt.Errorf("story %s: room %s: exit %s leads to unknown room %q", s.ID, r.ID, dir, dest)
			}
		}
	}

	if s.Victory.Room == "" {
		return fmt.Errorf("story %s: missing victory room", s.ID)
	}
	if !rooms[s.Victory.Room] {
		return fmt.Errorf("story %s: victory room %q not defined", s.ID, s.Victory.Room)
	}
	if s.Victory.Item != "" && !items[s.Victory.Item] {
		return fmt.Errorf("story %s: victory item %q not defined", s.ID, s.Victory.Item)
	}

	return nil
}

// Room returns the room with the given id, or nil.
func (s *Story) Room(id string) *Room {
	for i := range s.Rooms {
		if s.Rooms[i].ID == id {
			return &s.Rooms[i]
		}
	}
	return nil
}
