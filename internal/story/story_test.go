package story

import (
	"strings"
	"testing"
)

const validYAML = `
id: test
title: Test Story
intro: An intro.
start: a
victory:
  room: b
  text: You win.
rooms:
  - id: a
    title: Room A
    description: First room.
    exits:
      north: b
  - id: b
    title: Room B
    description: Second room.
    exits:
      south: a
`

func TestParseValid(t *testing.T) {
	s, err := Parse([]byte(validYAML))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if s.ID != "test" {
		t.Errorf("ID = %q, expected \"test\"", s.ID)
	}
	if len(s.Rooms) != 2 {
		t.Errorf("len(Rooms) = %d, expected 2", len(s.Rooms))
	}
	if s.Room("a") == nil || s.Room("a").Exits["north"] != "b" {
		t.Error("room a should have a north exit to b")
	}
	if s.Room("missing") != nil {
		t.Error("Room(\"missing\") should return nil")
	}
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s string) string
		wantErr string
	}{
		{"missing start", func(s string) string { return strings.Replace(s, "start: a", "start: nowhere", 1) }, "start room"},
		{"bad exit", func(s string) string { return strings.Replace(s, "north: b", "north: void", 1) }, "unknown room"},
		{"bad victory room", func(s string) string { return strings.Replace(s, "room: b", "room: void", 1) }, "victory room"},
		{"duplicate room", func(s string) string { return strings.Replace(s, "id: b", "id: a", 1) }, "duplicate room"},
		{"missing title", func(s string) string { return strings.Replace(s, "title: Test Story", "title: \"\"", 1) }, "missing title"},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.mutate(validYAML)))
		if err == nil {
			t.Errorf("%s: Parse succeeded, expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, err := Parse([]byte("rooms: [")); err == nil {
		t.Error("Parse of malformed YAML should fail")
	}
}

func TestBuiltinStoriesRegistered(t *testing.T) {
	for _, id := range []string{"lighthouse", "hollow"} {
		if !Exists(id) {
			t.Errorf("built-in story %q not registered", id)
			continue
		}
		s, err := Get(id)
		if err != nil {
			t.Errorf("Get(%q) error: %v", id, err)
			continue
		}
		if err := s.Validate(); err != nil {
			t.Errorf("built-in story %q invalid: %v", id, err)
		}
	}
}

func TestListSorted(t *testing.T) {
	infos := List()
	if len(infos) < 2 {
		t.Fatalf("List() returned %d stories, expected at least 2", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID > infos[i].ID {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("no-such-story"); err == nil {
		t.Error("Get of unknown story should fail")
	}
}
