// Package game implements the adventure command interpreter. Games contain
// pure logic with no I/O and no escape sequences; output is a list of
// categorized messages that the console layer styles and wraps.
package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ilyavolkan/tui-fable/internal/story"
	"github.com/ilyavolkan/tui-fable/internal/theme"
)

// Message is one unit of game output, tagged with the theme category the
// renderer should use.
type Message struct {
	Category theme.Category
	Text     string
}

// Game is the mutable play state for one story.
type Game struct {
	story     *story.Story
	rooms     map[string]*story.Room
	items     map[string]*story.Item
	floor     map[string][]string // room id -> item ids currently there
	inventory []string
	current   string
	visited   map[string]bool
	moves     int
	over      bool
	won       bool
}

// directionAliases maps shorthand movement words to canonical exits.
var directionAliases = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"u": "up", "d": "down",
}

// New creates a game at the story's start room.
func New(s *story.Story) (*Game, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		story:   s,
		rooms:   make(map[string]*story.Room, len(s.Rooms)),
		items:   make(map[string]*story.Item),
		floor:   make(map[string][]string),
		visited: make(map[string]bool),
		current: s.Start,
	}
	for i := range s.Rooms {
		r := &s.Rooms[i]
		g.rooms[r.ID] = r
		for j := range r.Items {
			it := &r.Items[j]
			g.items[it.ID] = it
			g.floor[r.ID] = append(g.floor[r.ID], it.ID)
		}
	}
	g.visited[s.Start] = true
	return g, nil
}

// Over reports whether the game has ended (victory or quit).
func (g *Game) Over() bool { return g.over }

// Won reports whether the game ended in victory.
func (g *Game) Won() bool { return g.won }

// Moves returns the number of successful moves so far.
func (g *Game) Moves() int { return g.moves }

// StoryID returns the id of the story being played.
func (g *Game) StoryID() string { return g.story.ID }

// RoomTitle returns the title of the current room, for prompts.
func (g *Game) RoomTitle() string { return g.rooms[g.current].Title }

// InventoryCount returns how many items the player carries.
func (g *Game) InventoryCount() int { return len(g.inventory) }

// Intro returns the opening messages: title, intro text, and the first
// room description.
func (g *Game) Intro() []Message {
	msgs := []Message{
		{theme.CategoryTitle, g.story.Title},
	}
	if g.story.Author != "" {
		msgs = append(msgs, Message{theme.CategorySystem, "by " + g.story.Author})
	}
	msgs = append(msgs, Message{theme.CategoryNarration, strings.TrimSpace(g.story.Intro)})
	return append(msgs, g.describeRoom()...)
}

// Handle interprets one line of player input and returns the resulting
// messages. Unknown verbs produce an error message, never a state change.
func (g *Game) Handle(line string) []Message {
	if g.over {
		return []Message{{theme.CategorySystem, "The story is over."}}
	}

	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}
	verb, rest := fields[0], strings.Join(fields[1:], " ")

	// Bare direction words work without "go".
	if dir, ok := directionAliases[verb]; ok {
		return g.move(dir)
	}
	if g.isExit(verb) {
		return g.move(verb)
	}

	switch verb {
	case "go", "walk", "move":
		if rest == "" {
			return []Message{{theme.CategoryError, "Go where?"}}
		}
		if dir, ok := directionAliases[rest]; ok {
			return g.move(dir)
		}
		return g.move(rest)
	case "look", "l":
		return g.describeRoom()
	case "take", "get":
		return g.take(rest)
	case "drop":
		return g.drop(rest)
	case "inventory", "i", "inv":
		return g.showInventory()
	case "help", "?":
		return g.help()
	case "quit", "q", "exit":
		g.over = true
		return []Message{{theme.CategorySystem, "You close the book."}}
	default:
		return []Message{{theme.CategoryError, fmt.Sprintf("I don't know how to %q. Try \"help\".", verb)}}
	}
}

func (g *Game) isExit(word string) bool {
	_, ok := g.rooms[g.current].Exits[word]
	return ok
}

func (g *Game) move(dir string) []Message {
	room := g.rooms[g.current]
	dest, ok := room.Exits[dir]
	if !ok {
		return []Message{{theme.CategoryError, fmt.Sprintf("You can't go %s from here.", dir)}}
	}

	g.current = dest
	g.moves++
	first := !g.visited[dest]
	g.visited[dest] = true

	var msgs []Message
	if first {
		msgs = g.describeRoom()
	} else {
		msgs = []Message{{theme.CategoryRoom, g.rooms[dest].Title}}
		msgs = append(msgs, g.listItems()...)
	}

	if win := g.checkVictory(); win != nil {
		msgs = append(msgs, win...)
	}
	return msgs
}

func (g *Game) take(name string) []Message {
	if name == "" {
		return []Message{{theme.CategoryError, "Take what?"}}
	}

	here := g.floor[g.current]
	for i, id := range here {
		it := g.items[id]
		if !matchesItem(it, name) {
			continue
		}
		if !it.Portable {
			return []Message{{theme.CategoryError, fmt.Sprintf("The %s won't budge.", it.Name)}}
		}
		g.floor[g.current] = append(here[:i], here[i+1:]...)
		g.inventory = append(g.inventory, id)
		g.moves++

		msgs := []Message{{theme.CategoryItem, fmt.Sprintf("Taken: %s.", it.Name)}}
		if win := g.checkVictory(); win != nil {
			msgs = append(msgs, win...)
		}
		return msgs
	}
	return []Message{{theme.CategoryError, fmt.Sprintf("There is no %q here.", name)}}
}

func (g *Game) drop(name string) []Message {
	if name == "" {
		return []Message{{theme.CategoryError, "Drop what?"}}
	}

	for i, id := range g.inventory {
		it := g.items[id]
		if !matchesItem(it, name) {
			continue
		}
		g.inventory = append(g.inventory[:i], g.inventory[i+1:]...)
		g.floor[g.current] = append(g.floor[g.current], id)
		g.moves++
		return []Message{{theme.CategoryItem, fmt.Sprintf("Dropped: %s.", it.Name)}}
	}
	return []Message{{theme.CategoryError, fmt.Sprintf("You aren't carrying %q.", name)}}
}

// matchesItem accepts the item id, its full name, or any single word of
// the name ("take lens" picks up the brass lens).
func matchesItem(it *story.Item, name string) bool {
	if name == it.ID || name == strings.ToLower(it.Name) {
		return true
	}
	for _, w := range strings.Fields(strings.ToLower(it.Name)) {
		if w == name {
			return true
		}
	}
	return false
}

func (g *Game) showInventory() []Message {
	if len(g.inventory) == 0 {
		return []Message{{theme.CategorySystem, "You are carrying nothing."}}
	}
	msgs := []Message{{theme.CategorySystem, "You are carrying:"}}
	for _, id := range g.inventory {
		msgs = append(msgs, Message{theme.CategoryItem, "  " + g.items[id].Name})
	}
	return msgs
}

func (g *Game) describeRoom() []Message {
	room := g.rooms[g.current]
	msgs := []Message{
		{theme.CategoryRoom, room.Title},
		{theme.CategoryNarration, strings.TrimSpace(room.Description)},
	}
	msgs = append(msgs, g.listItems()...)

	if len(room.Exits) > 0 {
		dirs := make([]string, 0, len(room.Exits))
		for dir := range room.Exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		msgs = append(msgs, Message{theme.CategorySystem, "Exits: " + strings.Join(dirs, ", ")})
	}
	return msgs
}

func (g *Game) listItems() []Message {
	var msgs []Message
	for _, id := range g.floor[g.current] {
		msgs = append(msgs, Message{theme.CategoryItem, "You see: " + g.items[id].Name})
	}
	return msgs
}

func (g *Game) help() []Message {
	return []Message{
		{theme.CategorySystem, "Commands: look, go <direction>, take <item>, drop <item>, inventory, save [slot], restore [slot], help, quit."},
		{theme.CategorySystem, "Directions can be used bare: north, south, east, west, up, down (or n/s/e/w/u/d)."},
	}
}

// checkVictory returns the victory messages if the condition is met,
// ending the game; nil otherwise.
func (g *Game) checkVictory() []Message {
	v := g.story.Victory
	if g.current != v.Room {
		return nil
	}
	if v.Item != "" && !g.carrying(v.Item) {
		return nil
	}
	g.over = true
	g.won = true
	return []Message{{theme.CategoryVictory, strings.TrimSpace(v.Text)}}
}

func (g *Game) carrying(itemID string) bool {
	for _, id := range g.inventory {
		if id == itemID {
			return true
		}
	}
	return false
}
