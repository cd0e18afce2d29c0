package game

import "fmt"

// Snapshot is a serializable capture of play state, used by the save
// system. Item positions are stored in full so dropped items stay where
// the player left them.
type Snapshot struct {
	Story     string              `json:"story"`
	Room      string              `json:"room"`
	Inventory []string            `json:"inventory"`
	Floor     map[string][]string `json:"floor"`
	Visited   []string            `json:"visited"`
	Moves     int                 `json:"moves"`
}

// Snapshot captures the current play state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Story:     g.story.ID,
		Room:      g.current,
		Inventory: append([]string(nil), g.inventory...),
		Floor:     make(map[string][]string, len(g.floor)),
		Moves:     g.moves,
	}
	for room, items := range g.floor {
		snap.Floor[room] = append([]string(nil), items...)
	}
	for room, seen := range g.visited {
		if seen {
			snap.Visited = append(snap.Visited, room)
		}
	}
	return snap
}

// Restore replaces the play state with a previously captured snapshot.
// The snapshot must belong to the same story and reference only known
// rooms and items.
func (g *Game) Restore(snap Snapshot) error {
	if snap.Story != g.story.ID {
		return fmt.Errorf("game: snapshot belongs to story %q, not %q", snap.Story, g.story.ID)
	}
	if _, ok := g.rooms[snap.Room]; !ok {
		return fmt.Errorf("game: snapshot room %q not in story", snap.Room)
	}
	for _, id := range snap.Inventory {
		if _, ok := g.items[id]; !ok {
			return fmt.Errorf("game: snapshot item %q not in story", id)
		}
	}
	for room, items := range snap.Floor {
		if _, ok := g.rooms[room]; !ok {
			return fmt.Errorf("game: snapshot room %q not in story", room)
		}
		for _, id := range items {
			if _, ok := g.items[id]; !ok {
				return fmt.Errorf("game: snapshot item %q not in story", id)
			}
		}
	}

	g.current = snap.Room
	g.inventory = append([]string(nil), snap.Inventory...)
	g.floor = make(map[string][]string, len(snap.Floor))
	for room, items := range snap.Floor {
		g.floor[room] = append([]string(nil), items...)
	}
	g.visited = make(map[string]bool, len(snap.Visited))
	for _, room := range snap.Visited {
		g.visited[room] = true
	}
	g.visited[snap.Room] = true
	g.moves = snap.Moves
	g.over = false
	g.won = false
	return nil
}
