// Package console runs line-based adventure sessions over arbitrary
// reader/writer pairs, which covers both the local terminal and SSH
// channels. It owns rendering: messages from the game engine are styled
// through the theme and word-wrapped to the session width.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ilyavolkan/tui-fable/internal/game"
	"github.com/ilyavolkan/tui-fable/internal/prompt"
	"github.com/ilyavolkan/tui-fable/internal/storage"
	"github.com/ilyavolkan/tui-fable/internal/story"
	"github.com/ilyavolkan/tui-fable/internal/theme"
	"github.com/ilyavolkan/tui-fable/internal/wrap"
)

// DefaultSlot is used by bare "save" and "restore" commands.
const DefaultSlot = "quick"

// SessionConfig bundles everything a session needs.
type SessionConfig struct {
	Story        *story.Story
	Theme        theme.Theme
	PromptFormat string
	Width        int

	// Store is optional; without it, save and restore report an error to
	// the player but play continues.
	Store *storage.Store
}

// Session drives one playthrough over in/out.
type Session struct {
	cfg SessionConfig
	g   *game.Game
	in  *bufio.Scanner
	out io.Writer
}

// NewSession creates a session ready to Run.
func NewSession(cfg SessionConfig, in io.Reader, out io.Writer) (*Session, error) {
	g, err := game.New(cfg.Story)
	if err != nil {
		return nil, err
	}
	if cfg.PromptFormat == "" {
		cfg.PromptFormat = prompt.DefaultFormat
	}
	return &Session{
		cfg: cfg,
		g:   g,
		in:  bufio.NewScanner(in),
		out: out,
	}, nil
}

// Run plays the story until victory, quit, or EOF. On victory the
// completion is recorded and the best result shown.
func (s *Session) Run() error {
	s.render(s.g.Intro())

	for !s.g.Over() {
		s.writePrompt()
		if !s.in.Scan() {
			break
		}
		line := strings.TrimSpace(s.in.Text())
		if s.handleMeta(line) {
			continue
		}
		s.render(s.g.Handle(line))
	}

	if s.g.Won() {
		s.recordCompletion()
	}
	return s.in.Err()
}

// handleMeta intercepts save/restore/saves, which need the store and are
// not part of the game vocabulary. Returns true if the line was consumed.
func (s *Session) handleMeta(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}

	slot := DefaultSlot
	if len(fields) > 1 {
		slot = fields[1]
	}

	switch fields[0] {
	case "save":
		s.saveGame(slot)
	case "restore", "load":
		s.restoreGame(slot)
	case "saves":
		s.listSaves()
	default:
		return false
	}
	return true
}

func (s *Session) saveGame(slot string) {
	if s.cfg.Store == nil {
		s.say(theme.CategoryError, "Saving is not available in this session.")
		return
	}
	if err := s.cfg.Store.SaveGame(slot, s.g.Snapshot()); err != nil {
		s.say(theme.CategoryError, fmt.Sprintf("Save failed: %v", err))
		return
	}
	s.say(theme.CategorySystem, fmt.Sprintf("Saved to slot %q.", slot))
}

func (s *Session) restoreGame(slot string) {
	if s.cfg.Store == nil {
		s.say(theme.CategoryError, "Restoring is not available in this session.")
		return
	}
	snap, err := s.cfg.Store.LoadGame(slot)
	if err != nil {
		s.say(theme.CategoryError, fmt.Sprintf("Restore failed: %v", err))
		return
	}
	if snap == nil {
		s.say(theme.CategoryError, fmt.Sprintf("No save in slot %q.", slot))
		return
	}
	if err := s.g.Restore(*snap); err != nil {
		s.say(theme.CategoryError, fmt.Sprintf("Restore failed: %v", err))
		return
	}
	s.say(theme.CategorySystem, fmt.Sprintf("Restored slot %q.", slot))
	s.render(s.g.Handle("look"))
}

func (s *Session) listSaves() {
	if s.cfg.Store == nil {
		s.say(theme.CategoryError, "Saving is not available in this session.")
		return
	}
	entries, err := s.cfg.Store.ListSaves()
	if err != nil {
		s.say(theme.CategoryError, fmt.Sprintf("Cannot list saves: %v", err))
		return
	}
	if len(entries) == 0 {
		s.say(theme.CategorySystem, "No saved games.")
		return
	}
	for _, e := range entries {
		s.say(theme.CategorySystem, fmt.Sprintf("  %s - %s, %d moves", e.Slot, e.StoryID, e.Moves))
	}
}

func (s *Session) recordCompletion() {
	if s.cfg.Store == nil {
		return
	}
	if _, err := s.cfg.Store.RecordCompletion(s.g.StoryID(), s.g.Moves()); err != nil {
		return
	}
	if best, err := s.cfg.Store.BestCompletion(s.g.StoryID()); err == nil && best > 0 {
		s.say(theme.CategorySystem, fmt.Sprintf("Finished in %d moves (best: %d).", s.g.Moves(), best))
	}
}

func (s *Session) writePrompt() {
	text := prompt.Render(s.cfg.PromptFormat, prompt.Info{
		Room:  s.g.RoomTitle(),
		Moves: s.g.Moves(),
		Items: s.g.InventoryCount(),
	})
	fmt.Fprint(s.out, s.cfg.Theme.Render(theme.CategoryPrompt, text))
}

func (s *Session) say(cat theme.Category, text string) {
	s.render([]game.Message{{Category: cat, Text: text}})
}

// render styles each message, wraps it to the session width, and writes it
// followed by a blank line between narration blocks.
func (s *Session) render(msgs []game.Message) {
	for _, m := range msgs {
		styled := s.cfg.Theme.Render(m.Category, m.Text)
		fmt.Fprintln(s.out, wrap.Wrap(styled, s.cfg.Width))
	}
	if len(msgs) > 0 {
		fmt.Fprintln(s.out)
	}
}
