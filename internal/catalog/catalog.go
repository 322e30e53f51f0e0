// Package catalog is the registry of playable games. Games are loaded from
// YAML documents, checked against a schema and structural rules, then
// served read-only to the rest of the app.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"

	"github.com/abhisek/playdeck/internal/game"
)

// Catalog is an immutable set of games indexed by ID.
type Catalog struct {
	games   []*game.Game
	byID    map[string]*game.Game
	byTopic map[Topic][]*game.Game
}

// New builds a catalog from games in the given order after validating them.
func New(games ...*game.Game) (*Catalog, error) {
	if err := Validate(games); err != nil {
		return nil, err
	}
	c := &Catalog{
		games:   games,
		byID:    make(map[string]*game.Game, len(games)),
		byTopic: make(map[Topic][]*game.Game),
	}
	for _, g := range games {
		c.byID[g.ID] = g
		t := Topic(g.Topic)
		c.byTopic[t] = append(c.byTopic[t], g)
	}
	return c, nil
}

// Load reads every *.yaml and *.yml file at the root of fsys. Files are
// read in name order. Every problem found is reported, not just the first.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch path.Ext(e.Name()) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var (
		games []*game.Game
		errs  []error
	)
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = append(errs, &ContentError{File: name, Message: err.Error()})
			continue
		}
		g, err := Parse(raw)
		if err != nil {
			errs = append(errs, &ContentError{File: name, Message: err.Error()})
			continue
		}
		games = append(games, g)
	}
	if len(errs) > 0 {
		// Still report cross-game problems among the files that parsed.
		return nil, errors.Join(append(errs, Validate(games))...)
	}

	c, err := New(games...)
	if err != nil {
		return nil, err
	}
	log.Printf("catalog: loaded %d games from %d files", len(games), len(names))
	return c, nil
}

// Get returns the game with the given ID.
func (c *Catalog) Get(id string) (*game.Game, error) {
	g, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

// Games returns all games in catalog order.
func (c *Catalog) Games() []*game.Game {
	out := make([]*game.Game, len(c.games))
	copy(out, c.games)
	return out
}

// Len returns the number of games.
func (c *Catalog) Len() int { return len(c.games) }

// Topics returns the topics that have at least one game, in display order.
func (c *Catalog) Topics() []Topic {
	var out []Topic
	for _, t := range AllTopics() {
		if len(c.byTopic[t]) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// ByTopic returns the games of one topic in catalog order.
func (c *Catalog) ByTopic(t Topic) []*game.Game {
	src := c.byTopic[t]
	out := make([]*game.Game, len(src))
	copy(out, src)
	return out
}

// First returns the first game in catalog order, or nil when empty.
func (c *Catalog) First() *game.Game {
	if len(c.games) == 0 {
		return nil
	}
	return c.games[0]
}

// Next returns the game to play after id. An explicit "next" link wins;
// otherwise the following game of the same topic is used. ok is false
// when there is nothing after id.
func (c *Catalog) Next(id string) (*game.Game, bool) {
	g, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	if g.Next != "" {
		n, ok := c.byID[g.Next]
		return n, ok
	}
	peers := c.byTopic[Topic(g.Topic)]
	for i, p := range peers {
		if p.ID == id && i+1 < len(peers) {
			return peers[i+1], true
		}
	}
	return nil, false
}
