// Package catalog loads item, monster and player templates from YAML.
//
// Templates refer to items by name. Every reference is resolved when the
// catalog is parsed, so spawning from a loaded catalog only fails on
// unknown template IDs.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/entities/action"
	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
)

// Stack is a number of copies of a named item.
type Stack struct {
	Item   string `yaml:"item"`
	Amount int    `yaml:"amount"`
}

// Drop is one row of a drop table. An empty Item drops nothing.
type Drop struct {
	Item string `yaml:"item,omitempty"`
	Odds int    `yaml:"odds"`
}

// MonsterTemplate describes a kind of monster.
type MonsterTemplate struct {
	ID        string          `yaml:"id"`
	Name      string          `yaml:"name"`
	Message   string          `yaml:"message,omitempty"`
	Stats     stats.Update    `yaml:"stats"`
	Gold      int             `yaml:"gold,omitempty"`
	Commands  []action.Action `yaml:"commands,omitempty"`
	Inventory []Stack         `yaml:"inventory,omitempty"`
	Outfit    []string        `yaml:"outfit,omitempty"`
	Treasures []Drop          `yaml:"treasures,omitempty"`
}

// PlayerTemplate describes the starting state of a new player.
type PlayerTemplate struct {
	ID              string          `yaml:"id"`
	Name            string          `yaml:"name"`
	Stats           stats.Update    `yaml:"stats"`
	Gold            int             `yaml:"gold,omitempty"`
	Commands        []action.Action `yaml:"commands,omitempty"`
	Inventory       []Stack         `yaml:"inventory,omitempty"`
	Outfit          []string        `yaml:"outfit,omitempty"`
	RespawnLocation string          `yaml:"respawn_location,omitempty"`
}

// Document is the on-disk layout of a catalog.
type Document struct {
	Items    []items.Item      `yaml:"items"`
	Monsters []MonsterTemplate `yaml:"monsters"`
	Players  []PlayerTemplate  `yaml:"players"`
}

// Catalog is a validated, read-only set of templates.
type Catalog struct {
	items    map[string]items.Item
	monsters map[string]MonsterTemplate
	players  map[string]PlayerTemplate
}

//go:embed default.yaml
var defaultDocument []byte

// Default returns the catalog bundled with the game.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads and parses the catalog at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog %s does not exist", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}

	slog.Debug("Loaded catalog",
		"path", path,
		"items", len(c.items),
		"monsters", len(c.monsters),
		"players", len(c.players),
	)
	return c, nil
}

// Parse decodes and validates a catalog document.
// Unknown fields are rejected.
func Parse(data []byte) (*Catalog, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}
	return New(&doc)
}

// New validates doc and builds a catalog from it.
func New(doc *Document) (*Catalog, error) {
	if doc == nil {
		return nil, errors.InvalidArgument("document is required")
	}

	c := &Catalog{
		items:    make(map[string]items.Item, len(doc.Items)),
		monsters: make(map[string]MonsterTemplate, len(doc.Monsters)),
		players:  make(map[string]PlayerTemplate, len(doc.Players)),
	}

	for _, item := range doc.Items {
		if err := item.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid item %q", item.Name)
		}
		key := items.NameKey(item.Name)
		if _, ok := c.items[key]; ok {
			return nil, errors.InvalidArgumentf("item %q is defined twice", item.Name)
		}
		c.items[key] = item
	}

	for _, m := range doc.Monsters {
		if err := c.validateMonster(m); err != nil {
			return nil, errors.Wrapf(err, "invalid monster %q", m.ID)
		}
		if _, ok := c.monsters[m.ID]; ok {
			return nil, errors.InvalidArgumentf("monster %q is defined twice", m.ID)
		}
		c.monsters[m.ID] = m
	}

	for _, p := range doc.Players {
		if err := c.validatePlayer(p); err != nil {
			return nil, errors.Wrapf(err, "invalid player template %q", p.ID)
		}
		if _, ok := c.players[p.ID]; ok {
			return nil, errors.InvalidArgumentf("player template %q is defined twice", p.ID)
		}
		c.players[p.ID] = p
	}

	return c, nil
}

func (c *Catalog) validateMonster(m MonsterTemplate) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", m.ID, vb)
	errors.ValidateRequired("name", m.Name, vb)
	errors.ValidateMin("gold", m.Gold, 0, vb)
	for _, d := range m.Treasures {
		errors.ValidateMin("treasures.odds", d.Odds, 1, vb)
		if d.Item != "" {
			if _, ok := c.items[items.NameKey(d.Item)]; !ok {
				vb.Fieldf("treasures.item", "unknown item %q", d.Item)
			}
		}
	}
	if err := vb.Build(); err != nil {
		return err
	}
	return c.validateBelongings(m.Commands, m.Inventory, m.Outfit)
}

func (c *Catalog) validatePlayer(p PlayerTemplate) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", p.ID, vb)
	errors.ValidateRequired("name", p.Name, vb)
	errors.ValidateMin("gold", p.Gold, 0, vb)
	if err := vb.Build(); err != nil {
		return err
	}
	return c.validateBelongings(p.Commands, p.Inventory, p.Outfit)
}

func (c *Catalog) validateBelongings(commands []action.Action, inv []Stack, outfit []string) error {
	for _, cmd := range commands {
		if err := cmd.Validate(); err != nil {
			return errors.Wrapf(err, "invalid command %q", cmd.Name)
		}
	}

	vb := errors.NewValidationBuilder()
	for _, s := range inv {
		errors.ValidateMin("inventory.amount", s.Amount, 1, vb)
		if _, ok := c.items[items.NameKey(s.Item)]; !ok {
			vb.Fieldf("inventory.item", "unknown item %q", s.Item)
		}
	}

	worn := make(map[items.Slot]string)
	for _, name := range outfit {
		item, ok := c.items[items.NameKey(name)]
		switch {
		case !ok:
			vb.Fieldf("outfit", "unknown item %q", name)
		case !item.IsEquippable():
			vb.Fieldf("outfit", "%q cannot be equipped", name)
		case worn[item.Slot] != "":
			vb.Fieldf("outfit", "%q and %q both use the %s slot", worn[item.Slot], name, item.Slot)
		default:
			worn[item.Slot] = name
		}
	}
	return vb.Build()
}

// Item returns the item named name, ignoring case.
func (c *Catalog) Item(name string) (items.Item, error) {
	item, ok := c.items[items.NameKey(name)]
	if !ok {
		return items.Item{}, errors.NotFoundf("item %q not found", name)
	}
	return item, nil
}

// Monster returns the monster template with the given ID.
func (c *Catalog) Monster(id string) (MonsterTemplate, error) {
	m, ok := c.monsters[id]
	if !ok {
		return MonsterTemplate{}, errors.NotFoundf("monster %q not found", id)
	}
	return m, nil
}

// Player returns the player template with the given ID.
func (c *Catalog) Player(id string) (PlayerTemplate, error) {
	p, ok := c.players[id]
	if !ok {
		return PlayerTemplate{}, errors.NotFoundf("player template %q not found", id)
	}
	return p, nil
}

// MonsterIDs lists the monster template IDs in sorted order.
func (c *Catalog) MonsterIDs() []string {
	ids := make([]string, 0, len(c.monsters))
	for id := range c.monsters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SpawnMonster creates a fresh monster from the template id. Every call
// returns an independent instance with a new ID.
func (c *Catalog) SpawnMonster(ctx context.Context, id string, ids idgen.Generator, roller dice.Roller) (*entities.Monster, error) {
	if ids == nil || roller == nil {
		return nil, errors.InvalidArgument("id generator and roller are required")
	}

	tmpl, err := c.Monster(id)
	if err != nil {
		return nil, err
	}

	treasures := make([]entities.Treasure, 0, len(tmpl.Treasures))
	for _, d := range tmpl.Treasures {
		t := entities.Treasure{Odds: d.Odds}
		if d.Item != "" {
			item := c.items[items.NameKey(d.Item)]
			t.Item = &item
		}
		treasures = append(treasures, t)
	}

	m, err := entities.NewMonster(&entities.MonsterConfig{
		Entity: entities.Config{
			ID:        ids.Generate(),
			Name:      tmpl.Name,
			Stats:     tmpl.Stats,
			Inventory: c.entries(tmpl.Inventory),
			Outfit:    c.outfit(tmpl.Outfit),
			Gold:      tmpl.Gold,
			Commands:  append([]action.Action(nil), tmpl.Commands...),
		},
		Message:   tmpl.Message,
		Treasures: treasures,
		Roller:    roller,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to spawn monster %q", id)
	}

	slog.DebugContext(ctx, "Spawned monster",
		"template", id,
		"monster_id", m.GetID(),
	)
	return m, nil
}

// NewPlayer creates a player with the given ID from the template templateID.
func (c *Catalog) NewPlayer(templateID, playerID string, in entities.Input) (*entities.Player, error) {
	tmpl, err := c.Player(templateID)
	if err != nil {
		return nil, err
	}

	var commands []action.Action
	if len(tmpl.Commands) > 0 {
		commands = append(commands, tmpl.Commands...)
	}

	p, err := entities.NewPlayer(&entities.PlayerConfig{
		Entity: entities.Config{
			ID:        playerID,
			Name:      tmpl.Name,
			Stats:     tmpl.Stats,
			Inventory: c.entries(tmpl.Inventory),
			Outfit:    c.outfit(tmpl.Outfit),
			Gold:      tmpl.Gold,
			Commands:  commands,
		},
		Input:           in,
		RespawnLocation: tmpl.RespawnLocation,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create player from %q", templateID)
	}
	return p, nil
}

func (c *Catalog) entries(stacks []Stack) []items.Entry {
	out := make([]items.Entry, 0, len(stacks))
	for _, s := range stacks {
		out = append(out, items.Entry{Item: c.items[items.NameKey(s.Item)], Amount: s.Amount})
	}
	return out
}

func (c *Catalog) outfit(names []string) []items.Item {
	out := make([]items.Item, 0, len(names))
	for _, name := range names {
		out = append(out, c.items[items.NameKey(name)])
	}
	return out
}
