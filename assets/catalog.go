package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"termrpg/internal/component"
	"termrpg/internal/encounter"
	"termrpg/internal/loot"
	"termrpg/internal/quest"
)

//go:embed data/*.yaml
var embedded embed.FS

// ErrUnknownItem is returned for item ids missing from the catalog.
var ErrUnknownItem = errors.New("unknown item")

// KitEntry is one stack of the starting inventory.
type KitEntry struct {
	ItemID   int `yaml:"item"`
	Quantity int `yaml:"quantity"`
}

// PlayerSetup describes a fresh character.
type PlayerSetup struct {
	MaxHealth     int           `yaml:"max_health"`
	StartingItems []KitEntry    `yaml:"starting_items"`
	Equip         []int         `yaml:"equip"`
	Quests        []quest.Quest `yaml:"quests"`
}

// Catalog is all static game data.
type Catalog struct {
	Items   map[int]component.Item
	Loot    *loot.Registry
	Roster  encounter.Roster
	Player  PlayerSetup
	ordered []int
}

type itemsFile struct {
	Items []component.Item `yaml:"items"`
}

type tablesFile struct {
	Tables []loot.Table `yaml:"tables"`
}

type enemiesFile struct {
	Enemies []encounter.Template `yaml:"enemies"`
}

// Default loads the catalog compiled into the binary.
func Default() (*Catalog, error) { return Load("") }

// Load reads the catalog, looking in dir first when it is non-empty and
// falling back to the embedded data file by file.
func Load(dir string) (*Catalog, error) {
	base, err := embeddedData()
	if err != nil {
		return nil, err
	}
	sources := []fs.FS{base}
	if dir != "" {
		sources = append([]fs.FS{os.DirFS(dir)}, sources...)
	}
	return LoadFS(sources...)
}

func embeddedData() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded data: %w", err)
	}
	return sub, nil
}

// LoadFS reads the catalog from the first source holding each file.
func LoadFS(sources ...fs.FS) (*Catalog, error) {
	var (
		items   itemsFile
		tables  tablesFile
		enemies enemiesFile
		setup   PlayerSetup
	)
	for name, target := range map[string]any{
		"items.yaml":       &items,
		"loot_tables.yaml": &tables,
		"enemies.yaml":     &enemies,
		"player.yaml":      &setup,
	} {
		if err := decode(sources, name, target); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		Items:  make(map[int]component.Item, len(items.Items)),
		Loot:   loot.NewRegistry(tables.Tables...),
		Roster: enemies.Enemies,
		Player: setup,
	}
	for _, it := range items.Items {
		if _, dup := c.Items[it.ID]; dup {
			return nil, fmt.Errorf("items.yaml: duplicate item id %d", it.ID)
		}
		c.Items[it.ID] = it
		c.ordered = append(c.ordered, it.ID)
	}
	sort.Ints(c.ordered)
	if err := c.validate(tables.Tables); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(sources []fs.FS, name string, target any) error {
	for _, src := range sources {
		f, err := src.Open(name)
		if err != nil {
			continue
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(target); err != nil {
			return fmt.Errorf("decode %s: %w", name, err)
		}
		return nil
	}
	return fmt.Errorf("could not find %s in any data source", name)
}

func (c *Catalog) validate(tables []loot.Table) error {
	var errs []error
	for _, t := range tables {
		if err := t.Validate(); err != nil {
			errs = append(errs, err)
		}
		for _, e := range t.Entries {
			if e.ItemID != loot.Nothing && !c.Has(e.ItemID) {
				errs = append(errs, fmt.Errorf("loot table %q: %w %d", t.Name, ErrUnknownItem, e.ItemID))
			}
		}
	}
	for _, tmpl := range c.Roster {
		if _, ok := c.Loot.Table(tmpl.LootTable); !ok {
			errs = append(errs, fmt.Errorf("enemy %q: unknown loot table %q", tmpl.Name, tmpl.LootTable))
		}
		if tmpl.Health <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: health must be positive", tmpl.Name))
		}
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player.yaml: max_health must be positive"))
	}
	for _, k := range c.Player.StartingItems {
		if !c.Has(k.ItemID) {
			errs = append(errs, fmt.Errorf("player.yaml: starting item: %w %d", ErrUnknownItem, k.ItemID))
		}
	}
	for _, id := range c.Player.Equip {
		if it, ok := c.Items[id]; !ok || !it.Equippable() {
			errs = append(errs, fmt.Errorf("player.yaml: item %d cannot be equipped", id))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// Has reports whether id is a catalog item.
func (c *Catalog) Has(id int) bool {
	_, ok := c.Items[id]
	return ok
}

// Item returns the catalog entry for id.
func (c *Catalog) Item(id int) (component.Item, error) {
	it, ok := c.Items[id]
	if !ok {
		return component.Item{}, fmt.Errorf("%w %d", ErrUnknownItem, id)
	}
	return it, nil
}

// ItemName returns the display name of id.
func (c *Catalog) ItemName(id int) (string, bool) {
	it, ok := c.Items[id]
	return it.Name, ok
}

// IDs returns all item ids in ascending order.
func (c *Catalog) IDs() []int { return c.ordered }
