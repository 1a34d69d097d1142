package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termrpg/internal/component"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Items, 93)
	gold, err := c.Item(100001)
	require.NoError(t, err)
	assert.Equal(t, "Gold Coins", gold.Name)
	assert.Equal(t, component.TypeCurrency, gold.Type)

	dagger, err := c.Item(100101)
	require.NoError(t, err)
	assert.Equal(t, component.TypeWeapon, dagger.Type)
	assert.Equal(t, component.SlotMainHand, dagger.Slot)
	assert.Positive(t, dagger.BonusATK)

	potion, err := c.Item(100302)
	require.NoError(t, err)
	require.NotNil(t, potion.Effect)
	assert.Positive(t, potion.Effect.HealthChange)

	for _, name := range []string{"common", "rare", "very_rare", "boss"} {
		_, ok := c.Loot.Table(name)
		assert.True(t, ok, "missing loot table %s", name)
	}
	require.NotEmpty(t, c.Roster)
	assert.Equal(t, "Goblin", c.Roster[0].Name)
	assert.Equal(t, 30, c.Roster[0].Health)
	assert.Equal(t, 5, c.Roster[0].Attack)

	assert.Equal(t, 100, c.Player.MaxHealth)
	assert.NotEmpty(t, c.Player.Quests)
}

func TestCatalogItemLookup(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Item(424242)
	assert.True(t, errors.Is(err, ErrUnknownItem))
	name, ok := c.ItemName(100303)
	assert.True(t, ok)
	assert.Equal(t, "Magic Scroll", name)

	ids := c.IDs()
	assert.IsIncreasing(t, ids)
	assert.Equal(t, 100001, ids[0])
}

func TestEveryEnemyHasLore(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	for _, e := range c.Roster {
		assert.Contains(t, EnemyLore, e.Name)
	}
}

func TestLoadFSRejectsDanglingReferences(t *testing.T) {
	override := fstest.MapFS{
		"loot_tables.yaml": {Data: []byte(`
tables:
  - name: common
    entries:
      - {item: 777, weight: 1}
      - {item: 100001, quantity: {min: 5, max: 1}, weight: 1}
`)},
		"enemies.yaml": {Data: []byte(`
enemies:
  - {name: Ghost, health: 10, attack: 1, loot_table: spectral}
`)},
	}
	base, err := embeddedData()
	require.NoError(t, err)

	_, err = LoadFS(override, base)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownItem))
	assert.Contains(t, err.Error(), "inverted")
	assert.Contains(t, err.Error(), `unknown loot table "spectral"`)
}

func TestLoadDirOverridesSingleFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("enemies:\n  - {name: Slime, health: 12, attack: 2, loot_table: common}\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "enemies.yaml"), data, 0o644))

	c, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, c.Roster, 1)
	assert.Equal(t, "Slime", c.Roster[0].Name)
	assert.Len(t, c.Items, 93, "files absent from the override fall back to the embedded data")
}

func TestLoadFSMissingFile(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find")
}

func TestLoadFSBadYAML(t *testing.T) {
	base, err := embeddedData()
	require.NoError(t, err)
	_, err = LoadFS(fstest.MapFS{"items.yaml": {Data: []byte("items: [{id: 1, type: Sword}]")}}, base)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode items.yaml")
}
