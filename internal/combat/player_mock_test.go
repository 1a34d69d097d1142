package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"termrpg/internal/combat"
	combatmock "termrpg/internal/combat/mock"
	"termrpg/internal/component"
	"termrpg/internal/loot"
	"termrpg/internal/skill"
)

func TestVictoryGrantsLootAndTogglesCombatFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := combatmock.NewMockPlayer(ctrl)
	ledger := skill.NewDefaultLedger()

	gomock.InOrder(
		p.EXPECT().SetInCombat(true),
		p.EXPECT().WeaponBonus().Return(20),
		p.EXPECT().Skills().Return(ledger),
		p.EXPECT().AddItem(100001, 4),
		p.EXPECT().SetInCombat(false),
	)
	p.EXPECT().Health().Return(component.Health{Current: 100, Max: 100}).AnyTimes()

	tables := loot.NewRegistry(loot.Table{Name: "rare", Entries: []loot.Entry{
		{ItemID: 100001, Quantity: &loot.Range{Min: 4, Max: 4}, Weight: 1},
	}})
	enemy := &combat.Enemy{Name: "Orc", Health: component.Health{Current: 30, Max: 30}, Attack: 8, LootTable: "rare"}
	sess := combat.New(p, enemy, combat.Deps{
		Rand:  &scriptedRand{},
		Loot:  tables,
		Items: namer{100001: "Gold Coins"},
	})

	turn := sess.Step(combat.Main)
	require.NotNil(t, turn.Result)
	assert.Equal(t, combat.OutcomeVictory, turn.Result.Outcome)
	assert.False(t, turn.EnemyActed)
	assert.Equal(t, 10.0, ledger.Get(skill.Attack).Experience)
}

func TestDefeatSkipsRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := combatmock.NewMockPlayer(ctrl)

	p.EXPECT().SetInCombat(true)
	p.EXPECT().WeaponBonus().Return(0)
	p.EXPECT().TakeDamage(9999).Return(40)
	p.EXPECT().Health().Return(component.Health{Current: 0, Max: 40}).AnyTimes()
	p.EXPECT().SetInCombat(false)
	p.EXPECT().AddItem(gomock.Any(), gomock.Any()).Times(0)
	p.EXPECT().Skills().Times(0)

	enemy := &combat.Enemy{Name: "Dragon", Health: component.Health{Current: 500, Max: 500}, Attack: 9999, LootTable: "boss"}
	sess := combat.New(p, enemy, combat.Deps{Rand: &scriptedRand{}, Loot: loot.NewRegistry()})

	turn := sess.Step(combat.Main)
	assert.Equal(t, combat.StateDefeat, turn.State)
	assert.Equal(t, 40, turn.DamageTaken)
}
