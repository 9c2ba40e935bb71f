package sim

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/vmath"
	"github.com/lixenwraith/rampage/world"
)

func TestWaitResolvesTurn(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())

	next, fx := e.Apply(s, Wait())

	require.NotSame(t, s, next)
	assert.Equal(t, 1, next.Turn)
	assert.Equal(t, 1, next.Creature.Hunger)
	assert.Equal(t, 1, next.Creature.ActionPoints)
	assert.True(t, hasCue(fx, event.CueTurn))

	assert.Equal(t, 0, s.Turn, "input state untouched")
	assert.Equal(t, 0, s.Creature.Hunger)
}

func TestCommandsRejectedAfterGameOver(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())
	s.End(engine.CauseDestroyed)

	for _, cmd := range []Command{Move(core.East), Wait(), Ranged(), Throw()} {
		next, fx := e.Apply(s, cmd)
		assert.Same(t, s, next, cmd.Kind.String())
		assert.Empty(t, fx)
	}
}

func TestBerserkIgnoresCommands(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Creature.Berserk = true

	next, _ := e.Apply(s, Move(core.East))

	assert.Same(t, s, next)
}

func TestWaterCostsNothing(t *testing.T) {
	e, s := newTestEngine(t, component.VariantApe, vmath.NewScriptedRand())
	s.Grid.Set(center.Add(core.East), world.Terrain(world.CellDeepWater))

	next, fx := e.Apply(s, Move(core.East))

	assert.Equal(t, "Too deep!", next.Message)
	assert.Equal(t, center, next.Creature.Pos)
	assert.Equal(t, 2, next.Creature.ActionPoints)
	assert.Equal(t, 0, next.Turn)
	assert.True(t, hasCue(fx, event.CueBlocked))
}

func TestRangedWithoutBreath(t *testing.T) {
	e, s := newTestEngine(t, component.VariantApe, vmath.NewScriptedRand())

	next, fx := e.Apply(s, Ranged())

	assert.Same(t, s, next)
	assert.Empty(t, fx)
}

func TestRangedEndsTurn(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Civilians = []component.Civilian{{Pos: center.Offset(0, -2)}}

	next, fx := e.Apply(s, Ranged())

	assert.Equal(t, 1, next.Turn)
	assert.True(t, hasCue(fx, event.CueBreath))
	assert.Equal(t, -1, next.CivilianAt(center.Offset(0, -2)))
}

func TestRangedPowerPlantChain(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())
	plant := center.Step(core.East, 2)
	s.Grid.Set(plant, world.Structure(world.CellPowerPlant, parameter.PowerPlantHP))

	for _, want := range []int{4, 2} {
		s, _ = e.Apply(s, Ranged())
		require.Equal(t, world.CellPowerPlant, s.Grid.TypeAt(plant))
		assert.Equal(t, want, s.Grid.At(plant).HP, "turn %d", s.Turn)
	}

	next, fx := e.Apply(s, Ranged())

	assert.Equal(t, 3, next.Turn)
	assert.Equal(t, world.CellRubble, next.Grid.TypeAt(plant))
	assert.True(t, hasCue(fx, event.CueExplosion))
	assert.Equal(t, "POWER PLANT EXPLODED!", next.Message)
	require.Len(t, next.Fires, 25)
	for dy := -parameter.ChainRadius; dy <= parameter.ChainRadius; dy++ {
		for dx := -parameter.ChainRadius; dx <= parameter.ChainRadius; dx++ {
			i := next.FireAt(plant.Offset(dx, dy))
			require.GreaterOrEqual(t, i, 0)
			// one fire step has already aged the blast
			assert.Equal(t, parameter.ChainFireLife-1, next.Fires[i].Life)
		}
	}
	assert.False(t, next.GameOver)
}

func TestThrowWithoutPayloadRejected(t *testing.T) {
	e, s := newTestEngine(t, component.VariantApe, vmath.NewScriptedRand())

	next, _ := e.Apply(s, Throw())

	assert.Same(t, s, next)
}

func TestStarvationEndsGame(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Creature.Hunger = s.Creature.MaxHunger - 1

	next, fx := e.Apply(s, Wait())

	require.True(t, next.GameOver)
	assert.Equal(t, engine.CauseStarved, next.Cause)
	assert.Equal(t, "STARVED!", next.Message)
	assert.True(t, hasCue(fx, event.CueGameOver))

	after, _ := e.Apply(next, Wait())
	assert.Same(t, next, after)
}

func TestTankContactOverTurn(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Enemies = []component.Enemy{component.NewEnemy(component.EnemyTank, center.Add(core.East))}

	next, _ := e.Apply(s, Wait())

	assert.InDelta(t, 10-parameter.TankContactDamage, next.Creature.HP, 1e-9)
	assert.Equal(t, parameter.FlashContact, next.DamageFlash)
	assert.Equal(t, center.Add(core.East), next.Enemies[0].Pos, "tank holds next to the creature")
}

func TestSmallBuildingThroughApply(t *testing.T) {
	e, s := newTestEngine(t, component.VariantApe, vmath.NewScriptedRand())
	target := center.Add(core.East)
	s.Grid.Set(target, world.Building(1, world.SizeSmall))

	next, fx := e.Apply(s, Move(core.East))

	assert.Equal(t, target, next.Creature.Pos)
	assert.Equal(t, world.CellRubble, next.Grid.TypeAt(target))
	assert.Equal(t, parameter.ScoreBuildingPerHP, next.Score)
	assert.Equal(t, 1, next.Creature.ActionPoints)
	assert.True(t, hasCue(fx, event.CueDestroy))

	assert.Equal(t, world.CellBuilding, s.Grid.TypeAt(target), "published grid untouched")
}

func TestMoveAtEdgeIsNoop(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Creature.Pos = core.Point{X: 0, Y: 10}

	next, fx := e.Apply(s, Move(core.West))

	assert.Same(t, s, next)
	assert.Empty(t, fx)
}

func TestMoveSpendsLastPointAndResolves(t *testing.T) {
	e, s := newTestEngine(t, component.VariantApe, vmath.NewScriptedRand())

	mid, _ := e.Apply(s, Move(core.North))
	assert.Equal(t, 0, mid.Turn)
	assert.Equal(t, 1, mid.Creature.ActionPoints)

	end, _ := e.Apply(mid, Move(core.North))
	assert.Equal(t, 1, end.Turn)
	assert.Equal(t, 2, end.Creature.ActionPoints)
	assert.Equal(t, center.Offset(0, -2), end.Creature.Pos)
}

func TestNewGameDeterministic(t *testing.T) {
	a := NewEngine(engine.NewContext(vmath.NewFastRand(1), nil, nil))
	b := NewEngine(engine.NewContext(vmath.NewFastRand(2), nil, nil))

	sa, _ := a.Apply(nil, NewGame(component.VariantBlob, 42))
	sb, _ := b.Apply(nil, NewGame(component.VariantBlob, 42))

	require.NotNil(t, sa)
	assert.NotEqual(t, uuid.Nil, sa.GameID)
	assert.Equal(t, sa.GameID, sb.GameID)
	assert.Equal(t, sa.Wind, sb.Wind)
	assert.Equal(t, sa.Creature, sb.Creature)
	sa.Grid.Each(func(p core.Point, c world.Cell) {
		assert.Equal(t, c, sb.Grid.At(p))
	})

	ra, _ := a.Apply(sa, Wait())
	rb, _ := b.Apply(sb, Wait())
	assert.Equal(t, ra.Enemies, rb.Enemies)
	assert.Equal(t, ra.Civilians, rb.Civilians)
}

func TestNewGameUnknownVariant(t *testing.T) {
	e := NewEngine(engine.NewContext(vmath.NewFastRand(7), nil, nil))

	s, _ := e.Apply(nil, NewGame("kraken", 0))

	assert.Equal(t, component.VariantLizard, s.Creature.Variant)
	assert.Equal(t, 1, s.Creature.ActionPoints)
	assert.Contains(t, s.Message, "emerges!")
}

func TestNewGameReplacesFinishedGame(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewFastRand(3))
	s.End(engine.CauseStarved)

	next, _ := e.Apply(s, NewGame(component.VariantApe, 9))

	assert.False(t, next.GameOver)
	assert.Equal(t, component.VariantApe, next.Creature.Variant)
	assert.Equal(t, 0, next.Turn)
}

func TestAutoStepGuard(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())

	next, fx := e.AutoStep(s)

	assert.Same(t, s, next)
	assert.Empty(t, fx)
	assert.False(t, CanAutoStep(nil))
}

func TestAutoStepHuntsFood(t *testing.T) {
	e, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Creature.Berserk = true
	s.Creature.Hunger = 18
	s.Civilians = []component.Civilian{{Pos: center.Offset(2, 0)}}

	first, _ := e.AutoStep(s)
	require.Equal(t, center.Offset(1, 0), first.Creature.Pos)
	assert.Equal(t, 1, first.Turn)
	require.True(t, CanAutoStep(first))

	second, fx := e.AutoStep(first)
	assert.Equal(t, center.Offset(2, 0), second.Creature.Pos)
	assert.True(t, hasCue(fx, event.CueEat))
}

func TestFadeFlash(t *testing.T) {
	_, s := newTestEngine(t, component.VariantLizard, vmath.NewScriptedRand())
	s.DamageFlash = 2

	next := FadeFlash(s)

	assert.Equal(t, 1, next.DamageFlash)
	assert.Equal(t, 2, s.DamageFlash)
	assert.Same(t, s.Grid, next.Grid)

	s.DamageFlash = 0
	assert.Same(t, s, FadeFlash(s))
}

func TestStagesOrdered(t *testing.T) {
	assert.Equal(t,
		[]string{"fire", "resource", "spawn", "movement", "combat", "wind"},
		NewTurnEngine().Stages(),
	)
}
