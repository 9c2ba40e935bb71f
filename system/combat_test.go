package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/vmath"
	"github.com/lixenwraith/rampage/world"
)

func TestContactDamageByType(t *testing.T) {
	tests := []struct {
		name    string
		variant component.Variant
		want    float64
		log     string
	}{
		{"plain", component.VariantLizard, 1.5, "tank: -1.5"},
		{"armored", component.VariantBlob, 0.9, "tank: -0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, s := newArena(t, tt.variant, vmath.NewScriptedRand())
			s.Enemies = []component.Enemy{component.NewEnemy(component.EnemyTank, arenaCenter.Offset(1, 1))}
			before := s.Creature.HP

			NewCombatSystem().Update(ctx, s)

			assert.InDelta(t, tt.want, before-s.Creature.HP, 1e-9)
			assert.Equal(t, tt.log, lastLog(s))
			assert.Equal(t, parameter.FlashContact, s.DamageFlash)
		})
	}
}

func TestContactBreakdownOrderAndRange(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Enemies = []component.Enemy{
		component.NewEnemy(component.EnemyHeli, arenaCenter.Offset(-1, 0)),
		component.NewEnemy(component.EnemyPolice, arenaCenter.Offset(0, 1)),
		component.NewEnemy(component.EnemyPolice, arenaCenter.Offset(1, -1)),
		component.NewEnemy(component.EnemyTank, arenaCenter.Offset(2, 0)),
	}

	NewCombatSystem().Update(ctx, s)

	assert.Equal(t, "police: -0.5, heli: -0.8", lastLog(s))
	assert.Equal(t, "Took 1.2 damage!", s.Message)
	assert.InDelta(t, 10-1.25, s.Creature.HP, 1e-9)
}

func TestMoveBlockedByWater(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	s.Grid.Set(arenaCenter.Add(core.East), world.Terrain(world.CellShallowWater))
	s.Grid.Set(arenaCenter.Add(core.West), world.Terrain(world.CellDeepWater))
	sys := NewCombatSystem()

	assert.False(t, sys.Move(ctx, s, core.East))
	assert.Equal(t, "Can't swim!", s.Message)
	assert.False(t, sys.Move(ctx, s, core.West))
	assert.Equal(t, "Too deep!", s.Message)
	assert.Equal(t, arenaCenter, s.Creature.Pos)
}

func TestLizardSwims(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Grid.Set(arenaCenter.Add(core.North), world.Terrain(world.CellShallowWater))

	assert.True(t, NewCombatSystem().Move(ctx, s, core.North))
	assert.Equal(t, arenaCenter.Add(core.North), s.Creature.Pos)
	assert.Equal(t, core.North, s.Creature.LastFacing)
}

func TestMoveAtEdgeIsNoop(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Creature.Pos = core.Point{X: 0, Y: 5}
	s.Message = "before"

	assert.False(t, NewCombatSystem().Move(ctx, s, core.West))
	assert.Equal(t, "before", s.Message)
	assert.Equal(t, core.East, s.Creature.LastFacing)
}

func TestPowerPlantIsFatal(t *testing.T) {
	ctx, s := newArena(t, component.VariantBlob, vmath.NewScriptedRand())
	s.Grid.Set(arenaCenter.Add(core.South), world.Structure(world.CellPowerPlant, parameter.PowerPlantHP))

	NewCombatSystem().Move(ctx, s, core.South)

	assert.True(t, s.GameOver)
	assert.Equal(t, engine.CauseDestroyed, s.Cause)
	assert.Zero(t, s.Creature.HP)
	assert.Equal(t, parameter.FlashPowerPlant, s.DamageFlash)
	assert.Equal(t, arenaCenter, s.Creature.Pos)
}

func TestEatCivilian(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	target := arenaCenter.Add(core.East)
	s.Civilians = []component.Civilian{{Pos: target}}
	s.Creature.Hunger = 2
	s.Creature.HP = 9.8

	require.True(t, NewCombatSystem().Move(ctx, s, core.East))

	assert.Empty(t, s.Civilians)
	assert.Equal(t, 0, s.Creature.Hunger)
	assert.Equal(t, 10.0, s.Creature.HP)
	assert.Equal(t, parameter.ScoreEat, s.Score)
	assert.Equal(t, target, s.Creature.Pos)
}

func TestEatEndsBerserkBelowHalf(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Civilians = []component.Civilian{{Pos: arenaCenter.Add(core.East)}, {Pos: arenaCenter.Add(core.East).Add(core.East)}}
	s.Creature.Berserk = true
	s.Creature.Hunger = 18
	sys := NewCombatSystem()

	sys.Move(ctx, s, core.East)
	assert.Equal(t, 14, s.Creature.Hunger)
	assert.True(t, s.Creature.Berserk, "14 is not below 10")

	s.Creature.Hunger = 13
	sys.Move(ctx, s, core.East)
	assert.Equal(t, 9, s.Creature.Hunger)
	assert.False(t, s.Creature.Berserk)
	assert.Equal(t, "Regained control!", lastLog(s))
}

func TestCrushScores(t *testing.T) {
	for _, et := range component.EnemyTypes {
		ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
		s.Enemies = []component.Enemy{component.NewEnemy(et, arenaCenter.Add(core.East))}
		s.Creature.Hunger = 5
		s.Creature.HP = 5

		NewCombatSystem().Move(ctx, s, core.East)

		want := parameter.ScoreCrush
		if et == component.EnemyTank {
			want = parameter.ScoreCrushTank
		}
		assert.Equal(t, want, s.Score, "%s", et)
		assert.Equal(t, 2, s.Creature.Hunger)
		assert.Equal(t, 6.0, s.Creature.HP)
		assert.Empty(t, s.Enemies)
		assert.Equal(t, 1, s.Kills)
	}
}

func TestApeGrabsThenCrushes(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	target := arenaCenter.Add(core.East)
	s.Enemies = []component.Enemy{
		component.NewEnemy(component.EnemyInfantry, target),
		component.NewEnemy(component.EnemyTank, target),
	}

	NewCombatSystem().Move(ctx, s, core.East)

	require.NotNil(t, s.Creature.Carrying)
	assert.Equal(t, component.EnemyInfantry, s.Creature.Carrying.Type)
	assert.Empty(t, s.Enemies)
	assert.Equal(t, parameter.ScoreCrushTank, s.Score)
}

func TestSmashInPlace(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	target := arenaCenter.Add(core.East)
	s.Grid.Set(target, world.Structure(world.CellLab, parameter.LabHP))

	require.True(t, NewCombatSystem().Move(ctx, s, core.East))

	assert.Equal(t, arenaCenter, s.Creature.Pos)
	assert.Equal(t, "Smashing! (3/4)", s.Message)
	assert.Equal(t, parameter.ScoreSmash, s.Score)
	assert.Equal(t, core.East, s.Creature.LastFacing)
}

func TestApeSmashesHarder(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	target := arenaCenter.Add(core.East)
	s.Grid.Set(target, world.Structure(world.CellCityHall, parameter.CityHallHP))

	NewCombatSystem().Move(ctx, s, core.East)

	assert.Equal(t, 4, s.Grid.At(target).HP)
}

func TestSmallBuildingDestroyedAndEntered(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	target := arenaCenter.Add(core.East)
	s.Grid.Set(target, world.Building(1, world.SizeSmall))

	require.True(t, NewCombatSystem().Move(ctx, s, core.East))

	assert.Equal(t, world.CellRubble, s.Grid.TypeAt(target))
	assert.Equal(t, parameter.ScoreBuildingPerHP, s.Score)
	assert.Equal(t, target, s.Creature.Pos)
	assert.Equal(t, 0, s.Creature.Hunger, "snack branch not taken")
	assert.Empty(t, s.Civilians, "flee branch not taken")
}

func TestBuildingSnackAndFleeingCivilians(t *testing.T) {
	// snack yes, flee yes (north), flee yes (south), flee yes (west lands on the creature's old cell)
	rng := vmath.NewScriptedRand().Floats(0.1, 0.1, 0.1, 0.1).Ints(3, 2, 1)
	ctx, s := newArena(t, component.VariantLizard, rng)
	target := arenaCenter.Add(core.East)
	s.Grid.Set(target, world.Building(1, world.SizeLarge))
	s.Creature.Hunger = 5
	s.Creature.HP = 9

	NewCombatSystem().Move(ctx, s, core.East)

	assert.Equal(t, 3, s.Creature.Hunger)
	assert.Equal(t, 9.5, s.Creature.HP)
	assert.Len(t, s.Civilians, 3)
	assert.Equal(t, 50, s.Score)
}

func TestDestroyMilbaseMarksBaseDown(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	target := arenaCenter.Add(core.East)
	s.Grid.Set(target, world.Cell{Type: world.CellMilbase, HP: 1, MaxHP: parameter.MilbaseHP})
	s.Base = target

	NewCombatSystem().Move(ctx, s, core.East)

	assert.False(t, s.BaseAlive)
	assert.Equal(t, parameter.ScoreMilbase, s.Score)
	assert.Equal(t, "MILITARY BASE DESTROYED!", s.Message)
	assert.Equal(t, target, s.Creature.Pos)
}

func TestDestroyLabHeals(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	target := arenaCenter.Add(core.East)
	s.Grid.Set(target, world.Cell{Type: world.CellLab, HP: 1, MaxHP: parameter.LabHP})
	s.Creature.HP = 3

	NewCombatSystem().Move(ctx, s, core.East)

	assert.Equal(t, 8.0, s.Creature.HP)
	assert.Equal(t, parameter.ScoreLab, s.Score)
}

func TestParkBecomesRoad(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	target := arenaCenter.Add(core.East)
	s.Grid.Set(target, world.Terrain(world.CellPark))

	NewCombatSystem().Move(ctx, s, core.East)

	assert.Equal(t, world.CellRoad, s.Grid.TypeAt(target))
	assert.Equal(t, target, s.Creature.Pos)
	assert.Equal(t, "Trees crushed!", s.Message)
	assert.Zero(t, s.Score)
}

func TestBurnAndFireTrail(t *testing.T) {
	ctx, s := newArena(t, component.VariantBlob, vmath.NewScriptedRand())
	target := arenaCenter.Add(core.East)
	s.Fires = []component.Fire{{Pos: target, Life: 2}}

	NewCombatSystem().Move(ctx, s, core.East)

	assert.Equal(t, 17.5, s.Creature.HP)
	assert.Equal(t, parameter.FlashBurn, s.DamageFlash)
	require.GreaterOrEqual(t, s.FireAt(arenaCenter), 0, "blob leaves a trail")
	assert.Equal(t, parameter.FireLife, s.Fires[s.FireAt(arenaCenter)].Life)
}

func TestBurnCanKill(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	s.Fires = []component.Fire{{Pos: arenaCenter.Add(core.East), Life: 2}}
	s.Creature.HP = 0.5

	NewCombatSystem().Move(ctx, s, core.East)

	assert.True(t, s.GameOver)
	assert.Equal(t, engine.CauseDestroyed, s.Cause)
}

func TestThrowHitsEnemy(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	s.Creature.Carrying = &component.Payload{Type: component.EnemyPolice}
	s.Creature.LastFacing = core.North
	s.Enemies = []component.Enemy{
		component.NewEnemy(component.EnemyTank, arenaCenter.Step(core.North, 3)),
		component.NewEnemy(component.EnemyInfantry, arenaCenter.Step(core.North, 4)),
	}

	require.True(t, NewCombatSystem().Throw(ctx, s))

	assert.Nil(t, s.Creature.Carrying)
	require.Len(t, s.Enemies, 1)
	assert.Equal(t, component.EnemyInfantry, s.Enemies[0].Type)
	assert.Equal(t, parameter.ScoreThrowEnemy, s.Score)
	assert.Equal(t, "Threw police at tank!", lastLog(s))
	assert.Equal(t, 2, s.Creature.ActionPoints, "throw is free")
}

func TestThrowHitsStructure(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	s.Creature.Carrying = &component.Payload{Type: component.EnemyHeli}
	target := arenaCenter.Step(core.East, 2)
	s.Grid.Set(target, world.Building(2, world.SizeMedium))

	NewCombatSystem().Throw(ctx, s)

	assert.Equal(t, world.CellRubble, s.Grid.TypeAt(target))
	assert.Equal(t, parameter.ScoreThrowStructure, s.Score)
}

func TestThrowStopsAtWater(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	s.Creature.Carrying = &component.Payload{Type: component.EnemyTank}
	s.Grid.Set(arenaCenter.Step(core.East, 1), world.Terrain(world.CellShallowWater))
	s.Enemies = []component.Enemy{component.NewEnemy(component.EnemyPolice, arenaCenter.Step(core.East, 2))}

	NewCombatSystem().Throw(ctx, s)

	assert.Len(t, s.Enemies, 1)
	assert.Equal(t, "Threw tank into the distance", lastLog(s))
	assert.Nil(t, s.Creature.Carrying)
}

func TestThrowWithoutPayload(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	assert.False(t, NewCombatSystem().Throw(ctx, s))
	assert.Zero(t, s.Log.Len())
}

func TestBreathOnlyForBreathers(t *testing.T) {
	ctx, s := newArena(t, component.VariantApe, vmath.NewScriptedRand())
	assert.False(t, NewCombatSystem().Breath(ctx, s))
	assert.Equal(t, 2, s.Creature.ActionPoints)
}

func TestBreathRays(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	building := arenaCenter.Step(core.West, 2)
	behind := arenaCenter.Step(core.West, 3)
	s.Grid.Set(building, world.Building(4, world.SizeLarge))
	s.Civilians = []component.Civilian{{Pos: arenaCenter.Step(core.South, 3)}, {Pos: behind}}
	s.Enemies = []component.Enemy{
		component.NewEnemy(component.EnemyTank, arenaCenter.Step(core.East, 1)),
		component.NewEnemy(component.EnemyHeli, arenaCenter.Step(core.North, 4)),
	}

	require.True(t, NewCombatSystem().Breath(ctx, s))

	assert.Zero(t, s.Creature.ActionPoints)
	assert.Equal(t, 2, s.Grid.At(building).HP)
	require.Len(t, s.Fires, 1)
	assert.Equal(t, building, s.Fires[0].Pos)
	assert.Equal(t, parameter.ScoreBreathKill, s.Score)
	require.Len(t, s.Civilians, 1, "ray stops at the building")
	assert.Equal(t, behind, s.Civilians[0].Pos)
	require.Len(t, s.Enemies, 1, "heli at range 4 survives")
}

func TestBreathPowerPlantChain(t *testing.T) {
	ctx, s := newArena(t, component.VariantLizard, vmath.NewScriptedRand())
	plant := arenaCenter.Step(core.East, 2)
	s.Grid.Set(plant, world.Structure(world.CellPowerPlant, parameter.PowerPlantHP))
	sys := NewCombatSystem()

	sys.Breath(ctx, s)
	assert.Equal(t, world.CellPowerPlant, s.Grid.TypeAt(plant))
	assert.Equal(t, 4, s.Grid.At(plant).HP)

	sys.Breath(ctx, s)
	assert.Equal(t, 2, s.Grid.At(plant).HP)
	assert.Len(t, s.Fires, 1)

	sys.Breath(ctx, s)
	assert.Equal(t, world.CellRubble, s.Grid.TypeAt(plant))
	require.Len(t, s.Fires, 25)
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			i := s.FireAt(plant.Offset(dx, dy))
			require.GreaterOrEqual(t, i, 0)
			assert.Equal(t, parameter.ChainFireLife, s.Fires[i].Life)
		}
	}
	assert.Equal(t, "POWER PLANT EXPLODED!", s.Message)
	assert.False(t, s.GameOver)
}
