package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/engine"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/world"
)

// SpawnSystem introduces police, defenders and ambient civilians on their turn cadences
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

// Name returns the system's name
func (sys *SpawnSystem) Name() string {
	return "spawn"
}

// Priority returns the system's stage priority
func (sys *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update uses the turn number before it is advanced
func (sys *SpawnSystem) Update(ctx *engine.Context, s *engine.State) {
	if s.Turn%parameter.PoliceSpawnInterval == 0 {
		sys.spawnFromPolice(ctx, s)
	}
	if s.Turn%parameter.DefenderSpawnInterval == 0 && len(s.Enemies) < parameter.EnemyCap {
		sys.spawnDefenders(ctx, s)
	}
	if s.Turn%parameter.CivilianSpawnInterval == 0 && len(s.Civilians) < parameter.CivilianCap {
		sys.spawnCivilian(ctx, s)
	}
}

// spawnFromPolice ejects one officer per standing station into a random orthogonal neighbor
func (sys *SpawnSystem) spawnFromPolice(ctx *engine.Context, s *engine.State) {
	for _, station := range s.Grid.Find(world.CellPolice) {
		if len(s.Enemies) >= parameter.EnemyCap {
			return
		}
		p := station.Add(RandomDirection(ctx.Rand))
		if !s.Grid.InBounds(p) {
			continue
		}
		switch s.Grid.TypeAt(p) {
		case world.CellEmpty, world.CellRoad, world.CellRubble:
			s.Enemies = append(s.Enemies, component.NewEnemy(component.EnemyPolice, p))
			ctx.Logger.Debug("police spawned", zap.Int("x", p.X), zap.Int("y", p.Y))
		}
	}
}

// spawnDefenders sends a wave from the base perimeter, or from a map edge once the base is gone
func (sys *SpawnSystem) spawnDefenders(ctx *engine.Context, s *engine.State) {
	count := 3
	switch {
	case s.Turn < parameter.DefenderWaveTurn2:
		count = 1
	case s.Turn < parameter.DefenderWaveTurn3:
		count = 2
	}

	for i := 0; i < count && len(s.Enemies) < parameter.EnemyCap; i++ {
		var p core.Point
		if s.BaseAlive && s.Grid.TypeAt(s.Base) == world.CellMilbase {
			p = s.Base.Step(RandomDirection(ctx.Rand), parameter.DefenderBaseOffset)
		} else {
			if s.BaseAlive {
				s.BaseAlive = false
				s.Logf(event.SeverityInfo, "Defenders now arrive from the city limits")
			}
			p = sys.edgePoint(ctx, s.Grid)
		}
		if !s.Grid.InBounds(p) {
			continue
		}
		t := sys.defenderType(ctx)
		s.Enemies = append(s.Enemies, component.NewEnemy(t, p))
		ctx.Logger.Debug("defender spawned",
			zap.Stringer("type", t),
			zap.Int("x", p.X),
			zap.Int("y", p.Y),
			zap.Bool("base", s.BaseAlive),
		)
	}
}

// edgePoint picks the west edge or the north/south edges short of the coast
func (sys *SpawnSystem) edgePoint(ctx *engine.Context, g *world.Grid) core.Point {
	span := g.Width() - parameter.EdgeSpawnMargin
	switch ctx.Rand.Intn(3) {
	case 0:
		return core.Point{X: 0, Y: ctx.Rand.Intn(g.Height())}
	case 1:
		return core.Point{X: ctx.Rand.Intn(span), Y: 0}
	default:
		return core.Point{X: ctx.Rand.Intn(span), Y: g.Height() - 1}
	}
}

// defenderType draws the weighted unit kind
func (sys *SpawnSystem) defenderType(ctx *engine.Context) component.EnemyType {
	r := ctx.Rand.Float64()
	switch {
	case r < parameter.InfantryWeight:
		return component.EnemyInfantry
	case r < parameter.InfantryWeight+parameter.TankWeight:
		return component.EnemyTank
	default:
		return component.EnemyHeli
	}
}

// spawnCivilian places one civilian on a uniformly chosen road cell
func (sys *SpawnSystem) spawnCivilian(ctx *engine.Context, s *engine.State) {
	roads := s.Grid.Find(world.CellRoad)
	if len(roads) == 0 {
		return
	}
	s.Civilians = append(s.Civilians, component.Civilian{Pos: roads[ctx.Rand.Intn(len(roads))]})
}
