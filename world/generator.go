package world

import (
	"github.com/lixenwraith/rampage/core"
	"github.com/lixenwraith/rampage/parameter"
	"github.com/lixenwraith/rampage/vmath"
)

// Layout is the generated city with its creature entry point and defense anchor
type Layout struct {
	Grid  *Grid
	Spawn core.Point
	Base  core.Point
}

// placement is one special-structure request sampled within a zone
type placement struct {
	cell  CellType
	hp    int
	count int
	zone  core.Area
}

// placements are applied in order; earlier structures are never overwritten by later ones
var placements = []placement{
	{CellMilbase, parameter.MilbaseHP, parameter.MilbaseCount, core.Area{X: 20, Y: 10, Width: 20, Height: 20}},
	{CellCityHall, parameter.CityHallHP, parameter.CityHallCount, core.Area{X: 25, Y: 15, Width: 10, Height: 10}},
	{CellLab, parameter.LabHP, parameter.LabCount, core.Area{X: 10, Y: 5, Width: 40, Height: 30}},
	{CellPowerPlant, parameter.PowerPlantHP, parameter.PowerPlantCount, core.Area{X: 5, Y: 5, Width: 45, Height: 30}},
	{CellPolice, parameter.PoliceStationHP, parameter.PoliceCount, core.Area{X: 5, Y: 5, Width: 50, Height: 30}},
}

// Generate builds a city; the same rng sequence always yields the same layout
func Generate(rng vmath.Rand) Layout {
	g := NewGrid(parameter.GridWidth, parameter.GridHeight)

	carveCoast(g, rng)
	river := carveRiver(g, rng)
	placeBridges(g, river)
	layRoads(g)
	for _, p := range placements {
		placeStructure(g, rng, p)
	}
	stampParks(g)
	fillBlocks(g, rng)
	spawn := clearEntryLane(g)

	return Layout{Grid: g, Spawn: spawn, Base: findBase(g)}
}

// carveCoast fills the eastern strip with deep water, ragged on the inner columns
func carveCoast(g *Grid, rng vmath.Rand) {
	w := g.Width()
	for y := 0; y < g.Height(); y++ {
		for x := w - parameter.CoastWidth; x < w; x++ {
			p := core.Point{X: x, Y: y}
			if x >= w-parameter.CoastSolidWidth || vmath.Chance(rng, parameter.CoastRaggedChance) {
				g.Set(p, Terrain(CellDeepWater))
			}
		}
	}
}

// carveRiver lays one shallow row west of the coast, sometimes doubled below; returns the row
func carveRiver(g *Grid, rng vmath.Rand) int {
	row := parameter.RiverMinRow + rng.Intn(parameter.RiverRowSpan)
	for x := 0; x < g.Width()-parameter.CoastWidth; x++ {
		setIfEmpty(g, core.Point{X: x, Y: row}, Terrain(CellShallowWater))
		if vmath.Chance(rng, parameter.RiverDoubleChance) && row+1 < g.Height() {
			setIfEmpty(g, core.Point{X: x, Y: row + 1}, Terrain(CellShallowWater))
		}
	}
	return row
}

// placeBridges converts river cells at the fixed crossing columns
func placeBridges(g *Grid, row int) {
	for _, x := range parameter.BridgeColumns {
		for _, y := range []int{row, row + 1} {
			p := core.Point{X: x, Y: y}
			if g.TypeAt(p) == CellShallowWater {
				g.Set(p, Terrain(CellBridge))
			}
		}
	}
}

func layRoads(g *Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if y%parameter.RoadRowStride == 0 || x%parameter.RoadColStride == 0 {
				setIfEmpty(g, core.Point{X: x, Y: y}, Terrain(CellRoad))
			}
		}
	}
}

// placeStructure rejection-samples the zone, accepting empty or road cells only
func placeStructure(g *Grid, rng vmath.Rand, p placement) {
	for i := 0; i < p.count; i++ {
		for attempt := 0; attempt < parameter.PlacementAttempts; attempt++ {
			pt := vmath.AreaRandomPoint(p.zone, rng)
			if !g.InBounds(pt) {
				continue
			}
			if t := g.TypeAt(pt); t == CellEmpty || t == CellRoad {
				g.Set(pt, Structure(p.cell, p.hp))
				break
			}
		}
	}
}

func stampParks(g *Grid) {
	for _, corner := range parameter.ParkCorners {
		for dy := 0; dy < parameter.ParkSize; dy++ {
			for dx := 0; dx < parameter.ParkSize; dx++ {
				p := core.Point{X: corner[0] + dx, Y: corner[1] + dy}
				if t := g.TypeAt(p); g.InBounds(p) && (t == CellEmpty || t == CellRoad) {
					g.Set(p, Terrain(CellPark))
				}
			}
		}
	}
}

// fillBlocks turns every remaining empty cell into a building or road
// Density and building size both fall off with Manhattan distance from the center
func fillBlocks(g *Grid, rng vmath.Rand) {
	center := core.Point{X: g.Width() / 2, Y: g.Height() / 2}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := core.Point{X: x, Y: y}
			if g.TypeAt(p) != CellEmpty {
				continue
			}
			d := vmath.Manhattan(p, center)
			if !vmath.Chance(rng, density(d)) {
				g.Set(p, Terrain(CellRoad))
				continue
			}
			switch {
			case d < parameter.SizeLargeRadius:
				g.Set(p, Building(parameter.LargeHPMin+rng.Intn(parameter.LargeHPSpan), SizeLarge))
			case d < parameter.SizeMediumRadius:
				g.Set(p, Building(parameter.MediumHPMin+rng.Intn(parameter.MediumHPSpan), SizeMedium))
			default:
				g.Set(p, Building(parameter.SmallHPMin+rng.Intn(parameter.SmallHPSpan), SizeSmall))
			}
		}
	}
}

func density(d int) float64 {
	switch {
	case d < parameter.DensityNearRadius:
		return parameter.DensityNear
	case d < parameter.DensityMidRadius:
		return parameter.DensityMid
	default:
		return parameter.DensityFar
	}
}

// clearEntryLane forces road on the western edge around the vertical center; returns the spawn point
func clearEntryLane(g *Grid) core.Point {
	row := g.Height() / 2
	for dy := -parameter.EntryLaneHalfHeight; dy <= parameter.EntryLaneHalfHeight; dy++ {
		for dx := 0; dx < parameter.EntryLaneDepth; dx++ {
			g.Set(core.Point{X: dx, Y: row + dy}, Terrain(CellRoad))
		}
	}
	return core.Point{X: parameter.StartColumn, Y: row}
}

// findBase returns the last milbase in row-major order, or the default anchor
func findBase(g *Grid) core.Point {
	base := core.Point{X: parameter.DefaultBaseX, Y: parameter.DefaultBaseY}
	for _, p := range g.Find(CellMilbase) {
		base = p
	}
	return base
}

func setIfEmpty(g *Grid, p core.Point, c Cell) {
	if g.TypeAt(p) == CellEmpty && g.InBounds(p) {
		g.Set(p, c)
	}
}
