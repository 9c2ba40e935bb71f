package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/event"
	"github.com/lixenwraith/rampage/world"
)

// Backgrounds
var (
	ColorVoid       = tcell.NewHexColor(0x2d3436)
	ColorRoad       = tcell.NewHexColor(0x374151)
	ColorPanel      = tcell.NewHexColor(0x1f2937)
	ColorCreature   = tcell.NewHexColor(0x1a1a2e)
	ColorBerserk    = tcell.NewHexColor(0x991b1b)
	ColorFlash      = tcell.NewHexColor(0xef4444)
	ColorFire       = tcell.NewHexColor(0xf97316)
	ColorDeepWater  = tcell.NewHexColor(0x1e3a5f)
	ColorShallow    = tcell.NewHexColor(0x2d4a6f)
	ColorRubble     = tcell.NewHexColor(0x292524)
	ColorMilbase    = tcell.NewHexColor(0x4a1d1d)
	ColorPolice     = tcell.NewHexColor(0x1d3a5c)
	ColorCityHall   = tcell.NewHexColor(0x3d3a1d)
	ColorLab        = tcell.NewHexColor(0x1d3d2a)
	ColorPowerPlant = tcell.NewHexColor(0x4a4a1d)
	ColorBridge     = tcell.NewHexColor(0x4a4a4a)
	ColorPark       = tcell.NewHexColor(0x1d4a2a)

	ColorBuildingSound   = tcell.NewHexColor(0x4b5563)
	ColorBuildingCracked = tcell.NewHexColor(0x78716c)
	ColorBuildingFailing = tcell.NewHexColor(0x92400e)
)

// Foregrounds
var (
	ColorText   = tcell.NewHexColor(0xd1d5db)
	ColorDim    = tcell.NewHexColor(0x6b7280)
	ColorTitle  = tcell.NewHexColor(0x4ade80)
	ColorDamage = tcell.NewHexColor(0xf87171)
	ColorHeal   = tcell.NewHexColor(0x4ade80)
	ColorScore  = tcell.NewHexColor(0xfacc15)
	ColorMoves  = tcell.NewHexColor(0xc084fc)
	ColorCarry  = tcell.NewHexColor(0x60a5fa)
)

// glyph is one rendered map square
type glyph struct {
	ch rune
	fg tcell.Color
	bg tcell.Color
}

func cellGlyph(c world.Cell) glyph {
	switch c.Type {
	case world.CellRoad:
		return glyph{' ', ColorText, ColorRoad}
	case world.CellBuilding:
		return glyph{buildingRune(c.Size), ColorText, buildingColor(c)}
	case world.CellRubble:
		return glyph{'%', ColorDim, ColorRubble}
	case world.CellPark:
		return glyph{'♣', ColorHeal, ColorPark}
	case world.CellBridge:
		return glyph{'=', ColorText, ColorBridge}
	case world.CellDeepWater:
		return glyph{'≈', ColorCarry, ColorDeepWater}
	case world.CellShallowWater:
		return glyph{'~', ColorCarry, ColorShallow}
	case world.CellMilbase:
		return glyph{'*', ColorDamage, ColorMilbase}
	case world.CellCityHall:
		return glyph{'C', ColorScore, ColorCityHall}
	case world.CellLab:
		return glyph{'L', ColorHeal, ColorLab}
	case world.CellPowerPlant:
		return glyph{'!', ColorScore, ColorPowerPlant}
	case world.CellPolice:
		return glyph{'P', ColorCarry, ColorPolice}
	case world.CellEmpty:
	}
	return glyph{' ', ColorText, ColorVoid}
}

func buildingRune(s world.BuildingSize) rune {
	switch s {
	case world.SizeSmall:
		return 'h'
	case world.SizeMedium:
		return 'H'
	case world.SizeLarge, world.SizeNone:
	}
	return '#'
}

// buildingColor darkens toward rust as the building loses hp
func buildingColor(c world.Cell) tcell.Color {
	ratio := float64(c.HP) / float64(max(1, c.MaxHP))
	switch {
	case ratio > 0.6:
		return ColorBuildingSound
	case ratio > 0.3:
		return ColorBuildingCracked
	}
	return ColorBuildingFailing
}

func enemyRune(t component.EnemyType) rune {
	switch t {
	case component.EnemyPolice:
		return 'p'
	case component.EnemyInfantry:
		return 'i'
	case component.EnemyTank:
		return 'T'
	case component.EnemyHeli:
		return 'X'
	}
	return '?'
}

func severityColor(s event.Severity) tcell.Color {
	switch s {
	case event.SeverityDamage:
		return ColorDamage
	case event.SeverityHeal:
		return ColorHeal
	case event.SeverityScore:
		return ColorScore
	case event.SeverityInfo:
	}
	return ColorText
}
