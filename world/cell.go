package world

// CellType is the terrain or structure occupying a grid cell
type CellType uint8

const (
	// CellEmpty only exists while the generator is filling the grid
	CellEmpty CellType = iota
	CellRoad
	CellBuilding
	CellRubble
	CellPark
	CellBridge
	CellDeepWater
	CellShallowWater
	CellMilbase
	CellCityHall
	CellLab
	CellPowerPlant
	CellPolice
)

func (t CellType) String() string {
	switch t {
	case CellEmpty:
		return "empty"
	case CellRoad:
		return "road"
	case CellBuilding:
		return "building"
	case CellRubble:
		return "rubble"
	case CellPark:
		return "park"
	case CellBridge:
		return "bridge"
	case CellDeepWater:
		return "deepwater"
	case CellShallowWater:
		return "shallowwater"
	case CellMilbase:
		return "milbase"
	case CellCityHall:
		return "cityhall"
	case CellLab:
		return "lab"
	case CellPowerPlant:
		return "powerplant"
	case CellPolice:
		return "police"
	}
	return "unknown"
}

// Passable reports whether ground units and civilians may stand here
func (t CellType) Passable() bool {
	switch t {
	case CellRoad, CellRubble, CellBridge:
		return true
	case CellEmpty, CellBuilding, CellPark, CellDeepWater, CellShallowWater,
		CellMilbase, CellCityHall, CellLab, CellPowerPlant, CellPolice:
		return false
	}
	return false
}

// IsStructure reports hp-bearing cells a thrown payload can hit
func (t CellType) IsStructure() bool {
	switch t {
	case CellBuilding, CellMilbase, CellPolice, CellCityHall, CellLab:
		return true
	case CellEmpty, CellRoad, CellRubble, CellPark, CellBridge, CellDeepWater,
		CellShallowWater, CellPowerPlant:
		return false
	}
	return false
}

// Smashable reports cells the creature damages instead of entering
func (t CellType) Smashable() bool {
	return t.IsStructure() || t == CellPark
}

// Flammable reports cells downwind fire may ignite
func (t CellType) Flammable() bool {
	return t == CellBuilding || t == CellPark
}

// BreathTarget reports cells that stop a breath ray and catch fire
func (t CellType) BreathTarget() bool {
	return t.Smashable() || t == CellPowerPlant
}

// IsWater reports river and coast cells
func (t CellType) IsWater() bool {
	return t == CellDeepWater || t == CellShallowWater
}

// BuildingSize controls score and civilian yield of generic buildings
type BuildingSize uint8

const (
	SizeNone BuildingSize = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

func (s BuildingSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeNone:
		return "none"
	}
	return "unknown"
}

// Cell is one grid square; HP and MaxHP are zero for cells without hit points
type Cell struct {
	Type  CellType
	HP    int
	MaxHP int
	Size  BuildingSize
}

// HasHP reports whether damage applies to this cell
func (c Cell) HasHP() bool {
	return c.MaxHP > 0
}

// Terrain builds a cell without hit points
func Terrain(t CellType) Cell {
	return Cell{Type: t}
}

// Structure builds an hp-bearing cell at full health
func Structure(t CellType, hp int) Cell {
	return Cell{Type: t, HP: hp, MaxHP: hp}
}

// Building builds a generic building
func Building(hp int, size BuildingSize) Cell {
	return Cell{Type: CellBuilding, HP: hp, MaxHP: hp, Size: size}
}

// Label is the display name used in log lines
func (t CellType) Label() string {
	switch t {
	case CellMilbase:
		return "military base"
	case CellCityHall:
		return "city hall"
	case CellPowerPlant:
		return "power plant"
	case CellPolice:
		return "police station"
	case CellShallowWater:
		return "shallow water"
	case CellDeepWater:
		return "deep water"
	case CellEmpty, CellRoad, CellBuilding, CellRubble, CellPark, CellBridge, CellLab:
		return t.String()
	}
	return t.String()
}
