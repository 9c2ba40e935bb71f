package parameter

// City Grid
const (
	// GridWidth is the fixed city width in cells
	GridWidth = 60
	// GridHeight is the fixed city height in cells
	GridHeight = 40
)

// City Generation
const (
	// CoastWidth is the eastern strip carved to water; the outer CoastSolidWidth columns are always deep
	CoastWidth      = 4
	CoastSolidWidth = 2
	// CoastRaggedChance is the chance an inner coast column cell is deep water
	CoastRaggedChance = 0.5

	// RiverMinRow and RiverRowSpan bound the river row: RiverMinRow + [0, RiverRowSpan)
	RiverMinRow  = 15
	RiverRowSpan = 10
	// RiverDoubleChance is the per-column chance of a second river row below
	RiverDoubleChance = 0.3

	// RoadRowStride and RoadColStride lay out the coarse road lattice
	RoadRowStride = 4
	RoadColStride = 5

	// PlacementAttempts bounds rejection sampling per special structure
	PlacementAttempts = 50

	// ParkSize is the edge of each square park block
	ParkSize = 3

	// Density bands by Manhattan distance from center
	DensityNearRadius = 12
	DensityMidRadius  = 25
	DensityNear       = 0.85
	DensityMid        = 0.6
	DensityFar        = 0.35

	// Building size bands by Manhattan distance from center
	SizeLargeRadius  = 10
	SizeMediumRadius = 20

	// Building hp ranges: Min + [0, Span)
	LargeHPMin   = 4
	LargeHPSpan  = 3
	MediumHPMin  = 2
	MediumHPSpan = 3
	SmallHPMin   = 1
	SmallHPSpan  = 2

	// EntryLaneDepth is how many western columns are forced to road around the spawn row
	EntryLaneDepth = 3
	// EntryLaneHalfHeight is the row radius of the entry lane
	EntryLaneHalfHeight = 1
)

// BridgeColumns are the fixed river crossing columns
var BridgeColumns = [...]int{10, 25, 40}

// ParkCorners are the top-left corners of the park blocks
var ParkCorners = [...][2]int{{8, 8}, {35, 12}, {20, 28}, {45, 25}}

// Structure hit points
const (
	MilbaseHP       = 8
	CityHallHP      = 6
	LabHP           = 4
	PowerPlantHP    = 6
	PoliceStationHP = 4
)

// Structure counts
const (
	MilbaseCount    = 1
	CityHallCount   = 1
	LabCount        = 1
	PowerPlantCount = 2
	PoliceCount     = 4
)

// DefaultBaseX and DefaultBaseY anchor defender spawns when no base was placed
const (
	DefaultBaseX = 30
	DefaultBaseY = 20
)
