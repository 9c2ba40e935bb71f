package parameter

// Turn stage priorities (lower runs first)
const (
	PriorityFire     = 10
	PriorityResource = 20
	PrioritySpawn    = 30
	PriorityMovement = 40 // civilians, then enemies
	PriorityContact  = 50 // after movement so adjacency reflects the new positions
	PriorityWind     = 60
)
