package parameter

import "time"

// Event log
const (
	// LogCapacity is the number of recent entries retained
	LogCapacity = 20
)

// Host timing
const (
	// BerserkTickInterval is the delay between autonomous berserk steps
	BerserkTickInterval = 400 * time.Millisecond

	// FlashFadeInterval is the cadence of damage flash decay
	FlashFadeInterval = 100 * time.Millisecond

	// FrameUpdateInterval is the render cadence of the terminal host
	FrameUpdateInterval = 33 * time.Millisecond

	// HostQueueSize buffers pending commands
	HostQueueSize = 16
)

// Viewport
const (
	ViewWidth  = 17
	ViewHeight = 15

	// CellColumns is the terminal width of one map square
	CellColumns = 2
)

// Terminal layout
const (
	LogPanelWidth    = 30
	StatusPanelWidth = 22
	MeterWidth       = 12
	PanelGap         = 1
)
