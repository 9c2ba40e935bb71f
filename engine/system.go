package engine

// System is one stage of turn resolution
type System interface {
	Name() string
	// Priority orders stages; lower values run first
	Priority() int
	Update(ctx *Context, s *State)
}
