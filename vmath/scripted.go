package vmath

// ScriptedRand replays queued values for deterministic tests
// Once a queue is empty the matching default is returned
type ScriptedRand struct {
	floats []float64
	ints   []int

	FloatDefault float64
	IntDefault   int
}

// NewScriptedRand creates a source whose empty-queue defaults fail every Chance draw
func NewScriptedRand() *ScriptedRand {
	return &ScriptedRand{FloatDefault: 0.999}
}

// Floats queues Float64 results
func (r *ScriptedRand) Floats(v ...float64) *ScriptedRand {
	r.floats = append(r.floats, v...)
	return r
}

// Ints queues Intn results; each is reduced modulo n when drawn
func (r *ScriptedRand) Ints(v ...int) *ScriptedRand {
	r.ints = append(r.ints, v...)
	return r
}

func (r *ScriptedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v := r.IntDefault
	if len(r.ints) > 0 {
		v, r.ints = r.ints[0], r.ints[1:]
	}
	return ((v % n) + n) % n
}

func (r *ScriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.FloatDefault
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// Remaining reports how many queued values have not been drawn
func (r *ScriptedRand) Remaining() (floats, ints int) {
	return len(r.floats), len(r.ints)
}
