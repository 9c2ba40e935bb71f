package status

import (
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Writers cache pointers once; hot paths then store to atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Each visits every metric formatted as text, grouped by kind then sorted by key
func (r *Registry) Each(fn func(key, value string)) {
	r.Bools.Range(func(k string, v *atomic.Bool) {
		fn(k, strconv.FormatBool(v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		fn(k, strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		fn(k, strconv.FormatFloat(v.Get(), 'g', -1, 64))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		fn(k, v.Load())
	})
}
