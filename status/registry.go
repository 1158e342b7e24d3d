package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; update paths write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line formats every metric as "key=value" pairs in sorted key order, strings first
func (r *Registry) Line() string {
	var b strings.Builder
	write := func(key, val string) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(val)
	}

	r.Strings.Range(func(key string, ptr *AtomicString) { write(key, ptr.Load()) })
	r.Ints.Range(func(key string, ptr *atomic.Int64) { write(key, fmt.Sprintf("%d", ptr.Load())) })
	r.Floats.Range(func(key string, ptr *AtomicFloat) { write(key, fmt.Sprintf("%.2f", ptr.Get())) })

	return b.String()
}
