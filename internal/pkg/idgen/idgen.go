// Package idgen generates ids for character rows
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Func adapts a plain function to Generator
type Func func() string

// Generate calls f
func (f Func) Generate() string {
	return f()
}

// UUID returns a generator of random UUIDs. A non-empty prefix is joined
// with an underscore: "row_0b8e...".
func UUID(prefix string) Generator {
	return Func(func() string {
		id := uuid.NewString()
		if prefix == "" {
			return id
		}
		return prefix + "_" + id
	})
}

// Sequential generates predictable ids for tests
type Sequential struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a sequential generator starting at 1
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// Generate returns the next id
func (g *Sequential) Generate() string {
	n := strconv.FormatUint(g.counter.Add(1), 10)
	if g.prefix == "" {
		return n
	}
	return g.prefix + "_" + n
}
