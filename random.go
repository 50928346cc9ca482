// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caldate

import (
	"context"
	"math/rand/v2"
	"sync"
)

// Generator generates random dates. A Generator must not be used
// concurrently, each goroutine should create its own, or use Random
// which manages a pool of independently seeded generators.
type Generator struct {
	rnd              *rand.Rand
	minYear, maxYear int
}

// GeneratorOption represents an option to NewGenerator.
type GeneratorOption func(*Generator)

// WithYearRange sets the inclusive range of years that will be
// generated, the default is RandMinYear to RandMaxYear. Years of
// BaseYear or earlier are raised to BaseYear+1 and max is raised to
// min if it is smaller.
func WithYearRange(minYear, maxYear int) GeneratorOption {
	return func(g *Generator) {
		g.minYear = max(minYear, BaseYear+1)
		g.maxYear = max(maxYear, g.minYear)
	}
}

// NewGenerator returns a new Generator using the supplied seed.
func NewGenerator(seed uint64, opts ...GeneratorOption) *Generator {
	g := &Generator{
		rnd:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		minYear: RandMinYear,
		maxYear: RandMaxYear,
	}
	for _, fn := range opts {
		fn(g)
	}
	return g
}

// YearRange returns the inclusive range of years generated by g.
func (g *Generator) YearRange() (minYear, maxYear int) {
	return g.minYear, g.maxYear
}

// Date returns a random date whose year, month and day are each drawn
// uniformly, the day from the days in the drawn month and year.
func (g *Generator) Date() Date {
	year := g.minYear + g.rnd.IntN(g.maxYear-g.minYear+1)
	month := 1 + g.rnd.IntN(12)
	day := 1 + g.rnd.IntN(DaysInMonth(year, month))
	return newDate(day, month, year)
}

var generators = sync.Pool{
	New: func() any {
		return NewGenerator(rand.Uint64())
	},
}

// Random returns a random date with a year in the range RandMinYear to
// RandMaxYear. It is safe for concurrent use, each call uses a
// generator that is not shared with any concurrent caller.
func Random() Date {
	g := generators.Get().(*Generator)
	defer generators.Put(g)
	return g.Date()
}

type generatorKey struct{}

// ContextWithGenerator returns a new context with the given Generator
// stored in it.
func ContextWithGenerator(ctx context.Context, g *Generator) context.Context {
	return context.WithValue(ctx, generatorKey{}, g)
}

// GeneratorFromContext returns the Generator stored in ctx, or nil if
// there is none.
func GeneratorFromContext(ctx context.Context) *Generator {
	g, ok := ctx.Value(generatorKey{}).(*Generator)
	if !ok {
		return nil
	}
	return g
}

// RandomFromContext returns a random date using the Generator stored in
// ctx, or Random if there is none.
func RandomFromContext(ctx context.Context) Date {
	if g := GeneratorFromContext(ctx); g != nil {
		return g.Date()
	}
	return Random()
}
