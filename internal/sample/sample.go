// SPDX-License-Identifier: MIT

// Package sample generates deterministic random matrices over any numeric.Field.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Strategy-agnostic: entries are small integers converted with FromInt, so the
//     same seed yields the same logical matrix for int64, float64, *big.Int and *big.Rat.
//
// Concurrency:
//   - A Generator wraps a math/rand.Rand and is NOT goroutine-safe.
package sample

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/numeric"
)

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Default entry range (inclusive).
const (
	DefaultLow  = -9
	DefaultHigh = 9
)

// ErrNoNonSingular is returned when NonSingular gives up.
var ErrNoNonSingular = errors.New("sample: no non-singular matrix found")

// Generator produces random matrices with integer entries in [lo, hi].
type Generator[T any] struct {
	rng    *rand.Rand
	f      *numeric.Field[T]
	lo, hi int
}

// Option configures a Generator.
type Option func(*settings)

type settings struct{ lo, hi int }

// WithRange sets the inclusive entry range. Panics if lo > hi.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic(fmt.Sprintf("sample: WithRange(%d,%d): lo > hi", lo, hi))
	}

	return func(s *settings) { s.lo, s.hi = lo, hi }
}

// New returns a Generator seeded with seed (0 ⇒ defaultSeed).
func New[T any](f *numeric.Field[T], seed int64, opts ...Option) *Generator[T] {
	if seed == 0 {
		seed = defaultSeed
	}
	s := settings{lo: DefaultLow, hi: DefaultHigh}
	for _, o := range opts {
		if o != nil {
			o(&s)
		}
	}

	return &Generator[T]{rng: rand.New(rand.NewSource(seed)), f: f, lo: s.lo, hi: s.hi}
}

// Int returns the next raw integer in [lo, hi].
func (g *Generator[T]) Int() int { return g.lo + g.rng.Intn(g.hi-g.lo+1) }

// Dense returns a rows×cols matrix with random entries.
func (g *Generator[T]) Dense(rows, cols int) (*matrix.Dense[T], error) {
	m, err := matrix.NewDense(g.f, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("sample.Dense: %w", err)
	}
	c := g.f.Calculator()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err = m.Set(i, j, c.FromInt(g.Int())); err != nil {
				return nil, fmt.Errorf("sample.Dense: %w", err)
			}
		}
	}

	return m, nil
}

// Square returns an n×n random matrix.
func (g *Generator[T]) Square(n int) (*matrix.Dense[T], error) { return g.Dense(n, n) }

// NonSingular draws up to maxTries n×n matrices and returns the first one whose
// DeterminantLUP is non-zero.
func (g *Generator[T]) NonSingular(n, maxTries int) (*matrix.Dense[T], error) {
	for try := 0; try < maxTries; try++ {
		m, err := g.Square(n)
		if err != nil {
			return nil, err
		}
		det, err := matrix.DeterminantLUP[T](m)
		if err != nil {
			return nil, fmt.Errorf("sample.NonSingular: %w", err)
		}
		if !det.IsZero() {
			return m, nil
		}
	}

	return nil, fmt.Errorf("sample.NonSingular(%d) after %d tries: %w", n, maxTries, ErrNoNonSingular)
}

// Singular returns an n×n matrix (n ≥ 2) whose last row duplicates the first.
func (g *Generator[T]) Singular(n int) (*matrix.Dense[T], error) {
	if n < 2 {
		return nil, fmt.Errorf("sample.Singular(%d): %w", n, matrix.ErrInvalidDimensions)
	}
	m, err := g.Square(n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		v, _ := m.At(0, j)
		_ = m.Set(n-1, j, v)
	}

	return m, nil
}
