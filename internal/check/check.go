// SPDX-License-Identifier: MIT

// Package check runs randomized cross-checks of the matrix algorithms.
//
// Determinants compares DeterminantLUP with DeterminantPermutations on random
// square matrices; Inverses verifies A·InverseLUP(A) = I, redrawing singular
// samples up to Params.MaxTries times. Both are generic over the element strategy and deterministic for a
// given seed. Values are compared with a relative tolerance expressed through
// the field itself, so exact strategies compare exactly.
package check

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/internal/sample"
	"github.com/katalvlaran/lvlinalg/matrix"
	"github.com/katalvlaran/lvlinalg/numeric"
)

// ErrInvalidParams is returned when Params cannot drive a run.
var ErrInvalidParams = errors.New("check: invalid parameters")

// Params configures one run.
type Params struct {
	Order  int
	Trials int
	Seed   int64
	Low    int
	High   int
	// MaxTries bounds the draws per Inverses trial; zero means one draw.
	MaxTries int
}

// Failure describes one disagreeing trial.
type Failure struct {
	Trial  int
	Matrix string
	Detail string
}

// Report summarizes a run.
type Report struct {
	Trials   int
	Skipped  int
	Failures []Failure
}

// OK reports whether no trial disagreed.
func (r Report) OK() bool { return len(r.Failures) == 0 }

func (p Params) validate() error {
	if p.Order < 1 || p.Trials < 1 || p.Low > p.High || p.MaxTries < 0 {
		return fmt.Errorf("order=%d trials=%d range=[%d,%d] max_tries=%d: %w",
			p.Order, p.Trials, p.Low, p.High, p.MaxTries, ErrInvalidParams)
	}

	return nil
}

// Determinants compares both determinant algorithms on p.Trials random matrices.
// It stops early with ctx.Err() when ctx is done.
func Determinants[T any](ctx context.Context, f *numeric.Field[T], p Params) (Report, error) {
	var rep Report
	if err := p.validate(); err != nil {
		return rep, err
	}
	g := sample.New(f, p.Seed, sample.WithRange(p.Low, p.High))
	for trial := 0; trial < p.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		a, err := g.Square(p.Order)
		if err != nil {
			return rep, err
		}
		lup, err := matrix.DeterminantLUP[T](a)
		if err != nil {
			return rep, err
		}
		perm, err := matrix.DeterminantPermutations[T](a)
		if err != nil {
			return rep, err
		}
		rep.Trials++
		if !closeTo(lup, perm) {
			rep.Failures = append(rep.Failures, Failure{
				Trial:  trial,
				Matrix: a.String(),
				Detail: fmt.Sprintf("LUP=%v permutations=%v", lup, perm),
			})
		}
	}

	return rep, nil
}

// Inverses checks A·InverseLUP(A) = I on p.Trials random matrices.
// Each trial draws up to p.MaxTries samples looking for a non-singular one;
// a trial that finds none is counted in Report.Skipped.
func Inverses[T any](ctx context.Context, f *numeric.Field[T], p Params) (Report, error) {
	var rep Report
	if err := p.validate(); err != nil {
		return rep, err
	}
	tries := max(p.MaxTries, 1)
	g := sample.New(f, p.Seed, sample.WithRange(p.Low, p.High))
	for trial := 0; trial < p.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		a, err := g.NonSingular(p.Order, tries)
		if errors.Is(err, sample.ErrNoNonSingular) {
			rep.Skipped++
			continue
		}
		if err != nil {
			return rep, err
		}
		inv, err := matrix.InverseLUP[T](a)
		if errors.Is(err, matrix.ErrSingular) {
			rep.Skipped++
			continue
		}
		if err != nil {
			return rep, err
		}
		prod, err := matrix.Mul[T](a, inv)
		if err != nil {
			return rep, err
		}
		rep.Trials++
		if i, j, ok := isIdentity(prod); !ok {
			v, _ := prod.Elem(i, j)
			rep.Failures = append(rep.Failures, Failure{
				Trial:  trial,
				Matrix: a.String(),
				Detail: fmt.Sprintf("(A·A⁻¹)[%d][%d]=%v", i, j, v),
			})
		}
	}

	return rep, nil
}

// closeTo reports |a−b| / max(1, |a|, |b|) == 0 under the field's equality,
// which is exact for exact strategies and tolerance-based for Float64.
// Integral fields compare directly.
func closeTo[T any](a, b numeric.Number[T]) bool {
	f := a.Field()
	if f.Integral() {
		return a.Equal(b) // scaling would truncate
	}
	scale := f.One()
	if aa := a.Abs(); aa.Greater(scale) {
		scale = aa
	}
	if bb := b.Abs(); bb.Greater(scale) {
		scale = bb
	}

	return a.Sub(b).Div(scale).IsZero()
}

// isIdentity returns the first offending cell when m is not I.
func isIdentity[T any](m *matrix.Dense[T]) (int, int, bool) {
	f := m.Field()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			e, _ := m.Elem(i, j)
			want := f.Zero()
			if i == j {
				want = f.One()
			}
			if !closeTo(e, want) {
				return i, j, false
			}
		}
	}

	return 0, 0, true
}
