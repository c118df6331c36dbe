package engine

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/corvid/weiqi/board"
	"github.com/corvid/weiqi/pattern"
)

// AssertInvariants is the debug sweep spec §8 calls for: recompute env4/
// env4d from scratch and compare against the incremental caches, recompute
// the running capture total, and check the pat3 set's bit cardinality.
// Integrity violations are fatal (spec §7), so the caller is expected to
// panic on a non-nil result; AssertInvariants itself only reports.
func (e *Engine) AssertInvariants() error {
	var result *multierror.Error

	if err := e.assertEnvCaches(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := e.assertCaptureTotal(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := e.assertPat3Cardinality(); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func (e *Engine) assertEnvCaches() error {
	pos := e.pos
	geom := e.geom
	var errs *multierror.Error
	for row := 0; row < geom.N; row++ {
		for col := 0; col < geom.N; col++ {
			pt := geom.Pt(row, col)
			wantEnv4, wantEnv4d := pos.ComputeEnv4(pt)
			gotEnv4, gotEnv4d := pos.Env4Raw(pt)
			if wantEnv4 != gotEnv4 || wantEnv4d != gotEnv4d {
				errs = multierror.Append(errs, errors.Errorf(
					"env4 cache mismatch at %s: cached (%08b,%08b) want (%08b,%08b)",
					board.StrCoord(geom, pt), gotEnv4, gotEnv4d, wantEnv4, wantEnv4d))
			}
		}
	}
	return errs.ErrorOrNil()
}

func (e *Engine) assertCaptureTotal() error {
	if want := e.pos.Cap + e.pos.CapX; want != e.totalCaptured {
		return errors.Errorf("capture total mismatch: tracked %d, position reports %d", e.totalCaptured, want)
	}
	return nil
}

// assertPat3Cardinality checks the compiled 3x3 set against the number of
// env8 values its hand-written templates' symmetry closure is expected to
// produce: nonzero and well below the full 65536-value space, catching a
// corrupted or doubly-compiled table.
func (e *Engine) assertPat3Cardinality() error {
	n := e.pat3.Cardinality()
	if n == 0 {
		return errors.New("pat3 set is empty")
	}
	if n >= pattern.Pat3Bits {
		return errors.Errorf("pat3 set covers the entire env8 space (%d entries), looks corrupted", n)
	}
	return nil
}
