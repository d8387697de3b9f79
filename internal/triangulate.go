package internal

import (
	"io"

	"github.com/osuushi/earclip/internal/dbg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Ear clipping. Each round finds an ear, records the chord across it as a
// diagonal, and cuts the ear off the ring. Only the two vertices on either side
// of the cut can change their ear status, so only those are reclassified. The
// loop ends when three vertices remain; that last triangle needs no diagonal.
//
// Finding an ear scans from the head, and each ear check scans every edge, so
// the worst case is cubic. In practice an ear is usually close to the head.

// State for a single triangulation run.
type Triangulation struct {
	Ring      *Ring
	Diagonals []Diagonal
	log       logrus.Ext1FieldLogger
}

type Option func(*Triangulation)

// Log progress to the given logger. Runs are silent by default.
func WithLogger(logger logrus.Ext1FieldLogger) Option {
	return func(t *Triangulation) {
		t.log = logger
	}
}

func NewTriangulation(points []Point, options ...Option) *Triangulation {
	t := &Triangulation{
		Ring: NewRing(points),
	}
	for _, option := range options {
		option(t)
	}
	if t.log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		t.log = silent
		return t
	}
	// Only runs that log get a name, since naming pins the ring in the memo
	t.log = t.log.WithField("ring", dbg.Name(t.Ring))
	return t
}

// Triangulate the polygon given by points, which must be simple and
// counterclockwise. On failure, the diagonals found before the failure are
// still returned.
func Triangulate(points []Point, options ...Option) ([]Diagonal, error) {
	t := NewTriangulation(points, options...)
	defer dbg.Forget(t.Ring)
	err := t.Run()
	return t.Diagonals, err
}

func (t *Triangulation) Run() (err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	n := t.Ring.Len()
	if n < 3 {
		return errors.Wrapf(ErrInvalidInputSize, "got %d", n)
	}
	t.log.WithField("vertices", n).Debug("starting ear clipping")

	t.Ring.InitEars()
	// The ring is only formatted if trace logging is on
	t.log.Trace(t.Ring)

	for n > 3 {
		t.clipEar(n)
		n--
	}
	return nil
}

// Find the first ear from the head and cut it off. The vertices involved are,
// in ring order:
/*
	prevPrev - prev - ear - next - nextNext
*/
// After the cut, prev-next is an edge, and both of its endpoints need their
// ear status recomputed against the smaller polygon. UpdateEar does that with
// the new neighbors, so prev is checked against prevPrev-next and next against
// prev-nextNext.
func (t *Triangulation) clipEar(n int) {
	ear := t.Ring.FindEar()
	if ear == noVertex {
		t.log.WithField("remaining", n).Error(t.Ring)
		fatal(errors.Wrapf(ErrInvariantViolated, "triangulate: %d vertices remain", n))
	}

	prev, next := t.Ring.Neighbors(ear)

	diagonal := Diagonal{From: prev, To: next}
	t.Diagonals = append(t.Diagonals, diagonal)

	t.Ring.Remove(ear)
	t.Ring.UpdateEar(prev)
	t.Ring.UpdateEar(next)

	t.log.WithFields(logrus.Fields{
		"ear":       ear,
		"diagonal":  diagonal,
		"remaining": n - 1,
	}).Debug("clipped ear")
	t.log.Trace(t.Ring)
}
