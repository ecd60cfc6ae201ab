package pathfinder_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/metrics"
	"github.com/katalvlaran/gridpath/pathfinder"
)

// SessionSuite exercises the session facade on a 5×5 board with markers in
// opposite corners.
type SessionSuite struct {
	suite.Suite
	s   *pathfinder.Session
	m   *metrics.Collector
	buf *bytes.Buffer
}

func (s *SessionSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	s.m = metrics.NewCollector(nil)
	logger := slog.New(slog.NewTextHandler(s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sess, err := pathfinder.ConfigureGrid(5, pathfinder.WithLogger(logger), pathfinder.WithMetrics(s.m))
	require.NoError(s.T(), err)
	require.NoError(s.T(), sess.SetMarker(pathfinder.RoleOrigin, 0))
	require.NoError(s.T(), sess.SetMarker(pathfinder.RoleTarget, 24))
	s.s = sess
}

// TestOpenBoard finds a 9-cell path on the open 5×5 board.
func (s *SessionSuite) TestOpenBoard() {
	res, err := s.s.RequestPath(context.Background())
	s.Require().NoError(err)
	s.True(res.Found)
	s.Len(res.Path, 9)
	s.Equal(0, res.Path[0])
	s.Equal(24, res.Path[8])
	s.Equal(1.0, testutil.ToFloat64(s.m.Searches(metrics.OutcomeFound)))
	s.Contains(s.buf.String(), "search finished")
	s.Contains(s.buf.String(), "component=pathfinder")
}

// TestCutOff reports no path once row 1 and column 0 are walled.
func (s *SessionSuite) TestCutOff() {
	for _, c := range []int{5, 6, 7, 8, 9, 10, 15, 20} {
		s.Require().NoError(s.s.SetObstacle(c, true))
	}
	res, err := s.s.RequestPath(context.Background())
	s.Require().NoError(err)
	s.False(res.Found)
	s.Nil(res.Path)
	s.Equal(1.0, testutil.ToFloat64(s.m.Searches(metrics.OutcomeNotFound)))

	// opening one wall cell restores reachability on the next request
	st, err := s.s.ToggleObstacle(9)
	s.Require().NoError(err)
	s.Equal(grid.Open, st)
	res, err = s.s.RequestPath(context.Background())
	s.Require().NoError(err)
	s.True(res.Found)
}

// TestIdempotent: two requests without mutation agree.
func (s *SessionSuite) TestIdempotent() {
	_ = s.s.SetObstacle(12, true)
	a, err := s.s.RequestPath(context.Background())
	s.Require().NoError(err)
	b, err := s.s.RequestPath(context.Background())
	s.Require().NoError(err)
	s.Equal(a, b)
}

// TestMarkerErrors covers the error taxonomy surfaced by SetMarker.
func (s *SessionSuite) TestMarkerErrors() {
	_ = s.s.SetObstacle(7, true)
	s.ErrorIs(s.s.SetMarker(pathfinder.RoleOrigin, 25), grid.ErrOutOfBounds)
	s.ErrorIs(s.s.SetMarker(pathfinder.RoleOrigin, 24), grid.ErrCellOccupied)
	s.ErrorIs(s.s.SetMarker(pathfinder.RoleTarget, 7), grid.ErrCellOccupied)
	s.ErrorIs(s.s.SetMarker(pathfinder.Role(9), 3), pathfinder.ErrUnknownRole)
	s.Contains(s.buf.String(), "marker rejected")
}

// TestObstacleOnMarkerIgnored: obstacles never land on markers.
func (s *SessionSuite) TestObstacleOnMarkerIgnored() {
	s.NoError(s.s.SetObstacle(0, true))
	st, err := s.s.ToggleObstacle(24)
	s.NoError(err)
	s.Equal(grid.Target, st)
	s.Empty(s.s.Snapshot().Obstacles())
	s.ErrorIs(s.s.SetObstacle(-1, true), grid.ErrOutOfBounds)
}

// TestDrag covers a successful drop, reuse and cancellation.
func (s *SessionSuite) TestDrag() {
	d, err := s.s.BeginDrag(pathfinder.RoleOrigin)
	s.Require().NoError(err)
	s.Equal(pathfinder.RoleOrigin, d.Role())
	s.NoError(d.Drop(6))
	s.True(d.Done())
	s.ErrorIs(d.Drop(7), pathfinder.ErrDragFinished)

	o, _ := s.s.Snapshot().Origin()
	s.Equal(6, o)

	// a rejected drop still ends the gesture and leaves the marker in place
	d2, _ := s.s.BeginDrag(pathfinder.RoleTarget)
	s.ErrorIs(d2.Drop(6), grid.ErrCellOccupied)
	s.True(d2.Done())
	tg, _ := s.s.Snapshot().Target()
	s.Equal(24, tg)

	d3, _ := s.s.BeginDrag(pathfinder.RoleTarget)
	d3.Cancel()
	s.ErrorIs(d3.Drop(1), pathfinder.ErrDragFinished)

	_, err = s.s.BeginDrag(pathfinder.Role(-1))
	s.ErrorIs(err, pathfinder.ErrUnknownRole)
}

// TestCancelledContext surfaces the context error and counts it.
func (s *SessionSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.s.RequestPath(ctx)
	s.ErrorIs(err, context.Canceled)
	s.Equal(1.0, testutil.ToFloat64(s.m.Searches(metrics.OutcomeError)))
	s.Contains(s.buf.String(), "search failed")
}

// TestReset clears obstacles and markers.
func (s *SessionSuite) TestReset() {
	_ = s.s.SetObstacle(3, true)
	s.Require().NoError(s.s.Reset())
	snap := s.s.Snapshot()
	s.Empty(snap.Obstacles())
	_, ok := snap.Origin()
	s.False(ok)
	_, err := s.s.RequestPath(context.Background())
	s.ErrorIs(err, pathfinder.ErrMarkerUnset)
}

// TestSnapshotIsolated: mutating a snapshot leaves the session unchanged.
func (s *SessionSuite) TestSnapshotIsolated() {
	snap := s.s.Snapshot()
	_, _ = snap.ToggleObstacle(2)
	s.Empty(s.s.Snapshot().Obstacles())
	s.Equal(5, s.s.Size())
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}
