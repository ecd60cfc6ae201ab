// Package grid holds the authoritative state of an N×N board used for
// obstacle-aware path finding.
//
// What:
//
//   - Grid stores one State per cell, indexed by a row-major Cell id.
//   - Exactly one Origin and one Target marker once placed; markers never sit
//     on Blocked cells and never share a cell.
//   - Obstacles toggle between Open and Blocked; markers are never overwritten.
//   - NeighborsRaw reports the orthogonal geometric neighbors (up, down, left,
//     right) without traversability filtering and without wraparound.
//
// Why:
//
//   - The grid is the single source of truth; renderers and adjacency
//     builders read it, never mutate it behind its back.
//
// Complexity:
//
//   - New:                  O(N²) time and memory.
//   - PlaceOrigin/Target:   O(1).
//   - ToggleObstacle:       O(1).
//   - NeighborsRaw:         O(1).
//   - RandomizeMarkers:     O(N²).
//
// Errors:
//
//   - ErrInvalidSize:  non-positive dimension.
//   - ErrOutOfBounds:  cell id outside [0, N²).
//   - ErrCellOccupied: marker placement onto a blocked or already-marked cell.
//   - ErrTooFewCells:  fewer than two non-blocked cells for random markers.
package grid
