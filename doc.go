// Package gridpath finds shortest paths on square grid boards and records how
// the search unfolded, so a presentation layer can replay it.
//
// What is gridpath?
//
//	A small stack of single-purpose packages:
//		• grid       – N×N board: open, blocked, origin and target cells
//		• adjacency  – traversable-neighbor mapping rebuilt for every search
//		• bfs        – breadth-first search with path, dequeue order and visit records
//		• pathfinder – session facade: configure, edit, drag markers, request a path
//		• board      – YAML and HCL board files
//		• render     – ASCII text, PNG-ready raster and reveal frames
//		• metrics    – Prometheus instruments for searches
//
// Cells are row-major ids in [0, N²). Moves are orthogonal and every step
// costs one; neighbors are always considered up, down, left, right, which
// fixes the path chosen among equal-length candidates.
//
// Quick start
//
//	s, _ := pathfinder.ConfigureGrid(10)
//	_ = s.SetMarker(pathfinder.RoleOrigin, 0)
//	_ = s.SetMarker(pathfinder.RoleTarget, 99)
//	_, _ = s.ToggleObstacle(45)
//	res, err := s.RequestPath(ctx)
//	if err == nil && res.Found {
//		fmt.Println(res.Path)
//	}
//
// The gridpath binary (cmd/gridpath) wraps the same flow: "gridpath solve -f
// board.yaml" and "gridpath random --size 30 --seed 7 --png out.png".
package gridpath
