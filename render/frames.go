package render

import "github.com/katalvlaran/gridpath/bfs"

// FrameKind tells a presentation layer which reveal a frame belongs to.
type FrameKind int

const (
	// FrameVisit marks a dequeued cell during the visited-set reveal.
	FrameVisit FrameKind = iota
	// FramePath marks a cell of the final path, origin first.
	FramePath
)

// Frame is one step of a reveal animation. Timing is left to the caller.
type Frame struct {
	Kind FrameKind
	Cell int
	Step int
}

// Frames lists the visited-set reveal (every dequeue, in order) followed by
// the path reveal from origin to target. Step counts from 0 within each kind.
func Frames(res *bfs.Result) []Frame {
	if res == nil {
		return nil
	}
	out := make([]Frame, 0, len(res.Order)+len(res.Path))
	for i, c := range res.Order {
		out = append(out, Frame{Kind: FrameVisit, Cell: c, Step: i})
	}
	for i, c := range res.Path {
		out = append(out, Frame{Kind: FramePath, Cell: c, Step: i})
	}
	return out
}
