package grid

import (
	"errors"
	"math"
)

// ErrPathTooShort is returned for a path with fewer than two nodes.
var ErrPathTooShort = errors.New("grid: path needs at least 2 nodes")

// Path is a polyline of cells that enemies walk from the first node to the last.
// Segment lengths are Manhattan distances in cells; segments are expected to be
// axis-aligned, so this equals their Euclidean length.
type Path struct {
	nodes          []Coord
	segmentLengths []int
	length         int
}

// NewPath precomputes segment lengths for nodes. The slice is copied.
func NewPath(nodes []Coord) (*Path, error) {
	if len(nodes) < 2 {
		return nil, ErrPathTooShort
	}
	p := &Path{
		nodes:          append([]Coord(nil), nodes...),
		segmentLengths: make([]int, len(nodes)-1),
	}
	for i := 0; i < len(nodes)-1; i++ {
		p.segmentLengths[i] = nodes[i].Manhattan(nodes[i+1])
		p.length += p.segmentLengths[i]
	}
	return p, nil
}

// Nodes returns a copy of the path nodes.
func (p *Path) Nodes() []Coord {
	return append([]Coord(nil), p.nodes...)
}

// SegmentLengths returns a copy of the per-segment lengths in cells.
func (p *Path) SegmentLengths() []int {
	return append([]int(nil), p.segmentLengths...)
}

// Length is the total path length in cells.
func (p *Path) Length() int {
	return p.length
}

func (p *Path) Start() Coord { return p.nodes[0] }
func (p *Path) End() Coord   { return p.nodes[len(p.nodes)-1] }

// Lerp returns the world position at the given fraction of the path.
//
// The tile progress budget (total length in world units times progress) is consumed
// segment by segment until the remainder fits in one; the result is interpolated
// inside that segment. Progress is clamped to [0, 1]. If rounding leaves a budget
// that no segment absorbs, the last node is returned.
func (p *Path) Lerp(progress float64) Vec2 {
	if progress < 0 || math.IsNaN(progress) {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	tileProgress := float64(p.length) * CellSize * progress
	for i, seg := range p.segmentLengths {
		segLen := float64(seg) * CellSize
		if tileProgress > segLen {
			tileProgress -= segLen
			continue
		}
		start := p.nodes[i].World()
		if segLen == 0 {
			return start
		}
		return start.Lerp(p.nodes[i+1].World(), tileProgress/segLen)
	}
	return p.End().World()
}
