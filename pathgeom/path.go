// Implements the geometry primitive driven by the
// SVG path interpreter: an append-only list of drawing
// operations, which can be replayed, measured and serialized.
package pathgeom

import (
	"fmt"
	"strings"
)

// Point is a 2D point in single precision, the precision
// of the binary stream format.
type Point struct{ X, Y float32 }

// Operation groups the different drawing commands
type Operation interface {
	// replays itself on the sink `s`
	drawTo(s Sink)
}

type MoveTo Point

type LineTo Point

// QuadTo stores the control point then the end point
type QuadTo [2]Point

// CubicTo stores the two control points then the end point
type CubicTo [3]Point

type Close struct{}

func (op MoveTo) drawTo(s Sink) { s.StartNewSubPath(op.X, op.Y) }

func (op LineTo) drawTo(s Sink) { s.LineTo(op.X, op.Y) }

func (op QuadTo) drawTo(s Sink) { s.QuadraticTo(op[0].X, op[0].Y, op[1].X, op[1].Y) }

func (op CubicTo) drawTo(s Sink) {
	s.CubicTo(op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
}

func (Close) drawTo(s Sink) { s.CloseSubPath() }

// Sink accumulates path commands. Coordinates are absolute.
type Sink interface {
	// StartNewSubPath begins a new sub-path at the given point.
	StartNewSubPath(x, y float32)
	// LineTo adds a line from the current point.
	LineTo(x, y float32)
	// QuadraticTo adds a quadratic bezier curve with control point (cx, cy).
	QuadraticTo(cx, cy, x, y float32)
	// CubicTo adds a cubic bezier curve with control points (c1x, c1y) and (c2x, c2y).
	CubicTo(c1x, c1y, c2x, c2y, x, y float32)
	// CloseSubPath joins the current point to the start of the sub-path.
	CloseSubPath()
}

// Path describes a sequence of basic operations.
// Its zero value is an empty path, ready to use.
type Path []Operation

var _ Sink = (*Path)(nil) // assert interface conformance

// String returns a readable representation of the path,
// using the SVG path syntax.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%g,%g", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%g,%g", op.X, op.Y)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%g,%g,%g,%g", op[0].X, op[0].Y, op[1].X, op[1].Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%g,%g,%g,%g,%g,%g", op[0].X, op[0].Y,
				op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// IsEmpty returns true if no operation has been added.
func (p Path) IsEmpty() bool { return len(p) == 0 }

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// StartNewSubPath starts a new sub-path at the given point.
func (p *Path) StartNewSubPath(x, y float32) {
	*p = append(*p, MoveTo{x, y})
}

// drawing on an empty path implicitly starts at the origin
func (p *Path) ensureStarted() {
	if len(*p) == 0 {
		p.StartNewSubPath(0, 0)
	}
}

// LineTo adds a linear segment to the current sub-path.
func (p *Path) LineTo(x, y float32) {
	p.ensureStarted()
	*p = append(*p, LineTo{x, y})
}

// QuadraticTo adds a quadratic segment to the current sub-path.
func (p *Path) QuadraticTo(cx, cy, x, y float32) {
	p.ensureStarted()
	*p = append(*p, QuadTo{{cx, cy}, {x, y}})
}

// CubicTo adds a cubic segment to the current sub-path.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.ensureStarted()
	*p = append(*p, CubicTo{{c1x, c1y}, {c2x, c2y}, {x, y}})
}

// CloseSubPath closes the current sub-path.
// It does nothing on an empty or already closed path.
func (p *Path) CloseSubPath() {
	if len(*p) == 0 {
		return
	}
	if _, isClosed := (*p)[len(*p)-1].(Close); isClosed {
		return
	}
	*p = append(*p, Close{})
}

// AddTo replays the operations of `p`, verbatim, on `s`.
func (p Path) AddTo(s Sink) {
	for _, op := range p {
		op.drawTo(s)
	}
}

// SubPath is a run of segments between a move
// and the next move (or the end of the path).
type SubPath struct {
	Start    Point
	Segments []Operation // LineTo, QuadTo or CubicTo
	Closed   bool
}

// SubPaths splits the path into its sub-paths.
// Segments following a close, without a new move, start
// a new sub-path at the previous start point.
func (p Path) SubPaths() []SubPath {
	var out []SubPath
	current := -1 // index in out, -1 outside a sub-path
	start := Point{}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			start = Point(op)
			out = append(out, SubPath{Start: start})
			current = len(out) - 1
		case Close:
			if current != -1 {
				out[current].Closed = true
			}
			current = -1
		default:
			if current == -1 {
				out = append(out, SubPath{Start: start})
				current = len(out) - 1
			}
			out[current].Segments = append(out[current].Segments, op)
		}
	}
	return out
}
