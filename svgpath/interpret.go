// Implements the interpreter of the SVG path data
// mini-language (the "d" attribute of <path> elements).
// Arcs are not supported.
package svgpath

import (
	"github.com/benoitkugler/svgpathgen/logging"
	"github.com/benoitkugler/svgpathgen/pathgeom"
)

// state is the interpreter state, scoped to one path data string.
type state struct {
	x, y           float32 // current point
	startX, startY float32 // start of the current sub-path
	ctrlX, ctrlY   float32 // last control point, reflected by S and T
	prevCommand    byte    // letter used for implicit repetitions
}

// pathCursor walks the path data, recording the resulting
// operations.
type pathCursor struct {
	state
	data string
	pos  int
	args [7]float32
	ops  pathgeom.Path
}

func (c *pathCursor) emit(op pathgeom.Operation) { c.ops = append(c.ops, op) }

// readArgs tries to fill c.args[:n] and returns
// the number of values successfully read.
func (c *pathCursor) readArgs(n int) int {
	for i := 0; i < n; i++ {
		v, next, ok := ParseNumber(c.data, c.pos)
		c.pos = next
		if !ok {
			return i
		}
		c.args[i] = v
	}
	return n
}

// resolve applies the relative offset, if any
func (c *pathCursor) resolve(x, y float32, relative bool) (float32, float32) {
	if relative {
		return c.x + x, c.y + y
	}
	return x, y
}

// repeat calls `draw` for each complete group of arguments.
// The run ends with the first incomplete group, which is dropped.
func (c *pathCursor) repeat(n int, draw func(a []float32)) {
	for c.readArgs(n) == n {
		draw(c.args[:n])
	}
}

// compile records the operations described by the path data.
func (c *pathCursor) compile() error {
	for {
		c.pos = skipSpaces(c.data, c.pos)
		if c.pos >= len(c.data) {
			return nil
		}
		at := c.pos
		letter := c.data[c.pos]
		implicit := !isLetter(letter)
		if !implicit {
			c.pos++
		} else if c.prevCommand != 0 && startsNumber(letter) {
			letter = c.prevCommand
		} else {
			return &ParseError{Kind: MissingCommand, Pos: at}
		}

		if err := c.execute(letter, at); err != nil {
			return err
		}
		if implicit && c.pos == at {
			// nothing consumed : the data is not a number either
			return &ParseError{Kind: MissingCommand, Pos: at}
		}
	}
}

func (c *pathCursor) execute(letter byte, at int) error {
	cmd, relative, ok := lookupCommand(letter)
	if !ok {
		return &ParseError{Kind: UnknownCommand, Pos: at, Command: letter}
	}

	switch cmd {
	case MoveTo:
		if c.readArgs(2) < 2 {
			return &ParseError{Kind: MalformedNumber, Pos: c.pos, Command: letter}
		}
		c.x, c.y = c.resolve(c.args[0], c.args[1], relative)
		c.startX, c.startY = c.x, c.y
		c.emit(pathgeom.MoveTo{X: c.x, Y: c.y})
		// following pairs are implicit lines
		if relative {
			c.prevCommand = 'l'
		} else {
			c.prevCommand = 'L'
		}
		return nil
	case LineTo:
		c.repeat(2, func(a []float32) {
			c.x, c.y = c.resolve(a[0], a[1], relative)
			c.emit(pathgeom.LineTo{X: c.x, Y: c.y})
		})
	case HorizontalLineTo:
		c.repeat(1, func(a []float32) {
			c.x, _ = c.resolve(a[0], 0, relative)
			c.emit(pathgeom.LineTo{X: c.x, Y: c.y})
		})
	case VerticalLineTo:
		c.repeat(1, func(a []float32) {
			_, c.y = c.resolve(0, a[0], relative)
			c.emit(pathgeom.LineTo{X: c.x, Y: c.y})
		})
	case CubicTo:
		c.repeat(6, func(a []float32) {
			c1x, c1y := c.resolve(a[0], a[1], relative)
			c2x, c2y := c.resolve(a[2], a[3], relative)
			c.x, c.y = c.resolve(a[4], a[5], relative)
			c.emit(pathgeom.CubicTo{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: c.x, Y: c.y}})
			c.ctrlX, c.ctrlY = c2x, c2y
		})
	case SmoothCubicTo:
		c.repeat(4, func(a []float32) {
			c1x, c1y := c.x*2-c.ctrlX, c.y*2-c.ctrlY
			c2x, c2y := c.resolve(a[0], a[1], relative)
			c.x, c.y = c.resolve(a[2], a[3], relative)
			c.emit(pathgeom.CubicTo{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: c.x, Y: c.y}})
			c.ctrlX, c.ctrlY = c2x, c2y
		})
	case QuadraticTo:
		c.repeat(4, func(a []float32) {
			cx, cy := c.resolve(a[0], a[1], relative)
			c.x, c.y = c.resolve(a[2], a[3], relative)
			c.emit(pathgeom.QuadTo{{X: cx, Y: cy}, {X: c.x, Y: c.y}})
			c.ctrlX, c.ctrlY = cx, cy
		})
	case SmoothQuadraticTo:
		c.repeat(2, func(a []float32) {
			cx, cy := c.x*2-c.ctrlX, c.y*2-c.ctrlY
			c.x, c.y = c.resolve(a[0], a[1], relative)
			c.emit(pathgeom.QuadTo{{X: cx, Y: cy}, {X: c.x, Y: c.y}})
			c.ctrlX, c.ctrlY = cx, cy
		})
	case ArcTo:
		return &ParseError{Kind: UnsupportedCommand, Pos: at, Command: letter}
	case ClosePath:
		c.emit(pathgeom.Close{})
		c.x, c.y = c.startX, c.startY
	}
	c.prevCommand = letter
	return nil
}

// Compile returns the operations described by the path data `d`,
// as written: closes are not deduplicated and the first operation
// is not necessarily a move.
func Compile(d string) (pathgeom.Path, error) {
	c := pathCursor{data: d}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return c.ops, nil
}

// Interpret replays the operations described by the path data `d`
// on `dst`. If `d` is not valid, an error of type *ParseError is
// returned and nothing is sent to `dst`.
func Interpret(d string, dst pathgeom.Sink) error {
	ops, err := Compile(d)
	if err != nil {
		logging.Logger().Warn("rejected path data", "error", err)
		return err
	}
	logging.Logger().Debug("interpreted path data", "operations", len(ops))
	ops.AddTo(dst)
	return nil
}

// Translate interprets `d`, appending the geometry to `geom`,
// and returns the equivalent drawing statements, one per line,
// for a path variable named "path".
// On failure, `geom` is unchanged and the text is empty.
func Translate(d string, geom pathgeom.Sink) (string, error) {
	var code CodeWriter
	if err := Interpret(d, Tee(geom, &code)); err != nil {
		return "", err
	}
	return code.String(), nil
}
