package svgpath

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgpathgen/pathgeom"
)

// DefaultVariable is the name of the generated path variable.
const DefaultVariable = "path"

// FloatLiteral formats `v` as a single precision literal with
// one decimal digit, such as 10.0f or -2.5f.
func FloatLiteral(v float32) string { return fmt.Sprintf("%.1ff", v) }

// CodeWriter is a pathgeom.Sink generating one drawing statement
// per operation, such as
//
//	path.lineTo(10.0f, 0.0f);
//
// The zero value is ready to use.
type CodeWriter struct {
	Var string // name of the path variable, DefaultVariable if empty

	buf strings.Builder
}

var _ pathgeom.Sink = (*CodeWriter)(nil)

func (w *CodeWriter) statement(method string, args ...float32) {
	name := w.Var
	if name == "" {
		name = DefaultVariable
	}
	w.buf.WriteString("    ")
	w.buf.WriteString(name)
	w.buf.WriteByte('.')
	w.buf.WriteString(method)
	w.buf.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.buf.WriteString(FloatLiteral(a))
	}
	w.buf.WriteString(");\n")
}

func (w *CodeWriter) StartNewSubPath(x, y float32) { w.statement("startNewSubPath", x, y) }

func (w *CodeWriter) LineTo(x, y float32) { w.statement("lineTo", x, y) }

func (w *CodeWriter) QuadraticTo(cx, cy, x, y float32) {
	w.statement("quadraticTo", cx, cy, x, y)
}

func (w *CodeWriter) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	w.statement("cubicTo", c1x, c1y, c2x, c2y, x, y)
}

func (w *CodeWriter) CloseSubPath() { w.statement("closeSubPath") }

// String returns the statements written so far.
func (w *CodeWriter) String() string { return w.buf.String() }

// Reset discards the statements written so far.
func (w *CodeWriter) Reset() { w.buf.Reset() }

type tee []pathgeom.Sink

// Tee returns a sink forwarding every operation,
// in order, to all the given sinks.
func Tee(sinks ...pathgeom.Sink) pathgeom.Sink { return tee(sinks) }

func (t tee) StartNewSubPath(x, y float32) {
	for _, s := range t {
		s.StartNewSubPath(x, y)
	}
}

func (t tee) LineTo(x, y float32) {
	for _, s := range t {
		s.LineTo(x, y)
	}
}

func (t tee) QuadraticTo(cx, cy, x, y float32) {
	for _, s := range t {
		s.QuadraticTo(cx, cy, x, y)
	}
}

func (t tee) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	for _, s := range t {
		s.CubicTo(c1x, c1y, c2x, c2y, x, y)
	}
}

func (t tee) CloseSubPath() {
	for _, s := range t {
		s.CloseSubPath()
	}
}
