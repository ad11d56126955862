// Implements a raster preview of the generated
// geometry, by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/benoitkugler/svgpathgen/logging"
	"github.com/benoitkugler/svgpathgen/pathgeom"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Options controls the rendering of a path.
type Options struct {
	Width, Height int

	// Margin is the minimum space around the geometry, in pixels.
	Margin float64

	// Scale, if positive, maps one path unit to Scale pixels,
	// with the path origin at (Margin, Margin).
	// Otherwise, the geometry is scaled and centered to fit the image.
	Scale float64

	// Nil colors disable the corresponding paint.
	Fill, Stroke, Background color.Color

	StrokeWidth float64
}

// transform maps path coordinates to pixels
type transform struct {
	scale, tx, ty float64
}

func (t transform) apply(x, y float32) fixed.Point26_6 {
	return toFixedP(float64(x)*t.scale+t.tx, float64(y)*t.scale+t.ty)
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

func fitTransform(bounds pathgeom.Rect, opts Options) transform {
	if opts.Scale > 0 {
		return transform{scale: opts.Scale, tx: opts.Margin, ty: opts.Margin}
	}
	var t transform
	t.scale, t.tx, t.ty = bounds.Fit(float64(opts.Width), float64(opts.Height), opts.Margin)
	return t
}

// adder sends the path operations to a rasterx.Adder,
// applying a transform.
type adder struct {
	rasterx.Adder
	transform

	inPath         bool
	current, start fixed.Point26_6
}

var _ pathgeom.Sink = (*adder)(nil)

// ensureStarted starts a new curve at the current point if needed,
// which happens after a close
func (a *adder) ensureStarted() {
	if !a.inPath {
		a.Adder.Start(a.current)
		a.start = a.current
		a.inPath = true
	}
}

func (a *adder) StartNewSubPath(x, y float32) {
	if a.inPath {
		a.Adder.Stop(false)
	}
	a.current = a.apply(x, y)
	a.start = a.current
	a.Adder.Start(a.current)
	a.inPath = true
}

func (a *adder) LineTo(x, y float32) {
	a.ensureStarted()
	a.current = a.apply(x, y)
	a.Adder.Line(a.current)
}

func (a *adder) QuadraticTo(cx, cy, x, y float32) {
	a.ensureStarted()
	a.current = a.apply(x, y)
	a.Adder.QuadBezier(a.apply(cx, cy), a.current)
}

func (a *adder) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	a.ensureStarted()
	a.current = a.apply(x, y)
	a.Adder.CubeBezier(a.apply(c1x, c1y), a.apply(c2x, c2y), a.current)
}

func (a *adder) CloseSubPath() {
	if !a.inPath {
		return
	}
	a.Adder.Stop(true)
	a.current = a.start
	a.inPath = false
}

// end terminates the last curve
func (a *adder) end() {
	if a.inPath {
		a.Adder.Stop(false)
		a.inPath = false
	}
}

// renderer paints paths on an image, filling then stroking them.
type renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// newRenderer returns a renderer drawing with `scanner`.
// If scanner is nil, a ScannerGV drawing on `img` is used.
func newRenderer(img draw.Image, scanner rasterx.Scanner) *renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, img, img.Bounds())
	}
	return &renderer{dasher: rasterx.NewDasher(w, h, scanner), filler: rasterx.NewFiller(w, h, scanner)}
}

// fill paints the inside of `p`, using the non-zero winding rule.
func (rd *renderer) fill(p pathgeom.Path, tr transform, col color.Color) {
	rd.filler.Clear()
	rd.filler.SetWinding(true)
	a := adder{Adder: rd.filler, transform: tr}
	p.AddTo(&a)
	a.end()
	rd.filler.SetColor(col)
	rd.filler.Draw()
}

// stroke outlines `p` with round joins and caps.
// `width` is expressed in pixels.
func (rd *renderer) stroke(p pathgeom.Path, tr transform, col color.Color, width float64) {
	rd.dasher.Clear()
	rd.dasher.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
	a := adder{Adder: rd.dasher, transform: tr}
	p.AddTo(&a)
	a.end()
	rd.dasher.SetColor(col)
	rd.dasher.Draw()
}

// Rasterize renders `p` into a new image.
func Rasterize(p pathgeom.Path, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	if p.IsEmpty() {
		return img
	}

	tr := fitTransform(p.Bounds(), opts)
	logging.Logger().Debug("rasterizing path", "width", opts.Width, "height", opts.Height, "scale", tr.scale)

	rd := newRenderer(img, nil)
	if opts.Fill != nil {
		rd.fill(p, tr, opts.Fill)
	}
	if opts.Stroke != nil && opts.StrokeWidth > 0 {
		rd.stroke(p, tr, opts.Stroke, opts.StrokeWidth)
	}
	return img
}

// WritePNG renders `p` and encodes the result as PNG.
func WritePNG(w io.Writer, p pathgeom.Path, opts Options) error {
	return png.Encode(w, Rasterize(p, opts))
}
