// Implements a PDF preview of the generated geometry,
// by writing content streams with github.com/benoitkugler/pdf.
package svgpdf

import (
	"image/color"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"github.com/benoitkugler/svgpathgen/logging"
	"github.com/benoitkugler/svgpathgen/pathgeom"
)

// A4 page size, in PDF units
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// Options controls the preview page.
type Options struct {
	// Page size, A4 if zero
	Width, Height float64

	// Margin is the minimum space around the geometry.
	Margin float64

	// Nil colors disable the corresponding paint.
	Fill, Stroke color.Color

	StrokeWidth float64
}

func (opts Options) pageSize() (w, h float64) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return A4Width, A4Height
	}
	return opts.Width, opts.Height
}

// opsWriter is implemented by *contentstream.Appearance
type opsWriter interface {
	Ops(ops ...contentstream.Operation)
}

// pather writes the path construction operators,
// applying a transform.
type pather struct {
	pdf opsWriter

	scale, tx, ty  float64
	inPath         bool
	current, start [2]float64 // in page space
}

var _ pathgeom.Sink = (*pather)(nil)

func (p *pather) apply(x, y float32) (float64, float64) {
	return float64(x)*p.scale + p.tx, float64(y)*p.scale + p.ty
}

func (p *pather) ensureStarted() {
	if !p.inPath {
		p.pdf.Ops(contentstream.OpMoveTo{X: p.current[0], Y: p.current[1]})
		p.start = p.current
		p.inPath = true
	}
}

func (p *pather) StartNewSubPath(x, y float32) {
	p.current[0], p.current[1] = p.apply(x, y)
	p.start = p.current
	p.pdf.Ops(contentstream.OpMoveTo{X: p.current[0], Y: p.current[1]})
	p.inPath = true
}

func (p *pather) LineTo(x, y float32) {
	p.ensureStarted()
	p.current[0], p.current[1] = p.apply(x, y)
	p.pdf.Ops(contentstream.OpLineTo{X: p.current[0], Y: p.current[1]})
}

// QuadraticTo is written as the equivalent cubic curve
func (p *pather) QuadraticTo(cx, cy, x, y float32) {
	p.ensureStarted()
	x0, y0 := p.current[0], p.current[1]
	qx, qy := p.apply(cx, cy)
	x3, y3 := p.apply(x, y)
	p.pdf.Ops(contentstream.OpCubicTo{
		X1: x0 + 2./3*(qx-x0), Y1: y0 + 2./3*(qy-y0),
		X2: x3 + 2./3*(qx-x3), Y2: y3 + 2./3*(qy-y3),
		X3: x3, Y3: y3,
	})
	p.current = [2]float64{x3, y3}
}

func (p *pather) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.ensureStarted()
	x1, y1 := p.apply(c1x, c1y)
	x2, y2 := p.apply(c2x, c2y)
	p.current[0], p.current[1] = p.apply(x, y)
	p.pdf.Ops(contentstream.OpCubicTo{X1: x1, Y1: y1, X2: x2, Y2: y2, X3: p.current[0], Y3: p.current[1]})
}

func (p *pather) CloseSubPath() {
	if !p.inPath {
		return
	}
	p.pdf.Ops(contentstream.OpClosePath{})
	p.current = p.start
	p.inPath = false
}

// paint writes `path` and the painting operator selected by `opts`.
// The path is written once, even when both filled and stroked.
func paint(pdf opsWriter, path pathgeom.Path, opts Options, pageHeight float64) {
	if path.IsEmpty() || (opts.Fill == nil && opts.Stroke == nil) {
		return
	}
	w, h := opts.pageSize()
	pa := pather{pdf: pdf}
	pa.scale, pa.tx, pa.ty = path.Bounds().Fit(w, h, opts.Margin)

	// use the SVG orientation, with y going down
	pdf.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, pageHeight}},
	)
	if opts.Stroke != nil {
		pdf.Ops(
			contentstream.OpSetLineWidth{W: opts.StrokeWidth},
			contentstream.OpSetLineCap{Style: 1},
			contentstream.OpSetLineJoin{Style: 1},
		)
	}
	path.AddTo(&pa)

	switch {
	case opts.Fill != nil && opts.Stroke != nil:
		pdf.Ops(contentstream.OpFillStroke{})
	case opts.Fill != nil:
		pdf.Ops(contentstream.OpFill{})
	default:
		pdf.Ops(contentstream.OpStroke{})
	}
	pdf.Ops(contentstream.OpRestore{})
}

// NewPage returns a content stream drawing `path`, fitted to the page.
func NewPage(path pathgeom.Path, opts Options) *contentstream.Appearance {
	w, h := opts.pageSize()
	page := contentstream.NewAppearance(w, h)
	if opts.Fill != nil {
		page.SetColorFill(opts.Fill)
	}
	if opts.Stroke != nil {
		page.SetColorStroke(opts.Stroke)
	}
	paint(&page, path, opts, h)
	return &page
}

// WriteFile renders `path` in a one page PDF document
// saved in `filename`.
func WriteFile(path pathgeom.Path, filename string, opts Options) error {
	page := NewPage(path, opts)

	var doc model.Document
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, page.ToPageObject(true))
	logging.Logger().Debug("writing PDF preview", "file", filename, "operations", len(path))
	return doc.WriteFile(filename, nil)
}
