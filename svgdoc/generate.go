package svgdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benoitkugler/svgpathgen/export"
	"github.com/benoitkugler/svgpathgen/logging"
	"github.com/benoitkugler/svgpathgen/pathgeom"
	"github.com/benoitkugler/svgpathgen/svgpath"
)

// ErrEmptyPathData is returned for path data without any drawing command.
var ErrEmptyPathData = errors.New("path data without drawing commands")

// Options customizes the generated procedure.
// Zero fields are replaced by their default value.
type Options struct {
	ProcedureName string // default "createPath"
	PathType      string // default "Path"
	PathVariable  string // default "path"
}

func (opts Options) withDefaults() Options {
	if opts.ProcedureName == "" {
		opts.ProcedureName = "createPath"
	}
	if opts.PathType == "" {
		opts.PathType = "Path"
	}
	if opts.PathVariable == "" {
		opts.PathVariable = svgpath.DefaultVariable
	}
	return opts
}

// Generate interprets every path of the document, in order, and returns
// a procedure building the resulting geometry :
//
//	Path createPath()
//	{
//	    Path path;
//	    path.startNewSubPath(0.0f, 0.0f);
//	    ...
//	    return path;
//	}
//
// The geometry is also sent to `geom`, unless an error occurs : if any
// of the paths is invalid, the whole document is rejected and `geom`
// is not modified.
func (doc *Document) Generate(geom pathgeom.Sink, opts Options) (string, error) {
	if len(doc.PathData) == 0 {
		return "", ErrNoPathData
	}
	opts = opts.withDefaults()

	var ops pathgeom.Path
	for i, d := range doc.PathData {
		pathOps, err := svgpath.Compile(d)
		if err != nil {
			logging.Logger().Warn("rejected path data", "index", i, "error", err)
			return "", fmt.Errorf("path %d: %w", i, err)
		}
		if len(pathOps) == 0 {
			return "", fmt.Errorf("path %d: %w", i, ErrEmptyPathData)
		}
		ops = append(ops, pathOps...)
	}

	code := svgpath.CodeWriter{Var: opts.PathVariable}
	ops.AddTo(svgpath.Tee(geom, &code))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s()\n{\n    %s %s;\n", opts.PathType, opts.ProcedureName, opts.PathType, opts.PathVariable)
	b.WriteString(code.String())
	fmt.Fprintf(&b, "    return %s;\n}\n", opts.PathVariable)

	logging.Logger().Debug("generated procedure", "name", opts.ProcedureName,
		"paths", len(doc.PathData), "operations", len(ops))
	return b.String(), nil
}

// Result stores the outputs of a conversion.
type Result struct {
	ViewBox   ViewBox
	Procedure string        // generated source code
	Geometry  pathgeom.Path // normalized geometry
}

// PathData returns the serialized geometry, as a byte array declaration.
// See export.PathData.
func (res *Result) PathData(exportName string) (string, error) {
	return export.PathData(res.Geometry, exportName)
}

// Convert reads the SVG document from `r` and generates the
// procedure and the geometry of its paths.
func Convert(r io.Reader, opts Options) (*Result, error) {
	doc, err := ReadDocument(r)
	if err != nil {
		return nil, err
	}
	res := &Result{ViewBox: doc.ViewBox}
	res.Procedure, err = doc.Generate(&res.Geometry, opts)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Diagnostic returns the human readable message describing
// a conversion failure.
func Diagnostic(err error) string {
	var perr *svgpath.ParseError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnreadableDocument):
		return "Could not parse SVG content."
	case errors.Is(err, ErrNoPathData):
		return "No path data found in SVG content."
	case errors.Is(err, ErrEmptyPathData), errors.As(err, &perr):
		return "Error parsing path data."
	case errors.Is(err, export.ErrEmptyPath):
		return "path empty"
	default:
		return err.Error()
	}
}
