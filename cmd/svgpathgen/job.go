package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/benoitkugler/svgpathgen/config"
	"github.com/benoitkugler/svgpathgen/export"
	"github.com/benoitkugler/svgpathgen/logging"
	"github.com/benoitkugler/svgpathgen/pathgeom"
	"github.com/benoitkugler/svgpathgen/svgdoc"
	"github.com/benoitkugler/svgpathgen/svgpdf"
	"github.com/benoitkugler/svgpathgen/svgraster"
)

// job stores the settings of one conversion,
// which may be run several times in watch mode.
type job struct {
	cfg              config.Config
	pngFile, pdfFile string // optional previews
	out              io.Writer
}

func (j *job) runFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return j.run(f)
}

// run converts the SVG content and prints the generated procedure,
// a blank line and the byte array literal.
func (j *job) run(r io.Reader) error {
	res, err := svgdoc.Convert(r, svgdoc.Options{
		ProcedureName: j.cfg.Procedure.Name,
		PathType:      j.cfg.Procedure.PathType,
		PathVariable:  j.cfg.Procedure.Variable,
	})
	if err != nil {
		return err
	}

	literal, err := res.PathData(j.cfg.Export.Name)
	if errors.Is(err, export.ErrEmptyPath) {
		// the procedure is still valid
		literal = svgdoc.Diagnostic(err) + "\n"
	} else if err != nil {
		return err
	}
	if _, err := fmt.Fprint(j.out, res.Procedure, "\n", literal); err != nil {
		return err
	}

	return j.writePreviews(res.Geometry)
}

func (j *job) writePreviews(geom pathgeom.Path) error {
	if j.pngFile == "" && j.pdfFile == "" {
		return nil
	}
	p := j.cfg.Preview
	fill, stroke, background, err := previewColors(p)
	if err != nil {
		return err
	}

	if j.pngFile != "" {
		f, err := os.Create(j.pngFile)
		if err != nil {
			return err
		}
		err = svgraster.WritePNG(f, geom, svgraster.Options{
			Width: p.Width, Height: p.Height, Margin: p.Margin, Scale: p.Scale,
			Fill: fill, Stroke: stroke, Background: background, StrokeWidth: p.StrokeWidth,
		})
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing PNG preview: %w", err)
		}
		logging.Logger().Info("PNG preview written", "file", j.pngFile)
	}

	if j.pdfFile != "" {
		err := svgpdf.WriteFile(geom, j.pdfFile, svgpdf.Options{
			Margin: p.Margin, Fill: fill, Stroke: stroke, StrokeWidth: p.StrokeWidth,
		})
		if err != nil {
			return fmt.Errorf("writing PDF preview: %w", err)
		}
		logging.Logger().Info("PDF preview written", "file", j.pdfFile)
	}
	return nil
}

func previewColors(p config.Preview) (fill, stroke, background color.Color, err error) {
	if fill, err = config.ParseColor(p.Fill); err != nil {
		return
	}
	if stroke, err = config.ParseColor(p.Stroke); err != nil {
		return
	}
	background, err = config.ParseColor(p.Background)
	return
}
