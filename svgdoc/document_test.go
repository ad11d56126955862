package svgdoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/svgpathgen/export"
	"github.com/benoitkugler/svgpathgen/pathgeom"
	"github.com/benoitkugler/svgpathgen/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoPaths = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
	<g><path d="M0 0 L1 1"/></g>
	<path d="M5 5 h1"/>
</svg>`

func TestTwoPathsInDocumentOrder(t *testing.T) {
	res, err := Convert(strings.NewReader(twoPaths), Options{})
	require.NoError(t, err)

	assert.Equal(t, "Path createPath()\n{\n    Path path;\n"+
		"    path.startNewSubPath(0.0f, 0.0f);\n"+
		"    path.lineTo(1.0f, 1.0f);\n"+
		"    path.startNewSubPath(5.0f, 5.0f);\n"+
		"    path.lineTo(6.0f, 5.0f);\n"+
		"    return path;\n}\n", res.Procedure)

	subs := res.Geometry.SubPaths()
	require.Len(t, subs, 2)
	assert.Equal(t, pathgeom.Point{X: 0, Y: 0}, subs[0].Start)
	assert.Equal(t, pathgeom.Point{X: 5, Y: 5}, subs[1].Start)
	assert.Equal(t, ViewBox{0, 0, 24, 24}, res.ViewBox)
}

func TestCollectOrder(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`<svg>
		<g>
			<path d="M1 1"/>
			<g><path d="M2 2"><path d="M3 3"/></path></g>
		</g>
		<PATH d="M4 4"/>
		<path d=""/>
		<path/>
		<rect d="M9 9"/>
		<path d="M5 5"/>
	</svg>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"M1 1", "M2 2", "M3 3", "M4 4", "M5 5"}, doc.PathData)

	// the root itself may be a path
	doc, err = ReadDocument(strings.NewReader(`<path d="M0 0 1 1"/>`))
	require.NoError(t, err)
	assert.Equal(t, []string{"M0 0 1 1"}, doc.PathData)
}

func TestUnreadableDocument(t *testing.T) {
	for _, input := range []string{
		"",
		"hello",
		"not xml <",
		"<svg><path></svg>",
		"<svg/><svg/>",
	} {
		_, err := Convert(strings.NewReader(input), Options{})
		assert.True(t, errors.Is(err, ErrUnreadableDocument), input)
		assert.Equal(t, "Could not parse SVG content.", Diagnostic(err))
	}
}

func TestNoPathData(t *testing.T) {
	_, err := Convert(strings.NewReader(`<svg><rect width="10" height="10"/><path d=""/></svg>`), Options{})
	assert.Equal(t, ErrNoPathData, err)
	assert.Equal(t, "No path data found in SVG content.", Diagnostic(err))
}

func TestInvalidPathRejectsDocument(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`<svg>
		<path d="M0 0 L10 10"/>
		<path d="M0 0 A5 5 0 0 1 10 10"/>
	</svg>`))
	require.NoError(t, err)

	var geom pathgeom.Path
	code, err := doc.Generate(&geom, Options{})
	assert.Empty(t, code)
	assert.True(t, geom.IsEmpty())

	var perr *svgpath.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, svgpath.UnsupportedCommand, perr.Kind)
	assert.Contains(t, err.Error(), "path 1:")
	assert.Equal(t, "Error parsing path data.", Diagnostic(err))

	// a path without any command is also an error
	doc, err = ReadDocument(strings.NewReader(`<svg><path d="   "/></svg>`))
	require.NoError(t, err)
	_, err = doc.Generate(&geom, Options{})
	assert.True(t, errors.Is(err, ErrEmptyPathData))
	assert.Equal(t, "Error parsing path data.", Diagnostic(err))
}

func TestViewBoxIsNotApplied(t *testing.T) {
	assert.Equal(t, ViewBox{0, 0, 24, 24}, parseViewBox("0,0 , 24 24"))
	assert.Equal(t, ViewBox{-1, 2.5, 10, 20}, parseViewBox("-1 2.5,10,20"))
	assert.Equal(t, DefaultViewBox, parseViewBox("1 2 3"))
	assert.Equal(t, DefaultViewBox, parseViewBox(""))
	assert.Equal(t, ViewBox{0, 1, 2, 3}, parseViewBox("x 1 2 3"))
	assert.Equal(t, ViewBox{0, 0, 12, 24.5}, parseViewBox("0 0 12px 24.5pt"))
	assert.Equal(t, ViewBox{1, 0, 3, 4}, parseViewBox("1 px3 3e 4"))

	small, err := Convert(strings.NewReader(`<svg viewBox="0 0 1 1"><path d="M0 0 L10 10"/></svg>`), Options{})
	require.NoError(t, err)
	large, err := Convert(strings.NewReader(`<svg viewBox="0 0 1000 1000"><path d="M0 0 L10 10"/></svg>`), Options{})
	require.NoError(t, err)
	noBox, err := Convert(strings.NewReader(`<svg><path d="M0 0 L10 10"/></svg>`), Options{})
	require.NoError(t, err)

	assert.Equal(t, DefaultViewBox, noBox.ViewBox)
	assert.Equal(t, small.Procedure, large.Procedure)
	assert.Equal(t, small.Geometry, large.Geometry)
	assert.Equal(t, small.Procedure, noBox.Procedure)
}

func TestOptions(t *testing.T) {
	res, err := Convert(strings.NewReader(`<svg><path d="M1 2"/></svg>`),
		Options{ProcedureName: "makeLogo", PathType: "juce::Path", PathVariable: "p"})
	require.NoError(t, err)
	assert.Equal(t, "juce::Path makeLogo()\n{\n    juce::Path p;\n"+
		"    p.startNewSubPath(1.0f, 2.0f);\n"+
		"    return p;\n}\n", res.Procedure)
}

func TestEncodingDeclaration(t *testing.T) {
	input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n" +
		"<svg><title>caf\xe9</title><path d=\"M0 0 L1 1\"/></svg>"
	res, err := Convert(strings.NewReader(input), Options{})
	require.NoError(t, err)
	assert.Len(t, res.Geometry, 2)
}

func TestResultPathData(t *testing.T) {
	res, err := Convert(strings.NewReader(`<svg><path d="M0 0 Z"/></svg>`), Options{})
	require.NoError(t, err)
	out, err := res.PathData("icon")
	require.NoError(t, err)
	assert.Equal(t, "static const unsigned char iconPathData[] = { 110,109,0,0,0,0,0,0,0,0,99,101,0,0 };\n", out)

	// a lone close produces code, but no geometry
	res, err = Convert(strings.NewReader(`<svg><path d="Z"/></svg>`), Options{})
	require.NoError(t, err)
	assert.Contains(t, res.Procedure, "path.closeSubPath();")
	_, err = res.PathData("")
	assert.Equal(t, export.ErrEmptyPath, err)
	assert.Equal(t, "path empty", Diagnostic(err))
}
