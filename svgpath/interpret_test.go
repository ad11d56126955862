package svgpath

import (
	"bytes"
	"testing"

	"github.com/benoitkugler/svgpathgen/pathgeom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileState(t *testing.T, d string) pathCursor {
	t.Helper()
	c := pathCursor{data: d}
	require.NoError(t, c.compile())
	return c
}

func TestImplicitLineAfterMove(t *testing.T) {
	c := compileState(t, "M0 0 10 10")
	assert.Equal(t, pathgeom.Path{pathgeom.MoveTo{X: 0, Y: 0}, pathgeom.LineTo{X: 10, Y: 10}}, c.ops)
	assert.Equal(t, float32(0), c.startX)
	assert.Equal(t, float32(0), c.startY)
	assert.Equal(t, float32(10), c.x)
	assert.Equal(t, float32(10), c.y)

	var geom pathgeom.Path
	text, err := Translate("M0 0 10 10", &geom)
	require.NoError(t, err)
	assert.Equal(t, "    path.startNewSubPath(0.0f, 0.0f);\n    path.lineTo(10.0f, 10.0f);\n", text)
	assert.Equal(t, c.ops, geom)
}

func TestClosedSquare(t *testing.T) {
	const d = "M0,0 L10,0 L10,10 Z"
	c := compileState(t, d)
	assert.Equal(t, float32(0), c.x)
	assert.Equal(t, float32(0), c.y)

	var geom pathgeom.Path
	text, err := Translate(d, &geom)
	require.NoError(t, err)
	assert.Equal(t, "    path.startNewSubPath(0.0f, 0.0f);\n"+
		"    path.lineTo(10.0f, 0.0f);\n"+
		"    path.lineTo(10.0f, 10.0f);\n"+
		"    path.closeSubPath();\n", text)

	subs := geom.SubPaths()
	require.Len(t, subs, 1)
	assert.True(t, subs[0].Closed)
	assert.Len(t, subs[0].Segments, 2)
}

func TestSmoothCubicReflection(t *testing.T) {
	ops, err := Compile("M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	require.NoError(t, err)
	require.Len(t, ops, 3)
	assert.Equal(t, pathgeom.CubicTo{{X: 10, Y: -10}, {X: 20, Y: -10}, {X: 20, Y: 0}}, ops[2])

	text, err := Translate("M0 0 C0 10 10 10 10 0 S20 -10 20 0", new(pathgeom.Path))
	require.NoError(t, err)
	assert.Contains(t, text, "    path.cubicTo(10.0f, -10.0f, 20.0f, -10.0f, 20.0f, 0.0f);\n")
}

func TestSmoothQuadraticReflection(t *testing.T) {
	ops, err := Compile("M0 0 Q5 5 10 0 T20 0 30 0")
	require.NoError(t, err)
	assert.Equal(t, pathgeom.Path{
		pathgeom.MoveTo{},
		pathgeom.QuadTo{{X: 5, Y: 5}, {X: 10, Y: 0}},
		pathgeom.QuadTo{{X: 15, Y: -5}, {X: 20, Y: 0}},
		pathgeom.QuadTo{{X: 25, Y: 5}, {X: 30, Y: 0}},
	}, ops)

	// without a previous curve, the stored control point (the origin) is reflected
	ops, err = Compile("M10 10 T20 10")
	require.NoError(t, err)
	assert.Equal(t, pathgeom.QuadTo{{X: 20, Y: 20}, {X: 20, Y: 10}}, ops[1])
}

func TestRelativeCommands(t *testing.T) {
	ops, err := Compile("m1 1 l2 0 h3 v4 z l1 1 c1 0 1 1 0 1 q1 1 2 0")
	require.NoError(t, err)
	assert.Equal(t, pathgeom.Path{
		pathgeom.MoveTo{X: 1, Y: 1},
		pathgeom.LineTo{X: 3, Y: 1},
		pathgeom.LineTo{X: 6, Y: 1},
		pathgeom.LineTo{X: 6, Y: 5},
		pathgeom.Close{},
		pathgeom.LineTo{X: 2, Y: 2}, // relative to the sub-path start
		pathgeom.CubicTo{{X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3}},
		pathgeom.QuadTo{{X: 3, Y: 4}, {X: 4, Y: 3}},
	}, ops)

	// implicit pairs after a relative move are relative lines
	ops, err = Compile("m1 1 1 1 1 1")
	require.NoError(t, err)
	assert.Equal(t, pathgeom.Path{
		pathgeom.MoveTo{X: 1, Y: 1},
		pathgeom.LineTo{X: 2, Y: 2},
		pathgeom.LineTo{X: 3, Y: 3},
	}, ops)
}

func TestRepeatedArguments(t *testing.T) {
	ops, err := Compile("M0 0 H1 2 3 V4,5 L1-1-2-2")
	require.NoError(t, err)
	assert.Equal(t, pathgeom.Path{
		pathgeom.MoveTo{},
		pathgeom.LineTo{X: 1, Y: 0},
		pathgeom.LineTo{X: 2, Y: 0},
		pathgeom.LineTo{X: 3, Y: 0},
		pathgeom.LineTo{X: 3, Y: 4},
		pathgeom.LineTo{X: 3, Y: 5},
		pathgeom.LineTo{X: 1, Y: -1},
		pathgeom.LineTo{X: -2, Y: -2},
	}, ops)

	// a command letter after a number ends the repetition
	ops, err = Compile("M0 0L1 1Z")
	require.NoError(t, err)
	assert.Len(t, ops, 3)

	// duplicated closes are kept in the recorded operations
	ops, err = Compile("M0 0 L1 1 Z Z")
	require.NoError(t, err)
	assert.Len(t, ops, 4)

	ops, err = Compile("  \n")
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestIncompleteGroupEndsRun(t *testing.T) {
	for _, test := range []struct {
		d    string
		want pathgeom.Path
	}{
		{"M0 0 L10 10 20", pathgeom.Path{pathgeom.MoveTo{}, pathgeom.LineTo{X: 10, Y: 10}}},
		{"M0 0 L Z", pathgeom.Path{pathgeom.MoveTo{}, pathgeom.Close{}}},
		{"M0 0 C1 2 3 4 5 6 7", pathgeom.Path{
			pathgeom.MoveTo{},
			pathgeom.CubicTo{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}},
		}},
		{"M0 0 H", pathgeom.Path{pathgeom.MoveTo{}}},
		{"M0 0 C1 2 3 4 5", pathgeom.Path{pathgeom.MoveTo{}}},
		{"M0 0 Q1 2 L3 4", pathgeom.Path{pathgeom.MoveTo{}, pathgeom.LineTo{X: 3, Y: 4}}},
	} {
		ops, err := Compile(test.d)
		require.NoError(t, err, test.d)
		assert.Equal(t, test.want, ops, test.d)
	}

	// relative values after a close start from the sub-path start
	ops, err := Compile("M0 0 h 5 Z v 1 2")
	require.NoError(t, err)
	assert.Equal(t, pathgeom.Path{
		pathgeom.MoveTo{},
		pathgeom.LineTo{X: 5, Y: 0},
		pathgeom.Close{},
		pathgeom.LineTo{X: 0, Y: 1},
		pathgeom.LineTo{X: 0, Y: 3},
	}, ops)
}

func TestArcRejected(t *testing.T) {
	var geom pathgeom.Path
	geom.StartNewSubPath(-1, -1)
	before := append(pathgeom.Path(nil), geom...)

	text, err := Translate("M0 0 A5 5 0 0 1 10 10", &geom)
	assert.Empty(t, text)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, UnsupportedCommand, perr.Kind)
	assert.Equal(t, 5, perr.Pos)
	assert.Equal(t, byte('A'), perr.Command)
	assert.Contains(t, err.Error(), "arc commands are not supported")
	assert.Equal(t, before, geom)
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		d       string
		kind    ErrorKind
		pos     int
		command byte
	}{
		{"M0 0 X1", UnknownCommand, 5, 'X'},
		{"M0 0 e", UnknownCommand, 5, 'e'},
		{"10 10", MissingCommand, 0, 0},
		{"#", MissingCommand, 0, 0},
		{"M0", MalformedNumber, 2, 'M'},
		{"M", MalformedNumber, 1, 'M'},
		{"M0 0 L1 1 -", MissingCommand, 10, 0},
		{"M0 0 L1 1 #", MissingCommand, 10, 0},
		{"M0 0 Z 1", MissingCommand, 7, 0},
		{"m0 0 a1 1 0 0 0 1 1", UnsupportedCommand, 5, 'a'},
	} {
		ops, err := Compile(test.d)
		assert.Nil(t, ops, test.d)
		var perr *ParseError
		if !assert.ErrorAs(t, err, &perr, test.d) {
			continue
		}
		assert.Equal(t, test.kind, perr.Kind, test.d)
		assert.Equal(t, test.pos, perr.Pos, test.d)
		assert.Equal(t, test.command, perr.Command, test.d)
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid 'L' command at position 8", (&ParseError{MalformedNumber, 8, 'L'}).Error())
	assert.Equal(t, "unknown command 'X' at position 5", (&ParseError{UnknownCommand, 5, 'X'}).Error())
	assert.Equal(t, "invalid path data at position 0", (&ParseError{MissingCommand, 0, 0}).Error())
	assert.Equal(t, "MalformedNumber", MalformedNumber.String())
}

func TestInterpretDoesNotNormalize(t *testing.T) {
	// the sink receives the operations as written
	var code CodeWriter
	require.NoError(t, Interpret("Z L1 1 Z Z", &code))
	assert.Equal(t, "    path.closeSubPath();\n"+
		"    path.lineTo(1.0f, 1.0f);\n"+
		"    path.closeSubPath();\n"+
		"    path.closeSubPath();\n", code.String())

	// while the geometry applies its own rules
	var geom pathgeom.Path
	require.NoError(t, Interpret("Z L1 1 Z Z", &geom))
	assert.Equal(t, pathgeom.Path{pathgeom.MoveTo{}, pathgeom.LineTo{X: 1, Y: 1}, pathgeom.Close{}}, geom)
}

func TestGeometryRoundTrip(t *testing.T) {
	for _, d := range []string{
		"M0 0 C0 10 10 10 10 0 S20 -10 20 0",
		"M0,0 L10,0 L10,10 Z M20 20 h5 v5 h-5 z",
		"M1.5 2.25 Q3 4 5 6 T9 9 L0.1 0.2",
	} {
		var geom pathgeom.Path
		_, err := Translate(d, &geom)
		require.NoError(t, err)

		data, err := geom.MarshalBinary()
		require.NoError(t, err)
		back, err := pathgeom.ReadPath(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, geom.SubPaths(), back.SubPaths(), d)
	}
}
