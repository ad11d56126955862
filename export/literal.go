// Package export renders the binary serialization of a path
// as a C++ source literal, ready to be embedded in a program.
package export

import (
	"errors"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgpathgen/logging"
	"github.com/benoitkugler/svgpathgen/pathgeom"
)

// ErrEmptyPath is returned when exporting a path without operations.
var ErrEmptyPath = errors.New("path empty")

// maxCharsOnLine is the length triggering a line break in array literals
const maxCharsOnLine = 250

// Literal formats `data` as an array initializer :
// { b0,b1,...,0,0 };
// Lines are broken when they reach 250 characters.
func Literal(data []byte) string {
	var out strings.Builder
	out.WriteString("{ ")
	charsOnLine := 0
	var num []byte
	for _, b := range data {
		num = strconv.AppendUint(num[:0], uint64(b), 10)
		out.Write(num)
		out.WriteByte(',')

		charsOnLine += len(num) + 1
		if charsOnLine >= maxCharsOnLine {
			charsOnLine = 0
			out.WriteByte('\n')
		}
	}
	out.WriteString("0,0 };")
	return out.String()
}

// Declaration returns the name of the array holding
// the serialized path: <name>PathData, or pathData when `name` is empty.
func Declaration(name string) string {
	if name == "" {
		return "pathData"
	}
	return name + "PathData"
}

// PathData serializes `p` and returns the declaration
// of a byte array initialized with the result, such as
//
//	static const unsigned char iconPathData[] = { 110,109,... };
//
// followed by a line break.
func PathData(p pathgeom.Path, name string) (string, error) {
	if p.IsEmpty() {
		return "", ErrEmptyPath
	}
	data, err := p.MarshalBinary()
	if err != nil {
		return "", err
	}
	logging.Logger().Debug("exporting path data", "name", Declaration(name), "bytes", len(data))
	return "static const unsigned char " + Declaration(name) + "[] = " + Literal(data) + "\n", nil
}
