// Package svgdoc drives the path interpreter over a whole
// SVG document, collecting every <path> element and assembling
// the generated drawing code into a single procedure.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/svgpathgen/logging"
	"github.com/benoitkugler/svgpathgen/svgpath"
)

var (
	// ErrUnreadableDocument is returned when the input is not a well formed XML document.
	ErrUnreadableDocument = errors.New("unreadable SVG document")
	// ErrNoPathData is returned for documents without (non empty) <path> elements.
	ErrNoPathData = errors.New("no path data in SVG document")
)

// ViewBox is the user coordinate system declared by the root element.
// It is read, but not applied to the generated geometry.
type ViewBox struct{ X, Y, Width, Height float32 }

// DefaultViewBox is used when the root element has no valid viewBox.
var DefaultViewBox = ViewBox{0, 0, 1, 1}

// Document is the content of an SVG file relevant to
// path generation.
type Document struct {
	ViewBox ViewBox
	// PathData stores the non empty "d" attributes of the
	// <path> elements, in document order.
	PathData []string
}

// element is a node of the XML tree
type element struct {
	name     string // local name
	attrs    []xml.Attr
	children []*element
}

func (e *element) attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// readTree decodes the whole XML document and returns its root element.
func readTree(r io.Reader) (*element, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *element
		stack []*element // open elements
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			el := &element{name: se.Name.Local, attrs: se.Attr}
			if len(stack) != 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			} else if root == nil {
				root = el
			} else {
				return nil, errors.New("multiple root elements")
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, errors.New("missing root element")
	}
	return root, nil
}

// collectPathData walks the tree depth first, in document order,
// and returns the non empty "d" attributes of <path> elements.
func collectPathData(root *element) []string {
	var out []string
	stack := []*element{root}
	for len(stack) != 0 {
		el := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if strings.EqualFold(el.name, "path") {
			if d, _ := el.attr("d"); d != "" {
				out = append(out, d)
			}
		}
		// push in reverse order so that the first child is visited first
		for i := len(el.children) - 1; i >= 0; i-- {
			stack = append(stack, el.children[i])
		}
	}
	return out
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

// parseViewBox returns DefaultViewBox unless `attr` has exactly four fields.
// Each field is read up to its first non numeric byte ("12px" is 12),
// and fields without a leading number are read as 0.
func parseViewBox(attr string) ViewBox {
	fields := splitOnCommaOrSpace(attr)
	if len(fields) != 4 {
		return DefaultViewBox
	}
	var values [4]float32
	for i, field := range fields {
		v, _, ok := svgpath.ParseNumber(field, 0)
		if !ok {
			logging.Logger().Warn("invalid viewBox value", "value", field)
			continue
		}
		values[i] = v
	}
	return ViewBox{values[0], values[1], values[2], values[3]}
}

// ReadDocument parses the SVG document from the given reader.
func ReadDocument(r io.Reader) (*Document, error) {
	root, err := readTree(r)
	if err != nil {
		logging.Logger().Warn("unreadable SVG document", "error", err)
		return nil, fmt.Errorf("%w: %s", ErrUnreadableDocument, err)
	}

	doc := &Document{ViewBox: DefaultViewBox}
	if attr, ok := root.attr("viewBox"); ok {
		doc.ViewBox = parseViewBox(attr)
	}
	doc.PathData = collectPathData(root)

	logging.Logger().Debug("read SVG document", "root", root.name,
		"paths", len(doc.PathData), "viewBox", doc.ViewBox)
	return doc, nil
}

// ReadFile parses the named SVG file.
func ReadFile(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDocument(f)
}
