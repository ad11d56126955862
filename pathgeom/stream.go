package pathgeom

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// This file implements the binary stream format of a path:
// a winding byte, then one marker byte per operation
// followed by its coordinates as little-endian float32,
// and a final end marker.

const (
	markerNonZero = 'n'
	markerEvenOdd = 'z'
	markerMove    = 'm'
	markerLine    = 'l'
	markerQuad    = 'q'
	markerCubic   = 'b'
	markerClose   = 'c'
	markerEnd     = 'e'
)

var errTruncatedStream = errors.New("truncated path stream")

// UnknownMarkerError is returned when reading a byte
// which is not a valid operation marker.
type UnknownMarkerError struct {
	Marker byte
	Offset int64
}

func (e UnknownMarkerError) Error() string {
	return fmt.Sprintf("unknown path marker %q at offset %d", e.Marker, e.Offset)
}

type streamWriter struct {
	w   io.Writer
	n   int64
	err error
	buf [4]byte
}

func (sw *streamWriter) writeByte(b byte) {
	if sw.err != nil {
		return
	}
	sw.buf[0] = b
	var n int
	n, sw.err = sw.w.Write(sw.buf[:1])
	sw.n += int64(n)
}

func (sw *streamWriter) writeFloats(fs ...float32) {
	for _, f := range fs {
		if sw.err != nil {
			return
		}
		binary.LittleEndian.PutUint32(sw.buf[:], math.Float32bits(f))
		var n int
		n, sw.err = sw.w.Write(sw.buf[:])
		sw.n += int64(n)
	}
}

// WriteTo serializes the path, always using the non-zero winding rule.
// It implements io.WriterTo.
func (p Path) WriteTo(w io.Writer) (int64, error) {
	sw := streamWriter{w: w}
	sw.writeByte(markerNonZero)
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			sw.writeByte(markerMove)
			sw.writeFloats(op.X, op.Y)
		case LineTo:
			sw.writeByte(markerLine)
			sw.writeFloats(op.X, op.Y)
		case QuadTo:
			sw.writeByte(markerQuad)
			sw.writeFloats(op[0].X, op[0].Y, op[1].X, op[1].Y)
		case CubicTo:
			sw.writeByte(markerCubic)
			sw.writeFloats(op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			sw.writeByte(markerClose)
		}
	}
	sw.writeByte(markerEnd)
	return sw.n, sw.err
}

// MarshalBinary returns the stream representation of the path.
func (p Path) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	_, err := p.WriteTo(&buf)
	return buf.Bytes(), err
}

type streamReader struct {
	r      *bufio.Reader
	offset int64
	buf    [4]byte
}

func (sr *streamReader) readFloats(fs []float32) error {
	for i := range fs {
		n, err := io.ReadFull(sr.r, sr.buf[:])
		sr.offset += int64(n)
		if err != nil {
			return errTruncatedStream
		}
		fs[i] = math.Float32frombits(binary.LittleEndian.Uint32(sr.buf[:]))
	}
	return nil
}

// ReadPath decodes a path written by WriteTo. Reading stops
// at the end marker, or when `r` is exhausted.
// The winding rule is accepted but not retained.
func ReadPath(r io.Reader) (Path, error) {
	sr := streamReader{r: bufio.NewReader(r)}
	var (
		p    Path
		args [6]float32
	)
	for {
		marker, err := sr.r.ReadByte()
		if err == io.EOF {
			return p, nil
		} else if err != nil {
			return p, err
		}
		sr.offset++
		switch marker {
		case markerMove:
			if err := sr.readFloats(args[:2]); err != nil {
				return p, err
			}
			p.StartNewSubPath(args[0], args[1])
		case markerLine:
			if err := sr.readFloats(args[:2]); err != nil {
				return p, err
			}
			p.LineTo(args[0], args[1])
		case markerQuad:
			if err := sr.readFloats(args[:4]); err != nil {
				return p, err
			}
			p.QuadraticTo(args[0], args[1], args[2], args[3])
		case markerCubic:
			if err := sr.readFloats(args[:6]); err != nil {
				return p, err
			}
			p.CubicTo(args[0], args[1], args[2], args[3], args[4], args[5])
		case markerClose:
			p.CloseSubPath()
		case markerNonZero, markerEvenOdd:
		case markerEnd:
			return p, nil
		default:
			return p, UnknownMarkerError{Marker: marker, Offset: sr.offset - 1}
		}
	}
}

// UnmarshalBinary replaces `p` by the path decoded from `data`.
func (p *Path) UnmarshalBinary(data []byte) error {
	out, err := ReadPath(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*p = out
	return nil
}
