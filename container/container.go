// Package container implements the MatrixContainer renderer contract and
// its byte-level serialization (spec.md §4.10, §6).
package container

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/qr-go/qrencode/matrix"
)

// ErrCorruptSerialization covers every deserialization failure: bad
// signature, implausible side length, truncated stream, or a
// decompressed payload over the size ceiling.
var ErrCorruptSerialization = errors.New("container: corrupt serialization")

// maxDecompressedSize bounds decompression to guard against
// decompression-bomb attacks (spec.md §5). A var, not a const, so tests
// can shrink it to exercise the bomb-rejection path cheaply.
var maxDecompressedSize = 10 * 1024 * 1024

var signature = [4]byte{0x51, 0x52, 0x52, 0x00}

// Compression selects how Serialize wraps the raw matrix bytes.
type Compression int

const (
	Uncompressed Compression = iota
	Deflate
	GZip
)

// MatrixContainer is the renderer-facing output of the encoder: a module
// grid plus its version, with no remaining encoding concerns.
type MatrixContainer struct {
	version int
	side    int
	dark    []bool // row-major, length side*side
}

// FromSymbol adapts a laid-out matrix.Symbol into a MatrixContainer.
func FromSymbol(sym *matrix.Symbol) *MatrixContainer {
	side := sym.Matrix.Width
	dark := make([]bool, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dark[y*side+x] = sym.Matrix.Get(x, y) == 1
		}
	}
	return &MatrixContainer{version: sym.Version.Number, side: side, dark: dark}
}

// Version returns the QR version (1-40).
func (c *MatrixContainer) Version() int { return c.version }

// Side returns the module grid's side length.
func (c *MatrixContainer) Side() int { return c.side }

// IsDark reports whether the module at (row, col) is dark.
func (c *MatrixContainer) IsDark(row, col int) bool {
	return c.dark[row*c.side+col]
}

// Serialize packs the container into the wire format from spec.md §6
// (signature, side byte, row-major MSB-first packed modules), optionally
// wrapped in DEFLATE or GZIP.
func (c *MatrixContainer) Serialize(compression Compression) ([]byte, error) {
	raw := c.packRaw()
	switch compression {
	case Uncompressed:
		return raw, nil
	case Deflate:
		var buf bytes.Buffer
		w, err := flate.NewWriter(&buf, flate.DefaultCompression)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case GZip:
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorruptSerialization, compression)
	}
}

func (c *MatrixContainer) packRaw() []byte {
	byteCount := (c.side*c.side + 7) / 8
	buf := make([]byte, 5+byteCount)
	copy(buf[0:4], signature[:])
	buf[4] = byte(c.side)
	for i, dark := range c.dark {
		if dark {
			buf[5+i/8] |= 1 << uint(7-i%8)
		}
	}
	return buf
}

// Deserialize parses a MatrixContainer from its wire format, reversing
// exactly the wrapping Serialize applied.
func Deserialize(data []byte, compression Compression) (*MatrixContainer, error) {
	raw, err := decompress(data, compression)
	if err != nil {
		return nil, err
	}
	if len(raw) < 5 {
		return nil, fmt.Errorf("%w: truncated header", ErrCorruptSerialization)
	}
	if !bytes.Equal(raw[0:4], signature[:]) {
		return nil, fmt.Errorf("%w: bad signature", ErrCorruptSerialization)
	}
	side := int(raw[4])
	if side < 21 || side > 177 || (side-21)%4 != 0 {
		return nil, fmt.Errorf("%w: implausible side length %d", ErrCorruptSerialization, side)
	}
	version := (side-21)/4 + 1

	byteCount := (side*side + 7) / 8
	if len(raw) < 5+byteCount {
		return nil, fmt.Errorf("%w: truncated body", ErrCorruptSerialization)
	}

	dark := make([]bool, side*side)
	for i := range dark {
		b := raw[5+i/8]
		dark[i] = (b>>uint(7-i%8))&1 != 0
	}
	return &MatrixContainer{version: version, side: side, dark: dark}, nil
}

func decompress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case Uncompressed:
		return data, nil
	case Deflate:
		r := flate.NewReader(bytes.NewReader(data))
		defer r.Close()
		return readLimited(r)
	case GZip:
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSerialization, err)
		}
		defer gr.Close()
		return readLimited(gr)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorruptSerialization, compression)
	}
}

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(maxDecompressedSize)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSerialization, err)
	}
	if len(data) > maxDecompressedSize {
		return nil, fmt.Errorf("%w: decompressed payload exceeds %d bytes", ErrCorruptSerialization, maxDecompressedSize)
	}
	return data, nil
}
