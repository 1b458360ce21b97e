package container

import (
	"bytes"
	"compress/gzip"
	"errors"
	"testing"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/matrix"
	"github.com/qr-go/qrencode/qrspec"
)

func testSymbol(t *testing.T, num int) *matrix.Symbol {
	t.Helper()
	version, err := qrspec.ForNumber(num)
	if err != nil {
		t.Fatalf("ForNumber(%d): %v", num, err)
	}
	numBits := version.TotalCodewords*8 + version.RemainderBits()
	bits := bitutil.NewBitArray(0)
	for i := 0; i < numBits; i++ {
		bits.AppendBit(i%3 == 0)
	}
	symbol, err := matrix.Build(bits, qrspec.ECLevelM, version, -1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return symbol
}

func roundTrip(t *testing.T, c *MatrixContainer, compression Compression) *MatrixContainer {
	t.Helper()
	data, err := c.Serialize(compression)
	if err != nil {
		t.Fatalf("Serialize(%d): %v", compression, err)
	}
	got, err := Deserialize(data, compression)
	if err != nil {
		t.Fatalf("Deserialize(%d): %v", compression, err)
	}
	return got
}

func assertEqual(t *testing.T, want, got *MatrixContainer) {
	t.Helper()
	if want.Version() != got.Version() || want.Side() != got.Side() {
		t.Fatalf("version/side mismatch: want (%d,%d) got (%d,%d)", want.Version(), want.Side(), got.Version(), got.Side())
	}
	for row := 0; row < want.Side(); row++ {
		for col := 0; col < want.Side(); col++ {
			if want.IsDark(row, col) != got.IsDark(row, col) {
				t.Fatalf("cell (%d,%d) mismatch", row, col)
			}
		}
	}
}

func TestRoundTripUncompressed(t *testing.T) {
	c := FromSymbol(testSymbol(t, 3))
	assertEqual(t, c, roundTrip(t, c, Uncompressed))
}

func TestRoundTripDeflate(t *testing.T) {
	c := FromSymbol(testSymbol(t, 5))
	assertEqual(t, c, roundTrip(t, c, Deflate))
}

func TestRoundTripGZip(t *testing.T) {
	c := FromSymbol(testSymbol(t, 1))
	assertEqual(t, c, roundTrip(t, c, GZip))
}

func TestDeserializeRejectsBadSignature(t *testing.T) {
	c := FromSymbol(testSymbol(t, 1))
	data, _ := c.Serialize(Uncompressed)
	data[0] ^= 0xFF
	if _, err := Deserialize(data, Uncompressed); !errors.Is(err, ErrCorruptSerialization) {
		t.Fatalf("err = %v, want ErrCorruptSerialization", err)
	}
}

func TestDeserializeRejectsTruncatedBody(t *testing.T) {
	c := FromSymbol(testSymbol(t, 1))
	data, _ := c.Serialize(Uncompressed)
	if _, err := Deserialize(data[:len(data)-2], Uncompressed); !errors.Is(err, ErrCorruptSerialization) {
		t.Fatalf("err = %v, want ErrCorruptSerialization", err)
	}
}

func TestDeserializeRejectsImplausibleSide(t *testing.T) {
	data := append([]byte{0x51, 0x52, 0x52, 0x00, 250}, make([]byte, 5000)...)
	if _, err := Deserialize(data, Uncompressed); !errors.Is(err, ErrCorruptSerialization) {
		t.Fatalf("err = %v, want ErrCorruptSerialization", err)
	}
}

func TestDeserializeRejectsDecompressionBomb(t *testing.T) {
	old := maxDecompressedSize
	maxDecompressedSize = 16
	defer func() { maxDecompressedSize = old }()

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Write(bytes.Repeat([]byte{0}, 1024))
	w.Close()

	if _, err := Deserialize(buf.Bytes(), GZip); !errors.Is(err, ErrCorruptSerialization) {
		t.Fatalf("err = %v, want ErrCorruptSerialization", err)
	}
}
