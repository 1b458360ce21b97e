// Command qrencode encodes a text payload into a QR Code symbol and
// prints it as ASCII art, or, when -out is given, writes the serialized
// MatrixContainer to that file instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	qrencode "github.com/qr-go/qrencode"
	"github.com/qr-go/qrencode/container"
	"github.com/qr-go/qrencode/eci"
	"github.com/qr-go/qrencode/qrspec"
)

func main() {
	ecc := flag.String("ecc", "M", "error correction level: L, M, Q, or H")
	version := flag.Int("version", 0, "force a specific QR version (1-40); 0 chooses automatically")
	forceUTF8 := flag.Bool("utf8", false, "force UTF-8 transcoding of Byte-mode payloads")
	bom := flag.Bool("bom", false, "prepend a UTF-8 byte-order mark when transcoding to UTF-8")
	eciName := flag.String("eci", "", "explicit ECI designator for Byte mode (e.g. ISO-8859-1, ISO-8859-2, UTF-8)")
	mode := flag.String("mode", "", "force an encoding mode: numeric or alphanumeric; empty chooses automatically")
	out := flag.String("out", "", "write the serialized matrix to this file instead of printing ASCII art")
	compression := flag.String("compression", "none", "serialization wrapping when -out is set: none, deflate, or gzip")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qrencode [flags] <text>\n\n")
		fmt.Fprintf(os.Stderr, "Encode text into a QR Code symbol.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	level, err := parseECC(*ecc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := qrencode.Options{
		ECCLevel:      level,
		ForceUTF8:     *forceUTF8,
		UTF8BOM:       *bom,
		ForcedVersion: *version,
	}
	if *eciName != "" {
		d, err := eci.ByName(*eciName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: unknown eci designator %q\n", *eciName)
			os.Exit(1)
		}
		opts.ECI = d
	}
	if *mode != "" {
		m, err := parseMode(*mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		opts.ForcedMode = m
	}

	container, err := qrencode.Encode(flag.Arg(0), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Print(renderASCII(container))
		return
	}

	comp, err := parseCompression(*compression)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	data, err := container.Serialize(comp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: serialize: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: write %s: %v\n", *out, err)
		os.Exit(1)
	}
}

func parseECC(s string) (qrspec.ErrorCorrectionLevel, error) {
	switch strings.ToUpper(s) {
	case "L":
		return qrencode.ECLevelL, nil
	case "M":
		return qrencode.ECLevelM, nil
	case "Q":
		return qrencode.ECLevelQ, nil
	case "H":
		return qrencode.ECLevelH, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q: want L, M, Q, or H", s)
	}
}

func parseMode(s string) (qrspec.Mode, error) {
	switch strings.ToLower(s) {
	case "numeric":
		return qrspec.ModeNumeric, nil
	case "alphanumeric":
		return qrspec.ModeAlphanumeric, nil
	default:
		return 0, fmt.Errorf("unknown mode %q: want numeric or alphanumeric", s)
	}
}

func parseCompression(s string) (container.Compression, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return container.Uncompressed, nil
	case "deflate":
		return container.Deflate, nil
	case "gzip":
		return container.GZip, nil
	default:
		return 0, fmt.Errorf("unknown compression %q: want none, deflate, or gzip", s)
	}
}

func renderASCII(c interface {
	Side() int
	IsDark(row, col int) bool
}) string {
	var sb strings.Builder
	for row := 0; row < c.Side(); row++ {
		for col := 0; col < c.Side(); col++ {
			if c.IsDark(row, col) {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
