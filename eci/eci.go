// Package eci resolves Extended Channel Interpretation designators (the
// code page names for Byte-mode QR segments) and transcodes Go's native
// UTF-8 strings into those code pages.
package eci

import "errors"

// ErrUnsupported indicates an ECI value or name that this module cannot
// locate or does not know how to transcode.
var ErrUnsupported = errors.New("eci: unsupported ECI designator")

// Designator describes one Extended Channel Interpretation code page.
type Designator struct {
	Value   int
	Name    string
	GoName  string
	Aliases []string
}

// Predefined ECI designators (ISO/IEC 18004 Annex D / AIM ECI registry).
// Only ISO8859_1, ISO8859_2, and UTF8 are transcodable by this module (see
// Encode in transcode.go); the rest resolve by name for completeness of
// the lookup table but Encode returns ErrUnsupported for them.
var (
	Cp437      = &Designator{0, "Cp437", "IBM437", nil}
	ISO8859_1  = &Designator{3, "ISO8859_1", "ISO8859_1", []string{"ISO-8859-1"}}
	ISO8859_2  = &Designator{4, "ISO8859_2", "ISO8859_2", []string{"ISO-8859-2"}}
	ISO8859_3  = &Designator{5, "ISO8859_3", "ISO8859_3", []string{"ISO-8859-3"}}
	ISO8859_4  = &Designator{6, "ISO8859_4", "ISO8859_4", []string{"ISO-8859-4"}}
	ISO8859_5  = &Designator{7, "ISO8859_5", "ISO8859_5", []string{"ISO-8859-5"}}
	ISO8859_6  = &Designator{8, "ISO8859_6", "ISO8859_6", []string{"ISO-8859-6"}}
	ISO8859_7  = &Designator{9, "ISO8859_7", "ISO8859_7", []string{"ISO-8859-7"}}
	ISO8859_8  = &Designator{10, "ISO8859_8", "ISO8859_8", []string{"ISO-8859-8"}}
	ISO8859_9  = &Designator{11, "ISO8859_9", "ISO8859_9", []string{"ISO-8859-9"}}
	ISO8859_10 = &Designator{12, "ISO8859_10", "ISO8859_10", []string{"ISO-8859-10"}}
	ISO8859_11 = &Designator{13, "ISO8859_11", "ISO8859_11", []string{"ISO-8859-11"}}
	ISO8859_13 = &Designator{15, "ISO8859_13", "ISO8859_13", []string{"ISO-8859-13"}}
	ISO8859_14 = &Designator{16, "ISO8859_14", "ISO8859_14", []string{"ISO-8859-14"}}
	ISO8859_15 = &Designator{17, "ISO8859_15", "ISO8859_15", []string{"ISO-8859-15"}}
	ISO8859_16 = &Designator{18, "ISO8859_16", "ISO8859_16", []string{"ISO-8859-16"}}
	SJIS       = &Designator{20, "SJIS", "Shift_JIS", []string{"Shift_JIS"}}
	Cp1250     = &Designator{21, "Cp1250", "Windows1250", []string{"windows-1250"}}
	Cp1251     = &Designator{22, "Cp1251", "Windows1251", []string{"windows-1251"}}
	Cp1252     = &Designator{23, "Cp1252", "Windows1252", []string{"windows-1252"}}
	Cp1256     = &Designator{24, "Cp1256", "Windows1256", []string{"windows-1256"}}
	UTF16BE    = &Designator{25, "UnicodeBigUnmarked", "UTF-16BE", []string{"UTF-16BE", "UnicodeBig"}}
	UTF8       = &Designator{26, "UTF8", "UTF-8", []string{"UTF-8"}}
	ASCII      = &Designator{27, "ASCII", "US-ASCII", []string{"US-ASCII"}}
	Big5       = &Designator{28, "Big5", "Big5", nil}
	GB18030    = &Designator{29, "GB18030", "GB18030", []string{"GB2312", "EUC_CN", "GBK"}}
	EUC_KR     = &Designator{30, "EUC_KR", "EUC-KR", []string{"EUC-KR"}}
)

var byName = map[string]*Designator{}

func init() {
	all := []*Designator{
		Cp437, ISO8859_1, ISO8859_2, ISO8859_3, ISO8859_4, ISO8859_5,
		ISO8859_6, ISO8859_7, ISO8859_8, ISO8859_9, ISO8859_10, ISO8859_11,
		ISO8859_13, ISO8859_14, ISO8859_15, ISO8859_16, SJIS, Cp1250,
		Cp1251, Cp1252, Cp1256, UTF16BE, UTF8, ASCII, Big5, GB18030, EUC_KR,
	}

	for _, d := range all {
		byName[d.Name] = d
		byName[d.GoName] = d
		for _, alias := range d.Aliases {
			byName[alias] = d
		}
	}
}

// ByName resolves a code-page name or alias (e.g. "ISO-8859-1", "UTF-8").
func ByName(name string) (*Designator, error) {
	d, ok := byName[name]
	if !ok {
		return nil, ErrUnsupported
	}
	return d, nil
}

// DesignatorBits returns the narrowest width (8, 16, or 24 bits) that can
// hold this designator's value, per spec.md §4.4 item 1 ("selected by the
// smallest width that fits").
func (d *Designator) DesignatorBits() int {
	switch {
	case d.Value < 1<<7:
		return 8
	case d.Value < 1<<14:
		return 16
	default:
		return 24
	}
}
