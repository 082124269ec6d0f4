package swf

import "math/bits"

// Compression identifies the envelope compression algorithm, derived from
// the signature triple at the start of the file.
type Compression uint8

const (
	CompNone Compression = 0
	CompZlib Compression = 1
	CompLZMA Compression = 2
)

func (c Compression) String() string { return compressionName(c) }

func compressionName(c Compression) string {
	switch c {
	case CompNone:
		return "none"
	case CompZlib:
		return "zlib"
	case CompLZMA:
		return "lzma"
	default:
		return "unknown"
	}
}

// legacyVersionMax is the last version using the legacy signature byte
// order ('F', 'W', marker). Later versions put the marker first.
const legacyVersionMax uint8 = 6

// signatureEntry maps one valid signature triple to its compression kind.
// This table is the single source of truth for both parse and save; no
// other code may hardcode signature bytes.
type signatureEntry struct {
	legacy bool
	triple [3]byte
	comp   Compression
}

var signatureTable = []signatureEntry{
	{legacy: false, triple: [3]byte{'F', 'W', 'S'}, comp: CompNone},
	{legacy: false, triple: [3]byte{'C', 'W', 'S'}, comp: CompZlib},
	{legacy: false, triple: [3]byte{'Z', 'W', 'S'}, comp: CompLZMA},
	{legacy: true, triple: [3]byte{'F', 'W', 'S'}, comp: CompNone},
	{legacy: true, triple: [3]byte{'F', 'W', 'C'}, comp: CompZlib},
	{legacy: true, triple: [3]byte{'F', 'W', 'Z'}, comp: CompLZMA},
}

func lookupSignature(version uint8, triple [3]byte) (Compression, bool) {
	legacy := version <= legacyVersionMax
	for _, e := range signatureTable {
		if e.legacy == legacy && e.triple == triple {
			return e.comp, true
		}
	}
	return 0, false
}

func signatureFor(version uint8, comp Compression) ([3]byte, bool) {
	legacy := version <= legacyVersionMax
	for _, e := range signatureTable {
		if e.legacy == legacy && e.comp == comp {
			return e.triple, true
		}
	}
	return [3]byte{}, false
}

// Fixed8 is an 8.8 fixed-point number as stored in the file: low byte
// fraction, high byte integer part.
type Fixed8 uint16

func (f Fixed8) Float64() float64 { return float64(f) / 256 }

func Fixed8FromFloat(v float64) Fixed8 { return Fixed8(v * 256) }

// Rect is a bit-packed rectangle with coordinates in twips
// (1/20th of a pixel).
type Rect struct {
	Xmin, Xmax int32
	Ymin, Ymax int32
}

// Width returns the rectangle width in twips.
func (r Rect) Width() int32 { return r.Xmax - r.Xmin }

// Height returns the rectangle height in twips.
func (r Rect) Height() int32 { return r.Ymax - r.Ymin }

// nbits returns the field width needed to store every coordinate as a
// signed bit field.
func (r Rect) nbits() uint8 {
	n := signedBitLen(r.Xmin)
	for _, v := range [...]int32{r.Xmax, r.Ymin, r.Ymax} {
		if b := signedBitLen(v); b > n {
			n = b
		}
	}
	return n
}

func signedBitLen(v int32) uint8 {
	mag := uint32(v)
	if v < 0 {
		mag = uint32(^v)
	}
	return uint8(bits.Len32(mag)) + 1
}

// Header is the parsed container header. FrameSize, FrameRate and
// FrameCount are only valid once the body's leading fields have been read:
// after Parse completes, or once set explicitly when building a movie.
type Header struct {
	// Version is the declared format version.
	Version uint8

	// FileLength is the total file length as declared in the stream. It is
	// trusted, not recomputed against the actual byte count; consumers must
	// not assume it is accurate.
	FileLength uint32

	FrameSize  Rect
	FrameRate  Fixed8
	FrameCount uint16

	compression Compression
}

// Compression reports the envelope compression kind derived from the
// signature at parse time. It is immutable after the header is read.
func (h *Header) Compression() Compression { return h.compression }

// Compressed reports whether any compression applies. It is a pure derived
// attribute of the header, never an operation with side effects.
func (h *Header) Compressed() bool { return h.compression != CompNone }
