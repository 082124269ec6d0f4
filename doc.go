// Package swf reads and writes the SWF binary container format used to
// deliver vector-graphics documents.
//
// # File Format Overview
//
// An SWF file consists of:
//   - A 3-byte signature and a version byte; the signature encodes the
//     compression kind (none, zlib, or LZMA) with a byte order that depends
//     on the version (versions 7 and later put the marker first, older
//     versions put it last)
//   - A little-endian 32-bit declared file length
//   - A body, optionally compressed as a whole, beginning with a bit-packed
//     frame rectangle in twips, an 8.8 fixed-point frame rate and a 16-bit
//     frame count, followed by a sequence of typed tag records
//
// Compression is transparent: after Parse all reads operate on the decoded
// bitstream regardless of source encoding. The transforms stream in
// configurable chunks (default 4096 bytes) so peak memory stays decoupled
// from document size.
//
// # Basic Usage
//
// To parse an SWF file:
//
//	f, _ := os.Open("input.swf")
//	defer f.Close()
//	movie, err := swf.Parse(f)
//
// To write it back out:
//
//	out, _ := os.Create("output.swf")
//	defer out.Close()
//	err := movie.Save(out)
//
// To render it with the default SVG exporter:
//
//	svg, err := movie.Export(nil, false)
//
// # Security Considerations
//
// The package includes protection against oversized allocations and
// decompression bombs via configurable [Limits], enforced while decoding.
// The declared file length in the header is trusted metadata and is never
// verified against the actual byte count.
package swf
