package swf

import "fmt"

// parseHeader reads the 8-byte container header: three signature bytes, the
// version byte, then the declared file length. The compression kind is
// looked up in the signature table keyed by version bucket; anything outside
// the table is rejected. The declared length is stored as-is, not verified.
func parseHeader(s *Stream) (*Header, error) {
	raw, err := s.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	triple := [3]byte{raw[0], raw[1], raw[2]}
	version := raw[3]
	comp, ok := lookupSignature(version, triple)
	if !ok {
		return nil, fmt.Errorf("%w: % X (version %d)", ErrInvalidSignature, triple[:], version)
	}
	length, err := s.ReadUI32()
	if err != nil {
		return nil, err
	}
	return &Header{
		Version:     version,
		FileLength:  length,
		compression: comp,
	}, nil
}

// saveHeader writes the signature, version and declared length using the
// signature table in reverse. The legacy byte order is parse-only; writing
// a version <= 6 header is an explicit error rather than a silent no-op.
func saveHeader(w *Writer, h *Header) error {
	if h.Version <= legacyVersionMax {
		return fmt.Errorf("%w: version %d", ErrLegacyVersionSave, h.Version)
	}
	triple, ok := signatureFor(h.Version, h.compression)
	if !ok {
		return fmt.Errorf("%w: no signature for compression %s", ErrInvalidSignature, compressionName(h.compression))
	}
	if err := w.WriteBytes(triple[:]); err != nil {
		return err
	}
	if err := w.WriteUI8(h.Version); err != nil {
		return err
	}
	return w.WriteUI32(h.FileLength)
}
