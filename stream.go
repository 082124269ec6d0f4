package swf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Stream reads SWF primitives from a byte source. Bit-packed fields are
// read MSB-first; multi-byte integers are little-endian and always start on
// a byte boundary.
type Stream struct {
	r      io.Reader
	bitBuf uint32
	bitN   uint8
}

func NewStream(r io.Reader) *Stream {
	return &Stream{r: r}
}

// Align discards any partially consumed byte so the next read starts on a
// byte boundary.
func (s *Stream) Align() {
	s.bitBuf = 0
	s.bitN = 0
}

// ReadUB reads n unsigned bits, MSB-first.
func (s *Stream) ReadUB(n uint8) (uint32, error) {
	var v uint32
	for i := uint8(0); i < n; i++ {
		if s.bitN == 0 {
			var b [1]byte
			if _, err := io.ReadFull(s.r, b[:]); err != nil {
				return 0, err
			}
			s.bitBuf = uint32(b[0])
			s.bitN = 8
		}
		s.bitN--
		v = v<<1 | (s.bitBuf>>s.bitN)&1
	}
	return v, nil
}

// ReadSB reads n bits as a sign-extended two's-complement value.
func (s *Stream) ReadSB(n uint8) (int32, error) {
	v, err := s.ReadUB(n)
	if err != nil {
		return 0, err
	}
	if n > 0 && v&(1<<(n-1)) != 0 {
		v |= ^uint32(0) << n
	}
	return int32(v), nil
}

func (s *Stream) ReadBytes(n int) ([]byte, error) {
	s.Align()
	b := make([]byte, n)
	if _, err := io.ReadFull(s.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Stream) ReadUI8() (uint8, error) {
	s.Align()
	var b [1]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (s *Stream) ReadUI16() (uint16, error) {
	s.Align()
	var b [2]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func (s *Stream) ReadUI32() (uint32, error) {
	s.Align()
	var b [4]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (s *Stream) ReadFixed8() (Fixed8, error) {
	v, err := s.ReadUI16()
	return Fixed8(v), err
}

// ReadRect reads a bit-packed rectangle: a 5-bit field width followed by
// four signed fields of that width, padded to the next byte boundary.
func (s *Stream) ReadRect() (Rect, error) {
	s.Align()
	nbits, err := s.ReadUB(5)
	if err != nil {
		return Rect{}, err
	}
	var r Rect
	for _, p := range [...]*int32{&r.Xmin, &r.Xmax, &r.Ymin, &r.Ymax} {
		v, err := s.ReadSB(uint8(nbits))
		if err != nil {
			return Rect{}, err
		}
		*p = v
	}
	s.Align()
	return r, nil
}

// Writer writes SWF primitives to a byte sink, mirroring Stream.
type Writer struct {
	w   io.Writer
	cur byte
	n   uint8
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteUB writes the low n bits of v, MSB-first.
func (w *Writer) WriteUB(v uint32, n uint8) error {
	for i := n; i > 0; i-- {
		w.cur = w.cur<<1 | byte(v>>(i-1))&1
		w.n++
		if w.n == 8 {
			if _, err := w.w.Write([]byte{w.cur}); err != nil {
				return err
			}
			w.cur = 0
			w.n = 0
		}
	}
	return nil
}

func (w *Writer) WriteSB(v int32, n uint8) error {
	return w.WriteUB(uint32(v), n)
}

// Align pads the current byte with zero bits and flushes it.
func (w *Writer) Align() error {
	if w.n == 0 {
		return nil
	}
	b := w.cur << (8 - w.n)
	w.cur = 0
	w.n = 0
	_, err := w.w.Write([]byte{b})
	return err
}

func (w *Writer) WriteBytes(b []byte) error {
	if err := w.Align(); err != nil {
		return err
	}
	_, err := w.w.Write(b)
	return err
}

func (w *Writer) WriteUI8(v uint8) error {
	return w.WriteBytes([]byte{v})
}

func (w *Writer) WriteUI16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return w.WriteBytes(b[:])
}

func (w *Writer) WriteUI32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.WriteBytes(b[:])
}

func (w *Writer) WriteFixed8(v Fixed8) error {
	return w.WriteUI16(uint16(v))
}

// WriteRect writes r with the smallest field width that fits every
// coordinate, then pads to the next byte boundary. The 5-bit width field
// caps coordinates at 31-bit signed values; anything wider fails with
// ErrRectRange rather than wrapping around.
func (w *Writer) WriteRect(r Rect) error {
	if err := w.Align(); err != nil {
		return err
	}
	nbits := r.nbits()
	if nbits > 31 {
		return fmt.Errorf("%w: needs %d-bit fields", ErrRectRange, nbits)
	}
	if err := w.WriteUB(uint32(nbits), 5); err != nil {
		return err
	}
	for _, v := range [...]int32{r.Xmin, r.Xmax, r.Ymin, r.Ymax} {
		if err := w.WriteSB(v, nbits); err != nil {
			return err
		}
	}
	return w.Align()
}
