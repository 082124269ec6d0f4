package swf

import (
	"errors"
	"fmt"
	"io"
)

// Tag is one typed record from the movie body. The payload layout is
// specific to each code and left opaque here; Data holds the raw bytes.
type Tag struct {
	Code uint16
	Data []byte
}

const (
	tagCodeEnd      = 0
	shortTagMaxLen  = 0x3e
	longTagLenFlag  = 0x3f
	tagCodeBitShift = 6
)

// readTag reads one record header and payload. It reports end=true for the
// End record (code 0) that terminates a well-formed tag sequence, and
// io.EOF when the stream is exhausted at a record boundary instead.
func readTag(s *Stream, limits Limits) (t Tag, end bool, err error) {
	v, err := s.ReadUI16()
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Tag{}, false, fmt.Errorf("%w: truncated record header", ErrInvalidTag)
		}
		return Tag{}, false, err
	}
	code := v >> tagCodeBitShift
	length := uint32(v & longTagLenFlag)
	if length == longTagLenFlag {
		length, err = s.ReadUI32()
		if err != nil {
			return Tag{}, false, fmt.Errorf("%w: truncated record length", ErrInvalidTag)
		}
	}
	if code == tagCodeEnd {
		return Tag{}, true, nil
	}
	if uint64(length) > limits.MaxTagDataSize {
		return Tag{}, false, fmt.Errorf("%w: tag %d data %d bytes", ErrLimitExceeded, code, length)
	}
	data, err := s.ReadBytes(int(length))
	if err != nil {
		return Tag{}, false, fmt.Errorf("%w: truncated tag %d body", ErrInvalidTag, code)
	}
	return Tag{Code: code, Data: data}, false, nil
}

// readTags consumes the remaining tag sequence. A clean EOF at a record
// boundary terminates the sequence just like an End record, so bodies
// written without a trailing End still load.
func readTags(s *Stream, limits Limits) ([]Tag, error) {
	var tags []Tag
	for {
		t, end, err := readTag(s, limits)
		if errors.Is(err, io.EOF) {
			return tags, nil
		}
		if err != nil {
			return nil, err
		}
		if end {
			return tags, nil
		}
		if limits.MaxTagCount > 0 && len(tags) >= limits.MaxTagCount {
			return nil, fmt.Errorf("%w: more than %d tags", ErrLimitExceeded, limits.MaxTagCount)
		}
		tags = append(tags, t)
	}
}

// writeTag writes one record, choosing the short header form whenever the
// payload fits.
func writeTag(w *Writer, t Tag) error {
	if len(t.Data) <= shortTagMaxLen {
		if err := w.WriteUI16(t.Code<<tagCodeBitShift | uint16(len(t.Data))); err != nil {
			return err
		}
		return w.WriteBytes(t.Data)
	}
	if err := w.WriteUI16(t.Code<<tagCodeBitShift | longTagLenFlag); err != nil {
		return err
	}
	if err := w.WriteUI32(uint32(len(t.Data))); err != nil {
		return err
	}
	return w.WriteBytes(t.Data)
}

// writeTags serializes the sequence followed by the terminating End record.
func writeTags(w *Writer, tags []Tag) error {
	for _, t := range tags {
		if err := writeTag(w, t); err != nil {
			return err
		}
	}
	return w.WriteUI16(tagCodeEnd)
}
