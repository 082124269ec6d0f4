package swf

import (
	"bytes"
	"errors"
	"testing"
)

func TestTagRoundtrip(t *testing.T) {
	cases := []struct {
		name string
		tag  Tag
	}{
		{"empty", Tag{Code: 9}},
		{"short", Tag{Code: 1, Data: []byte{0xAA, 0xBB}}},
		{"max short", Tag{Code: 26, Data: bytes.Repeat([]byte{0x01}, shortTagMaxLen)}},
		{"long", Tag{Code: 39, Data: bytes.Repeat([]byte{0x02}, shortTagMaxLen+1)}},
		{"big long", Tag{Code: 70, Data: bytes.Repeat([]byte{0x03}, 100_000)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeTag(NewWriter(&buf), c.tag); err != nil {
				t.Fatal(err)
			}
			got, end, err := readTag(NewStream(bytes.NewReader(buf.Bytes())), defaultLimits())
			if err != nil {
				t.Fatal(err)
			}
			if end {
				t.Fatal("unexpected end record")
			}
			if got.Code != c.tag.Code || !bytes.Equal(got.Data, c.tag.Data) {
				t.Fatalf("tag mismatch: code %d len %d", got.Code, len(got.Data))
			}
		})
	}
}

func TestTagSequenceRoundtrip(t *testing.T) {
	in := []Tag{
		{Code: 9, Data: []byte{0x00, 0x00, 0xFF}},
		{Code: 1},
		{Code: 2, Data: bytes.Repeat([]byte{0x7F}, 500)},
	}
	var buf bytes.Buffer
	if err := writeTags(NewWriter(&buf), in); err != nil {
		t.Fatal(err)
	}
	out, err := readTags(NewStream(bytes.NewReader(buf.Bytes())), defaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d tags, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].Code != in[i].Code || !bytes.Equal(out[i].Data, in[i].Data) {
			t.Fatalf("tag %d mismatch", i)
		}
	}
}

func TestReadTagsStopsAtEndRecord(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := writeTags(w, []Tag{{Code: 1}}); err != nil {
		t.Fatal(err)
	}
	// Trailing garbage after the End record must not be consumed as tags.
	buf.Write([]byte{0x41, 0x42, 0x43})
	tags, err := readTags(NewStream(bytes.NewReader(buf.Bytes())), defaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 {
		t.Fatalf("got %d tags, want 1", len(tags))
	}
}

func TestReadTagsCleanEOFWithoutEndRecord(t *testing.T) {
	tags, err := readTags(NewStream(bytes.NewReader(nil)), defaultLimits())
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 0 {
		t.Fatalf("got %d tags, want 0", len(tags))
	}
}

func TestReadTagTruncated(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"half header", []byte{0x41}},
		{"missing long length", []byte{0x3F, 0x04, 0x01, 0x02}},
		{"missing body", []byte{0x42, 0x00}}, // code 1, length 2, no payload
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := readTag(NewStream(bytes.NewReader(c.data)), defaultLimits())
			if !errors.Is(err, ErrInvalidTag) {
				t.Fatalf("expected ErrInvalidTag, got %v", err)
			}
		})
	}
}

func TestReadTagDataLimit(t *testing.T) {
	tag := Tag{Code: 5, Data: bytes.Repeat([]byte{0xEE}, 1024)}
	var buf bytes.Buffer
	if err := writeTag(NewWriter(&buf), tag); err != nil {
		t.Fatal(err)
	}
	limits := defaultLimits()
	limits.MaxTagDataSize = 100
	_, _, err := readTag(NewStream(bytes.NewReader(buf.Bytes())), limits)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestReadTagsCountLimit(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	seq := make([]Tag, 10)
	for i := range seq {
		seq[i] = Tag{Code: 1}
	}
	if err := writeTags(w, seq); err != nil {
		t.Fatal(err)
	}
	limits := defaultLimits()
	limits.MaxTagCount = 3
	_, err := readTags(NewStream(bytes.NewReader(buf.Bytes())), limits)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}
