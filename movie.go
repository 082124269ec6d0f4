package swf

import (
	"bytes"
	"io"
)

// movieState tracks the document lifecycle. Operations are gated on it:
// export and save need a loaded movie, the body can only be read once the
// compression envelope is resolved.
type movieState uint8

const (
	stateUnparsed movieState = iota
	stateHeaderParsed
	stateBodyDecoded
	stateTagsLoaded
)

// defaultVersion is used for movies built programmatically.
const defaultVersion uint8 = 8

// Movie is a vector-graphics container document: one header plus an ordered
// sequence of tags. A Movie is not safe for concurrent use; callers must
// serialize access.
type Movie struct {
	header *Header
	data   *Stream
	tags   []Tag
	state  movieState

	chunkSize int
	limits    Limits
}

// New returns an empty movie for programmatic building, with a default
// uncompressed version-8 header.
func New(opts ...Option) *Movie {
	m := &Movie{
		header:    &Header{Version: defaultVersion, compression: CompNone},
		chunkSize: defaultChunkSize,
		limits:    defaultLimits(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.limits = m.limits.withDefaults()
	return m
}

// Parse reads a movie from r.
func Parse(r io.Reader, opts ...Option) (*Movie, error) {
	m := New(opts...)
	if err := m.Parse(r); err != nil {
		return nil, err
	}
	return m, nil
}

// Header returns the movie header. It is nil only on a zero-value Movie.
func (m *Movie) Header() *Header { return m.header }

// Data returns the decoded body bitstream. After Parse it is positioned at
// the first tag; reading from it moves the position, so most callers want
// Tags instead.
func (m *Movie) Data() *Stream { return m.data }

// Parse reads the container from r: header, then the optionally compressed
// body. When the header declares compression the body is decompressed
// transparently, so everything downstream operates on a plain bitstream
// regardless of source encoding; the compressed source is not read again
// afterwards. On return the movie holds the frame rectangle, frame rate and
// frame count, with the bitstream left at the first tag. Tags are loaded
// lazily by Tags, Save or Export.
func (m *Movie) Parse(r io.Reader) error {
	if m.chunkSize <= 0 {
		m.chunkSize = defaultChunkSize
	}
	m.limits = m.limits.withDefaults()

	s := NewStream(r)
	h, err := parseHeader(s)
	if err != nil {
		return err
	}
	m.header = h
	m.state = stateHeaderParsed

	if h.Compressed() {
		body, err := decompress(h.Compression(), r, m.chunkSize, m.limits.MaxDecodedBodySize)
		if err != nil {
			return err
		}
		s = NewStream(body)
	}
	m.data = s

	if h.FrameSize, err = s.ReadRect(); err != nil {
		return err
	}
	if h.FrameRate, err = s.ReadFixed8(); err != nil {
		return err
	}
	if h.FrameCount, err = s.ReadUI16(); err != nil {
		return err
	}
	m.tags = nil
	m.state = stateBodyDecoded
	return nil
}

// Tags returns the movie's tag sequence, reading it from the body bitstream
// on first use and memoizing the result. Re-parsing is the only way to
// restart the sequence.
func (m *Movie) Tags() ([]Tag, error) {
	switch m.state {
	case stateTagsLoaded:
		return m.tags, nil
	case stateBodyDecoded:
		tags, err := readTags(m.data, m.limits)
		if err != nil {
			return nil, err
		}
		m.tags = tags
		m.state = stateTagsLoaded
		return m.tags, nil
	default:
		return nil, ErrNotLoaded
	}
}

// AddTag appends a record to the tag sequence. On a parsed movie the
// existing sequence is loaded first so the new record lands at the end.
func (m *Movie) AddTag(t Tag) error {
	if m.state == stateBodyDecoded {
		if _, err := m.Tags(); err != nil {
			return err
		}
	}
	m.tags = append(m.tags, t)
	m.state = stateTagsLoaded
	return nil
}

// Export renders the movie with the given exporter, or SVGExporter when
// exporter is nil. It fails with ErrNotLoaded if no source was ever parsed
// and with ErrEmptyMovie if the tag sequence is empty; forceStroke is
// forwarded to the exporter unchanged.
func (m *Movie) Export(exporter Exporter, forceStroke bool) ([]byte, error) {
	if m.data == nil {
		return nil, ErrNotLoaded
	}
	tags, err := m.Tags()
	if err != nil {
		return nil, err
	}
	if len(tags) == 0 {
		return nil, ErrEmptyMovie
	}
	if exporter == nil {
		exporter = &SVGExporter{}
	}
	return exporter.Export(m, forceStroke)
}

// Save writes the movie to sink. It needs a loaded movie: one that was
// parsed, or one whose tag sequence was built with AddTag; anything else
// fails with ErrNotLoaded. The header goes out first; an uncompressed body
// is written straight to sink, a compressed one is serialized to an
// intermediate buffer, run through the compression transform, and streamed
// out in chunk-size pieces. The declared FileLength is emitted exactly as
// stored.
func (m *Movie) Save(sink io.Writer) error {
	if m.state != stateTagsLoaded && m.state != stateBodyDecoded {
		return ErrNotLoaded
	}
	tags := m.tags
	if m.state == stateBodyDecoded {
		var err error
		if tags, err = m.Tags(); err != nil {
			return err
		}
	}

	w := NewWriter(sink)
	if err := saveHeader(w, m.header); err != nil {
		return err
	}
	if !m.header.Compressed() {
		return writeBody(w, m.header, tags)
	}

	var body bytes.Buffer
	if err := writeBody(NewWriter(&body), m.header, tags); err != nil {
		return err
	}
	var encoded bytes.Buffer
	if err := compress(m.header.Compression(), &body, &encoded, m.chunkSize); err != nil {
		return err
	}
	return copyChunks(sink, &encoded, m.chunkSize)
}

// writeBody serializes the frame fields and the tag sequence.
func writeBody(w *Writer, h *Header, tags []Tag) error {
	if err := w.WriteRect(h.FrameSize); err != nil {
		return err
	}
	if err := w.WriteFixed8(h.FrameRate); err != nil {
		return err
	}
	if err := w.WriteUI16(h.FrameCount); err != nil {
		return err
	}
	return writeTags(w, tags)
}
