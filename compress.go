package swf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/ulikunitz/xz/lzma"
)

// defaultChunkSize bounds how many raw bytes the streaming transforms hold
// in flight at once.
const defaultChunkSize = 4096

// newDecoder wraps source in the incremental decoder for comp.
func newDecoder(comp Compression, source io.Reader) (io.Reader, error) {
	switch comp {
	case CompZlib:
		return zlib.NewReader(source)
	case CompLZMA:
		return lzma.NewReader(source)
	default:
		return nil, fmt.Errorf("%w: no decoder for compression %d", ErrDecompression, comp)
	}
}

// newEncoder wraps sink in the incremental encoder for comp. The returned
// writer must be closed to finalize the stream.
func newEncoder(comp Compression, sink io.Writer) (io.WriteCloser, error) {
	switch comp {
	case CompZlib:
		return zlib.NewWriter(sink), nil
	case CompLZMA:
		return lzma.NewWriter(sink)
	default:
		return nil, fmt.Errorf("%w: no encoder for compression %d", ErrCompression, comp)
	}
}

// decompress drains source through the comp decoder in chunkSize pieces and
// returns the decoded bytes positioned at the start. maxDecoded caps the
// output to guard against decompression bombs; chunk boundaries carry no
// meaning and any chunk size yields identical output. The chunk bound
// applies to the decoded side of the pull-based decoder; the codec reads
// source through its own fixed-size internal buffer.
func decompress(comp Compression, source io.Reader, chunkSize int, maxDecoded uint64) (*bytes.Reader, error) {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	dec, err := newDecoder(comp, source)
	if err != nil {
		if errors.Is(err, ErrDecompression) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	var out bytes.Buffer
	buf := make([]byte, chunkSize)
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			if uint64(out.Len())+uint64(n) > maxDecoded {
				return nil, fmt.Errorf("%w: decoded body exceeds %d bytes", ErrLimitExceeded, maxDecoded)
			}
			out.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
		}
	}
	if c, ok := dec.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
		}
	}
	return bytes.NewReader(out.Bytes()), nil
}

// compress feeds source through the comp encoder in chunkSize pieces,
// writing the encoded stream to sink. The encoder is finalized so the
// result is independently decodable.
func compress(comp Compression, source io.Reader, sink io.Writer, chunkSize int) error {
	enc, err := newEncoder(comp, sink)
	if err != nil {
		if errors.Is(err, ErrCompression) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if err := copyChunks(enc, source, chunkSize); err != nil {
		return fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return nil
}

// copyChunks copies src to dst holding at most chunkSize bytes at a time.
// io.CopyBuffer is avoided on purpose: WriterTo/ReaderFrom fast paths would
// bypass the chunk bound.
func copyChunks(dst io.Writer, src io.Reader, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	buf := make([]byte, chunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
