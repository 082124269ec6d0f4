package swf

// Option configures a Movie at construction time.
type Option func(*Movie)

// WithChunkSize sets the unit of streaming I/O used by the compression
// transforms. Chunk size is per-movie configuration, never package state;
// movies with different memory/latency tradeoffs coexist safely.
func WithChunkSize(n int) Option {
	return func(m *Movie) {
		if n > 0 {
			m.chunkSize = n
		}
	}
}

// WithLimits sets custom decode limits. Zero fields fall back to defaults.
func WithLimits(l Limits) Option {
	return func(m *Movie) { m.limits = l }
}

// WithCompression selects the envelope compression for a movie built
// programmatically. The kind is fixed at construction; parsing a source
// always derives it from the signature instead.
func WithCompression(c Compression) Option {
	return func(m *Movie) {
		if m.header != nil {
			m.header.compression = c
		}
	}
}
