package swf

// Limits bound resource use while decoding. The declared file length in the
// header is never checked against these; it is untrusted metadata either way.
type Limits struct {
	MaxDecodedBodySize uint64 // body bytes after decompression
	MaxTagDataSize     uint64 // single tag payload
	MaxTagCount        int
}

func defaultLimits() Limits {
	return Limits{
		MaxDecodedBodySize: 1 << 30,   // 1 GiB
		MaxTagDataSize:     256 << 20, // 256 MiB
		MaxTagCount:        1_000_000,
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxDecodedBodySize == 0 {
		l.MaxDecodedBodySize = d.MaxDecodedBodySize
	}
	if l.MaxTagDataSize == 0 {
		l.MaxTagDataSize = d.MaxTagDataSize
	}
	if l.MaxTagCount == 0 {
		l.MaxTagCount = d.MaxTagCount
	}
	return l
}
