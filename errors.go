package swf

import "errors"

var (
	ErrInvalidSignature  = errors.New("swf: invalid signature")
	ErrDecompression     = errors.New("swf: decompression failed")
	ErrCompression       = errors.New("swf: compression failed")
	ErrNotLoaded         = errors.New("swf: movie not loaded")
	ErrEmptyMovie        = errors.New("swf: movie contains no tags")
	ErrLegacyVersionSave = errors.New("swf: saving legacy versions (<= 6) is unsupported")
	ErrInvalidTag        = errors.New("swf: invalid tag record")
	ErrRectRange         = errors.New("swf: rectangle coordinate out of range")
	ErrLimitExceeded     = errors.New("swf: limit exceeded")
)
