package cache

import "github.com/pkg/errors"

// magic identifies a csrgraph cache file; version gates the header layout.
const (
	magic          = "CSRGPH01"
	formatVersion  = uint32(1)
	codecRaw       = byte(0)
	codecSnappy    = byte(1)
	headerByteSize = 8 + 4 + 4 + 4 + 1 + 8 // magic, version, numNodes, numEdges, codec, checksum
)

// Sentinel errors for cache I/O.
var (
	// ErrCorrupt is returned for any cache file that fails to parse
	// cleanly: short read, bad magic, unknown version, or a checksum
	// mismatch. Callers should treat it exactly like a missing cache
	// and fall through to re-parsing the text source.
	ErrCorrupt = errors.New("cache: corrupt cache file")
)

// Option configures Write's on-disk encoding.
type Option func(*options)

type options struct {
	compress bool
}

func resolveOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCompression snappy-encodes RowPtr and ColIndices on Write. Read
// does not need the corresponding option: the codec byte in the
// header says which form the file is in.
func WithCompression() Option {
	return func(o *options) { o.compress = true }
}

// Path returns the conventional cache sidecar path for a source file.
func Path(sourcePath string) string {
	return sourcePath + ".bin"
}
