package cache

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"blainsmith.com/go/seahash"
	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/oxgraph/csrgraph/csr"
)

// Write serializes g to path as a flat binary blob: header, RowPtr,
// ColIndices. It writes to a temp file beside path and renames into
// place, so a concurrent or crashed reader never observes a partial
// write.
//
// A write failure here is a soft failure: the cache is an
// optimization, never a correctness requirement, so the graph facade
// reports Write's error to its diagnostic sink rather than aborting an
// otherwise-successful load.
func Write(path string, g *csr.Graph, opts ...Option) error {
	o := resolveOptions(opts...)

	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return errors.Wrapf(err, "cache: create %q", tmpPath)
	}
	defer func() {
		f.Close()
		os.Remove(tmpPath)
	}()

	bw := bufio.NewWriter(f)
	rowPtrBytes := int32sToBytes(g.RowPtr)
	colIndicesBytes := int32sToBytes(g.ColIndices)

	checksum := contentChecksum(rowPtrBytes, colIndicesBytes)
	codec := codecRaw
	if o.compress {
		codec = codecSnappy
	}

	if err := writeHeader(bw, g, codec, checksum); err != nil {
		return errors.Wrap(err, "cache: write header")
	}
	if err := writeBlock(bw, rowPtrBytes, o.compress); err != nil {
		return errors.Wrap(err, "cache: write row_ptr")
	}
	if err := writeBlock(bw, colIndicesBytes, o.compress); err != nil {
		return errors.Wrap(err, "cache: write col_indices")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "cache: flush")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "cache: close temp file")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrap(err, "cache: rename into place")
	}

	return nil
}

// Read parses path as a cache file and returns the reconstructed
// graph. Any structural problem — short read, bad magic, unknown
// version, or checksum mismatch — is reported as ErrCorrupt; the
// graph facade treats that identically to "no cache file", falling
// through to a text re-parse.
func Read(path string) (*csr.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cache: open %q", path)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	numNodes, numEdges, codec, wantChecksum, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	compressed := codec == codecSnappy
	rowPtrBytes, err := readBlock(br, 4*(numNodes+1), compressed)
	if err != nil {
		return nil, errors.Wrap(ErrCorrupt, "reading row_ptr: "+err.Error())
	}
	colIndicesBytes, err := readBlock(br, 4*numEdges, compressed)
	if err != nil {
		return nil, errors.Wrap(ErrCorrupt, "reading col_indices: "+err.Error())
	}

	if contentChecksum(rowPtrBytes, colIndicesBytes) != wantChecksum {
		return nil, errors.Wrap(ErrCorrupt, "checksum mismatch")
	}

	return &csr.Graph{
		NumNodes:   numNodes,
		NumEdges:   numEdges,
		RowPtr:     bytesToInt32s(rowPtrBytes, numNodes+1),
		ColIndices: bytesToInt32s(colIndicesBytes, numEdges),
	}, nil
}

// writeHeader emits the fixed-size header: magic, version, dimensions,
// codec byte, checksum.
func writeHeader(w io.Writer, g *csr.Graph, codec byte, checksum uint64) error {
	var hdr [headerByteSize]byte
	copy(hdr[0:8], magic)
	binary.LittleEndian.PutUint32(hdr[8:12], formatVersion)
	binary.LittleEndian.PutUint32(hdr[12:16], uint32(g.NumNodes))
	binary.LittleEndian.PutUint32(hdr[16:20], uint32(g.NumEdges))
	hdr[20] = codec
	binary.LittleEndian.PutUint64(hdr[21:29], checksum)

	_, err := w.Write(hdr[:])
	return err
}

// readHeader parses and validates the fixed-size header.
func readHeader(r io.Reader) (numNodes, numEdges int, codec byte, checksum uint64, err error) {
	var hdr [headerByteSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, 0, 0, 0, errors.Wrap(ErrCorrupt, "short header: "+err.Error())
	}
	if string(hdr[0:8]) != magic {
		return 0, 0, 0, 0, errors.Wrap(ErrCorrupt, "bad magic")
	}
	if v := binary.LittleEndian.Uint32(hdr[8:12]); v != formatVersion {
		return 0, 0, 0, 0, errors.Wrapf(ErrCorrupt, "unsupported version %d", v)
	}
	numNodes = int(binary.LittleEndian.Uint32(hdr[12:16]))
	numEdges = int(binary.LittleEndian.Uint32(hdr[16:20]))
	codec = hdr[20]
	if codec != codecRaw && codec != codecSnappy {
		return 0, 0, 0, 0, errors.Wrapf(ErrCorrupt, "unknown codec byte %d", codec)
	}
	checksum = binary.LittleEndian.Uint64(hdr[21:29])

	return numNodes, numEdges, codec, checksum, nil
}

// writeBlock writes raw bytes as-is, or, when compress is true, as a
// uint32 length prefix followed by a snappy-encoded block.
func writeBlock(w io.Writer, payload []byte, compress bool) error {
	if !compress {
		_, err := w.Write(payload)
		return err
	}

	encoded := snappy.Encode(nil, payload)
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(encoded)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(encoded)
	return err
}

// readBlock reads wantLen raw bytes, or, when compressed, a
// length-prefixed snappy block decoded back to wantLen bytes.
func readBlock(r io.Reader, wantLen int, compressed bool) ([]byte, error) {
	if !compressed {
		buf := make([]byte, wantLen)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	encoded := make([]byte, binary.LittleEndian.Uint32(lenBuf[:]))
	if _, err := io.ReadFull(r, encoded); err != nil {
		return nil, err
	}
	decoded, err := snappy.Decode(nil, encoded)
	if err != nil {
		return nil, err
	}
	if len(decoded) != wantLen {
		return nil, errors.Errorf("decoded length %d, want %d", len(decoded), wantLen)
	}

	return decoded, nil
}

// contentChecksum hashes the concatenation of the two array byte runs
// with seahash, the same way grailbio's bio-pamtool checksum command
// folds a stream of records through one seahash.Hash64.
func contentChecksum(rowPtrBytes, colIndicesBytes []byte) uint64 {
	h := seahash.New()
	h.Write(rowPtrBytes)
	h.Write(colIndicesBytes)
	return h.Sum64()
}

func int32sToBytes(vals []int32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}
	return buf
}

func bytesToInt32s(buf []byte, n int) []int32 {
	vals := make([]int32, n)
	for i := range vals {
		vals[i] = int32(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return vals
}
