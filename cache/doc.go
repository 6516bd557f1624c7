// Package cache reads and writes the CSR binary sidecar: <source>.bin.
//
// What
//
//   - Write serializes a csr.Graph as a small header (magic, version,
//     dimensions, codec byte, 64-bit content checksum) followed by RowPtr
//     and ColIndices as little-endian 32-bit integers. It writes to a temp
//     file and renames into place, so a crash mid-write can never leave
//     a half-written cache masquerading as valid.
//   - Read parses the header, validates magic/version, decodes the
//     arrays, and recomputes the checksum over the decoded payload;
//     any mismatch — short read, bad magic, wrong version, or a
//     checksum that doesn't match — is reported as ErrCorrupt so the
//     caller can fall through to re-parsing the text source.
//
// What the checksum covers
//
//   - The checksum is computed over the cache file's own RowPtr and
//     ColIndices bytes, so it detects a damaged or truncated cache file.
//     It is not compared against the text source: a cache written before
//     the text file was edited still parses cleanly and is returned by
//     Read. Neither the source's contents nor its mtime are checked; see
//     DESIGN.md.
//
// Compression
//
//   - WithCompression enables a snappy-encoded payload for RowPtr and
//     ColIndices (each length-prefixed), worthwhile once a SNAP-scale
//     graph's cache runs into the tens of megabytes. The codec byte in
//     the header records which form a given file uses, so Read never
//     needs to be told which mode was used to write it.
package cache
